package tui

import "github.com/mattn/go-runewidth"

// Cell is one terminal character cell: a symbol and the slot of its
// interned color pair.
type Cell struct {
	Sym  rune
	Slot int16
}

// Buffer is a 2D grid of cells backing one window. Windows paint into
// their own buffer and the render pass composites buffers onto their
// parent's, which is what makes transparent backgrounds show through.
type Buffer struct {
	cells []Cell
	w, h  int
}

// NewBuffer creates a buffer with the given dimensions.
func NewBuffer(w, h int) *Buffer {
	return &Buffer{
		cells: make([]Cell, w*h),
		w:     w,
		h:     h,
	}
}

// Width returns the buffer width.
func (b *Buffer) Width() int {
	return b.w
}

// Height returns the buffer height.
func (b *Buffer) Height() int {
	return b.h
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (w, h int) {
	return b.w, b.h
}

// InBounds reports whether the coordinates are within the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.w && y >= 0 && y < b.h
}

func (b *Buffer) index(x, y int) int {
	return y*b.w + x
}

// Get returns the cell at the given coordinates, or the zero cell if
// out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Cell{}
	}
	return b.cells[b.index(x, y)]
}

// Set sets the cell at the given coordinates. Out-of-bounds writes are
// dropped. Symbols wider or narrower than one column are replaced with
// a space to keep the grid single-column.
func (b *Buffer) Set(x, y int, c Cell) {
	if !b.InBounds(x, y) {
		return
	}
	if c.Sym != 0 && runewidth.RuneWidth(c.Sym) != 1 {
		c.Sym = ' '
	}
	b.cells[b.index(x, y)] = c
}

// Fill fills the entire buffer with the given cell.
func (b *Buffer) Fill(c Cell) {
	for i := range b.cells {
		b.cells[i] = c
	}
}

// FillRect fills a rectangular region with the given cell.
func (b *Buffer) FillRect(x, y, w, h int, c Cell) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			b.Set(x+dx, y+dy, c)
		}
	}
}

// HLine draws a horizontal run of the given symbol.
func (b *Buffer) HLine(x, y, length int, sym rune, slot int16) {
	for i := 0; i < length; i++ {
		b.Set(x+i, y, Cell{Sym: sym, Slot: slot})
	}
}

// VLine draws a vertical run of the given symbol.
func (b *Buffer) VLine(x, y, length int, sym rune, slot int16) {
	for i := 0; i < length; i++ {
		b.Set(x, y+i, Cell{Sym: sym, Slot: slot})
	}
}

// Resize resizes the buffer, preserving content where it fits.
func (b *Buffer) Resize(w, h int) {
	if w == b.w && h == b.h {
		return
	}
	cells := make([]Cell, w*h)
	minW := min(w, b.w)
	minH := min(h, b.h)
	for y := 0; y < minH; y++ {
		copy(cells[y*w:y*w+minW], b.cells[y*b.w:y*b.w+minW])
	}
	b.cells = cells
	b.w = w
	b.h = h
}

// String returns the buffer symbols as lines of text, for tests.
func (b *Buffer) String() string {
	out := make([]byte, 0, (b.w+1)*b.h)
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			sym := b.cells[b.index(x, y)].Sym
			if sym == 0 {
				sym = ' '
			}
			out = append(out, string(sym)...)
		}
		if y < b.h-1 {
			out = append(out, '\n')
		}
	}
	return string(out)
}

// overwrite copies the overlapping region of src onto dst. Each buffer
// is anchored at its own screen-space origin, so only the cells where
// the two rects intersect are copied.
func overwrite(src *Buffer, srcX, srcY int, dst *Buffer, dstX, dstY int) {
	x0 := max(srcX, dstX)
	y0 := max(srcY, dstY)
	x1 := min(srcX+src.w, dstX+dst.w)
	y1 := min(srcY+src.h, dstY+dst.h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst.cells[dst.index(x-dstX, y-dstY)] = src.cells[src.index(x-srcX, y-srcY)]
		}
	}
}

// updateBuffer creates or resizes a window's backing buffer for the
// given layout rect. Degenerate rects leave the buffer untouched.
func updateBuffer(buf *Buffer, rect Rect) *Buffer {
	if rect.W <= 0 || rect.H <= 0 {
		return buf
	}
	if buf == nil {
		return NewBuffer(rect.W, rect.H)
	}
	buf.Resize(rect.W, rect.H)
	return buf
}
