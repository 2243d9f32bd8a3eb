package tui

// The render pass paints every visible window into its backing buffer
// and composites the buffers onto the screen. Sibling lists are painted
// last-to-first so the first-declared window ends up on top.

// Box drawing symbols used for borders.
const (
	boxHorizontal  = '─'
	boxVertical    = '│'
	boxTopLeft     = '┌'
	boxTopRight    = '┐'
	boxBottomLeft  = '└'
	boxBottomRight = '┘'
)

// render runs one full frame: update hooks, size and layout passes,
// painting, and the flush to the backend.
func (t *TUI) render() {
	t.cursor = Cursor{}

	t.update()

	t.resize()

	var fill Pair

	if t.menu != nil {
		t.menu.paintColor = resolvePair(t.menu.Color, t.Color)
		fill = t.menu.paintColor
	} else {
		fill = t.Color
	}

	t.screen.Fill(Cell{Sym: ' ', Slot: t.cache.slot(fill)})

	t.renderWindows(t.windows)

	if t.menu != nil {
		t.renderWindows(t.menu.windows)
	}

	cursor := t.cursor
	if cursor.Active &&
		(cursor.X < 0 || cursor.X >= t.size.W ||
			cursor.Y < 0 || cursor.Y >= t.size.H) {
		cursor.Active = false
	}

	t.backend.Flush(t.screen, t.cache.pair, cursor)
}

// renderWindows paints a sibling list in reverse insertion order.
func (t *TUI) renderWindows(windows []Window) {
	for i := len(windows); i > 0; i-- {
		win := windows[i-1]

		if win.base().visible {
			t.renderWindow(win)
		}
	}
}

func (t *TUI) renderWindow(win Window) {
	if render := win.base().Event.Render; render != nil {
		render(win)
	}

	switch win := win.(type) {
	case *Parent:
		t.parentRender(win)
	case *Text:
		t.textRender(win)
	case *Grid:
		t.gridRender(win)
	}
}

// surface returns the buffer a window composites with, and that
// buffer's screen-space origin: the parent's buffer, or the screen for
// a top-level window.
func (t *TUI) surface(b *Base) (*Buffer, int, int) {
	if b.parent != nil {
		return b.parent.buf, b.parent.layoutRect.X, b.parent.layoutRect.Y
	}
	return t.screen, 0, 0
}

func (t *TUI) parentRender(parent *Parent) {
	b := &parent.Base

	surface, sx, sy := t.surface(b)

	// copy the backdrop in so transparency shows through
	overwrite(surface, sx, sy, b.buf, b.layoutRect.X, b.layoutRect.Y)

	b.paintColor = resolvePair(b.Color, t.inherited(b))

	if b.Color.Bg != ColorNone {
		shadowW, shadowH := 0, 0
		if parent.HasShadow {
			shadowW, shadowH = 2, 1
		}

		b.buf.FillRect(0, 0, b.layoutRect.W-shadowW, b.layoutRect.H-shadowH,
			Cell{Sym: ' ', Slot: t.cache.slot(b.paintColor)})
	}

	t.borderDraw(parent)

	t.shadowDraw(parent)

	for _, child := range parent.children {
		if child.base().visible {
			t.renderWindow(child)
		}
	}

	overwrite(b.buf, b.layoutRect.X, b.layoutRect.Y, surface, sx, sy)
}

// borderDraw frames the parent inside its rect, leaving room for the
// shadow. The top-left half and bottom-right half take separate
// foregrounds so LOW and HIGH depths read as sunken or raised.
func (t *TUI) borderDraw(parent *Parent) {
	border := parent.Border

	if !border.IsActive {
		return
	}

	b := &parent.Base

	color := resolvePair(border.Color, b.paintColor)

	color1 := color
	color2 := color

	shadowW, shadowH := 0, 0
	if parent.HasShadow {
		shadowW, shadowH = 2, 1
	}

	switch border.Depth {
	case DepthLow:
		color1.Fg = ColorBlack
		color2.Fg = ColorWhite
	case DepthHigh:
		color1.Fg = ColorWhite
		color2.Fg = ColorBlack
	}

	if color.Fg == ColorNone && color.Bg == ColorNone {
		return
	}

	w := b.layoutRect.W
	h := b.layoutRect.H

	slot1 := t.cache.slot(color1)

	b.buf.Set(0, 0, Cell{Sym: boxTopLeft, Slot: slot1})
	b.buf.Set(0, h-1-shadowH, Cell{Sym: boxBottomLeft, Slot: slot1})
	b.buf.HLine(1, 0, w-2-shadowW, boxHorizontal, slot1)
	b.buf.VLine(0, 1, h-2-shadowH, boxVertical, slot1)

	slot2 := t.cache.slot(color2)

	b.buf.Set(w-1-shadowW, 0, Cell{Sym: boxTopRight, Slot: slot2})
	b.buf.Set(w-1-shadowW, h-1-shadowH, Cell{Sym: boxBottomRight, Slot: slot2})
	b.buf.VLine(w-1-shadowW, 1, h-2-shadowH, boxVertical, slot2)
	b.buf.HLine(1, h-1-shadowH, w-2-shadowW, boxHorizontal, slot2)
}

// shadowDraw paints the one-row, two-column band of black cells along
// the bottom and right edges.
func (t *TUI) shadowDraw(parent *Parent) {
	if !parent.HasShadow {
		return
	}

	b := &parent.Base

	slot := t.cache.slot(Pair{Bg: ColorBlack})

	w := b.layoutRect.W
	h := b.layoutRect.H

	for y := 1; y < h; y++ {
		b.buf.Set(w-2, y, Cell{Sym: ' ', Slot: slot})
		b.buf.Set(w-1, y, Cell{Sym: ' ', Slot: slot})
	}

	for x := 2; x < w; x++ {
		b.buf.Set(x, h-1, Cell{Sym: ' ', Slot: slot})
	}
}

func (t *TUI) textRender(win *Text) {
	b := &win.Base

	surface, sx, sy := t.surface(b)

	overwrite(surface, sx, sy, b.buf, b.layoutRect.X, b.layoutRect.Y)

	b.paintColor = resolvePair(b.Color, t.inherited(b))

	if b.Color.Bg != ColorNone {
		b.buf.Fill(Cell{Sym: ' ', Slot: t.cache.slot(b.paintColor)})
	}

	if len(win.text) > 0 {
		t.textPaint(win)
	}

	overwrite(b.buf, b.layoutRect.X, b.layoutRect.Y, surface, sx, sy)
}

// textPaint streams the source string into the window, wrapping to the
// measured line widths and interpreting inline escape codes.
func (t *TUI) textPaint(win *Text) {
	rect := win.layoutRect

	h := textHeight(win.text, rect.W)

	// the text cannot be displayed at this width
	if h <= 0 {
		return
	}

	ws := lineWidths(win.text, h)

	color := win.paintColor

	x := 0
	y := 0

	yShift := max(0, int(win.Pos)*(rect.H-h)/2)

	src := win.str

	for i := 0; i < len(src) && y < h; i++ {
		letter := src[i]

		w := ws[y]

		xShift := max(0, int(win.Align)*(rect.W-w)/2)

		if letter == 0x1b {
			code, next := ansiExtract(src, i)
			i = next

			t.ansiHandle(win, code, x, y, xShift, yShift, &color)
		} else if x >= w {
			x = 0
			y++
		} else {
			if y+yShift < rect.H && x+xShift < rect.W {
				sym := rune(letter)

				if win.IsSecret {
					sym = '*'
				}

				win.buf.Set(xShift+x, yShift+y, Cell{Sym: sym, Slot: t.cache.slot(color)})
			}

			x++
		}
	}
}

// ansiExtract reads the numeric parameter of an ESC[..m sequence
// starting at i and returns it with the index of the closing 'm'.
func ansiExtract(s string, i int) (code, next int) {
	j := i + 2

	for j < len(s) && s[j] != 'm' {
		if s[j] >= '0' && s[j] <= '9' {
			code = code*10 + int(s[j]-'0')
		}
		j++
	}

	return code, j
}

// ansiHandle applies one inline escape code at the current paint
// position: 0 resets to the window color, 5 places the cursor when the
// window is focused, 30-37 and 40-47 switch the pen colors.
func (t *TUI) ansiHandle(win *Text, code, x, y, xShift, yShift int, color *Pair) {
	switch {
	case code == 0:
		*color = win.paintColor

	case code == 5:
		if t.window == Window(win) {
			t.cursorSet(win.layoutRect.X+x+xShift, win.layoutRect.Y+y+yShift)
		}

	case code >= 30 && code <= 37:
		color.Fg = Color(code - 30)

	case code >= 40 && code <= 47:
		color.Bg = Color(code - 40)
	}
}

func (t *TUI) gridRender(win *Grid) {
	b := &win.Base

	surface, sx, sy := t.surface(b)

	overwrite(surface, sx, sy, b.buf, b.layoutRect.X, b.layoutRect.Y)

	b.paintColor = resolvePair(b.Color, t.inherited(b))

	if b.Color.Bg != ColorNone {
		b.buf.Fill(Cell{Sym: ' ', Slot: t.cache.slot(b.paintColor)})
	}

	xShift := max(0, (b.layoutRect.W-win.gridSize.W)/2)
	yShift := max(0, (b.layoutRect.H-win.gridSize.H)/2)

	for y := 0; y < win.gridSize.H; y++ {
		for x := 0; x < win.gridSize.W; x++ {
			square := win.squares[y*win.gridSize.W+x]

			sym := square.Symbol
			if sym == 0 {
				sym = ' '
			}

			color := resolvePair(square.Color, b.paintColor)

			b.buf.Set(xShift+x, yShift+y, Cell{Sym: sym, Slot: t.cache.slot(color)})
		}
	}

	overwrite(b.buf, b.layoutRect.X, b.layoutRect.Y, surface, sx, sy)
}
