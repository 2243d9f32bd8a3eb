package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Key codes delivered by a Backend. Printable ASCII 32..126 arrives as
// itself and control keys as their control codes; keys with no single
// byte use the extended codes below.
const (
	KeyCtrlC = 3
	KeyCtrlD = 4
	KeyCtrlH = 8
	KeyTab   = 9
	KeyEnter = 10
	KeyCtrlS = 19
	KeyCtrlZ = 26
	KeyEsc   = 27
	KeySpace = 32
)

const (
	KeyDown      = 258
	KeyUp        = 259
	KeyLeft      = 260
	KeyRight     = 261
	KeyBackspace = 263
	KeyShiftTab  = 353
	KeyResize    = 410
)

// Cursor is the terminal cursor requested by the last render.
type Cursor struct {
	X      int
	Y      int
	Active bool
}

// Backend is the terminal the toolkit draws on.
type Backend interface {
	Init() error
	Fini()
	// Size returns the current terminal dimensions.
	Size() (w, h int)
	// PollKey blocks until a key is available and returns its code.
	// Terminal geometry changes are delivered as KeyResize.
	PollKey() int
	// Flush paints the cell buffer to the terminal and places or hides
	// the cursor. The colors function maps interned pair slots back to
	// color pairs.
	Flush(buf *Buffer, colors func(int16) Pair, cursor Cursor)
	// ColorPairs returns how many color pairs the terminal supports.
	ColorPairs() int
}

// tcellBackend drives a real terminal through tcell.
type tcellBackend struct {
	screen tcell.Screen
}

// NewTcellBackend creates the default terminal backend.
func NewTcellBackend() (Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	return &tcellBackend{screen: screen}, nil
}

func (b *tcellBackend) Init() error {
	if err := b.screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	b.screen.HideCursor()
	b.screen.Clear()
	return nil
}

func (b *tcellBackend) Fini() {
	b.screen.Fini()
}

func (b *tcellBackend) Size() (int, int) {
	return b.screen.Size()
}

func (b *tcellBackend) ColorPairs() int {
	return b.screen.Colors()
}

func (b *tcellBackend) PollKey() int {
	for {
		switch ev := b.screen.PollEvent().(type) {
		case *tcell.EventResize:
			b.screen.Sync()
			return KeyResize
		case *tcell.EventKey:
			if key := keyCode(ev); key != 0 {
				return key
			}
		}
	}
}

// keyCode translates a tcell key event to a key code, or 0 for keys
// the toolkit does not recognize.
func keyCode(ev *tcell.EventKey) int {
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyTab:
		return KeyTab
	case tcell.KeyBacktab:
		return KeyShiftTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace
	case tcell.KeyEscape:
		return KeyEsc
	case tcell.KeyCtrlC:
		return KeyCtrlC
	case tcell.KeyCtrlD:
		return KeyCtrlD
	case tcell.KeyCtrlS:
		return KeyCtrlS
	case tcell.KeyCtrlZ:
		return KeyCtrlZ
	case tcell.KeyRune:
		if r := ev.Rune(); r >= 32 && r <= 126 {
			return int(r)
		}
	}
	return 0
}

func (b *tcellBackend) Flush(buf *Buffer, colors func(int16) Pair, cursor Cursor) {
	w, h := buf.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell := buf.Get(x, y)
			sym := cell.Sym
			if sym == 0 {
				sym = ' '
			}
			b.screen.SetContent(x, y, sym, nil, styleFor(colors(cell.Slot)))
		}
	}
	if cursor.Active {
		b.screen.ShowCursor(cursor.X, cursor.Y)
	} else {
		b.screen.HideCursor()
	}
	b.screen.Show()
}

// styleFor converts a resolved color pair to a tcell style. Backend
// color indices equal the palette value minus one; NONE maps to the
// terminal default.
func styleFor(p Pair) tcell.Style {
	style := tcell.StyleDefault
	if p.Fg != ColorNone {
		style = style.Foreground(tcell.PaletteColor(int(p.Fg) - 1))
	}
	if p.Bg != ColorNone {
		style = style.Background(tcell.PaletteColor(int(p.Bg) - 1))
	}
	return style
}
