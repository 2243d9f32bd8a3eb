package tui

import "testing"

func cellPair(root *TUI, buf *Buffer, x, y int) Pair {
	return root.cache.pair(buf.Get(x, y).Slot)
}

func TestRenderFillsScreenWithRootColor(t *testing.T) {
	root, backend := newTestTUI(t, 8, 4)
	root.Color = Pair{Fg: ColorWhite, Bg: ColorBlue}

	root.render()

	pair := cellPair(root, backend.flushed, 3, 2)
	if pair != (Pair{Fg: ColorWhite, Bg: ColorBlue}) {
		t.Errorf("screen pair = %+v, want white on blue", pair)
	}
}

func TestBorderGlyphsAndDepthColors(t *testing.T) {
	root, backend := newTestTUI(t, 10, 6)
	root.Color = Pair{Fg: ColorWhite, Bg: ColorBlue}

	root.NewParent(ParentConfig{
		WindowConfig: WindowConfig{
			Rect:  NewRect(0, 0, 6, 4),
			Color: Pair{Fg: ColorBlack, Bg: ColorGray},
		},
		Border: Border{IsActive: true, Depth: DepthLow},
	})

	root.render()

	buf := backend.flushed

	corners := []struct {
		x, y int
		sym  rune
		fg   Color
	}{
		{0, 0, boxTopLeft, ColorBlack},
		{5, 0, boxTopRight, ColorWhite},
		{0, 3, boxBottomLeft, ColorBlack},
		{5, 3, boxBottomRight, ColorWhite},
	}

	for _, c := range corners {
		cell := buf.Get(c.x, c.y)
		if cell.Sym != c.sym {
			t.Errorf("cell (%d,%d) = %q, want %q", c.x, c.y, cell.Sym, c.sym)
		}
		if pair := cellPair(root, buf, c.x, c.y); pair.Fg != c.fg {
			t.Errorf("cell (%d,%d) fg = %v, want %v", c.x, c.y, pair.Fg, c.fg)
		}
	}

	if sym := buf.Get(2, 0).Sym; sym != boxHorizontal {
		t.Errorf("top edge = %q, want %q", sym, boxHorizontal)
	}
	if sym := buf.Get(0, 1).Sym; sym != boxVertical {
		t.Errorf("left edge = %q, want %q", sym, boxVertical)
	}
}

func TestShadowPaintsBlackBand(t *testing.T) {
	root, backend := newTestTUI(t, 12, 6)

	root.NewParent(ParentConfig{
		WindowConfig: WindowConfig{
			Rect:  NewRect(0, 0, 8, 4),
			Color: Pair{Fg: ColorBlack, Bg: ColorGray},
		},
		HasShadow: true,
	})

	root.render()

	buf := backend.flushed

	// right band and bottom row carry a black background
	for y := 1; y < 4; y++ {
		for _, x := range []int{6, 7} {
			if pair := cellPair(root, buf, x, y); pair.Bg != ColorBlack {
				t.Errorf("shadow cell (%d,%d) bg = %v, want black", x, y, pair.Bg)
			}
		}
	}
	for x := 2; x < 8; x++ {
		if pair := cellPair(root, buf, x, 3); pair.Bg != ColorBlack {
			t.Errorf("shadow cell (%d,3) bg = %v, want black", x, pair.Bg)
		}
	}

	// the filled body stops short of the shadow
	if pair := cellPair(root, buf, 3, 1); pair.Bg != ColorGray {
		t.Errorf("body bg = %v, want gray", pair.Bg)
	}
}

// A window with a NONE background lets the backdrop show through.
func TestTransparencyShowsBackdrop(t *testing.T) {
	root, backend := newTestTUI(t, 10, 4)
	root.Color = Pair{Fg: ColorWhite, Bg: ColorBlue}

	parent := root.NewParent(ParentConfig{
		WindowConfig: WindowConfig{Rect: NewRect(0, 0, 10, 4)},
	})

	parent.NewText(TextConfig{String: "hi"})

	root.render()

	buf := backend.flushed

	// untouched cells still show the root fill
	if pair := cellPair(root, buf, 6, 2); pair.Bg != ColorBlue {
		t.Errorf("backdrop bg = %v, want blue", pair.Bg)
	}

	// the text paints with the inherited pair
	if cell := buf.Get(0, 0); cell.Sym != 'h' {
		t.Errorf("cell = %q, want 'h'", cell.Sym)
	}
	if pair := cellPair(root, buf, 0, 0); pair != (Pair{Fg: ColorWhite, Bg: ColorBlue}) {
		t.Errorf("text pair = %+v, want inherited white on blue", pair)
	}
}

// Earlier declared siblings paint on top of later ones.
func TestFirstDeclaredPaintsOnTop(t *testing.T) {
	root, backend := newTestTUI(t, 10, 4)

	root.NewParent(ParentConfig{
		WindowConfig: WindowConfig{
			Rect:  NewRect(0, 0, 6, 3),
			Color: Pair{Fg: ColorWhite, Bg: ColorRed},
		},
	})
	root.NewParent(ParentConfig{
		WindowConfig: WindowConfig{
			Rect:  NewRect(3, 0, 6, 3),
			Color: Pair{Fg: ColorWhite, Bg: ColorGreen},
		},
	})

	root.render()

	// the overlap shows the first window's fill
	if pair := cellPair(root, backend.flushed, 4, 1); pair.Bg != ColorRed {
		t.Errorf("overlap bg = %v, want red (first window on top)", pair.Bg)
	}
}

func TestSecretTextMasksSymbols(t *testing.T) {
	root, backend := newTestTUI(t, 10, 2)

	root.NewText(TextConfig{
		WindowConfig: WindowConfig{Rect: NewRect(0, 0, 6, 1)},
		String:       "hunter",
		IsSecret:     true,
	})

	root.render()

	for x := 0; x < 6; x++ {
		if sym := backend.flushed.Get(x, 0).Sym; sym != '*' {
			t.Errorf("cell %d = %q, want '*'", x, sym)
		}
	}
}

func TestInlineAnsiSwitchesColors(t *testing.T) {
	root, backend := newTestTUI(t, 10, 2)
	root.Color = Pair{Fg: ColorWhite, Bg: ColorBlue}

	root.NewText(TextConfig{
		WindowConfig: WindowConfig{Rect: NewRect(0, 0, 4, 1)},
		String:       "a\x1b[33mb\x1b[0mc",
	})

	root.render()

	buf := backend.flushed

	if pair := cellPair(root, buf, 0, 0); pair.Fg != ColorWhite {
		t.Errorf("cell a fg = %v, want inherited white", pair.Fg)
	}
	// escape parameters map straight to palette values: 33 - 30 = 3
	if pair := cellPair(root, buf, 1, 0); pair.Fg != Color(3) {
		t.Errorf("cell b fg = %v, want %v", pair.Fg, Color(3))
	}
	if pair := cellPair(root, buf, 2, 0); pair.Fg != ColorWhite {
		t.Errorf("cell c fg = %v, want reset to white", pair.Fg)
	}
}

func TestCursorPlacedOnlyWhenFocused(t *testing.T) {
	root, backend := newTestTUI(t, 10, 2)

	win := root.NewText(TextConfig{
		WindowConfig: WindowConfig{
			Rect:       NewRect(2, 1, 5, 1),
			IsInteract: true,
		},
		String: "ab\x1b[5mcd",
	})

	root.render()

	if backend.cursor.Active {
		t.Error("cursor placed without focus")
	}

	root.SetFocus(win)
	root.render()

	if !backend.cursor.Active {
		t.Fatal("cursor not placed for focused window")
	}
	if backend.cursor.X != 4 || backend.cursor.Y != 1 {
		t.Errorf("cursor = (%d,%d), want (4,1)", backend.cursor.X, backend.cursor.Y)
	}
}

func TestOffscreenCursorHidden(t *testing.T) {
	root, backend := newTestTUI(t, 5, 2)

	win := root.NewText(TextConfig{
		WindowConfig: WindowConfig{
			Rect:       NewRect(4, 0, 3, 1),
			IsInteract: true,
		},
		String: "ab\x1b[5m",
	})

	root.SetFocus(win)
	root.render()

	if backend.cursor.Active {
		t.Error("cursor outside the screen should be hidden")
	}
}

// Rendering twice without mutation produces identical cells.
func TestRenderIdempotent(t *testing.T) {
	root, backend := newTestTUI(t, 16, 8)
	root.Color = Pair{Fg: ColorWhite, Bg: ColorBlue}

	box := root.NewParent(ParentConfig{
		WindowConfig: WindowConfig{
			Rect:  NewRect(1, 1, 12, 6),
			Color: Pair{Fg: ColorBlack, Bg: ColorGray},
		},
		Border:     Border{IsActive: true, Depth: DepthHigh},
		HasShadow:  true,
		IsVertical: true,
	})
	box.NewText(TextConfig{String: "hello world"})

	root.render()
	first := backend.flushed

	root.render()
	second := backend.flushed

	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			if first.Get(x, y) != second.Get(x, y) {
				t.Fatalf("cell (%d,%d) changed between renders: %+v vs %+v",
					x, y, first.Get(x, y), second.Get(x, y))
			}
		}
	}
}

// Shrinking the terminal between frames leaves no stale cells.
func TestResizeLeavesNoStaleCells(t *testing.T) {
	root, backend := newTestTUI(t, 20, 10)
	root.Color = Pair{Fg: ColorWhite, Bg: ColorBlue}

	root.NewParent(ParentConfig{
		WindowConfig: WindowConfig{
			Rect:  NewRect(0, 0, 18, 8),
			Color: Pair{Fg: ColorBlack, Bg: ColorRed},
		},
	})

	root.render()

	backend.w, backend.h = 10, 5
	root.resize()
	root.render()

	buf := backend.flushed
	if w, h := buf.Size(); w != 10 || h != 5 {
		t.Fatalf("flushed size = %dx%d, want 10x5", w, h)
	}

	// every cell was repainted this frame: the window now covers the
	// whole screen, so nothing outside it shows red remnants larger
	// than the new rect
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			pair := cellPair(root, buf, x, y)
			if pair.Bg != ColorRed && pair.Bg != ColorBlue {
				t.Errorf("cell (%d,%d) bg = %v, stale paint", x, y, pair.Bg)
			}
		}
	}
}

func TestGridRenderCentersAndInherits(t *testing.T) {
	root, backend := newTestTUI(t, 10, 5)
	root.Color = Pair{Fg: ColorWhite, Bg: ColorBlue}

	grid, err := root.NewGrid(GridConfig{
		WindowConfig: WindowConfig{Rect: NewRect(0, 0, 6, 3)},
		Size:         Size{W: 2, H: 1},
	})
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}

	grid.SetSquare(0, 0, Square{Symbol: '#', Color: Pair{Fg: ColorRed}})
	grid.SetSquare(1, 0, Square{Symbol: '@'})

	root.render()

	buf := backend.flushed

	// 2x1 grid centered in 6x3: offset (2,1)
	if sym := buf.Get(2, 1).Sym; sym != '#' {
		t.Errorf("cell (2,1) = %q, want '#'", sym)
	}
	if sym := buf.Get(3, 1).Sym; sym != '@' {
		t.Errorf("cell (3,1) = %q, want '@'", sym)
	}

	if pair := cellPair(root, buf, 2, 1); pair.Fg != ColorRed || pair.Bg != ColorBlue {
		t.Errorf("square pair = %+v, want red on inherited blue", pair)
	}
	if pair := cellPair(root, buf, 3, 1); pair.Fg != ColorWhite {
		t.Errorf("square fg = %v, want inherited white", pair.Fg)
	}
}

func TestRenderHookFiresBeforePaint(t *testing.T) {
	root, backend := newTestTUI(t, 10, 2)

	win := root.NewText(TextConfig{
		WindowConfig: WindowConfig{Rect: NewRect(0, 0, 5, 1)},
		String:       "old",
	})

	win.Event.Render = func(w Window) {
		w.(*Text).SetString("new")
	}

	root.render()
	// the hook changed the string after measurement; the next frame
	// picks it up in full
	root.render()

	line := ""
	for x := 0; x < 3; x++ {
		line += string(backend.flushed.Get(x, 0).Sym)
	}
	if line != "new" {
		t.Errorf("painted %q, want %q", line, "new")
	}
}
