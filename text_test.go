package tui

import "testing"

func TestTextHeightSingleLine(t *testing.T) {
	if h := textHeight("hello", 10); h != 1 {
		t.Errorf("height = %d, want 1", h)
	}
}

func TestTextHeightEmpty(t *testing.T) {
	if h := textHeight("", 10); h != 0 {
		t.Errorf("height = %d, want 0", h)
	}
	if h := textHeight("x", 0); h != 0 {
		t.Errorf("height = %d, want 0 for zero width", h)
	}
}

func TestTextHeightNewlines(t *testing.T) {
	if h := textHeight("a\nb\nc", 10); h != 3 {
		t.Errorf("height = %d, want 3", h)
	}
}

func TestTextHeightWordWrap(t *testing.T) {
	// "AB CD" at width 3 wraps after the space
	if h := textHeight("AB CD", 3); h != 2 {
		t.Errorf("height = %d, want 2", h)
	}
}

func TestTextHeightUnwrappableWord(t *testing.T) {
	if h := textHeight("HELLO", 3); h != -1 {
		t.Errorf("height = %d, want -1 for unwrappable word", h)
	}
}

func TestTextWidthMinimal(t *testing.T) {
	// smallest width fitting "AB CD" on two lines is 2: each word
	// takes a line of its own; at 1 the words cannot wrap at all
	if w := textWidth("AB CD", 2); w != 2 {
		t.Errorf("width = %d, want 2", w)
	}

	if w := textWidth("hello", 1); w != 5 {
		t.Errorf("width = %d, want 5", w)
	}
}

// Wrapping at the width picked for a height never exceeds that height.
func TestTextWidthHeightRoundTrip(t *testing.T) {
	texts := []string{
		"a",
		"hello world",
		"one two three four five",
		"line\nbreaks\nhere",
		"a b c d e f g h",
	}

	for _, text := range texts {
		for h := 1; h <= 4; h++ {
			w := textWidth(text, h)
			got := textHeight(text, w)

			if got > 0 && got > h {
				t.Errorf("textHeight(%q, textWidth(%q, %d)=%d) = %d, want <= %d",
					text, text, h, w, got, h)
			}
		}
	}
}

func TestLineWidths(t *testing.T) {
	ws := lineWidths("AB CD", 2)

	if len(ws) != 2 || ws[0] != 2 || ws[1] != 2 {
		t.Errorf("line widths = %v, want [2 2]", ws)
	}
}

func TestLineWidthsNewlines(t *testing.T) {
	ws := lineWidths("ab\nc", 2)

	if len(ws) != 2 || ws[0] != 2 || ws[1] != 1 {
		t.Errorf("line widths = %v, want [2 1]", ws)
	}
}

func TestStripAnsi(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"\x1b[31mred\x1b[0m", "red"},
		{"a\x1b[5mb", "ab"},
		{"\x1b[44m", ""},
	}

	for _, c := range cases {
		if got := stripAnsi(c.in); got != c.want {
			t.Errorf("stripAnsi(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

// Stripping then measuring matches the painted footprint: each wrapped
// line paints exactly its measured width.
func TestStripMeasureMatchesRender(t *testing.T) {
	root, _ := newTestTUI(t, 20, 10)

	win := root.NewText(TextConfig{
		WindowConfig: WindowConfig{Rect: NewRect(0, 0, 6, 3)},
		String:       "\x1b[32mone two\x1b[0m six",
	})

	root.render()

	text := stripAnsi(win.String())
	h := textHeight(text, 6)
	ws := lineWidths(text, h)

	for y := 0; y < h; y++ {
		painted := 0
		for x := 0; x < 6; x++ {
			if win.buf.Get(x, y).Sym > ' ' {
				painted++
			}
		}

		if painted != ws[y] {
			t.Errorf("line %d painted %d cells, measured width %d", y, painted, ws[y])
		}
	}
}
