package tui

// textHeight returns the number of lines text occupies when
// word-wrapped to width w. A space is a wrap point and a newline forces
// a line break. Returns -1 when a word is longer than w and cannot be
// wrapped, and 0 for empty text or zero width.
func textHeight(text string, w int) int {
	length := len(text)
	if length == 0 || w == 0 {
		return 0
	}

	h := 1
	x := 0
	spaceIndex := 0
	lastSpaceIndex := 0

	for i := 0; i < length; i++ {
		letter := text[i]

		if letter == ' ' {
			spaceIndex = i
		}

		if letter == '\n' {
			x = 0
			h++
		} else if x >= w {
			x = 0
			h++

			// Current word cannot be wrapped
			if spaceIndex == lastSpaceIndex {
				return -1
			}

			i = spaceIndex
			lastSpaceIndex = spaceIndex
		} else {
			x++
		}
	}

	return h
}

// textWidth returns the smallest width at which text wraps into at most
// h lines. Height is monotonically non-increasing in width, so a binary
// search over [1, len(text)] finds the minimum. Returns 0 when no width
// fits, e.g. when forced line breaks alone need more than h lines.
func textWidth(text string, h int) int {
	left := 1
	right := len(text)

	minW := 0

	for left <= right {
		mid := (left + right) / 2

		currH := textHeight(text, mid)

		if currH == -1 || currH > h {
			left = mid + 1
		} else {
			minW = mid
			right = mid - 1
		}
	}

	return minW
}

// lineWidths returns the width of each wrapped line of text, consistent
// with the width textWidth picks for height h.
func lineWidths(text string, h int) []int {
	w := textWidth(text, h)

	ws := make([]int, h)

	y := 0
	x := 0
	spaceIndex := 0

	for i := 0; i < len(text) && y < h; i++ {
		letter := text[i]

		if letter == ' ' {
			spaceIndex = i
		}

		if letter == '\n' {
			ws[y] = x
			y++
			x = 0
		} else if x >= w {
			// full line width minus the last partial word
			ws[y] = x - (i - spaceIndex)
			y++
			x = 0
			i = spaceIndex
		} else {
			x++
		}

		if i+1 == len(text) && y < h {
			ws[y] = x
		}
	}

	return ws
}

// stripAnsi returns s with every ESC..m escape sequence removed. The
// result is what feeds text measurement, while the original string
// drives rendering.
func stripAnsi(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}
