package tui

// The size pass computes each window's intrinsic size bottom-up and
// stores it in the layout rect. The layout pass then overwrites the
// rects top-down with final screen placements.

func (t *TUI) sizeCalc() {
	sizeCalcAll(t.windows)
	if t.menu != nil {
		sizeCalcAll(t.menu.windows)
	}
}

func sizeCalcAll(windows []Window) {
	for _, win := range windows {
		sizeCalc(win)
	}
}

func sizeCalc(win Window) {
	switch win := win.(type) {
	case *Parent:
		parentSizeCalc(win)
	case *Text:
		textSizeCalc(win)
	case *Grid:
		gridSizeCalc(win)
	}
}

// textSizeCalc measures the text window. The stripped text is refreshed
// here so mid-frame string changes are picked up. An empty text window
// without a user rect is 1x1, big enough for the cursor.
func textSizeCalc(win *Text) {
	win.layoutRect = Rect{W: 1, H: 1}

	win.text = stripAnsi(win.str)

	if !win.rect.None() {
		win.layoutRect = Rect{
			W: max(0, win.rect.W),
			H: max(0, win.rect.H),
		}
	} else if len(win.text) > 0 {
		h := textHeight(win.text, win.tui.size.W)
		w := textWidth(win.text, h)

		win.layoutRect = Rect{W: w, H: h}
	}
}

func gridSizeCalc(win *Grid) {
	if win.rect.None() {
		win.layoutRect = Rect{
			W: win.size.W,
			H: win.size.H,
		}
	} else {
		win.layoutRect = Rect{
			W: max(0, win.rect.W),
			H: max(0, win.rect.H),
		}
	}
}

// parentSizeCalc sizes a parent from its children. Two candidates are
// computed: the componentwise maximum over children, and the aligned
// sum along the primary axis plus decorations. The intrinsic size is
// the larger of the two on each axis.
func parentSizeCalc(parent *Parent) {
	for _, child := range parent.children {
		sizeCalc(child)
	}

	parent.layoutRect = Rect{}

	if !parent.rect.None() {
		parent.layoutRect = Rect{
			W: max(0, parent.rect.W),
			H: max(0, parent.rect.H),
		}
		return
	}

	if len(parent.children) == 0 {
		return
	}

	var alignSize, maxSize Size
	alignCount := 0

	for _, child := range parent.children {
		c := child.base()

		if !c.IsContain {
			maxSize.W = max(maxSize.W, c.layoutRect.W)
			maxSize.H = max(maxSize.H, c.layoutRect.H)
		}

		if !c.rect.None() {
			maxSize.W = max(maxSize.W, c.rect.X+c.rect.W)
			maxSize.H = max(maxSize.H, c.rect.Y+c.rect.H)
		} else if parent.IsVertical {
			alignCount++

			alignSize.H += c.layoutRect.H

			if !c.IsContain {
				alignSize.W = max(alignSize.W, c.layoutRect.W)
			}
		} else {
			alignCount++

			alignSize.W += c.layoutRect.W

			if !c.IsContain {
				alignSize.H = max(alignSize.H, c.layoutRect.H)
			}
		}
	}

	if parent.HasGap && alignCount > 0 {
		if parent.IsVertical {
			alignSize.H += (alignCount - 1) * 1
		} else {
			alignSize.W += (alignCount - 1) * 2
		}
	}

	if parent.HasPadding {
		alignSize.W += 4
		alignSize.H += 2
	}

	if parent.Border.IsActive {
		alignSize.W += 2
		alignSize.H += 2
	}

	if parent.HasShadow {
		alignSize.W += 2
		alignSize.H += 1
	}

	parent.layoutRect = Rect{
		W: max(maxSize.W, alignSize.W),
		H: max(maxSize.H, alignSize.H),
	}
}
