package tui

// The layout pass resolves every window's final screen rect top-down,
// placing each parent's children along its primary axis according to
// the align and pos policies. Remainders from integer division always
// go to the first few children, keeping layout deterministic.

func (t *TUI) rectCalc() {
	rectCalcAll(t.windows, t.size.W, t.size.H)
	if t.menu != nil {
		rectCalcAll(t.menu.windows, t.size.W, t.size.H)
	}
}

func rectCalcAll(windows []Window, w, h int) {
	for _, win := range windows {
		windowRectCalc(win, w, h)
	}
}

// windowRectCalc resolves a top-level window against the w x h screen.
// Windows without a user rect keep the intrinsic size computed by the
// size pass, anchored at the origin.
func windowRectCalc(win Window, w, h int) {
	b := win.base()

	if b.IsHidden {
		setInvisible(win)
		return
	}

	if !b.rect.None() {
		b.layoutRect = b.rect.resolve(w, h)
	}

	// impossible geometry hides the window instead of failing
	if b.layoutRect.W <= 0 || b.layoutRect.H <= 0 {
		setInvisible(win)
		return
	}

	b.visible = true
	b.buf = updateBuffer(b.buf, b.layoutRect)

	if parent, ok := win.(*Parent); ok {
		childrenRectCalc(parent)
	}
}

// setInvisible hides a window and all of its descendants for this
// frame.
func setInvisible(win Window) {
	win.base().visible = false

	if parent, ok := win.(*Parent); ok {
		for _, child := range parent.children {
			setInvisible(child)
		}
	}
}

// contentSize is the parent's rect minus its decorations: the box the
// children are placed in.
func contentSize(parent *Parent) Size {
	size := Size{
		W: parent.layoutRect.W,
		H: parent.layoutRect.H,
	}

	if parent.HasPadding {
		size.W -= 4
		size.H -= 2
	}

	if parent.Border.IsActive {
		size.W -= 2
		size.H -= 2
	}

	if parent.HasShadow {
		size.W -= 2
		size.H -= 1
	}

	return size
}

// childX is the left edge of the content box, relative to the parent.
func childX(parent *Parent) int {
	x := 0
	if parent.Border.IsActive {
		x++
	}
	if parent.HasPadding {
		x += 2
	}
	return x
}

// childY is the top edge of the content box, relative to the parent.
func childY(parent *Parent) int {
	y := 0
	if parent.Border.IsActive {
		y++
	}
	if parent.HasPadding {
		y++
	}
	return y
}

// childW is the width of a vertically aligned child: contain and grow
// children take the full content width.
func childW(c *Base, maxW int) int {
	if c.IsContain || c.WGrow {
		return maxW
	}
	return min(maxW, c.layoutRect.W)
}

// childH is the height of a horizontally aligned child.
func childH(c *Base, maxH int) int {
	if c.IsContain || c.HGrow {
		return maxH
	}
	return min(maxH, c.layoutRect.H)
}

// childrenRectCalc places the children of a parent whose own rect is
// final. The first pass counts the children that take part in aligned
// placement and hides the ones that cannot fit; the second pass walks
// them in order, assigning rects.
func childrenRectCalc(parent *Parent) {
	maxSize := contentSize(parent)

	var alignSize Size
	alignCount := 0
	growCount := 0

	for _, child := range parent.children {
		c := child.base()

		if !c.rect.None() {
			c.visible = !c.IsHidden
			continue
		}

		if c.IsHidden {
			c.visible = false
			continue
		}

		if parent.IsVertical {
			if c.IsAtomic &&
				(alignSize.H+c.layoutRect.H > maxSize.H ||
					c.layoutRect.W > maxSize.W) {
				c.visible = false
				continue
			}

			c.visible = true
			alignCount++

			alignSize.H += c.layoutRect.H
			alignSize.W = max(alignSize.W, c.layoutRect.W)

			if c.HGrow {
				growCount++
			}
		} else {
			if c.IsAtomic &&
				(alignSize.W+c.layoutRect.W > maxSize.W ||
					c.layoutRect.H > maxSize.H) {
				c.visible = false
				continue
			}

			c.visible = true
			alignCount++

			alignSize.W += c.layoutRect.W
			alignSize.H = max(alignSize.H, c.layoutRect.H)

			if c.WGrow {
				growCount++
			}
		}
	}

	alignSize.W = min(alignSize.W, maxSize.W)
	alignSize.H = min(alignSize.H, maxSize.H)

	// rect carries the running placement cursor between children
	var rect Rect

	alignIndex := 0
	growIndex := 0

	for _, child := range parent.children {
		c := child.base()

		if !c.visible {
			setInvisible(child)
			continue
		}

		if c.rect.None() {
			childRectCalc(&rect, parent, child, maxSize, alignSize, alignCount, &alignIndex, growCount, &growIndex)
		} else {
			c.layoutRect = c.rect.resolve(parent.layoutRect.W, parent.layoutRect.H)
		}

		if c.layoutRect.W <= 0 || c.layoutRect.H <= 0 {
			setInvisible(child)
			continue
		}

		c.visible = true

		// move the child into screen coordinates
		c.layoutRect.X += parent.layoutRect.X
		c.layoutRect.Y += parent.layoutRect.Y

		c.buf = updateBuffer(c.buf, c.layoutRect)

		if childParent, ok := child.(*Parent); ok {
			childrenRectCalc(childParent)
		}
	}
}

func childRectCalc(rect *Rect, parent *Parent, child Window, maxSize, alignSize Size, alignCount int, alignIndex *int, growCount int, growIndex *int) {
	if parent.IsVertical {
		childVertRectCalc(rect, parent, child, maxSize, alignSize, alignCount, alignIndex, growCount, growIndex)
	} else {
		childHorizRectCalc(rect, parent, child, maxSize, alignSize, alignCount, alignIndex, growCount, growIndex)
	}
}

// childVertRectCalc assigns the next vertically aligned child its rect
// and advances the placement cursor past it.
func childVertRectCalc(rect *Rect, parent *Parent, child Window, maxSize, alignSize Size, alignCount int, alignIndex *int, growCount int, growIndex *int) {
	c := child.base()

	if *alignIndex == 0 {
		rect.Y = childY(parent)
	}

	rect.X = childX(parent)

	hSpace := maxSize.H - alignSize.H

	h := c.layoutRect.H

	hGap := 0

	switch {
	case parent.Align == AlignEvenly:
		// every child gets the same height
		totalH := maxSize.H

		if parent.HasGap {
			hGap++
			totalH = max(0, maxSize.H-(alignCount-1)*1)
		}

		h = totalH / alignCount

		// the first children absorb the remainder
		if totalH-h*alignCount > *alignIndex {
			h++
		}

	case c.HGrow:
		if parent.HasGap {
			hGap++
			hSpace = max(0, hSpace-(alignCount-1)*1)
		}

		grow := hSpace / growCount
		h += grow

		if hSpace-grow*growCount > *growIndex {
			h++
		}

		*growIndex++

	case growCount > 0:
		// other children grow, this one keeps its size
		if parent.HasGap {
			hGap++
		}

	case parent.Align == AlignBetween:
		if alignCount > 1 {
			gap := hSpace / (alignCount - 1)
			hGap += gap

			if hSpace-gap*(alignCount-1) > *alignIndex {
				hGap++
			}
		}

	case parent.Align == AlignAround:
		gap := hSpace / (alignCount + 1)
		rest := hSpace - gap*(alignCount+1)

		if *alignIndex == 0 && rest > 0 {
			rect.Y += rest / 2
		}

		rect.Y += gap

	default: // START, CENTER, END
		if *alignIndex == 0 {
			if parent.HasGap {
				hSpace = max(0, hSpace-(alignCount-1)*1)
			}

			rect.Y += int(parent.Align) * hSpace / 2
		}

		if parent.HasGap {
			hGap++
		}
	}

	w := childW(c, maxSize.W)

	// clip to the remaining space; an atomic child hides instead
	endY := childY(parent)

	if rect.Y+h > maxSize.H+endY {
		if c.IsAtomic {
			h = 0
		} else {
			h = maxSize.H + endY - rect.Y
		}
	}

	rect.W = w
	rect.H = h

	rect.X += int(parent.Pos) * (maxSize.W - w) / 2

	*alignIndex++

	c.layoutRect = *rect

	rect.Y += h + hGap
}

// childHorizRectCalc mirrors childVertRectCalc for horizontal parents,
// with two-column gap units.
func childHorizRectCalc(rect *Rect, parent *Parent, child Window, maxSize, alignSize Size, alignCount int, alignIndex *int, growCount int, growIndex *int) {
	c := child.base()

	if *alignIndex == 0 {
		rect.X = childX(parent)
	}

	rect.Y = childY(parent)

	wSpace := maxSize.W - alignSize.W

	w := c.layoutRect.W

	wGap := 0

	switch {
	case parent.Align == AlignEvenly:
		totalW := maxSize.W

		if parent.HasGap {
			wGap += 2
			totalW = max(0, maxSize.W-(alignCount-1)*2)
		}

		w = totalW / alignCount

		if totalW-w*alignCount > *alignIndex {
			w++
		}

	case c.WGrow:
		if parent.HasGap {
			wGap += 2
			wSpace = max(0, wSpace-(alignCount-1)*2)
		}

		grow := wSpace / growCount
		w += grow

		if wSpace-grow*growCount > *growIndex {
			w++
		}

		*growIndex++

	case growCount > 0:
		if parent.HasGap {
			wGap += 2
		}

	case parent.Align == AlignBetween:
		if alignCount > 1 {
			gap := wSpace / (alignCount - 1)
			wGap += gap

			if wSpace-gap*(alignCount-1) > *alignIndex {
				wGap++
			}
		}

	case parent.Align == AlignAround:
		gap := wSpace / (alignCount + 1)
		rest := wSpace - gap*(alignCount+1)

		if *alignIndex == 0 && rest > 0 {
			rect.X += rest / 2
		}

		rect.X += gap

	default: // START, CENTER, END
		if *alignIndex == 0 {
			if parent.HasGap {
				wSpace = max(0, wSpace-(alignCount-1)*2)
			}

			rect.X += int(parent.Align) * wSpace / 2
		}

		if parent.HasGap {
			wGap += 2
		}
	}

	h := childH(c, maxSize.H)

	endX := childX(parent)

	if rect.X+w > maxSize.W+endX {
		if c.IsAtomic {
			w = 0
		} else {
			w = maxSize.W + endX - rect.X
		}
	}

	rect.W = w
	rect.H = h

	rect.Y += int(parent.Pos) * (maxSize.H - h) / 2

	*alignIndex++

	c.layoutRect = *rect

	rect.X += w + wGap
}
