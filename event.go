package tui

// handleKey bubbles a keypress up the focus chain: the focused window,
// each of its ancestors, the active menu, then the root handler. The
// first handler that reports the key handled stops the walk.
func (t *TUI) handleKey(key int) bool {
	win := t.window

	for win != nil {
		b := win.base()

		if b.Event.Key != nil && b.Event.Key(win, key) {
			return true
		}

		if b.parent != nil {
			win = b.parent
		} else {
			win = nil
		}
	}

	if t.menu != nil && t.menu.Event.Key != nil && t.menu.Event.Key(t.menu, key) {
		return true
	}

	if t.Event.Key != nil && t.Event.Key(t, key) {
		return true
	}

	return false
}

// SetFocus makes win the focused window if it is visible. The old
// window's exit hook fires before the new window's enter hook, and the
// new window's menu becomes the active menu.
func (t *TUI) SetFocus(win Window) {
	if win == nil || t.window == win || !win.base().visible {
		return
	}

	last := t.window

	t.window = win

	if last != nil {
		if exit := last.base().Event.Exit; exit != nil {
			exit(last)
		}
	}

	if enter := win.base().Event.Enter; enter != nil {
		enter(win)
	}

	if menu := win.base().menu; menu != nil {
		t.menu = menu
	}
}

// SetMenu makes menu the active menu, firing menu exit and enter hooks.
// If the focused window belongs to another menu, focus moves to the
// first window of the new menu.
func (t *TUI) SetMenu(menu *Menu) {
	if t.menu == menu {
		return
	}

	if t.menu != nil && t.menu.Event.Exit != nil {
		t.menu.Event.Exit(t.menu)
	}

	t.menu = menu

	if t.window == nil ||
		(t.window.base().menu != nil && t.window.base().menu != menu) {
		if len(menu.windows) > 0 {
			t.SetFocus(menu.windows[0])
		}
	}

	if menu.Event.Enter != nil {
		menu.Event.Enter(menu)
	}
}

// windowIndex returns the position of win in windows, or -1.
func windowIndex(windows []Window, win Window) int {
	for i, w := range windows {
		if w == win {
			return i
		}
	}
	return -1
}

// tabForwardIn focuses the first visible interactable window in the
// slice.
func (t *TUI) tabForwardIn(windows []Window) bool {
	for _, win := range windows {
		b := win.base()

		if b.visible && b.IsInteract {
			t.SetFocus(win)
			return true
		}
	}
	return false
}

// tabBackwardIn focuses the last visible interactable window in the
// slice.
func (t *TUI) tabBackwardIn(windows []Window) bool {
	for i := len(windows); i > 0; i-- {
		win := windows[i-1]
		b := win.base()

		if b.visible && b.IsInteract {
			t.SetFocus(win)
			return true
		}
	}
	return false
}

// TabForward moves focus to the next visible interactable window:
// right of the focus among its siblings, then up through ancestors,
// then the remaining top-level windows, wrapping to the start.
func (t *TUI) TabForward() bool {
	win := t.window

	if win == nil {
		return false
	}

	var parent *Parent

	if p, ok := win.(*Parent); ok {
		// a focused parent tabs into its own first child
		parent = p
		win = nil
	} else {
		parent = win.base().parent
	}

	for parent != nil {
		index := windowIndex(parent.children, win) + 1

		if index < len(parent.children) && t.tabForwardIn(parent.children[index:]) {
			return true
		}

		win = parent
		parent = parent.base().parent
	}

	if t.menu != nil {
		index := windowIndex(t.menu.windows, win)
		if index == -1 {
			return false
		}

		if index+1 < len(t.menu.windows) && t.tabForwardIn(t.menu.windows[index+1:]) {
			return true
		}
	} else {
		index := windowIndex(t.windows, win)
		if index == -1 {
			return false
		}

		if index+1 < len(t.windows) && t.tabForwardIn(t.windows[index+1:]) {
			return true
		}
	}

	if t.tabForwardIn(t.windows) {
		return true
	}

	if t.menu != nil && t.tabForwardIn(t.menu.windows) {
		return true
	}

	return false
}

// TabBackward moves focus to the previous visible interactable window.
// The wrap pass scans the top-level windows from the end without
// descending into their subtrees, so backward navigation does not loop
// through the deepest last child.
func (t *TUI) TabBackward() bool {
	win := t.window

	if win == nil {
		return false
	}

	parent := win.base().parent

	for parent != nil {
		index := windowIndex(parent.children, win)
		if index == -1 {
			return false
		}

		if t.tabBackwardIn(parent.children[:index]) {
			return true
		}

		win = parent
		parent = parent.base().parent
	}

	if t.menu != nil {
		index := windowIndex(t.menu.windows, win)
		if index == -1 {
			return false
		}

		if t.tabBackwardIn(t.menu.windows[:index]) {
			return true
		}
	} else {
		index := windowIndex(t.windows, win)
		if index == -1 {
			return false
		}

		if t.tabBackwardIn(t.windows[:index]) {
			return true
		}
	}

	if t.tabBackwardIn(t.windows) {
		return true
	}

	if t.menu != nil && t.tabBackwardIn(t.menu.windows) {
		return true
	}

	return false
}

// TabEvent handles Tab and Shift-Tab, returning whether focus moved.
// Wire it into a key hook to enable tab navigation.
func (t *TUI) TabEvent(key int) bool {
	switch key {
	case KeyTab:
		return t.TabForward()
	case KeyShiftTab:
		return t.TabBackward()
	}
	return false
}
