package tui

// List tracks a selection among an ordered set of windows and moves it
// with the arrow keys matching the list's orientation, or Tab and
// Shift-Tab. Invisible items are skipped.
type List struct {
	items      []Window
	index      int
	IsVertical bool
	tui        *TUI
}

// NewList creates an empty list.
func NewList(t *TUI, isVertical bool) *List {
	return &List{
		IsVertical: isVertical,
		tui:        t,
	}
}

// Add appends a window to the list.
func (l *List) Add(win Window) {
	l.items = append(l.items, win)
}

// Items returns the listed windows.
func (l *List) Items() []Window {
	return l.items
}

// Index returns the current selection index.
func (l *List) Index() int {
	return l.index
}

// Item returns the currently selected window, or nil for an empty
// list.
func (l *List) Item() Window {
	if l.index < 0 || l.index >= len(l.items) {
		return nil
	}
	return l.items[l.index]
}

// Refresh moves the selection to a nearby visible item if the current
// one went invisible, preferring later items. Returns whether the
// selection changed.
func (l *List) Refresh() bool {
	item := l.Item()

	if item == nil || item.base().visible {
		return false
	}

	for index := l.index + 1; index < len(l.items); index++ {
		if l.items[index].base().visible {
			l.index = index
			return true
		}
	}

	for index := l.index - 1; index >= 0; index-- {
		if l.items[index].base().visible {
			l.index = index
			return true
		}
	}

	return false
}

// scrollForward selects the next visible item.
func (l *List) scrollForward() bool {
	for index := l.index + 1; index < len(l.items); index++ {
		if l.items[index].base().visible {
			l.index = index
			return true
		}
	}
	return false
}

// scrollBackward selects the previous visible item.
func (l *List) scrollBackward() bool {
	for index := l.index - 1; index >= 0; index-- {
		if l.items[index].base().visible {
			l.index = index
			return true
		}
	}
	return false
}

// HandleKey moves the selection with one keypress, returning whether
// the key was consumed.
func (l *List) HandleKey(key int) bool {
	if l.IsVertical {
		switch key {
		case KeyDown, KeyTab:
			return l.scrollForward()
		case KeyUp, KeyShiftTab:
			return l.scrollBackward()
		}
	} else {
		switch key {
		case KeyRight, KeyTab:
			return l.scrollForward()
		case KeyLeft, KeyShiftTab:
			return l.scrollBackward()
		}
	}
	return false
}
