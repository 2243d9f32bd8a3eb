package tui

import "strings"

// Path lookup resolves a window by a space-separated sequence of name
// tokens. A "." token steps to the parent container; other tokens match
// a window by exact name.

// Search resolves a name path among the root's top-level windows.
func (t *TUI) Search(path string) Window {
	if first, _, _ := strings.Cut(path, " "); first == "." {
		return nil
	}
	return searchIn(t.windows, path)
}

// Search resolves a name path among the menu's top-level windows.
func (m *Menu) Search(path string) Window {
	if first, _, _ := strings.Cut(path, " "); first == "." {
		return nil
	}
	return searchIn(m.windows, path)
}

func searchIn(windows []Window, path string) Window {
	name, rest, hasRest := strings.Cut(path, " ")

	for _, win := range windows {
		if win.base().name != "" && win.base().name == name {
			if !hasRest {
				return win
			}
			return WindowSearch(win, rest)
		}
	}

	return nil
}

// WindowSearch resolves a name path starting from base. An empty path
// returns base itself.
func WindowSearch(base Window, path string) Window {
	if base == nil || path == "" {
		return base
	}

	name, rest, _ := strings.Cut(path, " ")

	if name == "." {
		b := base.base()

		if rest == "" {
			if b.parent == nil {
				return nil
			}
			return b.parent
		}

		switch {
		case b.parent != nil:
			return WindowSearch(b.parent, rest)
		case b.menu != nil:
			return b.menu.Search(rest)
		default:
			return b.tui.Search(rest)
		}
	}

	if parent, ok := base.(*Parent); ok {
		return searchIn(parent.children, path)
	}

	return nil
}

// TextSearch resolves a name path to a text window, or nil if the path
// does not end at one.
func TextSearch(base Window, path string) *Text {
	if win, ok := WindowSearch(base, path).(*Text); ok {
		return win
	}
	return nil
}

// ParentSearch resolves a name path to a parent window.
func ParentSearch(base Window, path string) *Parent {
	if win, ok := WindowSearch(base, path).(*Parent); ok {
		return win
	}
	return nil
}

// GridSearch resolves a name path to a grid window.
func GridSearch(base Window, path string) *Grid {
	if win, ok := WindowSearch(base, path).(*Grid); ok {
		return win
	}
	return nil
}

// SearchFocus resolves a name path within the menu and focuses the
// result, reporting whether a window was found.
func (m *Menu) SearchFocus(path string) bool {
	win := m.Search(path)

	if win == nil {
		return false
	}

	m.tui.SetFocus(win)

	return true
}
