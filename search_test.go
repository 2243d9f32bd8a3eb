package tui

import "testing"

func searchTree(t *testing.T) (*TUI, *Parent, *Parent, *Text) {
	t.Helper()

	root, _ := newTestTUI(t, 20, 10)

	outer := root.NewParent(ParentConfig{
		WindowConfig: WindowConfig{Name: "outer"},
	})
	inner := outer.NewParent(ParentConfig{
		WindowConfig: WindowConfig{Name: "inner"},
	})
	leaf := inner.NewText(TextConfig{
		WindowConfig: WindowConfig{Name: "leaf"},
		String:       "x",
	})

	return root, outer, inner, leaf
}

func TestSearchByPath(t *testing.T) {
	root, outer, inner, leaf := searchTree(t)

	if got := root.Search("outer"); got != Window(outer) {
		t.Error("single token lookup failed")
	}
	if got := root.Search("outer inner"); got != Window(inner) {
		t.Error("two token lookup failed")
	}
	if got := root.Search("outer inner leaf"); got != Window(leaf) {
		t.Error("three token lookup failed")
	}
}

func TestSearchMisses(t *testing.T) {
	root, _, _, _ := searchTree(t)

	if root.Search("nope") != nil {
		t.Error("unknown name should resolve to nil")
	}
	if root.Search("outer nope") != nil {
		t.Error("unknown nested name should resolve to nil")
	}
	if root.Search("outer inner leaf deeper") != nil {
		t.Error("descending through a text window should fail")
	}
	if root.Search(". outer") != nil {
		t.Error("leading parent step from the root should fail")
	}
}

func TestSearchParentStep(t *testing.T) {
	_, outer, inner, leaf := searchTree(t)

	if got := WindowSearch(leaf, "."); got != Window(inner) {
		t.Error("parent step failed")
	}
	if got := WindowSearch(leaf, ". ."); got != Window(outer) {
		t.Error("double parent step failed")
	}
	if got := WindowSearch(inner, "leaf"); got != Window(leaf) {
		t.Error("relative lookup failed")
	}
	if WindowSearch(outer, ".") != nil {
		t.Error("parent step from a top-level window should be nil")
	}
}

// Stepping above a top-level window continues the search at its
// container: the menu, or the root.
func TestSearchParentStepThroughContainer(t *testing.T) {
	root, _ := newTestTUI(t, 20, 10)

	menu := root.NewMenu(MenuConfig{Name: "main"})

	left := menu.NewParent(ParentConfig{WindowConfig: WindowConfig{Name: "left"}})
	a := left.NewText(TextConfig{WindowConfig: WindowConfig{Name: "a"}, String: "a"})
	right := menu.NewParent(ParentConfig{WindowConfig: WindowConfig{Name: "right"}})

	if got := WindowSearch(a, ". . right"); got != Window(right) {
		t.Error("sibling lookup through the menu failed")
	}
}

func TestTypedSearches(t *testing.T) {
	root, outer, inner, leaf := searchTree(t)

	if got := TextSearch(outer, "inner leaf"); got != leaf {
		t.Error("text search failed")
	}
	if TextSearch(root.windows[0], "inner") != nil {
		t.Error("text search on a parent window should be nil")
	}
	if got := ParentSearch(outer, "inner"); got != inner {
		t.Error("parent search failed")
	}
	if GridSearch(outer, "inner leaf") != nil {
		t.Error("grid search on a text window should be nil")
	}
}

func TestMenuSearchFocus(t *testing.T) {
	root, _ := newTestTUI(t, 20, 10)

	menu := root.NewMenu(MenuConfig{Name: "main"})
	box := menu.NewParent(ParentConfig{WindowConfig: WindowConfig{Name: "box"}})
	field := box.NewText(TextConfig{
		WindowConfig: WindowConfig{Name: "field", IsInteract: true},
		String:       "x",
	})

	if !menu.SearchFocus("box field") {
		t.Fatal("search focus missed")
	}
	if root.Focused() != Window(field) {
		t.Error("focus did not move to the found window")
	}
	if menu.SearchFocus("box nope") {
		t.Error("search focus on a missing path should fail")
	}
}
