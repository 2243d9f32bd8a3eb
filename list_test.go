package tui

import "testing"

func newTestList(t *testing.T) (*TUI, *List, []*Text) {
	t.Helper()

	root, _ := newTestTUI(t, 20, 10)

	list := NewList(root, true)

	items := []*Text{
		root.NewText(TextConfig{WindowConfig: WindowConfig{Name: "one", IsInteract: true}, String: "1"}),
		root.NewText(TextConfig{WindowConfig: WindowConfig{Name: "two", IsInteract: true}, String: "2"}),
		root.NewText(TextConfig{WindowConfig: WindowConfig{Name: "three", IsInteract: true}, String: "3"}),
	}

	for _, item := range items {
		list.Add(item)
	}

	return root, list, items
}

func TestListScrolling(t *testing.T) {
	_, list, items := newTestList(t)

	if !list.HandleKey(KeyDown) || list.Item() != Window(items[1]) {
		t.Fatal("down did not advance")
	}
	if !list.HandleKey(KeyTab) || list.Item() != Window(items[2]) {
		t.Fatal("tab did not advance")
	}
	if list.HandleKey(KeyDown) {
		t.Error("down at the end should not be consumed")
	}
	if !list.HandleKey(KeyUp) || list.Item() != Window(items[1]) {
		t.Fatal("up did not step back")
	}
}

func TestListHorizontalKeys(t *testing.T) {
	root, _ := newTestTUI(t, 20, 10)

	list := NewList(root, false)
	a := root.NewText(TextConfig{String: "a"})
	b := root.NewText(TextConfig{String: "b"})
	list.Add(a)
	list.Add(b)

	if list.HandleKey(KeyDown) {
		t.Error("vertical key on a horizontal list should not be consumed")
	}
	if !list.HandleKey(KeyRight) || list.Item() != Window(b) {
		t.Fatal("right did not advance")
	}
	if !list.HandleKey(KeyLeft) || list.Item() != Window(a) {
		t.Fatal("left did not step back")
	}
}

func TestListSkipsInvisibleItems(t *testing.T) {
	_, list, items := newTestList(t)

	items[1].visible = false

	if !list.HandleKey(KeyDown) || list.Item() != Window(items[2]) {
		t.Error("scrolling should skip the invisible item")
	}
}

func TestListRefreshMovesOffInvisible(t *testing.T) {
	_, list, items := newTestList(t)

	if list.Refresh() {
		t.Error("refresh with a visible selection should do nothing")
	}

	items[0].visible = false

	if !list.Refresh() {
		t.Fatal("refresh did not move the selection")
	}
	if list.Item() != Window(items[1]) {
		t.Errorf("selection = %v, want the next visible item", list.Index())
	}
}

func TestListRefreshFallsBackward(t *testing.T) {
	_, list, items := newTestList(t)

	list.HandleKey(KeyDown)
	list.HandleKey(KeyDown)

	items[2].visible = false

	if !list.Refresh() {
		t.Fatal("refresh did not move the selection")
	}
	if list.Item() != Window(items[1]) {
		t.Errorf("selection index = %d, want 1", list.Index())
	}
}
