// Package tui is a terminal user interface toolkit: a tree of windows
// laid out by a flex-like engine, painted into cell buffers, and driven
// by a synchronous key event loop.
//
// A TUI owns top-level windows and named menus (pages of windows, one
// active at a time). Each frame runs update hooks, a bottom-up size
// pass, a top-down layout pass, and a paint pass before flushing to the
// terminal backend.
package tui

import "fmt"

// MenuEvent holds the hooks of a menu.
type MenuEvent struct {
	Key   func(menu *Menu, key int) bool
	Enter func(menu *Menu)
	Exit  func(menu *Menu)
	Init  func(menu *Menu)
}

// Menu is a named collection of top-level windows forming one page.
type Menu struct {
	name    string
	Color   Pair
	Event   MenuEvent
	windows []Window
	tui     *TUI

	paintColor Pair
}

// Name returns the menu name.
func (m *Menu) Name() string { return m.name }

// Windows returns the menu's top-level windows.
func (m *Menu) Windows() []Window { return m.windows }

// MenuConfig configures a menu.
type MenuConfig struct {
	Name  string
	Color Pair
	Event MenuEvent
}

// TUIEvent holds the root hooks.
type TUIEvent struct {
	Key  func(t *TUI, key int) bool
	Init func(t *TUI)
}

// TUIConfig configures the root. A nil Backend selects the default
// terminal backend.
type TUIConfig struct {
	Color   Pair
	Event   TUIEvent
	Backend Backend
}

// TUI is the root of the toolkit: the terminal session, the window
// tree, the menus, and the focus state.
type TUI struct {
	backend Backend
	size    Size
	windows []Window
	menus   []*Menu
	menu    *Menu  // active menu
	window  Window // focused window
	Color   Pair
	Event   TUIEvent
	cursor  Cursor
	running bool

	cache  *pairCache
	screen *Buffer
}

// New initializes the terminal backend and creates the root.
func New(config TUIConfig) (*TUI, error) {
	backend := config.Backend

	if backend == nil {
		b, err := NewTcellBackend()
		if err != nil {
			return nil, fmt.Errorf("tui: %w", err)
		}
		backend = b
	}

	if err := backend.Init(); err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}

	w, h := backend.Size()

	t := &TUI{
		backend: backend,
		size:    Size{W: w, H: h},
		Color:   config.Color,
		Event:   config.Event,
		cache:   newPairCache(backend.ColorPairs()),
		screen:  NewBuffer(w, h),
	}

	if t.Event.Init != nil {
		t.Event.Init(t)
	}

	return t, nil
}

// Size returns the terminal dimensions as of the last resize.
func (t *TUI) Size() Size { return t.size }

// Windows returns the root's top-level windows.
func (t *TUI) Windows() []Window { return t.windows }

// Menus returns every menu.
func (t *TUI) Menus() []*Menu { return t.menus }

// ActiveMenu returns the active menu, or nil.
func (t *TUI) ActiveMenu() *Menu { return t.menu }

// Focused returns the focused window, or nil.
func (t *TUI) Focused() Window { return t.window }

// NewMenu creates a menu and appends it to the root.
func (t *TUI) NewMenu(config MenuConfig) *Menu {
	menu := &Menu{
		name:  config.Name,
		Color: config.Color,
		Event: config.Event,
		tui:   t,
	}

	t.menus = append(t.menus, menu)

	if menu.Event.Init != nil {
		menu.Event.Init(menu)
	}

	return menu
}

// Delete frees every menu and window bottom-up and restores the
// terminal.
func (t *TUI) Delete() {
	for _, menu := range t.menus {
		freeWindows(menu.windows)
		menu.windows = nil
	}

	freeWindows(t.windows)

	t.menus = nil
	t.windows = nil
	t.menu = nil
	t.window = nil

	t.backend.Fini()
}

// freeWindows fires free hooks bottom-up: children before their parent.
func freeWindows(windows []Window) {
	for _, win := range windows {
		freeWindow(win)
	}
}

func freeWindow(win Window) {
	if parent, ok := win.(*Parent); ok {
		freeWindows(parent.children)
		parent.children = nil
	}

	b := win.base()

	if b.Event.Free != nil {
		b.Event.Free(win)
	}

	b.buf = nil
}

// resize re-reads the terminal size and recomputes every window rect.
func (t *TUI) resize() {
	w, h := t.backend.Size()

	t.size = Size{W: w, H: h}
	t.screen.Resize(w, h)

	t.sizeCalc()
	t.rectCalc()
}

// update fires update hooks over the whole tree bottom-up, children
// before their parents, so a parent sees its children's final content.
func (t *TUI) update() {
	updateWindows(t.windows)

	if t.menu != nil {
		updateWindows(t.menu.windows)
	}
}

func updateWindows(windows []Window) {
	for _, win := range windows {
		if parent, ok := win.(*Parent); ok {
			updateWindows(parent.children)
		}

		if update := win.base().Event.Update; update != nil {
			update(win)
		}
	}
}

// cursorSet records where the terminal cursor should be shown after
// this frame.
func (t *TUI) cursorSet(x, y int) {
	t.cursor = Cursor{X: x, Y: y, Active: true}
}

// Stop makes the main loop exit after the current dispatch.
func (t *TUI) Stop() {
	t.running = false
}

// Run renders the first frame and then loops: read a key, dispatch it,
// render. Ctrl-C always exits; resizes recompute the layout before
// dispatch.
func (t *TUI) Run() {
	t.running = true

	t.render()

	for t.running {
		key := t.backend.PollKey()

		if key == KeyCtrlC {
			t.running = false
			break
		}

		if key == KeyResize {
			t.resize()
		}

		t.handleKey(key)

		t.render()
	}
}
