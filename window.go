package tui

import "errors"

// Pos selects where content sits across the free axis.
type Pos uint8

const (
	PosStart Pos = iota
	PosCenter
	PosEnd
)

// Align selects how a parent distributes children along its primary
// axis.
type Align uint8

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
	AlignBetween
	AlignAround
	AlignEvenly
)

// Depth gives a border a sunken (low) or raised (high) look.
type Depth uint8

const (
	DepthNone Depth = iota
	DepthLow
	DepthHigh
)

// Border configures a parent window's frame.
type Border struct {
	IsActive bool
	Depth    Depth
	Color    Pair
}

// Event holds the hooks a window can react through. Any hook may be
// nil. Key returns whether the keypress was handled; an unhandled key
// continues up the focus chain.
type Event struct {
	Key    func(win Window, key int) bool
	Enter  func(win Window)
	Exit   func(win Window)
	Update func(win Window)
	Render func(win Window)
	Free   func(win Window)
	Init   func(win Window)
}

// Window is a node in the widget tree: a *Parent, *Text or *Grid. The
// variant set is closed; use a type switch or the typed search helpers
// to recover the concrete window.
type Window interface {
	base() *Base
}

// Base is the header shared by every window variant.
//
// An atomic window either contains all of its content or is invisible;
// a contain window does not contribute to its parent's intrinsic size.
type Base struct {
	name       string
	rect       Rect
	WGrow      bool
	HGrow      bool
	IsAtomic   bool
	IsHidden   bool
	IsInteract bool
	IsContain  bool
	Color      Pair
	Event      Event
	Data       any

	parent *Parent
	menu   *Menu
	tui    *TUI

	// per-frame scratch, written by the size, layout and render passes
	buf        *Buffer
	layoutRect Rect
	paintColor Pair
	visible    bool
}

func (b *Base) base() *Base { return b }

// Name returns the window's name, used by path lookup.
func (b *Base) Name() string { return b.name }

// Rect returns the user-supplied rect, which may be the none rect.
func (b *Base) Rect() Rect { return b.rect }

// SetRect replaces the user-supplied rect. The change takes effect at
// the next layout.
func (b *Base) SetRect(r Rect) { b.rect = r }

// LayoutRect returns the rect resolved by the last layout pass, in
// screen coordinates.
func (b *Base) LayoutRect() Rect { return b.layoutRect }

// PaintColor returns the inherited color resolved by the last render.
func (b *Base) PaintColor() Pair { return b.paintColor }

// Visible reports whether the window survived the last layout pass.
func (b *Base) Visible() bool { return b.visible }

// Parent returns the containing parent window, or nil for a top-level
// window.
func (b *Base) Parent() *Parent { return b.parent }

// Menu returns the menu the window belongs to, or nil.
func (b *Base) Menu() *Menu { return b.menu }

// TUI returns the root the window belongs to.
func (b *Base) TUI() *TUI { return b.tui }

// WindowConfig holds the options common to every window variant.
type WindowConfig struct {
	Name       string
	Event      Event
	Rect       Rect
	WGrow      bool
	HGrow      bool
	Color      Pair
	IsHidden   bool
	IsAtomic   bool
	IsInteract bool
	IsContain  bool
	Data       any
}

func newBase(t *TUI, config WindowConfig) Base {
	return Base{
		name:       config.Name,
		rect:       config.Rect,
		WGrow:      config.WGrow,
		HGrow:      config.HGrow,
		IsAtomic:   config.IsAtomic,
		IsHidden:   config.IsHidden,
		IsInteract: config.IsInteract,
		IsContain:  config.IsContain,
		Color:      config.Color,
		Event:      config.Event,
		Data:       config.Data,
		tui:        t,
		visible:    !config.IsHidden,
	}
}

// ParentConfig configures a parent window.
type ParentConfig struct {
	WindowConfig
	Border     Border
	HasShadow  bool
	HasPadding bool
	HasGap     bool
	Pos        Pos
	Align      Align
	IsVertical bool
}

// Parent is a window that lays out child windows along one axis.
type Parent struct {
	Base
	children   []Window
	IsVertical bool
	Border     Border
	HasShadow  bool
	HasPadding bool
	HasGap     bool
	Pos        Pos
	Align      Align
}

// Children returns the child windows in insertion order.
func (p *Parent) Children() []Window { return p.children }

// TextConfig configures a text window.
type TextConfig struct {
	WindowConfig
	String   string
	IsSecret bool
	Pos      Pos
	Align    Align
}

// Text is a window displaying a word-wrapped string. The string may
// carry inline ESC[..m escape sequences; see the render pass.
type Text struct {
	Base
	str      string // source string, may contain escapes
	text     string // source with escapes stripped, feeds measurement
	IsSecret bool
	Pos      Pos
	Align    Align
}

// String returns the source string.
func (w *Text) String() string { return w.str }

// SetString replaces the source string. The change takes effect at the
// next frame.
func (w *Text) SetString(s string) { w.str = s }

// GridConfig configures a grid window.
type GridConfig struct {
	WindowConfig
	Size Size
}

// Square is one cell of a grid window. A zero Symbol paints as a space
// and NONE color components inherit from the grid window.
type Square struct {
	Color  Pair
	Symbol rune
}

// Grid is a window of individually colored squares.
type Grid struct {
	Base
	size     Size // configured size, feeds the size pass
	gridSize Size // resolved size of the allocated squares
	squares  []Square
}

// GridSize returns the resolved size of the square storage.
func (g *Grid) GridSize() Size { return g.gridSize }

var errGridSize = errors.New("grid size must be positive")

// Resize reallocates the squares to the given size, clearing them.
func (g *Grid) Resize(size Size) error {
	if size.W <= 0 || size.H <= 0 {
		return errGridSize
	}
	g.squares = make([]Square, size.W*size.H)
	g.gridSize = size
	return nil
}

// Square returns the square at x, y, or nil if out of bounds.
func (g *Grid) Square(x, y int) *Square {
	if x >= 0 && x < g.gridSize.W && y >= 0 && y < g.gridSize.H {
		return &g.squares[y*g.gridSize.W+x]
	}
	return nil
}

// SetSquare overwrites the square at x, y. Out-of-bounds writes are
// dropped.
func (g *Grid) SetSquare(x, y int, square Square) {
	if old := g.Square(x, y); old != nil {
		*old = square
	}
}

// ModifySquare updates only the specified parts of the square at x, y:
// non-NONE color components and a non-zero symbol.
func (g *Grid) ModifySquare(x, y int, square Square) {
	old := g.Square(x, y)
	if old == nil {
		return
	}
	if square.Color.Fg != ColorNone {
		old.Color.Fg = square.Color.Fg
	}
	if square.Color.Bg != ColorNone {
		old.Color.Bg = square.Color.Bg
	}
	if square.Symbol != 0 {
		old.Symbol = square.Symbol
	}
}

func newParent(t *TUI, config ParentConfig) *Parent {
	return &Parent{
		Base:       newBase(t, config.WindowConfig),
		IsVertical: config.IsVertical,
		Border:     config.Border,
		HasShadow:  config.HasShadow,
		HasPadding: config.HasPadding,
		HasGap:     config.HasGap,
		Pos:        config.Pos,
		Align:      config.Align,
	}
}

func newText(t *TUI, config TextConfig) *Text {
	return &Text{
		Base:     newBase(t, config.WindowConfig),
		str:      config.String,
		IsSecret: config.IsSecret,
		Pos:      config.Pos,
		Align:    config.Align,
	}
}

func newGrid(t *TUI, config GridConfig) (*Grid, error) {
	grid := &Grid{
		Base: newBase(t, config.WindowConfig),
		size: config.Size,
	}
	if err := grid.Resize(config.Size); err != nil {
		return nil, err
	}
	return grid, nil
}

func fireInit(win Window) {
	if init := win.base().Event.Init; init != nil {
		init(win)
	}
}

// NewParent creates a parent window at the top level of the root.
func (t *TUI) NewParent(config ParentConfig) *Parent {
	win := newParent(t, config)
	t.windows = append(t.windows, win)
	fireInit(win)
	return win
}

// NewText creates a text window at the top level of the root.
func (t *TUI) NewText(config TextConfig) *Text {
	win := newText(t, config)
	t.windows = append(t.windows, win)
	fireInit(win)
	return win
}

// NewGrid creates a grid window at the top level of the root.
func (t *TUI) NewGrid(config GridConfig) (*Grid, error) {
	win, err := newGrid(t, config)
	if err != nil {
		return nil, err
	}
	t.windows = append(t.windows, win)
	fireInit(win)
	return win, nil
}

// NewParent creates a parent window at the top level of the menu.
func (m *Menu) NewParent(config ParentConfig) *Parent {
	win := newParent(m.tui, config)
	win.menu = m
	m.windows = append(m.windows, win)
	fireInit(win)
	return win
}

// NewText creates a text window at the top level of the menu.
func (m *Menu) NewText(config TextConfig) *Text {
	win := newText(m.tui, config)
	win.menu = m
	m.windows = append(m.windows, win)
	fireInit(win)
	return win
}

// NewGrid creates a grid window at the top level of the menu.
func (m *Menu) NewGrid(config GridConfig) (*Grid, error) {
	win, err := newGrid(m.tui, config)
	if err != nil {
		return nil, err
	}
	win.menu = m
	m.windows = append(m.windows, win)
	fireInit(win)
	return win, nil
}

func (p *Parent) adopt(b *Base) {
	b.parent = p
	b.menu = p.menu
}

// NewParent creates a parent window as a child of p.
func (p *Parent) NewParent(config ParentConfig) *Parent {
	child := newParent(p.tui, config)
	p.adopt(&child.Base)
	p.children = append(p.children, child)
	fireInit(child)
	return child
}

// NewText creates a text window as a child of p.
func (p *Parent) NewText(config TextConfig) *Text {
	child := newText(p.tui, config)
	p.adopt(&child.Base)
	p.children = append(p.children, child)
	fireInit(child)
	return child
}

// NewGrid creates a grid window as a child of p.
func (p *Parent) NewGrid(config GridConfig) (*Grid, error) {
	child, err := newGrid(p.tui, config)
	if err != nil {
		return nil, err
	}
	p.adopt(&child.Base)
	p.children = append(p.children, child)
	fireInit(child)
	return child, nil
}
