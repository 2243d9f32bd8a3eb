package tui

// Input edits a fixed-capacity line of text meant to be shown in a text
// window. The visible string embeds an ESC[5m marker at the cursor so
// the render pass can place the terminal cursor, and masks nothing
// itself: pair it with a secret text window for password fields.
type Input struct {
	buffer  []byte
	size    int
	cursor  int
	scroll  int
	window  *Text
	tui     *TUI
	visible string
}

// NewInput creates an input with room for size bytes, bound to the
// given text window. The window may be nil when the caller manages the
// string itself.
func NewInput(t *TUI, size int, window *Text) *Input {
	input := &Input{
		buffer: make([]byte, 0, size),
		size:   size,
		window: window,
		tui:    t,
	}

	input.update()

	return input
}

// Buffer returns the edited text without the cursor marker.
func (in *Input) Buffer() string {
	return string(in.buffer)
}

// String returns the visible string including the cursor marker.
func (in *Input) String() string {
	return in.visible
}

// update regenerates the visible string from the buffer: the scrolled
// prefix, the cursor marker, and the tail. When the cursor sits at the
// end of a focused input, a space is added for the cursor to rest on.
func (in *Input) update() {
	visible := make([]byte, 0, len(in.buffer)+6)

	visible = append(visible, in.buffer[in.scroll:in.cursor]...)
	visible = append(visible, "\x1b[5m"...)
	visible = append(visible, in.buffer[in.cursor:]...)

	if in.cursor == len(in.buffer) && in.window != nil &&
		in.tui.window == Window(in.window) {
		visible = append(visible, ' ')
	}

	in.visible = string(visible)

	if in.window != nil {
		in.window.SetString(in.visible)
	}
}

// addSymbol inserts a printable character at the cursor.
func (in *Input) addSymbol(key int) bool {
	if len(in.buffer) >= in.size {
		return false
	}

	if key < 32 || key > 126 {
		return false
	}

	in.buffer = append(in.buffer, 0)
	copy(in.buffer[in.cursor+1:], in.buffer[in.cursor:])
	in.buffer[in.cursor] = byte(key)

	if in.cursor < len(in.buffer) {
		in.cursor++
	}

	in.update()

	return true
}

// deleteSymbol removes the character before the cursor.
func (in *Input) deleteSymbol() bool {
	if in.cursor <= 0 || len(in.buffer) == 0 {
		return false
	}

	copy(in.buffer[in.cursor-1:], in.buffer[in.cursor:])
	in.buffer = in.buffer[:len(in.buffer)-1]

	in.cursor = min(in.cursor-1, len(in.buffer))

	in.update()

	return true
}

// scrollRight moves the cursor one character right. Movement is only
// enabled while the bound window is focused.
func (in *Input) scrollRight() bool {
	if in.window == nil || in.tui.window != Window(in.window) {
		return false
	}

	if in.cursor >= len(in.buffer) {
		return false
	}

	in.cursor++

	in.update()

	return true
}

// scrollLeft moves the cursor one character left.
func (in *Input) scrollLeft() bool {
	if in.window == nil || in.tui.window != Window(in.window) {
		return false
	}

	if in.cursor == 0 {
		return false
	}

	in.cursor--

	if in.cursor < in.scroll {
		in.scroll = in.cursor
	}

	in.update()

	return true
}

// HandleKey edits the input with one keypress, returning whether the
// key was consumed. Wire it into the bound window's key hook.
func (in *Input) HandleKey(key int) bool {
	switch key {
	case KeyRight:
		return in.scrollRight()
	case KeyLeft:
		return in.scrollLeft()
	case KeyBackspace:
		return in.deleteSymbol()
	default:
		return in.addSymbol(key)
	}
}
