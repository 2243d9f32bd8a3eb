package tui

// Color is one of the 17 palette values. The zero value ColorNone is a
// sentinel meaning "inherit from the nearest ancestor".
type Color int16

const (
	ColorNone Color = iota
	ColorBlack
	ColorDarkRed
	ColorDarkGreen
	ColorDarkYellow
	ColorDarkBlue
	ColorPurple
	ColorAqua
	ColorGray
	ColorDarkGray
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// Pair is a foreground and background color pair.
type Pair struct {
	Fg Color
	Bg Color
}

// pairCacheSize bounds how many distinct pairs can be interned.
const pairCacheSize = 128

// pairCache interns color pairs into small slot indices the backend can
// map to terminal styles. Slot 0 is reserved for the default pair.
type pairCache struct {
	pairs [pairCacheSize]Pair
	count int // slots in use, including the reserved slot 0
	limit int // backend pair budget
}

func newPairCache(limit int) *pairCache {
	if limit <= 0 || limit > pairCacheSize {
		limit = pairCacheSize
	}
	return &pairCache{count: 1, limit: limit}
}

// slot returns the slot index for pair, interning it on first use. When
// the budget is exhausted the default slot 0 is returned and rendering
// carries on with default colors.
func (c *pairCache) slot(pair Pair) int16 {
	for i := 1; i < c.count; i++ {
		if c.pairs[i] == pair {
			return int16(i)
		}
	}
	if c.count >= c.limit {
		return 0
	}
	i := c.count
	c.count++
	c.pairs[i] = pair
	return int16(i)
}

// pair returns the colors interned at slot.
func (c *pairCache) pair(slot int16) Pair {
	if slot <= 0 || int(slot) >= c.count {
		return Pair{}
	}
	return c.pairs[slot]
}

// resolvePair fills the NONE components of pair from an already
// resolved ancestor pair.
func resolvePair(pair, from Pair) Pair {
	if pair.Fg != ColorNone && pair.Bg != ColorNone {
		return pair
	}
	if pair.Fg == ColorNone {
		pair.Fg = from.Fg
	}
	if pair.Bg == ColorNone {
		pair.Bg = from.Bg
	}
	return pair
}

// inherited returns the pair a window inherits transparent components
// from: its parent's resolved color, else the active menu's, else the
// root's.
func (t *TUI) inherited(b *Base) Pair {
	if b != nil && b.parent != nil {
		return b.parent.paintColor
	}
	if t.menu != nil {
		return t.menu.paintColor
	}
	return t.Color
}
