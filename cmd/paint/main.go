// Command paint is a demo: a grid canvas painted with the arrow keys,
// cycling colors with the space bar.
package main

import (
	"log"

	"tui"
)

var palette = []tui.Color{
	tui.ColorRed,
	tui.ColorYellow,
	tui.ColorGreen,
	tui.ColorCyan,
	tui.ColorMagenta,
	tui.ColorWhite,
}

func main() {
	t, err := tui.New(tui.TUIConfig{
		Color: tui.Pair{Fg: tui.ColorGray, Bg: tui.ColorBlack},
		Event: tui.TUIEvent{
			Key: func(t *tui.TUI, key int) bool {
				return t.TabEvent(key)
			},
		},
	})
	if err != nil {
		log.Fatal(err)
	}
	defer t.Delete()

	frame := t.NewParent(tui.ParentConfig{
		WindowConfig: tui.WindowConfig{
			Name: "frame",
			Rect: tui.ParentRect(),
		},
		IsVertical: true,
		Align:      tui.AlignCenter,
		Pos:        tui.PosCenter,
		Border:     tui.Border{IsActive: true, Depth: tui.DepthLow},
	})

	canvas, err := frame.NewGrid(tui.GridConfig{
		WindowConfig: tui.WindowConfig{
			Name:       "canvas",
			IsInteract: true,
		},
		Size: tui.Size{W: 40, H: 16},
	})
	if err != nil {
		log.Fatal(err)
	}

	frame.NewText(tui.TextConfig{
		WindowConfig: tui.WindowConfig{Name: "hint"},
		String:       "arrows move, space cycles color, Ctrl-C quits",
		Align:        tui.AlignCenter,
	})

	x, y := 0, 0
	color := 0

	stamp := func() {
		canvas.SetSquare(x, y, tui.Square{
			Symbol: '█',
			Color:  tui.Pair{Fg: palette[color]},
		})
	}
	stamp()

	canvas.Event.Key = func(_ tui.Window, key int) bool {
		size := canvas.GridSize()

		switch key {
		case tui.KeyLeft:
			x = max(0, x-1)
		case tui.KeyRight:
			x = min(size.W-1, x+1)
		case tui.KeyUp:
			y = max(0, y-1)
		case tui.KeyDown:
			y = min(size.H-1, y+1)
		case tui.KeySpace:
			color = (color + 1) % len(palette)
		default:
			return false
		}

		stamp()
		return true
	}

	t.SetFocus(canvas)

	t.Run()
}
