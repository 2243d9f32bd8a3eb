// Command login is a demo: a two-page form with text inputs, a secret
// password field, and tab navigation between fields.
package main

import (
	"fmt"
	"log"

	"tui"
)

type form struct {
	username *tui.Input
	password *tui.Input
}

func main() {
	t, err := tui.New(tui.TUIConfig{
		Color: tui.Pair{Fg: tui.ColorWhite, Bg: tui.ColorDarkBlue},
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

	f := &form{}

	login := t.NewMenu(tui.MenuConfig{Name: "login"})
	welcome := t.NewMenu(tui.MenuConfig{
		Name:  "welcome",
		Color: tui.Pair{Fg: tui.ColorBlack, Bg: tui.ColorAqua},
	})

	box := login.NewParent(tui.ParentConfig{
		WindowConfig: tui.WindowConfig{
			Name:  "box",
			Rect:  tui.NewRect(-40, -10, 40, 10),
			Color: tui.Pair{Fg: tui.ColorBlack, Bg: tui.ColorGray},
		},
		Border:     tui.Border{IsActive: true, Depth: tui.DepthHigh},
		HasShadow:  true,
		HasPadding: true,
		HasGap:     true,
		IsVertical: true,
		Pos:        tui.PosCenter,
	})

	box.NewText(tui.TextConfig{
		WindowConfig: tui.WindowConfig{Name: "title"},
		String:       "Sign in",
		Align:        tui.AlignCenter,
	})

	field := func(name, label string, secret bool) (*tui.Text, *tui.Input) {
		row := box.NewParent(tui.ParentConfig{
			WindowConfig: tui.WindowConfig{Name: name},
			HasGap:       true,
		})

		row.NewText(tui.TextConfig{
			WindowConfig: tui.WindowConfig{Name: "label"},
			String:       label,
		})

		win := row.NewText(tui.TextConfig{
			WindowConfig: tui.WindowConfig{
				Name:       "value",
				WGrow:      true,
				IsInteract: true,
				Color:      tui.Pair{Fg: tui.ColorWhite, Bg: tui.ColorDarkGray},
			},
			IsSecret: secret,
		})

		input := tui.NewInput(t, 64, win)

		win.Event.Key = func(_ tui.Window, key int) bool {
			return input.HandleKey(key)
		}

		return win, input
	}

	user, username := field("user", "Username:", false)
	_, password := field("pass", "Password:", true)
	f.username = username
	f.password = password

	status := box.NewText(tui.TextConfig{
		WindowConfig: tui.WindowConfig{
			Name:  "status",
			Color: tui.Pair{Fg: tui.ColorDarkRed},
		},
		Align: tui.AlignCenter,
	})

	login.Event.Key = func(m *tui.Menu, key int) bool {
		if key != tui.KeyEnter {
			return false
		}

		if f.username.Buffer() == "" || f.password.Buffer() == "" {
			status.SetString("both fields are required")
			return true
		}

		t.SetMenu(welcome)
		return true
	}

	greeting := welcome.NewParent(tui.ParentConfig{
		WindowConfig: tui.WindowConfig{
			Name: "greeting",
			Rect: tui.ParentRect(),
		},
		IsVertical: true,
		Align:      tui.AlignCenter,
		Pos:        tui.PosCenter,
	})

	greeting.NewText(tui.TextConfig{
		WindowConfig: tui.WindowConfig{
			Name: "message",
			Event: tui.Event{
				Update: func(win tui.Window) {
					text := win.(*tui.Text)
					text.SetString(fmt.Sprintf("Welcome, %s!", f.username.Buffer()))
				},
			},
		},
	})

	greeting.NewText(tui.TextConfig{
		WindowConfig: tui.WindowConfig{Name: "hint"},
		String:       "press Ctrl-C to quit",
	})

	t.SetMenu(login)
	t.SetFocus(user)

	t.Run()
}
