//go:build linux

package hotkey

import "golang.design/x/hotkey"

// Description names the shortcut for menus and logs.
const Description = "Ctrl+Alt+Right"

// Mod1 is Alt on every common X11 keymap.
const (
	modCtrl  = hotkey.ModCtrl
	modAlt   = hotkey.Mod1
	keyRight = hotkey.KeyRight
)
