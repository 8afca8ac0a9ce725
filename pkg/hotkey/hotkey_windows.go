//go:build windows

package hotkey

import "golang.design/x/hotkey"

// Description names the shortcut for menus and logs.
const Description = "Ctrl+Alt+Right"

const (
	modCtrl  = hotkey.ModCtrl
	modAlt   = hotkey.ModAlt
	keyRight = hotkey.KeyRight
)
