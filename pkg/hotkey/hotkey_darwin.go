//go:build darwin

package hotkey

import "golang.design/x/hotkey"

// Description names the shortcut for menus and logs.
const Description = "Ctrl+Option+Right"

const (
	modCtrl  = hotkey.ModCtrl
	modAlt   = hotkey.ModOption
	keyRight = hotkey.KeyRight
)
