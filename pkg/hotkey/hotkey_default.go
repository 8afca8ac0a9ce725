//go:build !darwin && !windows && !linux

package hotkey

// Description names the shortcut for menus and logs.
const Description = ""

// Listen does nothing where global shortcuts are unavailable.
func Listen(trigger func()) (stop func()) {
	return func() {}
}
