package ui

// platform switches the process between a regular windowed app and a tray-only background app.
type platform interface {
	TransformToForeground()
	TransformToBackground()
}

// noopPlatform is used where hiding the window is all it takes to run from the tray.
type noopPlatform struct{}

func (noopPlatform) TransformToForeground() {}

func (noopPlatform) TransformToBackground() {}
