//go:build darwin

package ui

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Foundation -framework AppKit

#import <AppKit/AppKit.h>

// Regular apps have a Dock icon and a menu bar.
const NSApplicationActivationPolicy Regular = 0;

// Accessory apps live in the menu bar only.
const NSApplicationActivationPolicy Accessory = 1;

// setActivationPolicy switches the policy. The app is activated so the change takes effect.
void setActivationPolicy(long policy) {
    [NSApp setActivationPolicy:policy];
    [NSApp activateIgnoringOtherApps:YES];
}
*/
import "C"

// darwinOS hides the Dock icon while the app lives in the menu bar only.
type darwinOS struct{}

// TransformToForeground shows the Dock icon while the settings window is open.
func (d *darwinOS) TransformToForeground() {
	C.setActivationPolicy(C.Regular)
}

// TransformToBackground hides the Dock icon once the window is closed to the menu bar.
func (d *darwinOS) TransformToBackground() {
	C.setActivationPolicy(C.Accessory)
}

func getPlatform() platform {
	return &darwinOS{}
}
