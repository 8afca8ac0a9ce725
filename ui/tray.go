package ui

import (
	"errors"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/dixieflatline76/wallhavener/util"
	"github.com/dixieflatline76/wallhavener/util/log"
)

const (
	trayMaxAttempts = 5
	trayRetryDelay  = 500 * time.Millisecond
)

var errTrayUnsupported = errors.New("system tray is not supported by this driver")

// trayController owns the tray icon and its menu. A driver without tray support fails on the
// first attempt and is not retried. Setup that panics (no status notifier host yet on some
// desktops) is retried a few times.
type trayController struct {
	app    fyne.App
	window fyne.Window
	icon   fyne.Resource
	menu   *fyne.Menu

	visible  *util.SafeFlag
	attempts *util.SafeCounter

	install func() error
	after   func(time.Duration, func())
}

func newTrayController(a fyne.App, window fyne.Window, icon fyne.Resource, onChange, onShow, onQuit func()) *trayController {
	quit := fyne.NewMenuItem("Quit", onQuit)
	quit.IsQuit = true

	t := &trayController{
		app:    a,
		window: window,
		icon:   icon,
		menu: fyne.NewMenu("",
			fyne.NewMenuItem("Change Now", onChange),
			fyne.NewMenuItem("Show", onShow),
			fyne.NewMenuItemSeparator(),
			quit,
		),
		visible:  util.NewSafeBool(),
		attempts: util.NewSafeInt(),
		after: func(d time.Duration, f func()) {
			time.AfterFunc(d, func() { fyne.Do(f) })
		},
	}
	t.install = t.installDesktop
	return t
}

// supported reports whether the driver offers a tray at all.
func (t *trayController) supported() bool {
	_, ok := t.app.(desktop.App)
	return ok
}

// isVisible reports whether the tray icon has been installed.
func (t *trayController) isVisible() bool {
	return t.visible.Value()
}

// show installs the tray icon, retrying after a short delay until it succeeds or the attempts
// run out. It must run on the UI goroutine.
func (t *trayController) show() {
	if t.visible.Value() {
		return
	}

	n := t.attempts.Increment()
	if err := t.install(); err != nil {
		if errors.Is(err, errTrayUnsupported) {
			log.Printf("No tray icon: %v", err)
			return
		}
		if n >= trayMaxAttempts {
			log.Printf("Giving up on the tray icon after %d attempts: %v", n, err)
			return
		}
		log.Debugf("Tray icon not ready (attempt %d): %v", n, err)
		t.after(trayRetryDelay, t.show)
		return
	}

	t.visible.Set(true)
	log.Printf("Tray icon installed after %d attempt(s)", n)
}

// installDesktop sets the tray menu and icon. The driver reports no result, so a panic from the
// platform tray is the only failure it can detect.
func (t *trayController) installDesktop() (err error) {
	desk, ok := t.app.(desktop.App)
	if !ok {
		return errTrayUnsupported
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tray setup failed: %v", r)
		}
	}()

	desk.SetSystemTrayMenu(t.menu)
	desk.SetSystemTrayIcon(t.icon)
	// clicking the icon restores the window on drivers that support it
	if tw, ok := desk.(interface{ SetSystemTrayWindow(fyne.Window) }); ok {
		tw.SetSystemTrayWindow(t.window)
	}
	return nil
}
