package ui

import (
	"errors"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func newTestTray(t *testing.T, failures int) (*trayController, *[]time.Duration) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	tray := newTrayController(a, a.NewWindow("w"), nil, func() {}, func() {}, func() {})
	calls := 0
	tray.install = func() error {
		calls++
		if calls <= failures {
			return errors.New("status notifier host not ready")
		}
		return nil
	}
	var delays []time.Duration
	tray.after = func(d time.Duration, f func()) {
		delays = append(delays, d)
		f()
	}
	return tray, &delays
}

func TestTray_RetriesUntilInstalled(t *testing.T) {
	tray, delays := newTestTray(t, 2)
	tray.show()

	assert.True(t, tray.isVisible())
	assert.Equal(t, 3, tray.attempts.Value())
	assert.Equal(t, []time.Duration{trayRetryDelay, trayRetryDelay}, *delays)

	// already visible, nothing to do
	tray.show()
	assert.Equal(t, 3, tray.attempts.Value())
}

func TestTray_GivesUp(t *testing.T) {
	tray, delays := newTestTray(t, 100)
	tray.show()

	assert.False(t, tray.isVisible())
	assert.Equal(t, trayMaxAttempts, tray.attempts.Value())
	assert.Len(t, *delays, trayMaxAttempts-1)
}

func TestTray_UnsupportedIsNotRetried(t *testing.T) {
	tray, delays := newTestTray(t, 0)
	tray.install = func() error { return errTrayUnsupported }
	tray.show()

	assert.False(t, tray.isVisible())
	assert.Equal(t, 1, tray.attempts.Value())
	assert.Empty(t, *delays)
}

func TestTray_Menu(t *testing.T) {
	tray, _ := newTestTray(t, 0)
	var labels []string
	for _, item := range tray.menu.Items {
		if !item.IsSeparator {
			labels = append(labels, item.Label)
		}
	}
	assert.Equal(t, []string{"Change Now", "Show", "Quit"}, labels)
	assert.True(t, tray.menu.Items[len(tray.menu.Items)-1].IsQuit)
}

func TestTray_InstallWithoutDesktopDriver(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()
	tray := newTrayController(a, a.NewWindow("w"), nil, nil, nil, nil)
	if tray.supported() {
		t.Skip("test driver provides a tray")
	}
	assert.True(t, errors.Is(tray.installDesktop(), errTrayUnsupported))
}
