//go:build darwin || windows || linux

// Package hotkey binds the global change-now shortcut.
package hotkey

import (
	"sync"
	"time"

	"github.com/dixieflatline76/wallhavener/util/log"
	"golang.design/x/hotkey"
)

// debounce swallows key repeats while the shortcut is held down.
const debounce = 200 * time.Millisecond

// Listen registers Ctrl+Alt+Right (Ctrl+Option+Right on macOS) and calls trigger on every press.
// A failed registration is logged and leaves the app without the shortcut. The returned stop
// function unregisters it.
func Listen(trigger func()) (stop func()) {
	hk := hotkey.New([]hotkey.Modifier{modCtrl, modAlt}, keyRight)
	if err := hk.Register(); err != nil {
		log.Printf("Failed to register hotkey %s: %v", Description, err)
		return func() {}
	}
	log.Printf("Registered hotkey: %s", Description)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-hk.Keydown():
				log.Debugf("Hotkey pressed: %s", Description)
				trigger()
				time.Sleep(debounce)
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			if err := hk.Unregister(); err != nil {
				log.Printf("Failed to unregister hotkey %s: %v", Description, err)
			}
		})
	}
}
