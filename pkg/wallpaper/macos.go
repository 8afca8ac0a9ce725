//go:build darwin

package wallpaper

import (
	"fmt"
	"strconv"
)

// macOSOS implements Setter for macOS.
type macOSOS struct {
	run func(name string, args ...string) error
}

// SetWallpaper sets the picture of every desktop through System Events.
func (m *macOSOS) SetWallpaper(imagePath string) error {
	script := `tell application "System Events" to tell every desktop to set picture to ` + strconv.Quote(imagePath)
	if err := m.run("osascript", "-e", script); err != nil {
		return fmt.Errorf("failed to set wallpaper: %w", err)
	}
	return nil
}

func getOS() Setter {
	return &macOSOS{run: runCommand}
}
