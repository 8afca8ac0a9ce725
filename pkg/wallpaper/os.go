package wallpaper

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/dixieflatline76/wallhavener/util/log"
)

// Setter sets the desktop background to the image at an absolute path.
type Setter interface {
	SetWallpaper(imagePath string) error
}

// SetterFunc adapts a function to the Setter interface.
type SetterFunc func(imagePath string) error

// SetWallpaper calls f(imagePath).
func (f SetterFunc) SetWallpaper(imagePath string) error {
	return f(imagePath)
}

// NewSetter returns the Setter for the running platform.
func NewSetter() Setter {
	return getOS()
}

// logOnlySetter is used where no wallpaper facility is known. It only records the request.
type logOnlySetter struct{}

func (logOnlySetter) SetWallpaper(imagePath string) error {
	log.Printf("Wallpaper setting is not supported on this platform, image saved to %s", imagePath)
	return nil
}

// commandTimeout bounds every external helper (gsettings, osascript, ...).
const commandTimeout = 30 * time.Second

// runCommand runs an external helper and folds its output into the error.
func runCommand(name string, args ...string) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		if len(out) > 0 {
			return fmt.Errorf("%s: %w: %s", name, err, out)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
