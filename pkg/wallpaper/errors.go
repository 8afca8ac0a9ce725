package wallpaper

import (
	"errors"
	"fmt"

	"github.com/dixieflatline76/wallhavener/pkg/wallhaven"
)

// ErrNoResults is returned when a search matched nothing. It is a normal outcome, not a fault.
var ErrNoResults = errors.New("no wallpapers found")

// ErrNotImage is returned when a download does not decode as an image.
var ErrNotImage = errors.New("downloaded content is not an image")

// RequestError is the wallhaven client's HTTP failure type, shared by downloads.
type RequestError = wallhaven.RequestError

// IOWriteError reports that the destination file could not be written.
type IOWriteError struct {
	Path string
	Err  error
}

func (e *IOWriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *IOWriteError) Unwrap() error {
	return e.Err
}

// PlatformError reports that an OS facility (wallpaper or autostart) failed or is missing.
type PlatformError struct {
	Op  string
	Err error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}

// StatusMessage renders the outcome of a change run as one line for the status label.
func StatusMessage(res Result, err error) string {
	switch {
	case err == nil:
		return "Wallpaper changed: " + res.Path
	case errors.Is(err, ErrNoResults):
		return "No wallpapers found."
	default:
		return "Error: " + err.Error()
	}
}
