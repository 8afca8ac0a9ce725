package wallpaper

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dixieflatline76/wallhavener/util/log"
	"github.com/spf13/afero"
)

// Applier writes images to disk and hands them to the OS.
type Applier struct {
	fs     afero.Fs
	setter Setter
}

// NewApplier creates an Applier writing to fs and applying through setter.
func NewApplier(fs afero.Fs, setter Setter) *Applier {
	return &Applier{fs: fs, setter: setter}
}

// Apply writes data to dest, overwriting any existing file, then sets it as the desktop
// background. It returns the absolute path that was applied.
func (a *Applier) Apply(data []byte, dest string) (string, error) {
	abs, err := filepath.Abs(dest)
	if err != nil {
		return "", &IOWriteError{Path: dest, Err: err}
	}

	if err := a.fs.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return "", &IOWriteError{Path: abs, Err: err}
	}
	if err := afero.WriteFile(a.fs, abs, data, 0644); err != nil {
		return "", &IOWriteError{Path: abs, Err: err}
	}

	if err := a.setter.SetWallpaper(abs); err != nil {
		return "", &PlatformError{Op: "set wallpaper", Err: err}
	}
	log.Printf("Wallpaper set to %s", abs)
	return abs, nil
}

// CheckWritable verifies that files can be created in dir by writing and removing a probe.
func CheckWritable(fs afero.Fs, dir string) error {
	info, err := fs.Stat(dir)
	if err != nil {
		return fmt.Errorf("cannot access %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	probe, err := afero.TempFile(fs, dir, ".wallhavener-probe-*")
	if err != nil {
		return fmt.Errorf("%s is not writable: %w", dir, err)
	}
	name := probe.Name()
	probe.Close()
	if err := fs.Remove(name); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to remove probe file %s: %v", name, err)
	}
	return nil
}
