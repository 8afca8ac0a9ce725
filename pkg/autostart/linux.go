//go:build linux

package autostart

import (
	"os"

	"github.com/spf13/afero"
)

// New returns the XDG autostart entry for the running executable.
func New() (Manager, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	exe, err := os.Executable()
	if err != nil {
		return nil, err
	}
	return NewXDG(afero.NewOsFs(), dir, exe), nil
}
