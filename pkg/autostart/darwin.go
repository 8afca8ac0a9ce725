//go:build darwin

package autostart

import (
	"os"

	"github.com/spf13/afero"
)

// New returns the LaunchAgent for the running executable.
func New() (Manager, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	exe, err := os.Executable()
	if err != nil {
		return nil, err
	}
	return NewLaunchAgent(afero.NewOsFs(), home, exe), nil
}
