//go:build !linux && !darwin && !windows

package autostart

// New returns Unsupported.
func New() (Manager, error) {
	return Unsupported{}, nil
}
