// Package autostart registers the application to start when the user logs in.
package autostart

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dixieflatline76/wallhavener/util/log"
	"github.com/spf13/afero"
)

// ErrUnsupported is returned where no launch-at-login mechanism is known.
var ErrUnsupported = errors.New("launch on startup is not supported on this platform")

// Manager adds or removes the login registration. Enable and Disable are idempotent.
type Manager interface {
	Enable() error
	Disable() error
	Enabled() (bool, error)
}

// Apply brings the registration in line with on. Nothing is touched when it already matches.
func Apply(m Manager, on bool) error {
	enabled, err := m.Enabled()
	if err != nil {
		return fmt.Errorf("failed to check launch on startup: %w", err)
	}
	if enabled == on {
		return nil
	}

	if on {
		if err := m.Enable(); err != nil {
			return fmt.Errorf("failed to enable launch on startup: %w", err)
		}
		log.Print("Launch on startup enabled")
		return nil
	}
	if err := m.Disable(); err != nil {
		return fmt.Errorf("failed to disable launch on startup: %w", err)
	}
	log.Print("Launch on startup disabled")
	return nil
}

// Unsupported is the Manager for platforms without a known mechanism.
type Unsupported struct{}

// Enable always fails with ErrUnsupported.
func (Unsupported) Enable() error { return ErrUnsupported }

// Disable has nothing to remove.
func (Unsupported) Disable() error { return nil }

// Enabled is always false.
func (Unsupported) Enabled() (bool, error) { return false, nil }

// FileEntry is a registration made of a single file that the session reads at login.
type FileEntry struct {
	fs     afero.Fs
	path   string
	create func(fs afero.Fs, path string) error
}

// NewFileEntry returns a FileEntry that writes content to path.
func NewFileEntry(fs afero.Fs, path string, content []byte) *FileEntry {
	return &FileEntry{
		fs:   fs,
		path: path,
		create: func(fs afero.Fs, path string) error {
			return afero.WriteFile(fs, path, content, 0o644)
		},
	}
}

// Path returns where the registration lives.
func (e *FileEntry) Path() string {
	return e.path
}

// Enable writes the entry, replacing any earlier one.
func (e *FileEntry) Enable() error {
	if err := e.fs.MkdirAll(filepath.Dir(e.path), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(e.path), err)
	}
	if err := e.create(e.fs, e.path); err != nil {
		return fmt.Errorf("failed to write %s: %w", e.path, err)
	}
	return nil
}

// Disable removes the entry if present.
func (e *FileEntry) Disable() error {
	if err := e.fs.Remove(e.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", e.path, err)
	}
	return nil
}

// Enabled reports whether the entry exists.
func (e *FileEntry) Enabled() (bool, error) {
	return afero.Exists(e.fs, e.path)
}
