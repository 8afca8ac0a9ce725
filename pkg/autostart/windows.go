//go:build windows

package autostart

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/dixieflatline76/wallhavener/config"
	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
	"github.com/spf13/afero"
	"golang.org/x/sys/windows"
)

const sFalse = 0x00000001

// New returns a shortcut in the user's Startup folder pointing at the running executable.
func New() (Manager, error) {
	dir, err := windows.KnownFolderPath(windows.FOLDERID_Startup, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to locate Startup folder: %w", err)
	}
	exe, err := os.Executable()
	if err != nil {
		return nil, err
	}
	return NewShortcut(afero.NewOsFs(), filepath.Join(dir, config.AppName+".lnk"), exe), nil
}

// NewShortcut returns a FileEntry whose file is a .lnk created through WScript.Shell.
func NewShortcut(fs afero.Fs, path, exe string) *FileEntry {
	return &FileEntry{
		fs:   fs,
		path: path,
		create: func(_ afero.Fs, path string) error {
			return createShortcut(path, exe)
		},
	}
}

// createShortcut runs the COM calls on a dedicated locked thread so they never share an
// apartment with the UI thread.
func createShortcut(path, target string) error {
	done := make(chan error, 1)
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		done <- writeShortcut(path, target)
	}()
	return <-done
}

func writeShortcut(path, target string) error {
	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		var oleErr *ole.OleError
		if !errors.As(err, &oleErr) || (oleErr.Code() != ole.S_OK && oleErr.Code() != sFalse) {
			return fmt.Errorf("CoInitializeEx: %w", err)
		}
	}
	defer ole.CoUninitialize()

	unknown, err := oleutil.CreateObject("WScript.Shell")
	if err != nil {
		return fmt.Errorf("WScript.Shell: %w", err)
	}
	defer unknown.Release()

	shell, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return err
	}
	defer shell.Release()

	v, err := oleutil.CallMethod(shell, "CreateShortcut", path)
	if err != nil {
		return fmt.Errorf("CreateShortcut: %w", err)
	}
	link := v.ToIDispatch()
	defer link.Release()

	props := []struct {
		name  string
		value string
	}{
		{"TargetPath", target},
		{"WorkingDirectory", filepath.Dir(target)},
		{"IconLocation", target},
		{"Description", config.AppName},
	}
	for _, p := range props {
		if _, err := oleutil.PutProperty(link, p.name, p.value); err != nil {
			return fmt.Errorf("set %s: %w", p.name, err)
		}
	}
	if _, err := oleutil.CallMethod(link, "Save"); err != nil {
		return fmt.Errorf("save shortcut: %w", err)
	}
	return nil
}
