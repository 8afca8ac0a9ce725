//go:build !windows

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/dixieflatline76/wallhavener/config"
)

var (
	lockFile *os.File
)

// acquireLock tries to acquire a single-instance lock (file lock on Unix).
func acquireLock() (bool, error) {
	lockFilePath := filepath.Join(os.TempDir(), strings.ToLower(config.AppName)+".lock")
	file, err := os.OpenFile(lockFilePath, os.O_RDWR|os.O_CREATE, 0o666)
	if err != nil {
		return false, fmt.Errorf("failed to open lock file: %w", err)
	}

	err = syscall.FcntlFlock(file.Fd(), syscall.F_SETLK, &syscall.Flock_t{
		Type:   syscall.F_WRLCK,
		Whence: 0,
		Start:  0,
		Len:    0, // whole file
	})
	if err != nil {
		file.Close()
		if errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EACCES) {
			return false, nil // held by another instance
		}
		return false, fmt.Errorf("failed to acquire lock: %w", err)
	}

	lockFile = file
	return true, nil
}

// releaseLock releases the single-instance lock.
func releaseLock() {
	if lockFile == nil {
		return
	}
	_ = syscall.FcntlFlock(lockFile.Fd(), syscall.F_SETLK, &syscall.Flock_t{
		Type: syscall.F_UNLCK,
	})
	lockFile.Close()
	os.Remove(lockFile.Name())
}
