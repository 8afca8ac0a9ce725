//go:build windows

package wallpaper

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	systemParametersInfo = user32.NewProc("SystemParametersInfoW")
)

// Windows API constants (defined manually)
const (
	spiSetDeskWallpaper = 0x0014
	spifUpdateIniFile   = 0x01
	spifSendChange      = 0x02
)

// windowsOS implements Setter for Windows.
type windowsOS struct{}

// SetWallpaper sets the wallpaper to the given image file path.
func (w *windowsOS) SetWallpaper(imagePath string) error {
	if err := systemParametersInfo.Find(); err != nil {
		return fmt.Errorf("SystemParametersInfoW unavailable: %w", err)
	}

	imagePathUTF16, err := windows.UTF16PtrFromString(imagePath)
	if err != nil {
		return err
	}

	ret, _, callErr := systemParametersInfo.Call(
		uintptr(spiSetDeskWallpaper),
		uintptr(0),
		uintptr(unsafe.Pointer(imagePathUTF16)),
		uintptr(spifUpdateIniFile|spifSendChange),
	)
	if ret == 0 {
		return fmt.Errorf("SystemParametersInfoW: %w", callErr)
	}
	return nil
}

func getOS() Setter {
	return &windowsOS{}
}
