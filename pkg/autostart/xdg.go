package autostart

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dixieflatline76/wallhavener/config"
	"github.com/spf13/afero"
)

// NewXDG registers exe through a desktop entry in <configDir>/autostart.
func NewXDG(fs afero.Fs, configDir, exe string) *FileEntry {
	path := filepath.Join(configDir, "autostart", strings.ToLower(config.AppName)+".desktop")
	return NewFileEntry(fs, path, DesktopEntry(exe))
}

// DesktopEntry renders the autostart .desktop file for exe. Path sets the working directory so a
// relative config file resolves next to the binary.
func DesktopEntry(exe string) []byte {
	return []byte(fmt.Sprintf(`[Desktop Entry]
Type=Application
Name=%s
Comment=Changes the desktop wallpaper from wallhaven.cc
Exec=%s
Path=%s
Terminal=false
X-GNOME-Autostart-enabled=true
`, config.AppName, quoteExec(exe), filepath.Dir(exe)))
}

// quoteExec quotes an Exec argument when it holds characters the desktop entry format reserves.
func quoteExec(arg string) string {
	if !strings.ContainsAny(arg, " \t\"'\\$`") {
		return arg
	}
	r := strings.NewReplacer(`\`, `\\\\`, `"`, `\\"`, "$", `\\$`, "`", "\\\\`")
	return `"` + r.Replace(arg) + `"`
}
