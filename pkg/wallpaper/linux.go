//go:build linux

package wallpaper

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// linuxOS sets wallpapers on the common Linux desktops, X11 and Wayland.
type linuxOS struct {
	getenv   func(string) string
	run      func(name string, args ...string) error
	output   func(name string, args ...string) ([]byte, error)
	lookPath func(string) (string, error)
}

func getOS() Setter {
	return &linuxOS{
		getenv: os.Getenv,
		run:    runCommand,
		output: func(name string, args ...string) ([]byte, error) {
			return exec.Command(name, args...).Output()
		},
		lookPath: exec.LookPath,
	}
}

func (l *linuxOS) desktop() string {
	env := l.getenv("XDG_CURRENT_DESKTOP")
	if env == "" {
		env = l.getenv("DESKTOP_SESSION")
	}
	return strings.ToLower(env)
}

// SetWallpaper picks the mechanism matching the running desktop environment.
func (l *linuxOS) SetWallpaper(imagePath string) error {
	de := l.desktop()
	wayland := l.getenv("WAYLAND_DISPLAY") != ""

	switch {
	case strings.Contains(de, "cinnamon"):
		return l.run("gsettings", "set", "org.cinnamon.desktop.background", "picture-uri", "file://"+imagePath)
	case strings.Contains(de, "mate"):
		return l.run("gsettings", "set", "org.mate.background", "picture-filename", imagePath)
	case strings.Contains(de, "gnome") || strings.Contains(de, "unity") || strings.Contains(de, "budgie") || strings.Contains(de, "pantheon"):
		return l.setGNOME(imagePath)
	case strings.Contains(de, "kde"):
		return l.setKDE(imagePath)
	case strings.Contains(de, "xfce"):
		return l.setXFCE(imagePath)
	case strings.Contains(de, "sway"):
		return l.run("swaymsg", "output", "*", "bg", imagePath, "fill")
	case !wayland:
		if _, err := l.lookPath("feh"); err == nil {
			return l.run("feh", "--bg-fill", imagePath)
		}
	}
	return fmt.Errorf("unsupported desktop environment: %q", de)
}

func (l *linuxOS) setGNOME(imagePath string) error {
	uri := "file://" + imagePath
	if err := l.run("gsettings", "set", "org.gnome.desktop.background", "picture-uri", uri); err != nil {
		return err
	}
	// GNOME 42+ keeps a separate key for the dark style; older releases do not have it.
	_ = l.run("gsettings", "set", "org.gnome.desktop.background", "picture-uri-dark", uri)
	return nil
}

func (l *linuxOS) setKDE(imagePath string) error {
	script := fmt.Sprintf(`var allDesktops = desktops();
for (var i = 0; i < allDesktops.length; i++) {
    var d = allDesktops[i];
    d.wallpaperPlugin = "org.kde.image";
    d.currentConfigGroup = Array("Wallpaper", "org.kde.image", "General");
    d.writeConfig("Image", %s);
}`, strconv.Quote("file://"+imagePath))
	return l.run("dbus-send", "--session", "--dest=org.kde.plasmashell", "--type=method_call",
		"/PlasmaShell", "org.kde.PlasmaShell.evaluateScript", "string:"+script)
}

// setXFCE updates every last-image property so all monitors and workspaces follow.
func (l *linuxOS) setXFCE(imagePath string) error {
	out, err := l.output("xfconf-query", "--channel", "xfce4-desktop", "--list")
	if err != nil {
		return fmt.Errorf("xfconf-query: %w", err)
	}

	var set int
	for _, prop := range strings.Split(string(out), "\n") {
		prop = strings.TrimSpace(prop)
		if !strings.HasSuffix(prop, "/last-image") {
			continue
		}
		if err := l.run("xfconf-query", "--channel", "xfce4-desktop", "--property", prop, "--set", imagePath); err != nil {
			return err
		}
		set++
	}
	if set == 0 {
		return l.run("xfconf-query", "--channel", "xfce4-desktop",
			"--property", "/backdrop/screen0/monitor0/workspace0/last-image", "--create", "--type", "string", "--set", imagePath)
	}
	return nil
}
