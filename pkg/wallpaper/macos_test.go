//go:build darwin

package wallpaper

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMacOSSetWallpaper(t *testing.T) {
	var got []string
	m := &macOSOS{run: func(name string, args ...string) error {
		got = append([]string{name}, args...)
		return nil
	}}

	require.NoError(t, m.SetWallpaper(`/Users/u/Pictures/Wallpapers/wallhaven_abc123.png`))
	require.Len(t, got, 3)
	assert.Equal(t, "osascript", got[0])
	assert.Equal(t, "-e", got[1])
	assert.True(t, strings.HasSuffix(got[2], `set picture to "/Users/u/Pictures/Wallpapers/wallhaven_abc123.png"`))
}

func TestMacOSSetWallpaper_QuotesPath(t *testing.T) {
	var script string
	m := &macOSOS{run: func(name string, args ...string) error {
		script = args[1]
		return nil
	}}
	require.NoError(t, m.SetWallpaper(`/tmp/a "b".png`))
	assert.Contains(t, script, `"/tmp/a \"b\".png"`)
}

func TestMacOSSetWallpaper_Failure(t *testing.T) {
	m := &macOSOS{run: func(string, ...string) error { return errors.New("not authorized") }}
	assert.ErrorContains(t, m.SetWallpaper("/tmp/w.png"), "not authorized")
}
