//go:build windows

package wallpaper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowsSetter(t *testing.T) {
	assert.IsType(t, &windowsOS{}, NewSetter())
	assert.NoError(t, systemParametersInfo.Find())
}
