package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestAppConfig_TrayHint(t *testing.T) {
	prefs := test.NewApp().Preferences()
	prefs.RemoveValue(TrayHintShownKey)

	c := NewAppConfig(prefs)
	assert.False(t, c.GetTrayHintShown(), "hint should not be marked on first run")

	c.SetTrayHintShown(true)
	assert.True(t, c.GetTrayHintShown())
	assert.True(t, prefs.Bool(TrayHintShownKey), "value should be stored in fyne preferences")

	c.SetTrayHintShown(false)
	assert.False(t, c.GetTrayHintShown())
}
