package config

import "fyne.io/fyne/v2"

// TrayHintShownKey is the key for the "minimized to tray" hint preference
const TrayHintShownKey = "tray_hint_shown"

// AppConfig holds UI state that does not belong in the settings file
type AppConfig struct {
	prefs fyne.Preferences
}

// NewAppConfig creates a new AppConfig instance
func NewAppConfig(p fyne.Preferences) *AppConfig {
	return &AppConfig{prefs: p}
}

// GetTrayHintShown returns whether the user has already been told the app keeps running in the tray
func (c *AppConfig) GetTrayHintShown() bool {
	return c.prefs.BoolWithFallback(TrayHintShownKey, false)
}

// SetTrayHintShown records that the tray hint has been shown
func (c *AppConfig) SetTrayHintShown(shown bool) {
	c.prefs.SetBool(TrayHintShownKey, shown)
}
