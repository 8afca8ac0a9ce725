package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// createSectionTitleLabel creates a label for a section title
func createSectionTitleLabel(desc string) *widget.Label {
	label := widget.NewLabel(desc)
	label.Wrapping = fyne.TextWrapWord
	label.Importance = widget.HighImportance
	label.TextStyle = fyne.TextStyle{Bold: true}
	return label
}

// createSettingTitleLabel creates a label for a setting title
func createSettingTitleLabel(desc string) *widget.Label {
	label := widget.NewLabel(desc)
	label.Wrapping = fyne.TextWrapWord
	label.Importance = widget.MediumImportance
	label.TextStyle = fyne.TextStyle{Bold: true}
	return label
}

// createSettingDescriptionLabel creates a label for a setting description
func createSettingDescriptionLabel(desc string) *widget.Label {
	label := widget.NewLabel(desc)
	label.Wrapping = fyne.TextWrapWord
	label.Importance = widget.LowImportance
	label.TextStyle = fyne.TextStyle{Italic: true}
	return label
}

// setStatusLabel shows msg with the importance matching its outcome.
func setStatusLabel(label *widget.Label, msg string, failed bool) {
	label.SetText(msg)
	if failed {
		label.Importance = widget.DangerImportance
	} else {
		label.Importance = widget.SuccessImportance
	}
	label.Refresh()
}
