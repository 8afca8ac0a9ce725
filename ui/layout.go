package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// splitLayout places a label column and a control column side by side. The label column takes
// a fixed share of the row width.
type splitLayout struct {
	label   fyne.CanvasObject
	control fyne.CanvasObject
	share   float32
}

// MinSize calculates the minimum size.
func (s *splitLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	l, c := s.label.MinSize(), s.control.MinSize()
	return fyne.NewSize(l.Width+c.Width, fyne.Max(l.Height, c.Height))
}

// Layout arranges the widgets.
func (s *splitLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	labelWidth := size.Width * s.share
	height := fyne.Max(s.label.MinSize().Height, s.control.MinSize().Height)

	s.label.Resize(fyne.NewSize(labelWidth, height))
	s.label.Move(fyne.NewPos(0, 0))
	s.control.Resize(fyne.NewSize(size.Width-labelWidth, height))
	s.control.Move(fyne.NewPos(labelWidth, 0))
}

// newSplitRow creates a row with the label in the left third.
func newSplitRow(label, control fyne.CanvasObject) *fyne.Container {
	l := &splitLayout{label: label, control: control, share: 1.0 / 3}
	return container.New(l, label, control)
}
