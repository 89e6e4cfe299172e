package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// createSectionTitleLabel creates a label for a group of settings
func createSectionTitleLabel(desc string) *widget.Label {
	label := widget.NewLabel(desc)
	label.Wrapping = fyne.TextWrapWord
	label.Importance = widget.HighImportance
	label.TextStyle = fyne.TextStyle{Bold: true}
	return label
}

// createSettingDescriptionLabel creates a label explaining a setting
func createSettingDescriptionLabel(desc string) *widget.Label {
	label := widget.NewLabel(desc)
	label.Wrapping = fyne.TextWrapWord
	label.Importance = widget.LowImportance
	label.TextStyle = fyne.TextStyle{Italic: true}
	return label
}

// createStatusLabel creates the label shown next to the buttons
func createStatusLabel() *widget.Label {
	label := widget.NewLabel(statusNoFolder)
	label.Alignment = fyne.TextAlignCenter
	label.Truncation = fyne.TextTruncateEllipsis
	return label
}

// statusText formats the current image as "name (i/n)".
func statusText(name string, position, total int) string {
	if position == 0 {
		return statusNoImages
	}
	return fmt.Sprintf("%s (%d/%d)", name, position, total)
}
