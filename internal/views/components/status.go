package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar shows the last action and the roster size
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	countLabel  *widget.Label
	hintLabel   *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

// createComponents initializes status bar components
func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.countLabel = widget.NewLabel("")
	sb.hintLabel = widget.NewLabel("")
	sb.SetCount(0)
}

// buildLayout constructs the status bar layout
func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.countLabel,
		widget.NewSeparator(),
		sb.hintLabel,
	)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetCount updates the number of students shown
func (sb *StatusBar) SetCount(n int) {
	if n == 1 {
		sb.countLabel.SetText("1 student")
		return
	}
	sb.countLabel.SetText(fmt.Sprintf("%d students", n))
}

// GetCount returns the student count text
func (sb *StatusBar) GetCount() string {
	return sb.countLabel.Text
}

// SetHint shows a keyboard hint such as the add accelerator
func (sb *StatusBar) SetHint(hint string) {
	sb.hintLabel.SetText(hint)
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
