package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// ButtonBar is the row of roster actions under the table
type ButtonBar struct {
	container    *fyne.Container
	addButton    *widget.Button
	updateButton *widget.Button
	deleteButton *widget.Button
	clearButton  *widget.Button

	// Event handlers
	addHandler    func()
	updateHandler func()
	deleteHandler func()
	clearHandler  func()
}

// NewButtonBar creates a new button bar component
func NewButtonBar() *ButtonBar {
	bar := &ButtonBar{}
	bar.createComponents()
	bar.buildLayout()
	bar.setupEventHandlers()
	return bar
}

// createComponents initializes all buttons
func (b *ButtonBar) createComponents() {
	b.addButton = widget.NewButtonWithIcon("Add Student", theme.ContentAddIcon(), nil)
	b.addButton.Importance = widget.HighImportance

	b.updateButton = widget.NewButtonWithIcon("Update", theme.DocumentSaveIcon(), nil)
	b.updateButton.Importance = widget.MediumImportance

	b.deleteButton = widget.NewButtonWithIcon("Delete", theme.DeleteIcon(), nil)
	b.deleteButton.Importance = widget.DangerImportance

	b.clearButton = widget.NewButtonWithIcon("Clear", theme.ContentClearIcon(), nil)
	b.clearButton.Importance = widget.LowImportance
}

func (b *ButtonBar) buildLayout() {
	b.container = container.NewCenter(
		container.NewHBox(
			b.addButton,
			b.updateButton,
			b.deleteButton,
			b.clearButton,
		),
	)
}

// setupEventHandlers connects button events
func (b *ButtonBar) setupEventHandlers() {
	b.addButton.OnTapped = func() {
		if b.addHandler != nil {
			b.addHandler()
		}
	}

	b.updateButton.OnTapped = func() {
		if b.updateHandler != nil {
			b.updateHandler()
		}
	}

	b.deleteButton.OnTapped = func() {
		if b.deleteHandler != nil {
			b.deleteHandler()
		}
	}

	b.clearButton.OnTapped = func() {
		if b.clearHandler != nil {
			b.clearHandler()
		}
	}
}

func (b *ButtonBar) SetAddHandler(handler func()) {
	b.addHandler = handler
}

func (b *ButtonBar) SetUpdateHandler(handler func()) {
	b.updateHandler = handler
}

func (b *ButtonBar) SetDeleteHandler(handler func()) {
	b.deleteHandler = handler
}

func (b *ButtonBar) SetClearHandler(handler func()) {
	b.clearHandler = handler
}

// Buttons returns add, update, delete and clear in display order.
func (b *ButtonBar) Buttons() [4]*widget.Button {
	return [4]*widget.Button{b.addButton, b.updateButton, b.deleteButton, b.clearButton}
}

// GetContainer returns the button bar container
func (b *ButtonBar) GetContainer() *fyne.Container {
	return b.container
}
