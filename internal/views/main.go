package views

import (
	"fmt"

	"student-roster/internal/logger"
	"student-roster/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const component = "MainView"

// AddShortcut is the accelerator that submits the form as a new student.
var AddShortcut = &desktop.CustomShortcut{
	KeyName:  fyne.KeyS,
	Modifier: fyne.KeyModifierShortcutDefault,
}

// MainView is the roster window: inputs on top, table in the middle,
// actions and status at the bottom.
type MainView struct {
	// UI Components
	window        fyne.Window
	mainContainer *fyne.Container
	form          *components.EntryForm
	table         *components.StudentTable
	buttons       *components.ButtonBar
	statusBar     *components.StatusBar

	logger logger.Logger

	// Event handlers - connected to controller
	addHandler           func()
	updateHandler        func()
	deleteHandler        func()
	clearHandler         func()
	rowSelectedHandler   func(int)
	rowUnselectedHandler func(int)
}

// NewMainView builds the roster UI into window
func NewMainView(window fyne.Window, log logger.Logger) *MainView {
	if log == nil {
		log = logger.Nop{}
	}
	view := &MainView{
		window: window,
		logger: log,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()
	view.setupShortcuts()

	return view
}

// initializeComponents creates all UI components
func (mv *MainView) initializeComponents() {
	mv.form = components.NewEntryForm()
	mv.table = components.NewStudentTable()
	mv.buttons = components.NewButtonBar()
	mv.statusBar = components.NewStatusBar()
	mv.statusBar.SetHint("Ctrl/Cmd+S adds a student")
}

// buildLayout constructs the main layout
func (mv *MainView) buildLayout() {
	bottomArea := container.NewVBox(
		mv.buttons.GetContainer(),
		mv.statusBar.GetContainer(),
	)

	mv.mainContainer = container.NewBorder(
		mv.form.GetContainer(),
		bottomArea,
		nil,
		nil,
		mv.table.GetContainer(),
	)

	mv.window.SetContent(container.NewPadded(mv.mainContainer))
}

// setupEventHandlers connects internal component events
func (mv *MainView) setupEventHandlers() {
	mv.buttons.SetAddHandler(func() { mv.fire(mv.addHandler) })
	mv.buttons.SetUpdateHandler(func() { mv.fire(mv.updateHandler) })
	mv.buttons.SetDeleteHandler(func() { mv.fire(mv.deleteHandler) })
	mv.buttons.SetClearHandler(func() { mv.fire(mv.clearHandler) })

	mv.table.SetRowSelectedHandler(func(row int) {
		if mv.rowSelectedHandler != nil {
			mv.rowSelectedHandler(row)
		}
	})
	mv.table.SetRowUnselectedHandler(func(row int) {
		if mv.rowUnselectedHandler != nil {
			mv.rowUnselectedHandler(row)
		}
	})
}

// setupShortcuts binds the add accelerator for the whole window: the canvas
// handles it when nothing editable has focus, the inputs when one does.
func (mv *MainView) setupShortcuts() {
	mv.window.Canvas().AddShortcut(AddShortcut, mv.TypedShortcut)
	mv.form.SetShortcut(AddShortcut, func() { mv.TypedShortcut(AddShortcut) })
}

// TypedShortcut handles window-level accelerators.
func (mv *MainView) TypedShortcut(shortcut fyne.Shortcut) {
	if shortcut.ShortcutName() != AddShortcut.ShortcutName() {
		return
	}
	mv.logger.Debug(component, "add shortcut", nil)
	mv.fire(mv.addHandler)
}

func (mv *MainView) fire(handler func()) {
	if handler != nil {
		handler()
	}
}

// Event handler setters - called by controller

func (mv *MainView) SetAddHandler(handler func()) {
	mv.addHandler = handler
}

func (mv *MainView) SetUpdateHandler(handler func()) {
	mv.updateHandler = handler
}

func (mv *MainView) SetDeleteHandler(handler func()) {
	mv.deleteHandler = handler
}

func (mv *MainView) SetClearHandler(handler func()) {
	mv.clearHandler = handler
}

func (mv *MainView) SetRowSelectedHandler(handler func(int)) {
	mv.rowSelectedHandler = handler
}

func (mv *MainView) SetRowUnselectedHandler(handler func(int)) {
	mv.rowUnselectedHandler = handler
}

// UI update methods - called by controller

// Fields returns the raw input values
func (mv *MainView) Fields() (id, name, grade string) {
	return mv.form.Values()
}

// SetFields fills the inputs, typically from a selected row
func (mv *MainView) SetFields(id, name, grade string) {
	mv.form.SetValues(id, name, grade)
}

func (mv *MainView) ClearFields() {
	mv.form.Clear()
}

func (mv *MainView) ClearSelection() {
	mv.table.UnselectAll()
}

func (mv *MainView) AppendRow(cells [3]string) {
	mv.table.AppendRow(cells)
	mv.statusBar.SetCount(mv.table.RowCount())
	mv.statusBar.SetStatus(fmt.Sprintf("Added %s", cells[1]))
}

func (mv *MainView) UpdateRow(index int, cells [3]string) {
	mv.table.UpdateRow(index, cells)
	mv.statusBar.SetStatus(fmt.Sprintf("Updated %s", cells[1]))
}

func (mv *MainView) RemoveRow(index int) {
	mv.table.RemoveRow(index)
	mv.statusBar.SetCount(mv.table.RowCount())
	mv.statusBar.SetStatus("Student deleted")
}

// ShowError displays a modal error dialog
func (mv *MainView) ShowError(title string, err error) {
	mv.logger.Debug(component, "showing error", map[string]interface{}{
		"title": title,
		"error": err.Error(),
	})
	content := container.NewHBox(
		widget.NewIcon(theme.ErrorIcon()),
		widget.NewLabel(err.Error()),
	)
	dialog.NewCustom(title, "OK", content, mv.window).Show()
}

// ShowConfirm displays a confirmation dialog
func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	dialog.ShowConfirm(title, message, callback, mv.window)
}

// Form returns the input form component
func (mv *MainView) Form() *components.EntryForm {
	return mv.form
}

// Table returns the student table component
func (mv *MainView) Table() *components.StudentTable {
	return mv.table
}

// Buttons returns the button bar component
func (mv *MainView) Buttons() *components.ButtonBar {
	return mv.buttons
}

// StatusBar returns the status bar component
func (mv *MainView) StatusBar() *components.StatusBar {
	return mv.statusBar
}
