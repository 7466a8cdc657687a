package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// FormEntry is a text input that passes window-level accelerators to its
// owner. Focused widgets receive shortcuts before the canvas does, so a
// plain Entry would swallow them.
type FormEntry struct {
	widget.Entry

	accelerator fyne.Shortcut
	onAccel     func()
}

func newFormEntry(placeholder string) *FormEntry {
	e := &FormEntry{}
	e.ExtendBaseWidget(e)
	e.SetPlaceHolder(placeholder)
	return e
}

// TypedShortcut runs the owner's handler for the accelerator and leaves
// copy, paste and the rest to the Entry.
func (e *FormEntry) TypedShortcut(shortcut fyne.Shortcut) {
	if e.accelerator != nil && e.onAccel != nil &&
		shortcut.ShortcutName() == e.accelerator.ShortcutName() {
		e.onAccel()
		return
	}
	e.Entry.TypedShortcut(shortcut)
}

// EntryForm holds the three labeled student inputs.
type EntryForm struct {
	form       *widget.Form
	idEntry    *FormEntry
	nameEntry  *FormEntry
	gradeEntry *FormEntry
}

// NewEntryForm creates the ID, Name and Grade inputs
func NewEntryForm() *EntryForm {
	f := &EntryForm{}
	f.createComponents()
	f.buildLayout()
	return f
}

func (f *EntryForm) createComponents() {
	f.idEntry = newFormEntry("e.g. 1024")
	f.nameEntry = newFormEntry("Full name")
	f.gradeEntry = newFormEntry("e.g. A+")
}

func (f *EntryForm) buildLayout() {
	f.form = widget.NewForm(
		widget.NewFormItem("Student ID:", f.idEntry),
		widget.NewFormItem("Name:", f.nameEntry),
		widget.NewFormItem("Grade:", f.gradeEntry),
	)
}

// SetShortcut makes shortcut run handler while any input has focus.
func (f *EntryForm) SetShortcut(shortcut fyne.Shortcut, handler func()) {
	for _, e := range f.Entries() {
		e.accelerator = shortcut
		e.onAccel = handler
	}
}

// Values returns the raw text of the inputs, untrimmed.
func (f *EntryForm) Values() (id, name, grade string) {
	return f.idEntry.Text, f.nameEntry.Text, f.gradeEntry.Text
}

func (f *EntryForm) SetValues(id, name, grade string) {
	f.idEntry.SetText(id)
	f.nameEntry.SetText(name)
	f.gradeEntry.SetText(grade)
}

func (f *EntryForm) Clear() {
	f.SetValues("", "", "")
}

// Entries exposes the inputs in column order.
func (f *EntryForm) Entries() [3]*FormEntry {
	return [3]*FormEntry{f.idEntry, f.nameEntry, f.gradeEntry}
}

func (f *EntryForm) GetContainer() fyne.CanvasObject {
	return f.form
}
