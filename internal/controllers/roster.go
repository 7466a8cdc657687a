package controllers

import (
	"fmt"

	"student-roster/internal/logger"
	"student-roster/internal/models"
)

const component = "RosterController"

// NoSelection is the selected index when no row is selected.
const NoSelection = -1

// RosterController owns the roster and the current selection and keeps the
// view in step with both. All methods run on the UI event thread.
type RosterController struct {
	roster   *models.Roster
	selected int

	view   RosterView
	logger logger.Logger
}

func NewRosterController(roster *models.Roster, log logger.Logger) *RosterController {
	if roster == nil {
		roster = models.NewRoster()
	}
	if log == nil {
		log = logger.Nop{}
	}
	return &RosterController{
		roster:   roster,
		selected: NoSelection,
		logger:   log,
	}
}

// SetView attaches the view and replays the current roster into it.
func (rc *RosterController) SetView(view RosterView) {
	rc.view = view
	for _, s := range rc.roster.Students() {
		view.AppendRow(s.Cells())
	}
}

// Bind attaches view and routes its buttons, shortcut and row selection
// to the controller. Errors are already reported through the view.
func (rc *RosterController) Bind(view InteractiveView) {
	rc.SetView(view)

	view.SetAddHandler(func() { _ = rc.SubmitAdd() })
	view.SetUpdateHandler(func() { _ = rc.SubmitUpdate() })
	view.SetDeleteHandler(func() { _ = rc.Delete() })
	view.SetClearHandler(rc.Clear)
	view.SetRowSelectedHandler(rc.SelectRow)
	view.SetRowUnselectedHandler(rc.Unselect)
}

// Add appends a new record built from the given field values.
func (rc *RosterController) Add(id, name, grade string) error {
	student := models.NewStudent(id, name, grade)
	if err := student.Validate(); err != nil {
		return rc.fail("add", err)
	}

	if rc.roster.ContainsID(student.ID) {
		rc.logger.Warning(component, "duplicate student id accepted", map[string]interface{}{
			"id": student.ID,
		})
	}

	index := rc.roster.Append(student)
	if rc.view != nil {
		rc.view.AppendRow(student.Cells())
	}

	rc.logger.Info(component, "student added", map[string]interface{}{
		"index": index,
		"id":    student.ID,
		"count": rc.roster.Len(),
	})

	rc.Clear()
	return nil
}

// Update replaces the selected record in place.
func (rc *RosterController) Update(id, name, grade string) error {
	index := rc.selected
	if index == NoSelection {
		return rc.fail("update", &models.NoSelectionError{Action: "update"})
	}

	student := models.NewStudent(id, name, grade)
	if err := student.Validate(); err != nil {
		return rc.fail("update", err)
	}

	if err := rc.roster.Replace(index, student); err != nil {
		return rc.fail("update", err)
	}
	if rc.view != nil {
		rc.view.UpdateRow(index, student.Cells())
	}

	rc.logger.Info(component, "student updated", map[string]interface{}{
		"index": index,
		"id":    student.ID,
	})

	rc.Clear()
	return nil
}

// Delete removes the selected record.
func (rc *RosterController) Delete() error {
	index := rc.selected
	if index == NoSelection {
		return rc.fail("delete", &models.NoSelectionError{Action: "delete"})
	}

	removed, err := rc.roster.Remove(index)
	if err != nil {
		return rc.fail("delete", err)
	}
	if rc.view != nil {
		rc.view.RemoveRow(index)
	}

	rc.logger.Info(component, "student deleted", map[string]interface{}{
		"index": index,
		"id":    removed.ID,
		"count": rc.roster.Len(),
	})

	rc.Clear()
	return nil
}

// Clear empties the input fields and the selection. The roster is untouched.
func (rc *RosterController) Clear() {
	rc.selected = NoSelection
	if rc.view != nil {
		rc.view.ClearFields()
		rc.view.ClearSelection()
	}
}

// SelectRow marks index as selected and copies its record into the input
// fields. Editing the fields afterwards does not touch the roster.
func (rc *RosterController) SelectRow(index int) {
	student, err := rc.roster.At(index)
	if err != nil {
		rc.logger.Debug(component, "ignoring selection", map[string]interface{}{
			"index": index,
		})
		return
	}

	rc.selected = index
	if rc.view != nil {
		rc.view.SetFields(student.ID, student.Name, student.Grade)
	}
}

// Unselect forgets the selection without touching the fields.
func (rc *RosterController) Unselect(index int) {
	if rc.selected == index {
		rc.selected = NoSelection
	}
}

// SubmitAdd runs Add with the view's current field contents.
func (rc *RosterController) SubmitAdd() error {
	id, name, grade := rc.fields()
	return rc.Add(id, name, grade)
}

// SubmitUpdate runs Update with the view's current field contents.
func (rc *RosterController) SubmitUpdate() error {
	id, name, grade := rc.fields()
	return rc.Update(id, name, grade)
}

// Students returns a copy of the roster in display order.
func (rc *RosterController) Students() []models.Student {
	return rc.roster.Students()
}

func (rc *RosterController) Len() int {
	return rc.roster.Len()
}

// Selected returns the selected index or NoSelection.
func (rc *RosterController) Selected() int {
	return rc.selected
}

func (rc *RosterController) fields() (string, string, string) {
	if rc.view == nil {
		return "", "", ""
	}
	return rc.view.Fields()
}

// fail logs and reports err to the user, then hands it back to the caller.
func (rc *RosterController) fail(action string, err error) error {
	rc.logger.Warning(component, "action rejected", map[string]interface{}{
		"action": action,
		"reason": err.Error(),
	})
	if rc.view != nil {
		rc.view.ShowError("Error", err)
	}
	return fmt.Errorf("%s student: %w", action, err)
}
