package controllers

// RosterView is the presentation the controller drives. Rows are a
// projection of the roster: the controller pushes every change so row i
// always shows record i.
type RosterView interface {
	// Fields returns the raw contents of the three input fields.
	Fields() (id, name, grade string)
	SetFields(id, name, grade string)
	ClearFields()
	ClearSelection()

	AppendRow(cells [3]string)
	UpdateRow(index int, cells [3]string)
	RemoveRow(index int)

	// ShowError reports err to the user in a modal message.
	ShowError(title string, err error)
}

// InteractiveView is a RosterView that also raises user events.
type InteractiveView interface {
	RosterView

	SetAddHandler(handler func())
	SetUpdateHandler(handler func())
	SetDeleteHandler(handler func())
	SetClearHandler(handler func())
	SetRowSelectedHandler(handler func(int))
	SetRowUnselectedHandler(handler func(int))
}
