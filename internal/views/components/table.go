package components

import (
	"student-roster/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

var columnWidths = [3]float32{120, 280, 100}

// StudentTable renders roster rows under an ID / Name / Grade header.
// Rows are pushed in by the owner; the table never reads the roster.
type StudentTable struct {
	table *widget.Table
	rows  [][3]string

	rowSelectedHandler   func(int)
	rowUnselectedHandler func(int)
}

// NewStudentTable creates an empty table
func NewStudentTable() *StudentTable {
	st := &StudentTable{}
	st.createComponents()
	st.setupEventHandlers()
	return st
}

func (st *StudentTable) createComponents() {
	st.table = widget.NewTableWithHeaders(
		func() (int, int) {
			return len(st.rows), len(models.Columns)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TableCellID, cell fyne.CanvasObject) {
			label := cell.(*widget.Label)
			if id.Row < 0 || id.Row >= len(st.rows) {
				label.SetText("")
				return
			}
			label.SetText(st.rows[id.Row][id.Col])
		},
	)
	st.table.ShowHeaderColumn = false
	st.table.CreateHeader = func() fyne.CanvasObject {
		label := widget.NewLabel("")
		label.TextStyle = fyne.TextStyle{Bold: true}
		return label
	}
	st.table.UpdateHeader = func(id widget.TableCellID, cell fyne.CanvasObject) {
		label := cell.(*widget.Label)
		if id.Row < 0 && id.Col >= 0 && id.Col < len(models.Columns) {
			label.SetText(models.Columns[id.Col])
			return
		}
		label.SetText("")
	}

	for col, width := range columnWidths {
		st.table.SetColumnWidth(col, width)
	}
}

func (st *StudentTable) setupEventHandlers() {
	st.table.OnSelected = func(id widget.TableCellID) {
		if id.Row < 0 || id.Row >= len(st.rows) {
			return
		}
		if st.rowSelectedHandler != nil {
			st.rowSelectedHandler(id.Row)
		}
	}

	st.table.OnUnselected = func(id widget.TableCellID) {
		if id.Row < 0 {
			return
		}
		if st.rowUnselectedHandler != nil {
			st.rowUnselectedHandler(id.Row)
		}
	}
}

func (st *StudentTable) SetRowSelectedHandler(handler func(int)) {
	st.rowSelectedHandler = handler
}

func (st *StudentTable) SetRowUnselectedHandler(handler func(int)) {
	st.rowUnselectedHandler = handler
}

// AppendRow adds a row at the bottom.
func (st *StudentTable) AppendRow(cells [3]string) {
	st.rows = append(st.rows, cells)
	st.table.Refresh()
}

// UpdateRow rewrites the three cells of row index.
func (st *StudentTable) UpdateRow(index int, cells [3]string) {
	if index < 0 || index >= len(st.rows) {
		return
	}
	st.rows[index] = cells
	st.table.Refresh()
}

// RemoveRow drops row index; later rows move up by one.
func (st *StudentTable) RemoveRow(index int) {
	if index < 0 || index >= len(st.rows) {
		return
	}
	st.rows = append(st.rows[:index], st.rows[index+1:]...)
	st.table.Refresh()
}

// SelectRow highlights index as if the user had clicked its first cell.
func (st *StudentTable) SelectRow(index int) {
	st.table.Select(widget.TableCellID{Row: index, Col: 0})
}

func (st *StudentTable) UnselectAll() {
	st.table.UnselectAll()
}

// Rows returns a copy of the displayed rows.
func (st *StudentTable) Rows() [][3]string {
	out := make([][3]string, len(st.rows))
	copy(out, st.rows)
	return out
}

func (st *StudentTable) RowCount() int {
	return len(st.rows)
}

func (st *StudentTable) GetContainer() fyne.CanvasObject {
	return st.table
}
