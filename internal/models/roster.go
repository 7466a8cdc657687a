package models

// Roster is the ordered, in-memory sequence of student records. Order is
// insertion order; Replace and Remove address records by position.
//
// A Roster is owned by the UI thread and is not safe for concurrent use.
type Roster struct {
	students []Student
}

func NewRoster() *Roster {
	return &Roster{}
}

// Append adds s to the end and returns its index.
func (r *Roster) Append(s Student) int {
	r.students = append(r.students, s)
	return len(r.students) - 1
}

// Replace overwrites the record at index without moving it.
func (r *Roster) Replace(index int, s Student) error {
	if err := r.check(index); err != nil {
		return err
	}
	r.students[index] = s
	return nil
}

// Remove deletes the record at index; later records shift up by one.
func (r *Roster) Remove(index int) (Student, error) {
	if err := r.check(index); err != nil {
		return Student{}, err
	}
	removed := r.students[index]
	r.students = append(r.students[:index], r.students[index+1:]...)
	return removed, nil
}

func (r *Roster) At(index int) (Student, error) {
	if err := r.check(index); err != nil {
		return Student{}, err
	}
	return r.students[index], nil
}

func (r *Roster) Len() int {
	return len(r.students)
}

// Students returns a copy of the records in roster order.
func (r *Roster) Students() []Student {
	out := make([]Student, len(r.students))
	copy(out, r.students)
	return out
}

// ContainsID reports whether any record already uses id. Ids are labels,
// not keys, so this is informational only.
func (r *Roster) ContainsID(id string) bool {
	for _, s := range r.students {
		if s.ID == id {
			return true
		}
	}
	return false
}

func (r *Roster) check(index int) error {
	if index < 0 || index >= len(r.students) {
		return &IndexError{Index: index, Len: len(r.students)}
	}
	return nil
}
