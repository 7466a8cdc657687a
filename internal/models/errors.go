package models

import (
	"fmt"
	"strings"
)

// ValidationError means one or more input fields were blank.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "please fill all fields"
	}
	return fmt.Sprintf("please fill all fields (missing: %s)", strings.Join(e.Fields, ", "))
}

// NoSelectionError means an action needing a selected row ran without one.
type NoSelectionError struct {
	Action string
}

func (e *NoSelectionError) Error() string {
	return "please select a student to " + e.Action
}

// IndexError is returned by Roster for an index outside the sequence.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("roster index %d out of range [0,%d)", e.Index, e.Len)
}
