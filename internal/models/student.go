package models

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Column headers of the roster table, in cell order.
var Columns = [3]string{"ID", "Name", "Grade"}

// Student is a single roster record. All fields are free-form text.
type Student struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Grade string `json:"grade" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	return v
}

// NewStudent builds a record from raw input, trimming surrounding whitespace.
func NewStudent(id, name, grade string) Student {
	return Student{
		ID:    strings.TrimSpace(id),
		Name:  strings.TrimSpace(name),
		Grade: strings.TrimSpace(grade),
	}
}

// Validate reports every blank field. Whitespace-only values count as blank.
func (s Student) Validate() error {
	err := validate.Struct(NewStudent(s.ID, s.Name, s.Grade))
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	verr := &ValidationError{}
	for _, fe := range fieldErrs {
		verr.Fields = append(verr.Fields, fe.Field())
	}
	return verr
}

// Cells returns the table cell values in column order.
func (s Student) Cells() [3]string {
	return [3]string{s.ID, s.Name, s.Grade}
}
