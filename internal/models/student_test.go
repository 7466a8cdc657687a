package models

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Student", func() {
	It("should trim surrounding whitespace", func() {
		s := NewStudent("  1 ", "\tAlice", "A\n")

		Expect(s).To(Equal(Student{ID: "1", Name: "Alice", Grade: "A"}))
	})

	It("should accept three non-blank fields", func() {
		Expect(NewStudent("1", "Alice", "A").Validate()).To(Succeed())
	})

	It("should report every blank field in column order", func() {
		err := Student{ID: "", Name: "Bob", Grade: "   "}.Validate()

		var verr *ValidationError
		Expect(err).To(BeAssignableToTypeOf(verr))
		Expect(err).To(MatchError(ContainSubstring("please fill all fields")))
		verr = err.(*ValidationError)
		Expect(verr.Fields).To(Equal([]string{"id", "grade"}))
	})

	It("should treat whitespace-only values as blank", func() {
		err := Student{ID: " ", Name: "\t", Grade: "\n"}.Validate()

		Expect(err).To(HaveOccurred())
		Expect(err.(*ValidationError).Fields).To(Equal([]string{"id", "name", "grade"}))
	})

	It("should expose cells in column order", func() {
		Expect(NewStudent("2", "Bob", "B").Cells()).To(Equal([3]string{"2", "Bob", "B"}))
	})
})
