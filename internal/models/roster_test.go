package models

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Roster", func() {
	var (
		r     *Roster
		alice = Student{ID: "1", Name: "Alice", Grade: "A"}
		bob   = Student{ID: "2", Name: "Bob", Grade: "B"}
		carol = Student{ID: "3", Name: "Carol", Grade: "C"}
	)

	BeforeEach(func() {
		r = NewRoster()
	})

	It("should start empty", func() {
		Expect(r.Len()).To(Equal(0))
		Expect(r.Students()).To(BeEmpty())
	})

	It("should keep insertion order", func() {
		Expect(r.Append(alice)).To(Equal(0))
		Expect(r.Append(bob)).To(Equal(1))

		Expect(r.Students()).To(Equal([]Student{alice, bob}))
	})

	It("should replace in place", func() {
		r.Append(alice)
		r.Append(bob)

		alicia := Student{ID: "1", Name: "Alicia", Grade: "A+"}
		Expect(r.Replace(0, alicia)).To(Succeed())

		Expect(r.Len()).To(Equal(2))
		Expect(r.Students()).To(Equal([]Student{alicia, bob}))
	})

	It("should shift later records up on remove", func() {
		r.Append(alice)
		r.Append(bob)
		r.Append(carol)

		removed, err := r.Remove(1)
		Expect(err).NotTo(HaveOccurred())
		Expect(removed).To(Equal(bob))
		Expect(r.Students()).To(Equal([]Student{alice, carol}))

		s, err := r.At(1)
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(Equal(carol))
	})

	It("should reject out-of-range indexes without changing anything", func() {
		r.Append(alice)

		Expect(r.Replace(1, bob)).To(MatchError(&IndexError{Index: 1, Len: 1}))
		_, err := r.Remove(-1)
		Expect(err).To(HaveOccurred())
		_, err = r.At(5)
		Expect(err).To(HaveOccurred())

		Expect(r.Students()).To(Equal([]Student{alice}))
	})

	It("should accept duplicate ids", func() {
		r.Append(alice)
		Expect(r.ContainsID("1")).To(BeTrue())
		Expect(r.ContainsID("2")).To(BeFalse())

		r.Append(Student{ID: "1", Name: "Another", Grade: "B"})
		Expect(r.Len()).To(Equal(2))
	})

	It("should hand out copies", func() {
		r.Append(alice)

		out := r.Students()
		out[0].Name = "Mallory"

		s, _ := r.At(0)
		Expect(s.Name).To(Equal("Alice"))
	})
})
