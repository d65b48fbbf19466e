package list_test

import (
	"github.com/mgnsk/dlist/list"
	. "github.com/mgnsk/dlist/internal/testing"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("constructing lists", func() {
	DescribeTable("length and order follow the source",
		func(values []int) {
			l := list.FromSlice(values)

			Expect(l.Len()).To(Equal(len(values)))
			Expect(l.Values()).To(HaveLen(len(values)))
			for i, v := range l.Values() {
				Expect(v).To(Equal(values[i]))
			}
			ExpectValidList(Default, l)
		},
		Entry("no values", []int{}),
		Entry("one value", []int{7}),
		Entry("many values", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}),
	)
})

var _ = Describe("mutating lists", func() {
	var l *list.List[int]

	BeforeEach(func() {
		l = list.New(list.WithValues(0, 1, 2, 3, 4))
	})

	AfterEach(func() {
		ExpectValidList(Default, l)
	})

	When("an element is removed from the middle", func() {
		Specify("its neighbours are linked together", func() {
			_, err := l.Remove(2)
			Expect(err).NotTo(HaveOccurred())

			Expect(l.Values()).To(Equal([]int{0, 1, 3, 4}))
			Expect(l.Len()).To(Equal(4))
			Expect(l.Front().Next().Next().Value).To(Equal(3))
		})
	})

	When("a value is appended", func() {
		Specify("it becomes the new tail", func() {
			oldTail := l.Back()

			newTail := l.PushBack(5)

			Expect(l.Len()).To(Equal(6))
			Expect(l.Back().Value).To(Equal(5))
			Expect(oldTail.Next()).To(BeIdenticalTo(newTail))
			Expect(newTail.Prev()).To(BeIdenticalTo(oldTail))
		})
	})

	When("the index is out of range", func() {
		DescribeTable("the list is left unchanged",
			func(op func() error) {
				Expect(op()).To(MatchError(list.ErrIndexOutOfRange))
				Expect(l.Values()).To(Equal([]int{0, 1, 2, 3, 4}))
			},
			Entry("insert at -1", func() error {
				_, err := l.Insert(9, -1)
				return err
			}),
			Entry("insert past length", func() error {
				_, err := l.Insert(9, l.Len()+1)
				return err
			}),
			Entry("remove at -1", func() error {
				_, err := l.Remove(-1)
				return err
			}),
			Entry("remove at length", func() error {
				_, err := l.Remove(l.Len())
				return err
			}),
		)
	})
})

var _ = Describe("removing from an empty list", func() {
	Specify("it fails with a bounds error", func() {
		empty := list.New[int]()

		_, err := empty.Remove(0)
		Expect(err).To(MatchError(list.ErrIndexOutOfRange))
		Expect(empty.Len()).To(BeZero())
	})
})

var _ = Describe("combining lists", func() {
	Specify("concatenation appends the second list's values", func() {
		l1 := list.New(list.WithValues(1, 2, 3))
		l2 := list.New(list.WithValues(4, 5, 6))

		l3, err := l1.Concat(l2)
		Expect(err).NotTo(HaveOccurred())

		Expect(l3.Len()).To(Equal(6))
		Expect(l3.Values()).To(Equal([]int{1, 2, 3, 4, 5, 6}))
		ExpectValidList(Default, l3)
	})

	Specify("reversing twice restores the value order", func() {
		l := list.New(list.WithValues(1, 2, 3))

		Expect(l.Reverse().Reverse().Values()).To(Equal(l.Values()))
	})
})
