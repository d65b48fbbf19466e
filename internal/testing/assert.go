package testing

import (
	"testing"

	"github.com/mgnsk/dlist/list"
	"github.com/onsi/gomega"
	"github.com/sirkon/deepequal"
)

// AssertValues asserts that the list holds exactly values in forward order.
func AssertValues[V any](t *testing.T, l *list.List[V], values ...V) {
	t.Helper()

	if values == nil {
		values = []V{}
	}

	AssertEqual(t, "list values", values, l.Values())
}

// AssertEqual asserts that values are deeply equal.
func AssertEqual[T any](t *testing.T, name string, want, got T) {
	t.Helper()

	if !deepequal.Equal(want, got) {
		deepequal.SideBySide(t, name, want, got)
		t.FailNow()
	}
}

// ExpectValidList asserts the structural invariants of l: head and tail
// agree with the length, links are symmetric and both walks visit
// exactly Len() elements.
func ExpectValidList[V any](g gomega.Gomega, l *list.List[V]) {
	if l.Len() == 0 {
		g.Expect(l.Front()).To(gomega.BeNil())
		g.Expect(l.Back()).To(gomega.BeNil())
		return
	}

	g.Expect(l.Front()).NotTo(gomega.BeNil())
	g.Expect(l.Back()).NotTo(gomega.BeNil())
	g.Expect(l.Front().Prev()).To(gomega.BeNil())
	g.Expect(l.Back().Next()).To(gomega.BeNil())

	if l.Len() == 1 {
		g.Expect(l.Front()).To(gomega.BeIdenticalTo(l.Back()))
	}

	{
		n := 1
		e := l.Front()
		for ; e.Next() != nil; e = e.Next() {
			g.Expect(e.Next().Prev()).To(gomega.BeIdenticalTo(e))
			n++
			g.Expect(n).To(gomega.BeNumerically("<=", l.Len()), "forward walk is longer than the list")
		}
		g.Expect(e).To(gomega.BeIdenticalTo(l.Back()))
		g.Expect(n).To(gomega.Equal(l.Len()))
	}

	{
		n := 1
		e := l.Back()
		for ; e.Prev() != nil; e = e.Prev() {
			g.Expect(e.Prev().Next()).To(gomega.BeIdenticalTo(e))
			n++
			g.Expect(n).To(gomega.BeNumerically("<=", l.Len()), "backward walk is longer than the list")
		}
		g.Expect(e).To(gomega.BeIdenticalTo(l.Front()))
		g.Expect(n).To(gomega.Equal(l.Len()))
	}
}
