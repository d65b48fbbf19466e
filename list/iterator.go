package list

import "iter"

// Iterator is a forward cursor over a list.
// Each traversal owns its Iterator, so passes over the same list may nest.
//
// The current element may be removed with List.RemoveElem without
// disturbing the iterator. Other changes to the list during a pass
// are not allowed.
type Iterator[V any] struct {
	cur, next *Element[V]
}

// Iter returns an iterator positioned before the first element of l.
func (l *List[V]) Iter() *Iterator[V] {
	return &Iterator[V]{next: l.head}
}

// Next advances the iterator and reports whether an element is available.
func (it *Iterator[V]) Next() bool {
	it.cur = it.next
	if it.cur == nil {
		return false
	}
	it.next = it.cur.next
	return true
}

// Element returns the current element.
// It is valid only after Next returned true.
func (it *Iterator[V]) Element() *Element[V] {
	return it.cur
}

// Value returns the value of the current element.
// It is valid only after Next returned true.
func (it *Iterator[V]) Value() V {
	return it.cur.Value
}

// All returns an iterator over the values of l in forward order.
func (l *List[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for it := l.Iter(); it.Next(); {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Backward returns an iterator over the values of l in reverse order.
func (l *List[V]) Backward() iter.Seq[V] {
	return func(yield func(V) bool) {
		for e := l.tail; e != nil; e = e.prev {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Elements returns an iterator over the indexed elements of l in forward order.
func (l *List[V]) Elements() iter.Seq2[int, *Element[V]] {
	return func(yield func(int, *Element[V]) bool) {
		i := 0
		for it := l.Iter(); it.Next(); i++ {
			if !yield(i, it.Element()) {
				return
			}
		}
	}
}
