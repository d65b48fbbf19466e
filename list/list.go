package list

// List is a doubly linked list.
//
// The zero value is a ready to use empty list.
// A List is not safe for concurrent use, callers must serialize access to it.
type List[V any] struct {
	head, tail *Element[V]
	len        int
}

// New creates a list and appends the values of each option in order.
func New[V any](opts ...Option[V]) *List[V] {
	var o listOptions[V]
	for _, opt := range opts {
		opt.apply(&o)
	}

	l := &List[V]{}
	for _, seq := range o.sources {
		for v := range seq {
			l.PushBack(v)
		}
	}

	return l
}

// FromSlice creates a list holding values in slice order.
func FromSlice[V any](values []V) *List[V] {
	return New(WithValues(values...))
}

// Init clears list l and detaches all of its elements.
func (l *List[V]) Init() *List[V] {
	for e := l.head; e != nil; {
		next := e.next
		e.next = nil
		e.prev = nil
		e.list = nil
		e = next
	}

	l.head = nil
	l.tail = nil
	l.len = 0

	return l
}

// Len returns the number of elements in the list.
func (l *List[V]) Len() int {
	return l.len
}

// Front returns the first element of the list or nil.
func (l *List[V]) Front() *Element[V] {
	return l.head
}

// Back returns the last element of the list or nil.
func (l *List[V]) Back() *Element[V] {
	return l.tail
}

// PushBack inserts a value at the back of list l and returns the new element.
func (l *List[V]) PushBack(value V) *Element[V] {
	e := NewElement(value)
	l.pushBack(e)
	return e
}

// PushBackElem links a detached element at the back of list l.
// It panics if e already belongs to a list.
func (l *List[V]) PushBackElem(e *Element[V]) {
	mustBeDetached(e)
	l.pushBack(e)
}

// PushFront inserts a value at the front of list l and returns the new element.
func (l *List[V]) PushFront(value V) *Element[V] {
	e := NewElement(value)
	l.pushFront(e)
	return e
}

// Insert inserts a value before the element at index, or at the back
// when index equals l.Len(). The list is left unchanged on error.
func (l *List[V]) Insert(value V, index int) (*Element[V], error) {
	if index < 0 || index > l.len {
		return nil, errIndex("insert", index, l.len)
	}

	e := NewElement(value)
	l.insert(e, index)

	return e, nil
}

// InsertElem is like Insert but links a detached element.
// It panics if e already belongs to a list.
func (l *List[V]) InsertElem(e *Element[V], index int) error {
	if index < 0 || index > l.len {
		return errIndex("insert", index, l.len)
	}

	mustBeDetached(e)
	l.insert(e, index)

	return nil
}

// At returns the element at index.
func (l *List[V]) At(index int) (*Element[V], error) {
	if index < 0 || index >= l.len {
		return nil, errIndex("at", index, l.len)
	}

	return l.at(index), nil
}

// Remove removes the element at index and returns its value.
// The list is left unchanged on error.
func (l *List[V]) Remove(index int) (V, error) {
	if index < 0 || index >= l.len {
		var zero V
		return zero, errIndex("remove", index, l.len)
	}

	e := l.at(index)
	l.remove(e)

	return e.Value, nil
}

// RemoveElem removes an element from the list and returns its value.
// It panics if e does not belong to l.
func (l *List[V]) RemoveElem(e *Element[V]) V {
	if e.list != l {
		panic("list: element not in list")
	}

	l.remove(e)

	return e.Value
}

// Reverse returns a new list holding the values of l in reverse order.
func (l *List[V]) Reverse() *List[V] {
	r := &List[V]{}
	for e := l.tail; e != nil; e = e.prev {
		r.PushBack(e.Value)
	}
	return r
}

// ReverseInPlace reverses the order of the elements of l without allocating.
func (l *List[V]) ReverseInPlace() {
	for e := l.head; e != nil; e = e.prev {
		e.next, e.prev = e.prev, e.next
	}
	l.head, l.tail = l.tail, l.head
}

// Concat returns a new list holding the values of l followed by the values of other.
// Neither list is modified.
func (l *List[V]) Concat(other *List[V]) (*List[V], error) {
	if other == nil {
		return nil, errOperand("concat")
	}

	r := &List[V]{}
	for e := l.head; e != nil; e = e.next {
		r.PushBack(e.Value)
	}
	for e := other.head; e != nil; e = e.next {
		r.PushBack(e.Value)
	}

	return r, nil
}

// Values returns the values of the list in forward order.
func (l *List[V]) Values() []V {
	values := make([]V, 0, l.len)
	for e := l.head; e != nil; e = e.next {
		values = append(values, e.Value)
	}
	return values
}

// Do calls function f on each element of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[V]) Do(f func(e *Element[V]) bool) {
	for e := l.head; e != nil; e = e.next {
		if !f(e) {
			return
		}
	}
}

func (l *List[V]) pushBack(e *Element[V]) {
	e.list = l
	if l.tail == nil {
		l.head = e
	} else {
		l.tail.linkAfter(e)
	}
	l.tail = e
	l.len++
}

func (l *List[V]) pushFront(e *Element[V]) {
	e.list = l
	if l.head == nil {
		l.tail = e
	} else {
		l.head.linkBefore(e)
	}
	l.head = e
	l.len++
}

// insert links e at index, which must be within [0, l.len].
func (l *List[V]) insert(e *Element[V], index int) {
	switch index {
	case 0:
		l.pushFront(e)

	case l.len:
		l.pushBack(e)

	default:
		// The predecessor always has a successor here, so tail is unchanged.
		e.list = l
		l.at(index - 1).linkAfter(e)
		l.len++
	}
}

// at walks to index from the closer end. index must be within [0, l.len).
func (l *List[V]) at(index int) *Element[V] {
	if index < l.len/2 {
		e := l.head
		for i := 0; i < index; i++ {
			e = e.next
		}
		return e
	}

	e := l.tail
	for i := l.len - 1; i > index; i-- {
		e = e.prev
	}
	return e
}

func (l *List[V]) remove(e *Element[V]) {
	if e == l.head {
		l.head = e.next
	}
	if e == l.tail {
		l.tail = e.prev
	}
	e.unlink()
	l.len--
}

func mustBeDetached[V any](e *Element[V]) {
	if e.list != nil || e.next != nil || e.prev != nil {
		panic("list: element already linked")
	}
}
