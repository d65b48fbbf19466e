package main

import (
	"fmt"

	"github.com/mgnsk/dlist/list"
	"github.com/sirkon/errors"
)

func main() {
	l := list.New(list.WithValues(0, 1, 2, 3, 4))

	if _, err := l.Remove(2); err != nil {
		panic(err)
	}

	if _, err := l.Insert(10, 1); err != nil {
		panic(err)
	}

	// Bounds are half-open: inserting at Len() appends, removing at Len() fails.
	if _, err := l.Remove(l.Len()); errors.Is(err, list.ErrIndexOutOfRange) {
		fmt.Println("remove:", err)
	}

	other := list.New(list.WithValues(5, 6))

	combined, err := l.Concat(other)
	if err != nil {
		panic(err)
	}

	for v := range combined.Reverse().All() {
		fmt.Println(v)
	}
}
