package list

import "iter"

// Option is a list construction option.
type Option[V any] interface {
	apply(*listOptions[V])
}

type listOptions[V any] struct {
	sources []iter.Seq[V]
}

// WithValues option appends values to the new list in argument order.
func WithValues[V any](values ...V) Option[V] {
	return funcOption[V](func(opts *listOptions[V]) {
		opts.sources = append(opts.sources, func(yield func(V) bool) {
			for _, v := range values {
				if !yield(v) {
					return
				}
			}
		})
	})
}

// WithSeq option appends every value produced by seq to the new list.
//
// The sequence must be finite.
func WithSeq[V any](seq iter.Seq[V]) Option[V] {
	return funcOption[V](func(opts *listOptions[V]) {
		if seq != nil {
			opts.sources = append(opts.sources, seq)
		}
	})
}

type funcOption[V any] func(*listOptions[V])

func (o funcOption[V]) apply(opts *listOptions[V]) {
	o(opts)
}
