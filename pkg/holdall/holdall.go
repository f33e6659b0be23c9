// Package holdall implements an append-only ordered collection with a
// deferred stable sort and callback traversals.
//
// A List only owns its linkage. Whatever its elements refer to stays owned
// by the caller and must be released by the caller, before or after
// Dispose.
package holdall

import (
	"errors"
	"iter"
)

// Stop can be returned by a traversal callback to end the traversal
// early. The traversal then returns nil.
var Stop = errors.New("holdall: stop traversal")

type node[T any] struct {
	value T
	next  *node[T]
}

// List is a singly linked sequence kept in insertion order until sorted.
// The zero value is an empty list ready to use.
type List[T any] struct {
	head  *node[T]
	tail  *node[T]
	count int
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Append adds v at the tail of the list.
func (l *List[T]) Append(v T) {
	n := &node[T]{value: v}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.count++
}

// Count returns the number of elements.
func (l *List[T]) Count() int {
	return l.count
}

// All returns an iterator over the elements in their current order.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := l.head; p != nil; p = p.next {
			if !yield(p.value) {
				return
			}
		}
	}
}

// ForEach calls fn on every element in order. It stops at the first
// non-nil error and returns it, unless that error is Stop.
func (l *List[T]) ForEach(fn func(T) error) error {
	for v := range l.All() {
		if err := fn(v); err != nil {
			return done(err)
		}
	}
	return nil
}

// Transform pairs every element of seq with fn(ctx, element). fn is
// called lazily, right before the pair is yielded.
func Transform[T, C, R any](seq iter.Seq[T], ctx C, fn func(C, T) R) iter.Seq2[T, R] {
	return func(yield func(T, R) bool) {
		for v := range seq {
			if !yield(v, fn(ctx, v)) {
				return
			}
		}
	}
}

// ForEachTransformed computes transform(ctx, e) for each element e, then
// hands e and the result to consume. It stops at the first non-nil error
// returned by consume, like ForEach.
func ForEachTransformed[T, C, R any](l *List[T], ctx C, transform func(C, T) R, consume func(T, R) error) error {
	for v, r := range Transform(l.All(), ctx, transform) {
		if err := consume(v, r); err != nil {
			return done(err)
		}
	}
	return nil
}

// ForEachTransformed2 is ForEachTransformed with a second context handed
// to consume.
func ForEachTransformed2[T, C1, R, C2 any](l *List[T], ctx1 C1, transform func(C1, T) R, ctx2 C2, consume func(C2, T, R) error) error {
	return ForEachTransformed(l, ctx1, transform, func(v T, r R) error {
		return consume(ctx2, v, r)
	})
}

// Dispose drops the list linkage. Elements are left alone.
func (l *List[T]) Dispose() {
	for p := l.head; p != nil; {
		next := p.next
		p.next = nil
		p = next
	}
	l.head, l.tail, l.count = nil, nil, 0
}

func done(err error) error {
	if errors.Is(err, Stop) {
		return nil
	}
	return err
}
