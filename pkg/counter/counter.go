// Package counter provides a saturating unsigned counter.
//
// A Saturating counter stops at the maximum value of its type instead of
// wrapping around. Once there, the value means "at least this many".
package counter

import "golang.org/x/exp/constraints"

// Max returns the largest value representable by T.
func Max[T constraints.Unsigned]() T {
	return ^T(0)
}

// Saturating counts up to Max[T] and then stays there.
// The zero value is a counter at zero, ready to use.
type Saturating[T constraints.Unsigned] struct {
	n T
}

// Inc adds one to the counter. It reports false, leaving the value
// unchanged, when the counter was already saturated.
func (c *Saturating[T]) Inc() bool {
	if c.n == Max[T]() {
		return false
	}
	c.n++
	return true
}

// Value returns the current count.
func (c *Saturating[T]) Value() T {
	return c.n
}

// Saturated reports whether the counter reached Max[T].
func (c *Saturating[T]) Saturated() bool {
	return c.n == Max[T]()
}
