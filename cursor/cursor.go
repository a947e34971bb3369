// Package cursor provides reference forward cursors that satisfy the
// iterange endpoint contract: a position in a slice, and a counting
// cursor over an integer type. They double as the concrete types the
// traits package is exercised against.
package cursor

import (
	"golang.org/x/exp/constraints"

	"go.lepak.sg/itertraits/iterange"
)

// compile-time contract checks
func endpointCheck[I, E any, P iterange.Endpoint[I, E]]() {}

var (
	_ = endpointCheck[Slice[int], int, *Slice[int]]
	_ = endpointCheck[Count[int], int, *Count[int]]
)

// Slice is a forward position in a slice. The zero value is a position
// at the start of a nil slice. Copying a Slice copies the position;
// both copies see the same underlying elements.
type Slice[E any] struct {
	s []E
	i int
}

// First returns a cursor at the first element of s.
func First[E any](s []E) Slice[E] {
	return Slice[E]{s: s}
}

// Last returns a cursor one past the last element of s. It must not be
// dereferenced; it only serves as an end endpoint.
func Last[E any](s []E) Slice[E] {
	return Slice[E]{s: s, i: len(s)}
}

// At returns a cursor at index i of s.
func At[E any](s []E, i int) Slice[E] {
	return Slice[E]{s: s, i: i}
}

// Next advances the cursor by one element and returns the receiver.
// Advancing past the end endpoint is allowed but such a cursor must
// not be dereferenced.
func (c *Slice[E]) Next() *Slice[E] {
	c.i++
	return c
}

// Deref returns a pointer to the element the cursor is at. It panics
// on the one-past-the-end position, like any out-of-range access.
func (c *Slice[E]) Deref() *E {
	return &c.s[c.i]
}

// Index returns the cursor's position as a slice index.
func (c *Slice[E]) Index() int {
	return c.i
}

// Count is a cursor over the integers themselves: dereferencing yields
// the current value, stepping increments it. A pair of Counts is a
// half-open numeric interval.
type Count[N constraints.Integer] struct {
	n N
}

// Of returns a counting cursor at n.
func Of[N constraints.Integer](n N) Count[N] {
	return Count[N]{n: n}
}

// Next increments the cursor and returns the receiver.
func (c *Count[N]) Next() *Count[N] {
	c.n++
	return c
}

// Deref returns a pointer to the current value.
func (c *Count[N]) Deref() *N {
	return &c.n
}
