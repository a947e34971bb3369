// Package iterange provides a minimal range abstraction over a pair of
// same-typed forward cursors: a start endpoint, an end endpoint, and
// nothing else. It is the terminal artifact a qualifying cursor pair is
// packaged into for consumption by sequential traversal.
//
// Qualification is enforced positively, through the Endpoint
// constraint, instead of probing: instantiating New with a type that
// lacks a contract method is a compile error naming that method.
package iterange

import "reflect"

// Endpoint is the contract a range endpoint type must satisfy. The
// contract methods live on the pointer to the endpoint type, since
// Next advances the cursor in place:
//
//	Next() *I  // advance, returning the receiver
//	Deref() *E // pointer to the element the cursor is at
//
// Endpoint can only be used as a type constraint, not as a value type.
type Endpoint[I, E any] interface {
	*I
	Next() *I
	Deref() *E
}

// Range is an immutable pair of same-typed endpoints. Both are copied
// in at construction and never reassigned; a Range owns its endpoints
// and shares nothing with the values it was built from.
type Range[I any] struct {
	start, end I
}

// New builds a Range from copies of start and end. The endpoint type
// must satisfy the Endpoint contract; instantiating New with one that
// does not is a compile-time error.
//
// New does not check that end is reachable from start — like the
// cursor pair it packages, a Range is only as sensible as its
// endpoints.
func New[I, E any, P Endpoint[I, E]](start, end I) Range[I] {
	return Range[I]{start: start, end: end}
}

// Start returns a copy of the start endpoint.
func (r Range[I]) Start() I {
	return r.start
}

// End returns a copy of the end endpoint.
func (r Range[I]) End() I {
	return r.end
}

// Equal reports whether both endpoints of r and rhs compare equal
// pairwise. Equality is structural: endpoints holding pointers are
// followed into, so two cursors at the same position over equal data
// compare equal. Start is compared to start and end to end — a Range
// with reversed endpoints is not equal unless the endpoints coincide.
func (r Range[I]) Equal(rhs Range[I]) bool {
	return reflect.DeepEqual(r.start, rhs.start) &&
		reflect.DeepEqual(r.end, rhs.end)
}

// Walk steps a copy of r's start endpoint toward its end endpoint,
// calling f with a copy of each element along the way. If f returns
// false, the walk stops early. The end endpoint itself is never
// dereferenced.
//
// If the end endpoint is not reachable from the start endpoint, Walk
// does not terminate.
func Walk[I, E any, P Endpoint[I, E]](r Range[I], f func(E) bool) {
	cur := r.start
	for !reflect.DeepEqual(cur, r.end) {
		if !f(*P(&cur).Deref()) {
			return
		}
		P(&cur).Next()
	}
}

// Collect walks the whole range and returns the elements in order.
func Collect[I, E any, P Endpoint[I, E]](r Range[I]) []E {
	var out []E
	Walk[I, E, P](r, func(e E) bool {
		out = append(out, e)
		return true
	})
	return out
}
