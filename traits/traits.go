// Package traits classifies types by the structural capabilities they
// expose, without any declared conformance. Given a reflect.Type
// descriptor it answers questions like "can two values of these types
// be exchanged?" and "does this type behave like a forward iterator?".
//
// A type is iterator-like if its pointer method set carries the two
// contract methods:
//
//	Next() *T  // advance in place, return the receiver
//	Deref() *E // pointer to the current element
//
// and the type itself is a copyable non-pointer. A type-specific
// exchange operation is a method of the form
//
//	Swap(*U) // or Swap(U); result types do not matter
//
// Every predicate is a pure function of the type descriptors involved:
// no value of the type ever needs to exist. All predicates are total —
// a nil or otherwise hopeless descriptor classifies as "capability
// absent", never as a panic.
package traits

import "reflect"

// Names of the contract methods the checkers probe for.
const (
	MethodNext  = "Next"
	MethodDeref = "Deref"
	MethodSwap  = "Swap"
)

// indirect strips exactly one level of pointer, so that a type and a
// pointer to it classify identically where a check specifies collapse.
func indirect(t reflect.Type) reflect.Type {
	if t != nil && t.Kind() == reflect.Ptr {
		return t.Elem()
	}
	return t
}

// methodSig looks up an exported method on base's pointer method set
// (which subsumes the value method set) and returns its argument and
// result types, receiver excluded.
func methodSig(base reflect.Type, name string) (in, out []reflect.Type, ok bool) {
	recv := base
	if recv.Kind() != reflect.Ptr && recv.Kind() != reflect.Interface {
		recv = reflect.PtrTo(base)
	}

	m, ok := recv.MethodByName(name)
	if !ok {
		return nil, nil, false
	}

	ft := m.Type
	start := 0
	if recv.Kind() != reflect.Interface {
		// for concrete types, In(0) is the receiver
		start = 1
	}
	for i := start; i < ft.NumIn(); i++ {
		in = append(in, ft.In(i))
	}
	for i := 0; i < ft.NumOut(); i++ {
		out = append(out, ft.Out(i))
	}

	return in, out, true
}

// Copyable reports whether values of t may be freely duplicated by
// assignment. It is false for types that must not be copied once in
// use, detected the same way vet's copylocks check does: the type, or
// any field it contains by value, has niladic Lock and Unlock methods
// on its pointer type. Copying the pointer to such a type is fine, so
// pointer types are always copyable.
func Copyable(t reflect.Type) bool {
	return t != nil && !mustNotCopy(t, nil)
}

// Movable reports whether values of t may be transferred by
// assignment. Go has no destructive move: a move is a copy, so this
// coincides with Copyable. It is exported separately because the
// exchange contract names move capability as its own precondition.
func Movable(t reflect.Type) bool {
	return Copyable(t)
}

// Destructible reports whether values of t can be discarded. Every Go
// value can, so this only rejects the nil descriptor, keeping
// classification total.
func Destructible(t reflect.Type) bool {
	return t != nil
}

func mustNotCopy(t reflect.Type, seen map[reflect.Type]bool) bool {
	if seen[t] {
		return false
	}

	if t.Kind() == reflect.Ptr {
		return false
	}

	if hasLockMethods(t) {
		return true
	}

	switch t.Kind() {
	case reflect.Struct:
		if seen == nil {
			seen = make(map[reflect.Type]bool)
		}
		seen[t] = true
		for i := 0; i < t.NumField(); i++ {
			if mustNotCopy(t.Field(i).Type, seen) {
				return true
			}
		}
	case reflect.Array:
		return mustNotCopy(t.Elem(), seen)
	}

	return false
}

func hasLockMethods(t reflect.Type) bool {
	if _, ok := t.MethodByName("Lock"); ok {
		// Lock is in the value's own method set (interfaces included),
		// so copying does not separate a value from its lock state.
		return false
	}
	for _, name := range [...]string{"Lock", "Unlock"} {
		in, out, ok := methodSig(t, name)
		if !ok || len(in) != 0 || len(out) != 0 {
			return false
		}
	}
	return true
}
