package traits

import (
	"reflect"

	"go.lepak.sg/itertraits/internal/memo"
)

var iteratorMemo = memo.New[reflect.Type, bool](0)

// HasNext reports whether t supports the step operation: after
// collapsing one level of pointer to a base type B, *B must have a
// method Next taking nothing and returning exactly *B — a reference to
// the same type. A Next returning B by value, returning some other
// type, or taking arguments does not count.
func HasNext(t reflect.Type) bool {
	b := indirect(t)
	if b == nil {
		return false
	}

	in, out, ok := methodSig(b, MethodNext)
	return ok && len(in) == 0 && len(out) == 1 && out[0] == reflect.PtrTo(b)
}

// HasDeref reports whether t supports the dereference operation: after
// collapse to a base type B, *B must have a method Deref taking
// nothing and returning exactly one pointer — a reference to the
// current element, of any element type. Returning the element by
// value, or nothing, does not count.
func HasDeref(t reflect.Type) bool {
	b := indirect(t)
	if b == nil {
		return false
	}

	in, out, ok := methodSig(b, MethodDeref)
	return ok && len(in) == 0 && len(out) == 1 && out[0].Kind() == reflect.Ptr
}

// IsIterator reports whether t is iterator-like: a non-pointer,
// copyable, destructible type that is swappable with itself and
// supports the step and dereference operations.
//
// The leading kind check evaluates t exactly as given — nothing is
// collapsed here — so pointers to otherwise-qualifying types, and raw
// element pointers like *int, are rejected up front.
//
// Results are memoized per distinct type.
func IsIterator(t reflect.Type) bool {
	if t == nil {
		return false
	}
	return iteratorMemo.Do(t, func() bool {
		return t.Kind() != reflect.Ptr &&
			Copyable(t) &&
			Destructible(t) &&
			IsSwappable(t, t) &&
			HasNext(t) &&
			HasDeref(t)
	})
}
