// Package static mirrors the traits predicates over go/types type
// descriptions. It classifies source-level types before any value —
// or any program — exists, which makes it suitable for code generators
// and analysis tools.
//
// The contract is the same as the traits package probes for with
// reflection: Next() *T and Deref() *E on the pointer method set, and
// Swap(U)/Swap(*U) as the type-specific exchange operation. Semantics
// of every predicate match the traits package exactly.
package static

import (
	"go/types"

	"go.lepak.sg/itertraits/traits"
)

// indirect strips exactly one level of pointer, including defined
// pointer types, matching reflect.Type.Elem on a Ptr kind.
func indirect(t types.Type) types.Type {
	if t == nil {
		return nil
	}
	if p, ok := t.Underlying().(*types.Pointer); ok {
		return p.Elem()
	}
	return t
}

func isPointer(t types.Type) bool {
	_, ok := t.Underlying().(*types.Pointer)
	return ok
}

// methodSig looks up an exported method on base's pointer method set
// and returns its signature (receiver excluded, as go/types does).
func methodSig(base types.Type, name string) (*types.Signature, bool) {
	recv := base
	if !isPointer(base) && !types.IsInterface(base) {
		recv = types.NewPointer(base)
	}

	sel := types.NewMethodSet(recv).Lookup(nil, name)
	if sel == nil {
		return nil, false
	}

	f, ok := sel.Obj().(*types.Func)
	if !ok {
		return nil, false
	}
	return f.Type().(*types.Signature), true
}

// Copyable reports whether values of t may be freely duplicated by
// assignment, using the same copylocks-style rule as the traits
// package: a type containing, by value, anything with niladic Lock and
// Unlock methods on its pointer type is not copyable.
func Copyable(t types.Type) bool {
	return t != nil && !mustNotCopy(t, nil)
}

// Movable coincides with Copyable; see traits.Movable.
func Movable(t types.Type) bool {
	return Copyable(t)
}

// Destructible rejects only the nil descriptor.
func Destructible(t types.Type) bool {
	return t != nil
}

func mustNotCopy(t types.Type, seen map[types.Type]bool) bool {
	if seen[t] {
		return false
	}

	if isPointer(t) {
		return false
	}

	if hasLockMethods(t) {
		return true
	}

	switch u := t.Underlying().(type) {
	case *types.Struct:
		if seen == nil {
			seen = make(map[types.Type]bool)
		}
		seen[t] = true
		for i := 0; i < u.NumFields(); i++ {
			if mustNotCopy(u.Field(i).Type(), seen) {
				return true
			}
		}
	case *types.Array:
		return mustNotCopy(u.Elem(), seen)
	}

	return false
}

func hasLockMethods(t types.Type) bool {
	if types.NewMethodSet(t).Lookup(nil, "Lock") != nil {
		// Lock is in the value's own method set (interfaces included),
		// so copying does not separate a value from its lock state.
		return false
	}
	for _, name := range [...]string{"Lock", "Unlock"} {
		sig, ok := methodSig(t, name)
		if !ok || sig.Params().Len() != 0 || sig.Results().Len() != 0 {
			return false
		}
	}
	return true
}

// MatchesGenericSwap mirrors traits.MatchesGenericSwap: the collapsed
// types are identical and no viable custom Swap hides the generic,
// assignment-based exchange strategy.
func MatchesGenericSwap(t, u types.Type) bool {
	bt, bu := indirect(t), indirect(u)
	if bt == nil || bu == nil || !types.Identical(bt, bu) {
		return false
	}
	return !hasCustomSwap(bt, bu)
}

// GenericSwapValid mirrors traits.GenericSwapValid.
func GenericSwapValid(t, u types.Type) bool {
	return MatchesGenericSwap(t, u) && Movable(indirect(t)) && Movable(indirect(u))
}

// SwapCallValid mirrors traits.SwapCallValid: an exchange call is
// well-formed for a same-typed pair (the generic form deduces) or when
// a viable custom Swap is discoverable.
func SwapCallValid(t, u types.Type) bool {
	bt, bu := indirect(t), indirect(u)
	if bt == nil || bu == nil {
		return false
	}
	if types.Identical(bt, bu) {
		return true
	}
	return hasCustomSwap(bt, bu)
}

// IsSwappable mirrors traits.IsSwappable, including the deliberate
// (MatchesGenericSwap && GenericSwapValid) || SwapCallValid grouping
// documented there.
func IsSwappable(t, u types.Type) bool {
	if t == nil || u == nil {
		return false
	}
	return MatchesGenericSwap(t, u) && GenericSwapValid(t, u) || SwapCallValid(t, u)
}

// HasNext mirrors traits.HasNext: Next() returning exactly a pointer
// to the collapsed type.
func HasNext(t types.Type) bool {
	b := indirect(t)
	if b == nil {
		return false
	}

	sig, ok := methodSig(b, traits.MethodNext)
	return ok && sig.Params().Len() == 0 && sig.Results().Len() == 1 &&
		types.Identical(sig.Results().At(0).Type(), types.NewPointer(b))
}

// HasDeref mirrors traits.HasDeref: Deref() returning exactly one
// pointer, of any element type.
func HasDeref(t types.Type) bool {
	b := indirect(t)
	if b == nil {
		return false
	}

	sig, ok := methodSig(b, traits.MethodDeref)
	if !ok || sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		return false
	}
	return isPointer(sig.Results().At(0).Type())
}

// IsIterator mirrors traits.IsIterator. The leading check evaluates t
// exactly as given, so pointer types are rejected up front.
func IsIterator(t types.Type) bool {
	return t != nil &&
		!isPointer(t) &&
		Copyable(t) &&
		Destructible(t) &&
		IsSwappable(t, t) &&
		HasNext(t) &&
		HasDeref(t)
}

func hasCustomSwap(bt, bu types.Type) bool {
	sig, ok := methodSig(bt, traits.MethodSwap)
	if !ok || sig.Variadic() || sig.Params().Len() != 1 {
		return false
	}
	p := sig.Params().At(0).Type()
	return types.Identical(p, bu) || types.Identical(p, types.NewPointer(bu))
}
