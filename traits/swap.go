package traits

import (
	"reflect"

	"go.lepak.sg/itertraits/internal/memo"
)

// typePair keys the swappability memo. reflect.Type values are
// comparable and canonical per type.
type typePair struct {
	t, u reflect.Type
}

var swappableMemo = memo.New[typePair, bool](0)

// MatchesGenericSwap reports whether exchanging values of t and u
// would select the generic, assignment-based strategy rather than a
// type-specific Swap method. That is the case when both collapse to
// the same type and that type carries no viable Swap for the pair —
// a viable method wins resolution, hiding the generic strategy.
//
// This says nothing about whether the exchange would actually work;
// see GenericSwapValid for that. One level of pointer is stripped
// from each argument first, so a type and a pointer to it classify
// identically.
func MatchesGenericSwap(t, u reflect.Type) bool {
	bt, bu := indirect(t), indirect(u)
	if bt == nil || bu == nil || bt != bu {
		return false
	}
	return !hasCustomSwap(bt, bu)
}

// GenericSwapValid reports whether the generic exchange strategy both
// applies to t and u and would behave correctly: resolution alone does
// not imply the types can be moved through the temporary the strategy
// needs.
func GenericSwapValid(t, u reflect.Type) bool {
	return MatchesGenericSwap(t, u) && Movable(indirect(t)) && Movable(indirect(u))
}

// SwapCallValid reports whether an exchange call is well-formed at all
// for t and u under contextual (method-set) lookup. Either the
// collapsed types are identical — the generic form deduces for any
// same-typed pair, with no check of its preconditions — or the
// collapsed t has a Swap method callable with the collapsed u. Result
// types of a custom Swap are irrelevant; only callability counts.
func SwapCallValid(t, u reflect.Type) bool {
	bt, bu := indirect(t), indirect(u)
	if bt == nil || bu == nil {
		return false
	}
	if bt == bu {
		return true
	}
	return hasCustomSwap(bt, bu)
}

// IsSwappable reports whether values of t and u can be exchanged,
// either because the generic strategy legitimately applies or because
// a type-specific Swap is discoverable. The two are not mutually
// exclusive and either suffices.
//
// The composition is deliberately
//
//	(MatchesGenericSwap && GenericSwapValid) || SwapCallValid
//
// and not MatchesGenericSwap && (GenericSwapValid || SwapCallValid).
// A consequence, pinned by tests: any same-typed pair is swappable,
// movable or not, because SwapCallValid accepts the bare deduction of
// the generic form. Do not "fix" the grouping without revisiting
// those tests.
//
// Results are memoized per distinct type pair.
func IsSwappable(t, u reflect.Type) bool {
	if t == nil || u == nil {
		return false
	}
	return swappableMemo.Do(typePair{t, u}, func() bool {
		return MatchesGenericSwap(t, u) && GenericSwapValid(t, u) || SwapCallValid(t, u)
	})
}

// hasCustomSwap reports whether bt has a Swap method callable with a
// value of bu, taking it either directly or through a pointer.
// bt and bu are already collapsed.
func hasCustomSwap(bt, bu reflect.Type) bool {
	in, _, ok := methodSig(bt, MethodSwap)
	if !ok || len(in) != 1 {
		return false
	}
	return in[0] == bu || in[0] == reflect.PtrTo(bu)
}
