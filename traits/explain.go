package traits

import "reflect"

// Report breaks the iterator classification down into its individual
// capability predicates, so a caller can tell which requirement a
// rejected type is missing.
type Report struct {
	Type reflect.Type

	NonReference bool
	Copyable     bool
	Destructible bool
	Swappable    bool
	Step         bool
	Deref        bool
}

// Explain evaluates every capability predicate of the iterator
// classifier on t and returns the breakdown. Unlike IsIterator it does
// not short-circuit, so all fields are meaningful even when an early
// one fails.
func Explain(t reflect.Type) Report {
	if t == nil {
		return Report{}
	}
	return Report{
		Type:         t,
		NonReference: t.Kind() != reflect.Ptr,
		Copyable:     Copyable(t),
		Destructible: Destructible(t),
		Swappable:    IsSwappable(t, t),
		Step:         HasNext(t),
		Deref:        HasDeref(t),
	}
}

// Iterator reports whether every capability holds. It agrees with
// IsIterator on the same type.
func (r Report) Iterator() bool {
	return r.NonReference && r.Copyable && r.Destructible &&
		r.Swappable && r.Step && r.Deref
}

// Missing returns the names of the capabilities the type lacks, in
// classifier order. It returns nil for a qualifying type.
func (r Report) Missing() []string {
	var missing []string
	for _, c := range [...]struct {
		name string
		ok   bool
	}{
		{"non-reference", r.NonReference},
		{"copyable", r.Copyable},
		{"destructible", r.Destructible},
		{"swappable", r.Swappable},
		{"step", r.Step},
		{"deref", r.Deref},
	} {
		if !c.ok {
			missing = append(missing, c.name)
		}
	}
	return missing
}
