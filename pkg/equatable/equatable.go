// Package equatable derives equality, hashing, and string rendering for
// value types from a declared ordered list of significant fields. A type
// implements Value by returning its identity fields from Props; the package
// functions do the rest, guarding against the two usual authoring mistakes
// (an empty field list, or the same field listed twice).
package equatable

import (
	"errors"
	"fmt"
	"hash/fnv"
	"reflect"
	"strings"
)

// Props contract violations. These signal a defect in how a concrete type
// declared its identity fields, not a runtime condition; Equal, Hash, and
// String panic with them.
var (
	ErrNoProps       = errors.New("props must not be empty")
	ErrDuplicateProp = errors.New("props must not contain duplicate values")
)

// Hash composition constants, kept from the source implementation so hash
// values stay stable for consumers that compare them across ports.
const (
	hashSeed       = 17
	hashMultiplier = 37
)

// Value is implemented by types whose identity is defined by an ordered
// list of significant field values. Props must be pure: same fields, same
// order, every call. Field values may be nil.
type Value interface {
	Props() []any
}

// Equaler lets a prop element define its own equality instead of the
// default deep comparison.
type Equaler interface {
	Equal(other any) bool
}

// Named tags a prop value with the field it came from. Two Named props are
// equal only when both the field name and the value match, so distinct
// fields whose values happen to coincide (or are both absent) never read
// as duplicates. Hashing and rendering use the value alone, ignoring the
// field name.
type Named struct {
	Field string
	Value any
}

// Hasher lets a prop element supply its own hash. Elements that compare
// equal must hash equal.
type Hasher interface {
	Hash() uint64
}

// Equal reports whether a and b have pairwise-equal props in declared
// order. Instantiate T with the concrete type being compared; the type
// parameter makes cross-type comparison a compile error, so two values of
// different types are never equal by construction. Panics if either value's
// props violate the contract (see Validate).
func Equal[T Value](a, b T) bool {
	ap := mustProps(a)
	bp := mustProps(b)
	if len(ap) != len(bp) {
		return false
	}
	for i := range ap {
		if !propEqual(ap[i], bp[i]) {
			return false
		}
	}
	return true
}

// Hash returns a deterministic hash of v's props, folding each element's
// hash in declared order with a multiply-and-add combiner. Values that are
// Equal always hash equal; the converse does not hold. Panics if the props
// violate the contract.
func Hash[T Value](v T) uint64 {
	h := uint64(hashSeed)
	for _, p := range mustProps(v) {
		h = hashMultiplier*h + propHash(p)
	}
	return h
}

// String renders v as "TypeName(prop1, prop2, ...)" with props in declared
// order. Nil props render as "nil"; pointer props are dereferenced; props
// implementing fmt.Stringer render themselves. Panics if the props violate
// the contract.
func String[T Value](v T) string {
	props := mustProps(v)
	parts := make([]string, len(props))
	for i, p := range props {
		parts[i] = propString(p)
	}
	return typeName(v) + "(" + strings.Join(parts, ", ") + ")"
}

// Validate checks the props contract: the list must be non-empty and must
// not contain the same value twice. It returns ErrNoProps or
// ErrDuplicateProp on violation, nil otherwise.
func Validate(props []any) error {
	if len(props) == 0 {
		return ErrNoProps
	}
	for i := 1; i < len(props); i++ {
		for j := 0; j < i; j++ {
			if propEqual(props[i], props[j]) {
				return fmt.Errorf("%w: props[%d] equals props[%d]", ErrDuplicateProp, i, j)
			}
		}
	}
	return nil
}

// mustProps fetches and validates a value's props, panicking on contract
// violation. Validation runs on every call because Props is recomputed and
// could drift on a mutable type.
func mustProps(v Value) []any {
	props := v.Props()
	if err := Validate(props); err != nil {
		panic(fmt.Sprintf("equatable: %T: %v", v, err))
	}
	return props
}

// propEqual compares two prop elements: nil equals nil, an Equaler decides
// for itself, everything else is compared deeply. Props are heterogeneous
// []any values, so deep comparison is the only general element equality
// available.
func propEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if an, ok := a.(Named); ok {
		bn, ok := b.(Named)
		return ok && an.Field == bn.Field && propEqual(an.Value, bn.Value)
	}
	if eq, ok := a.(Equaler); ok {
		return eq.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}

// propHash hashes a single prop element. Nil (including a nil pointer)
// hashes to zero so absent fields contribute a fixed term.
func propHash(p any) uint64 {
	if p == nil {
		return 0
	}
	if n, ok := p.(Named); ok {
		return propHash(n.Value)
	}
	if h, ok := p.(Hasher); ok {
		return h.Hash()
	}
	rv := reflect.ValueOf(p)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return 0
		}
		p = rv.Elem().Interface()
	}
	f := fnv.New64a()
	fmt.Fprintf(f, "%v", p)
	return f.Sum64()
}

// propString renders a single prop element for String.
func propString(p any) string {
	if p == nil {
		return "nil"
	}
	if n, ok := p.(Named); ok {
		return propString(n.Value)
	}
	if s, ok := p.(fmt.Stringer); ok {
		return s.String()
	}
	rv := reflect.ValueOf(p)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "nil"
		}
		p = rv.Elem().Interface()
	}
	return fmt.Sprintf("%v", p)
}

// typeName returns the concrete type name of v without its package
// qualifier or pointer marker.
func typeName(v Value) string {
	name := fmt.Sprintf("%T", v)
	name = strings.TrimPrefix(name, "*")
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
