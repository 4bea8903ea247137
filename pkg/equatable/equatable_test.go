package equatable

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Pair is a minimal value type with two identity fields.
type Pair struct {
	ID   int
	Name string
}

func (p Pair) Props() []any { return []any{p.ID, p.Name} }

// noProps declares an empty identity, violating the contract.
type noProps struct{}

func (noProps) Props() []any { return nil }

// doubled lists the same field value twice, violating the contract.
type doubled struct {
	V string
}

func (d doubled) Props() []any { return []any{d.V, d.V} }

// tagged has an optional second field.
type tagged struct {
	ID   int
	Note *string
}

func (t tagged) Props() []any { return []any{t.ID, t.Note} }

// holder exposes arbitrary prop elements for hash composition tests.
type holder struct {
	elems []any
}

func (h holder) Props() []any { return h.elems }

// hashElem is a prop element with a fixed hash.
type hashElem uint64

func (h hashElem) Hash() uint64 { return uint64(h) }

// folded is a prop element with case-insensitive equality.
type folded string

func (f folded) Equal(other any) bool {
	o, ok := other.(folded)
	return ok && strings.EqualFold(string(f), string(o))
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Pair
		want bool
	}{
		{
			name: "identical props are equal",
			a:    Pair{1, "A"},
			b:    Pair{1, "A"},
			want: true,
		},
		{
			name: "differing first prop is unequal",
			a:    Pair{1, "A"},
			b:    Pair{2, "A"},
			want: false,
		},
		{
			name: "differing second prop is unequal",
			a:    Pair{1, "A"},
			b:    Pair{1, "B"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, Equal(tt.b, tt.a), "equality is symmetric")
		})
	}
}

func TestEqualNilProps(t *testing.T) {
	note := "hello"

	assert.True(t, Equal(tagged{1, nil}, tagged{1, nil}), "nil equals nil")
	assert.False(t, Equal(tagged{1, nil}, tagged{1, &note}))
	assert.True(t, Equal(tagged{1, &note}, tagged{1, &note}))

	other := "hello"
	assert.True(t, Equal(tagged{1, &note}, tagged{1, &other}),
		"pointer props compare by pointed-to value")
}

func TestNamedProps(t *testing.T) {
	t.Run("distinct fields with the same value are not duplicates", func(t *testing.T) {
		props := []any{
			Named{Field: "hint", Value: "x"},
			Named{Field: "source", Value: "x"},
		}
		assert.NoError(t, Validate(props))
	})

	t.Run("distinct fields both absent are not duplicates", func(t *testing.T) {
		props := []any{
			Named{Field: "hint", Value: nil},
			Named{Field: "source", Value: nil},
		}
		assert.NoError(t, Validate(props))
	})

	t.Run("the same field listed twice is still a duplicate", func(t *testing.T) {
		props := []any{
			Named{Field: "hint", Value: "x"},
			Named{Field: "hint", Value: "x"},
		}
		assert.ErrorIs(t, Validate(props), ErrDuplicateProp)
	})

	t.Run("equality requires field and value to match", func(t *testing.T) {
		a := holder{[]any{Named{Field: "hint", Value: "x"}}}
		b := holder{[]any{Named{Field: "hint", Value: "x"}}}
		c := holder{[]any{Named{Field: "hint", Value: "y"}}}
		d := holder{[]any{Named{Field: "source", Value: "x"}}}

		assert.True(t, Equal(a, b))
		assert.False(t, Equal(a, c))
		assert.False(t, Equal(a, d))
	})

	t.Run("hash and rendering use the value alone", func(t *testing.T) {
		named := holder{[]any{Named{Field: "hint", Value: hashElem(5)}}}
		bare := holder{[]any{hashElem(5)}}
		assert.Equal(t, Hash(bare), Hash(named))

		assert.Equal(t, "holder(hi)", String(holder{[]any{Named{Field: "note", Value: "hi"}}}))
		assert.Equal(t, "holder(nil)", String(holder{[]any{Named{Field: "note", Value: nil}}}))
	})
}

func TestEqualCustomEqualer(t *testing.T) {
	a := holder{[]any{folded("Hello")}}
	b := holder{[]any{folded("hello")}}
	assert.True(t, Equal(a, b), "Equaler elements decide their own equality")
}

func TestEqualPanicsOnContractViolation(t *testing.T) {
	assert.Panics(t, func() { Equal(noProps{}, noProps{}) })
	assert.Panics(t, func() { Equal(doubled{"x"}, doubled{"y"}) })
}

func TestHashComposition(t *testing.T) {
	// One element: multiplier*seed + elemHash.
	assert.Equal(t, uint64(37*17+5), Hash(holder{[]any{hashElem(5)}}))

	// Two elements fold in declared order.
	assert.Equal(t, uint64(37*(37*17+5)+7), Hash(holder{[]any{hashElem(5), hashElem(7)}}))

	// A nil element contributes zero.
	assert.Equal(t, uint64(37*17), Hash(holder{[]any{nil}}))
}

func TestHashAgreesWithEqual(t *testing.T) {
	a := Pair{1, "A"}
	b := Pair{1, "A"}
	require.True(t, Equal(a, b))
	assert.Equal(t, Hash(a), Hash(b), "equal values must hash equal")

	assert.Equal(t, Hash(a), Hash(a), "hash is deterministic")
	assert.NotEqual(t, Hash(Pair{1, "A"}), Hash(Pair{2, "A"}))
	assert.NotEqual(t, Hash(Pair{1, "A"}), Hash(Pair{1, "B"}))
}

func TestHashPanicsOnContractViolation(t *testing.T) {
	assert.Panics(t, func() { Hash(noProps{}) })
}

func TestString(t *testing.T) {
	assert.Equal(t, "Pair(1, A)", String(Pair{1, "A"}))

	note := "hi"
	assert.Equal(t, "tagged(3, hi)", String(tagged{3, &note}),
		"pointer props render dereferenced")
	assert.Equal(t, "tagged(3, nil)", String(tagged{3, nil}))
}

func TestStringPanicsOnContractViolation(t *testing.T) {
	assert.Panics(t, func() { String(doubled{"x"}) })
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		props   []any
		wantErr error
	}{
		{
			name:    "nil props rejected",
			props:   nil,
			wantErr: ErrNoProps,
		},
		{
			name:    "empty props rejected",
			props:   []any{},
			wantErr: ErrNoProps,
		},
		{
			name:    "adjacent duplicate rejected",
			props:   []any{"x", "x"},
			wantErr: ErrDuplicateProp,
		},
		{
			name:    "non-adjacent duplicate rejected",
			props:   []any{1, 2, 1},
			wantErr: ErrDuplicateProp,
		},
		{
			name:    "two nils are duplicates",
			props:   []any{nil, nil},
			wantErr: ErrDuplicateProp,
		},
		{
			name:  "single element accepted",
			props: []any{42},
		},
		{
			name:  "distinct elements accepted",
			props: []any{1, "1", true},
		},
		{
			name:  "single nil accepted",
			props: []any{nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.props)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
		})
	}
}
