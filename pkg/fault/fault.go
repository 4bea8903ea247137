// Package fault defines a closed taxonomy of common failure categories
// (server, network, timeout, validation, and so on) as plain value records.
// Each category constructor returns a Fault pre-filled with documented
// defaults; callers override individual fields through options. A Fault
// implements error, so it slots directly into a result.Failure payload, and
// equatable.Value, so two faults with the same visible fields compare equal.
package fault

import (
	"github.com/mesh-intelligence/groundwork/pkg/equatable"
)

// Level classifies how severe a fault is.
type Level string

// Recognized severity levels, ordered from least to most severe.
const (
	LevelInfo     Level = "info"
	LevelWarning  Level = "warning"
	LevelError    Level = "error"
	LevelCritical Level = "critical"
)

// validLevels is the set of recognized severity levels.
var validLevels = map[Level]bool{
	LevelInfo:     true,
	LevelWarning:  true,
	LevelError:    true,
	LevelCritical: true,
}

// Valid reports whether l is one of the recognized severity levels.
func (l Level) Valid() bool {
	return validLevels[l]
}

// Fault describes one failure occurrence. Message, Code, Level, Hint, and
// Source define the fault's identity; Trace carries optional opaque
// diagnostics (a stack dump, a wrapped cause) and never participates in
// equality or hashing.
type Fault struct {
	Message string  `json:"message"`
	Code    *int    `json:"code,omitempty"`
	Level   Level   `json:"level"`
	Hint    *string `json:"hint,omitempty"`
	Source  *string `json:"source,omitempty"`
	Trace   any     `json:"-"`
}

// Error implements the error interface. The origin tag prefixes the message
// when present.
func (f Fault) Error() string {
	if f.Source != nil {
		return *f.Source + ": " + f.Message
	}
	return f.Message
}

// Props returns the fields that define the fault's identity, in declared
// order. Trace is deliberately excluded. The optional fields are tagged
// with their names so a hint that happens to match the source text (or two
// absent fields) never counts as a duplicated prop.
func (f Fault) Props() []any {
	return []any{
		f.Message,
		equatable.Named{Field: "code", Value: f.Code},
		f.Level,
		equatable.Named{Field: "hint", Value: f.Hint},
		equatable.Named{Field: "source", Value: f.Source},
	}
}

// Equal reports whether f and other carry the same identity fields.
func (f Fault) Equal(other Fault) bool {
	return equatable.Equal(f, other)
}

// Hash returns the fault's identity hash.
func (f Fault) Hash() uint64 {
	return equatable.Hash(f)
}

// String renders the fault as "Fault(message, code, level, hint, source)".
func (f Fault) String() string {
	return equatable.String(f)
}

// Option overrides a single field of a category's default Fault.
type Option func(*Fault)

// WithMessage replaces the default message.
func WithMessage(message string) Option {
	return func(f *Fault) { f.Message = message }
}

// WithCode replaces the default code.
func WithCode(code int) Option {
	return func(f *Fault) { f.Code = &code }
}

// WithLevel replaces the default severity level.
func WithLevel(level Level) Option {
	return func(f *Fault) { f.Level = level }
}

// WithHint replaces the default hint.
func WithHint(hint string) Option {
	return func(f *Fault) { f.Hint = &hint }
}

// WithSource replaces the default origin tag.
func WithSource(source string) Option {
	return func(f *Fault) { f.Source = &source }
}

// WithTrace attaches an opaque diagnostic payload. It does not affect the
// fault's identity.
func WithTrace(trace any) Option {
	return func(f *Fault) { f.Trace = trace }
}

// build applies opts to the category defaults.
func build(defaults Fault, opts []Option) Fault {
	f := defaults
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

func intp(v int) *int { return &v }

func strp(v string) *string { return &v }
