package fault

import (
	"errors"
	"fmt"
)

// Category names accepted by New.
const (
	CategoryServer     = "server"
	CategoryNetwork    = "network"
	CategoryTimeout    = "timeout"
	CategoryCache      = "cache"
	CategoryValidation = "validation"
	CategoryAuth       = "auth"
	CategoryPermission = "permission"
	CategoryNotFound   = "notfound"
	CategoryFormat     = "format"
	CategoryUnknown    = "unknown"
)

// ErrUnknownCategory is returned by New for a category name outside the
// taxonomy.
var ErrUnknownCategory = errors.New("unknown fault category")

// Server returns the fault for a failure reported by a server.
// Defaults: "A server error occurred.", code 500, level error,
// hint "Try again later.", source "Server".
func Server(opts ...Option) Fault {
	return build(Fault{
		Message: "A server error occurred.",
		Code:    intp(500),
		Level:   LevelError,
		Hint:    strp("Try again later."),
		Source:  strp("Server"),
	}, opts)
}

// Network returns the fault for a failed or unreachable connection.
// Defaults: "A network connection error occurred.", code 503, level error,
// hint "Check your connection and try again.", source "Network".
func Network(opts ...Option) Fault {
	return build(Fault{
		Message: "A network connection error occurred.",
		Code:    intp(503),
		Level:   LevelError,
		Hint:    strp("Check your connection and try again."),
		Source:  strp("Network"),
	}, opts)
}

// Timeout returns the fault for an operation that exceeded its deadline.
// Defaults: "The operation timed out.", code 408, level warning,
// hint "Retry with a longer deadline.", source "Timeout".
func Timeout(opts ...Option) Fault {
	return build(Fault{
		Message: "The operation timed out.",
		Code:    intp(408),
		Level:   LevelWarning,
		Hint:    strp("Retry with a longer deadline."),
		Source:  strp("Timeout"),
	}, opts)
}

// Cache returns the fault for a local cache read or write problem.
// Defaults: "A cache error occurred.", no code, level warning, no hint,
// source "Cache".
func Cache(opts ...Option) Fault {
	return build(Fault{
		Message: "A cache error occurred.",
		Level:   LevelWarning,
		Source:  strp("Cache"),
	}, opts)
}

// Validation returns the fault for input that failed validation.
// Defaults: "The provided data is invalid.", code 422, level warning,
// hint "Correct the rejected fields and resubmit.", source "Validation".
func Validation(opts ...Option) Fault {
	return build(Fault{
		Message: "The provided data is invalid.",
		Code:    intp(422),
		Level:   LevelWarning,
		Hint:    strp("Correct the rejected fields and resubmit."),
		Source:  strp("Validation"),
	}, opts)
}

// Auth returns the fault for a failed authentication attempt.
// Defaults: "Authentication failed.", code 401, level error,
// hint "Sign in again.", source "Auth".
func Auth(opts ...Option) Fault {
	return build(Fault{
		Message: "Authentication failed.",
		Code:    intp(401),
		Level:   LevelError,
		Hint:    strp("Sign in again."),
		Source:  strp("Auth"),
	}, opts)
}

// Permission returns the fault for an action the caller is not allowed to
// perform. Defaults: "Permission to perform this action was denied.",
// code 403, level error, no hint, source "Permission".
func Permission(opts ...Option) Fault {
	return build(Fault{
		Message: "Permission to perform this action was denied.",
		Code:    intp(403),
		Level:   LevelError,
		Source:  strp("Permission"),
	}, opts)
}

// NotFound returns the fault for a missing resource.
// Defaults: "The requested resource was not found.", code 404,
// level warning, no hint, source "NotFound".
func NotFound(opts ...Option) Fault {
	return build(Fault{
		Message: "The requested resource was not found.",
		Code:    intp(404),
		Level:   LevelWarning,
		Source:  strp("NotFound"),
	}, opts)
}

// Format returns the fault for data in an unexpected shape or encoding.
// Defaults: "The data was in an unexpected format.", code 400, level error,
// no hint, source "Format".
func Format(opts ...Option) Fault {
	return build(Fault{
		Message: "The data was in an unexpected format.",
		Code:    intp(400),
		Level:   LevelError,
		Source:  strp("Format"),
	}, opts)
}

// Unknown returns the fault for an error that fits no other category.
// Defaults: "An unexpected error occurred.", no code, level critical,
// hint "Contact support if the problem persists.", source "Unknown".
func Unknown(opts ...Option) Fault {
	return build(Fault{
		Message: "An unexpected error occurred.",
		Level:   LevelCritical,
		Hint:    strp("Contact support if the problem persists."),
		Source:  strp("Unknown"),
	}, opts)
}

// constructors maps category names to their constructors.
var constructors = map[string]func(...Option) Fault{
	CategoryServer:     Server,
	CategoryNetwork:    Network,
	CategoryTimeout:    Timeout,
	CategoryCache:      Cache,
	CategoryValidation: Validation,
	CategoryAuth:       Auth,
	CategoryPermission: Permission,
	CategoryNotFound:   NotFound,
	CategoryFormat:     Format,
	CategoryUnknown:    Unknown,
}

// categoryOrder fixes the order Categories reports, matching the reference
// table.
var categoryOrder = []string{
	CategoryServer,
	CategoryNetwork,
	CategoryTimeout,
	CategoryCache,
	CategoryValidation,
	CategoryAuth,
	CategoryPermission,
	CategoryNotFound,
	CategoryFormat,
	CategoryUnknown,
}

// Categories returns the category names of the taxonomy in reference-table
// order. The returned slice is a copy.
func Categories() []string {
	out := make([]string, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// New builds the default fault for the named category with opts applied.
// It returns ErrUnknownCategory for a name outside the taxonomy.
func New(category string, opts ...Option) (Fault, error) {
	ctor, ok := constructors[category]
	if !ok {
		return Fault{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return ctor(opts...), nil
}
