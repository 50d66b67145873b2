package utf8codec

import "fmt"

// Kind classifies why a transform could not complete exactly as requested.
type Kind int

const (
	// KindInvalidData means at least one code point in the input was
	// malformed and was replaced with [Replacement]. The operation still
	// completes.
	KindInvalidData Kind = iota + 1
	// KindInvalidFlag means the caller passed a contradictory or
	// unrecognised flag combination. The operation aborts and returns a
	// zero length.
	KindInvalidFlag
	// KindNotEnoughSpace means the destination buffer was smaller than the
	// number of bytes the operation needed to write. The operation writes
	// as much as fits and returns the full required length.
	KindNotEnoughSpace
	// KindOverlappingParameters means the source and destination byte
	// ranges overlap. The operation aborts without writing anything.
	KindOverlappingParameters
)

func (k Kind) String() string {
	switch k {
	case KindInvalidData:
		return "invalid data"
	case KindInvalidFlag:
		return "invalid flag"
	case KindNotEnoughSpace:
		return "not enough space"
	case KindOverlappingParameters:
		return "overlapping parameters"
	default:
		return "unknown error kind"
	}
}

// Error is the sentinel-style error value every transform in this module
// returns. Callers compose against it with errors.Is and one of the
// package-level sentinels ([InvalidData], [InvalidFlag], [NotEnoughSpace],
// [OverlappingParameters]), matching [github.com/tawesoft/utf8x/ks.FilterError]'s
// assumption that callers compare errors structurally, not by identity.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return "utf8x: " + e.Kind.String()
	}
	return fmt.Sprintf("utf8x: %s: %s", e.Kind, e.Msg)
}

// Is reports whether target is an *Error (or one of the package sentinels)
// of the same [Kind], regardless of Msg.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// Sentinels for errors.Is comparisons. Their Msg field is always empty; use
// [With] to build a reportable error of a given kind.
var (
	InvalidData           = &Error{Kind: KindInvalidData}
	InvalidFlag            = &Error{Kind: KindInvalidFlag}
	NotEnoughSpace         = &Error{Kind: KindNotEnoughSpace}
	OverlappingParameters  = &Error{Kind: KindOverlappingParameters}
)

// With builds a reportable *Error of the given kind with a formatted
// message, e.g. utf8codec.With(utf8codec.NotEnoughSpace, "need %d bytes", n).
func With(kind *Error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind.Kind, Msg: fmt.Sprintf(format, args...)}
}
