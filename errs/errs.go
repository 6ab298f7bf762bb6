// Package errs defines the structured error kinds shared by the fr and
// ident packages (tf keeps its own plain sentinel errors). Errors are values, not process termination: callers
// branch on Kind via errors.As, the way ntru/params.go's NewParams returns
// a plain error for the caller to inspect, generalized here into an
// explicit enum instead of per-package ad hoc sentinels.
package errs

import "fmt"

// Kind enumerates the error categories the identification core can report.
type Kind int

const (
	// InsufficientData: fewer samples than free parameters, or zero samples.
	InsufficientData Kind = iota
	// DegreeOutOfRange: non-positive denominator degree or negative numerator degree.
	DegreeOutOfRange
	// AllocationFailed: working-set allocation refused.
	AllocationFailed
	// NumericDomain: a required complex division has a zero denominator.
	NumericDomain
	// Singular: the linear solver could not factor its matrix.
	Singular
	// Nonconvergent: max_iter was reached without meeting the tolerance.
	Nonconvergent
	// FileOpen: the sample text file could not be opened.
	FileOpen
	// FileFormat: the sample text file's content is malformed.
	FileFormat
)

func (k Kind) String() string {
	switch k {
	case InsufficientData:
		return "InsufficientData"
	case DegreeOutOfRange:
		return "DegreeOutOfRange"
	case AllocationFailed:
		return "AllocationFailed"
	case NumericDomain:
		return "NumericDomain"
	case Singular:
		return "Singular"
	case Nonconvergent:
		return "Nonconvergent"
	case FileOpen:
		return "FileOpen"
	case FileFormat:
		return "FileFormat"
	default:
		return "Unknown"
	}
}

// E is a structured error carrying a Kind, a human-readable message, and
// an optional wrapped cause.
type E struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *E) Unwrap() error {
	return e.Err
}

// New builds an *E with no wrapped cause.
func New(kind Kind, msg string) *E {
	return &E{Kind: kind, Msg: msg}
}

// Wrap builds an *E wrapping a lower-level cause.
func Wrap(kind Kind, msg string, err error) *E {
	return &E{Kind: kind, Msg: msg, Err: err}
}

// Is reports whether err is an *E of the given kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*E)
	if !ok {
		return false
	}
	return e.Kind == kind
}
