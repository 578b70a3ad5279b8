package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse  Phase = "parse"  // type string / signature parsing
	PhaseDecode Phase = "decode" // buffer to value tree
	PhaseEncode Phase = "encode" // value tree to buffer
)

// Kind categorizes the error
type Kind string

const (
	KindOutOfBounds    Kind = "out_of_bounds"
	KindOverflow       Kind = "overflow"
	KindInvalidPadding Kind = "invalid_padding"
	KindInvalidBoolean Kind = "invalid_boolean"
	KindInvalidEnum    Kind = "invalid_enum"
	KindInvalidType    Kind = "invalid_type"
	KindTypeMismatch   Kind = "type_mismatch"
	KindCountMismatch  Kind = "count_mismatch"
	KindInvalidData    Kind = "invalid_data"
)

// Error is the structured error type used throughout the coder
type Error struct {
	Value   any
	Cause   error
	Phase   Phase
	Kind    Kind
	GoType  string
	ABIType string
	Detail  string
	Path    []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" || e.ABIType != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.ABIType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", ABI type ")
			b.WriteString(e.ABIType)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("ABI type ")
			b.WriteString(e.ABIType)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.ABIType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the value path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// ABIType sets the ABI type name
func (b *Builder) ABIType(t string) *Builder {
	b.err.ABIType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// OutOfBounds creates an out of bounds error. need is the byte count the
// decoder required, have the bytes actually available in the region.
func OutOfBounds(phase Phase, path []string, need, have uint64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("need %d bytes, have %d", need, have),
	}
}

// Overflow creates an overflow error for size arithmetic that would wrap
func Overflow(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Path:   path,
		Detail: detail,
	}
}

// InvalidPadding creates an invalid padding error for integer slots whose
// bits above the declared width are not a correct zero/sign extension
func InvalidPadding(path []string, abiType string, word []byte) *Error {
	return &Error{
		Phase:   PhaseDecode,
		Kind:    KindInvalidPadding,
		Path:    path,
		ABIType: abiType,
		Detail:  fmt.Sprintf("slot %x is not a valid %s encoding", word, abiType),
	}
}

// InvalidBoolean creates an invalid boolean error
func InvalidBoolean(path []string, word []byte) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidBoolean,
		Path:   path,
		Detail: fmt.Sprintf("boolean slot must be 0 or 1, got %x", word),
	}
}

// InvalidEnum creates an invalid enum value error
func InvalidEnum(phase Phase, path []string, value uint64, members int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidEnum,
		Path:   path,
		Detail: fmt.Sprintf("enum value %d out of range (member count %d)", value, members),
		Value:  value,
	}
}

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, goType, abiType string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindTypeMismatch,
		Path:    path,
		GoType:  goType,
		ABIType: abiType,
	}
}

// CountMismatch creates an error for schema/value list length disagreement
func CountMismatch(phase Phase, want, got int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindCountMismatch,
		Detail: fmt.Sprintf("expected %d values, got %d", want, got),
	}
}

// InvalidType creates an error for a malformed type descriptor
func InvalidType(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidType,
		Detail: detail,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// ParseFailed creates a parsing error
func ParseFailed(what string, cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidData,
		Detail: fmt.Sprintf("parse %s", what),
		Cause:  cause,
	}
}
