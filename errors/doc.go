// Package errors provides structured error types for the ABI coder.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: value path, Go/ABI type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEncode, errors.KindTypeMismatch).
//		Path("arg[1]", "[3]").
//		GoType("string").
//		ABIType("uint32").
//		Detail("cannot convert string to integer").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseEncode, path, "string", "uint32")
//	err := errors.OutOfBounds(errors.PhaseDecode, path, 64, 32)
//
// All errors implement the standard error interface and support errors.Is/As.
// A decode failure is always terminal: the coder never returns a partially
// decoded value tree alongside an error.
package errors
