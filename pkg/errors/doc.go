// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// These are engine and I/O faults (a document file that cannot be read, an
// unsupported output format), not invoice rule violations. Rule violations
// are data: they are collected by the validator and returned in the report,
// never raised as errors.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeSerialization,
//	    "failed to decode invoice document",
//	    decodeErr,
//	    map[string]interface{}{
//	        "path":   path,
//	        "format": format,
//	    },
//	)
package errors
