package serializer

import "context"

// Serializer is an interface for writing structured artifacts (invoices,
// validation reports) to an output destination.
//
// The context parameter is used for cancellation and timeouts, mainly for
// implementations that perform slow I/O.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

// Closer is an optional interface that Serializers can implement if they
// need to release resources (e.g., close file handles).
type Closer interface {
	Close() error
}
