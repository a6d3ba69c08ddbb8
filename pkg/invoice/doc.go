// Package invoice defines the in-memory TEIF invoice document tree.
//
// # Overview
//
// The types in this package mirror the segment structure of a TEIF
// (Tunisian Electronic Invoice Format) interchange message: envelope
// attributes, message header, Bgm (document identification), Dtm (dates),
// Nad partner sections, Lin line items, Moa amounts, and the tax block.
//
// Every nested record is a pointer and every repeated segment a slice, so
// any part of the tree may be absent. Consumers (most notably the
// validator) must treat absence as a reportable condition, never as a
// fault; the nil-safe lookup helpers on Invoice support that discipline.
//
// The package holds no parsing logic. Callers materialize the tree
// themselves, typically from JSON or YAML via pkg/serializer.
package invoice
