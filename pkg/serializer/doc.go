// Package serializer provides utilities for reading invoice documents and
// writing validation artifacts in various formats.
//
// The package supports three output formats:
//   - JSON: Machine-readable structured data with proper indentation
//   - YAML: Human-readable configuration format
//   - Table: Human-readable tabular output with flattened keys
//
// Reading (JSON and YAML only; format auto-detected from the extension):
//
//	inv, err := serializer.FromFile[invoice.Invoice]("invoice.yaml")
//
// Writing:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close() // Important: close to release file handles
//	if err := w.Serialize(ctx, report); err != nil {
//		log.Fatal(err)
//	}
//
// Remote documents are supported: file paths given to the reader may be
// HTTP/HTTPS URLs, fetched with conservative timeouts from pkg/defaults.
package serializer
