// Package logging provides structured logging utilities shared by the
// teifctl CLI and the validation library.
//
// It wraps the standard library slog package with project defaults:
// structured JSON output to stderr, module and version context on every
// record, LOG_LEVEL environment configuration, and source location
// tracking for debug logs.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("teifctl", version)
//
//	    slog.Info("validating document", "path", path)
//	    slog.Debug("detailed state", "invoice", inv)
//	    slog.Error("load failed", "error", err)
//	}
//
// Setting an explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("teifctl", version, "warn")
//
// The LOG_LEVEL environment variable controls verbosity when no explicit
// level is given (debug, info, warn, error; defaults to info):
//
//	LOG_LEVEL=debug teifctl validate -f invoice.yaml
//
// All logs are written to stderr in JSON format so that report output on
// stdout stays machine-parseable:
//
//	{
//	    "time": "2025-08-19T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "validation completed",
//	    "module": "teifctl",
//	    "version": "v0.3.0",
//	    "violations": 2
//	}
package logging
