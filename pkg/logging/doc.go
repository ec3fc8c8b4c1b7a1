// Package logging provides structured logging utilities shared by the
// sugarcube CLI and API server.
//
// It wraps the standard library slog package with project defaults:
// structured JSON output to stderr, environment-based log level
// configuration (LOG_LEVEL), automatic module/version attributes, and
// source location tracking when debug logging is enabled.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("sugarcube", version)
//	    slog.Info("converting", "from", "g", "to", "cup")
//	}
//
// Setting an explicit level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("sugarcubed", version, "warn")
//
// Supported levels (case-insensitive): debug, info, warn/warning, error.
// If LOG_LEVEL is not set and no explicit level is given, INFO is used.
package logging
