// Package logging provides structured logging for the urlmap tool.
//
// This package wraps a global zap logger. Logging is silent by default so
// that command output stays clean for scripts; set a level with the
// --log-level flag or the URLMAP_LOG_LEVEL environment variable to see it.
//
// # Log Levels
//
//   - Debug: Map file loading, per-lookup results
//   - Info: Configuration and table summary
//   - Warn: Unresolved namespaces
//   - Error: Failures that abort a command
//
// # Usage
//
//	if err := logging.Initialize("debug"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
//	logging.Info("Table ready", zap.Int("entries", table.Len()))
//
// Log output goes to stderr so it never mixes with command results on stdout.
package logging
