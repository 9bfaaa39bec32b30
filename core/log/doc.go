// File: doc.go
// Title: Package Documentation for log
// Description: Package log provides the structured, leveled logger used by
//              the strx command.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial documentation
// - 2025-10-17 v0.2.0: Reduced to the features the CLI uses

// Package log provides structured, leveled logging.
//
// A Logger writes one line per entry through a Formatter (JSON, text,
// console or logfmt). Context is attached by deriving loggers:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelInfo, Format: log.FormatText})
//	reqLogger := logger.WithRequestID(id).WithField("command", "replace")
//	reqLogger.Info("reading input")
//
// LogError understands errors from github.com/msto63/strx/core/error and
// picks the level from their severity: low severity is logged at info,
// medium at warn and everything above at error.
//
// The stringx library never logs; only the command line front end does.
package log
