// File: timer.go
// Title: Operation Timer
// Description: Measures how long an operation takes and logs the result
//              when it is stopped.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial timer implementation
// - 2025-10-17 v0.2.0: Single completion entry carrying the duration

package log

import "time"

// Timer measures the duration of one operation
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the log level for the completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop logs "<operation> completed" with the elapsed time and returns it.
// Only the first call logs; later calls return 0.
func (t *Timer) Stop() time.Duration {
	return t.stop(t.level, t.operation+" completed", nil)
}

// StopWithError is like Stop but logs at error level with err attached
func (t *Timer) StopWithError(err error) time.Duration {
	return t.stop(LevelError, t.operation+" failed", err)
}

func (t *Timer) stop(level Level, message string, err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true

	elapsed := t.Elapsed()
	if t.logger != nil {
		t.logger.log(level, message, err, elapsed, t.fields, Field("operation", t.operation))
	}
	return elapsed
}
