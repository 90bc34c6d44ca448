// Package diagnostics carries developer-facing error records. Records are
// emitted to a sink as they are built and never abort the frame.
package diagnostics

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Level is the severity of a record
type Level int

const (
	LevelError Level = iota
	LevelWarning
	LevelInfo
	LevelDebug
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarning:
		return "WARNING"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// Record is an immutable diagnostic. It satisfies error.
type Record struct {
	ID        uuid.UUID
	Timestamp time.Time
	Level     Level
	Message   string
	Cause     error

	stack errors.StackTrace
}

// New builds a record, capturing the caller's stack, and emits it.
func New(level Level, message string, cause error) *Record {
	return build(level, message, cause, errors.New(message))
}

// Errorf builds and emits an Error-level record.
func Errorf(cause error, format string, args ...any) *Record {
	message := fmt.Sprintf(format, args...)
	return build(LevelError, message, cause, errors.New(message))
}

// build takes the stack from origin, which must be created directly in the
// exported constructor so the first frame dropped is that constructor.
func build(level Level, message string, cause error, origin error) *Record {
	r := &Record{
		ID:        uuid.New(),
		Timestamp: time.Now().UTC(),
		Level:     level,
		Message:   message,
		Cause:     cause,
		stack:     origin.(stackTracer).StackTrace()[1:],
	}
	emit(r)
	return r
}

func (r *Record) Error() string {
	source := "No source provided"
	if r.Cause != nil {
		source = r.Cause.Error()
	}
	return fmt.Sprintf("[%s] [%s] [%s] %s | Source: %s | Backtrace: %+v",
		r.Timestamp.Format(time.RFC3339), r.Level, r.ID, r.Message, source, r.stack)
}

// Unwrap returns the causing error, if any.
func (r *Record) Unwrap() error {
	return r.Cause
}

// StackTrace returns the frames captured when the record was built.
func (r *Record) StackTrace() errors.StackTrace {
	return r.stack
}
