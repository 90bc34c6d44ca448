package diagnostics

import (
	"fmt"
	"log"
	"sync"

	cfg "github.com/automoto/dorian/config"
)

// Sink receives every record as it is built.
type Sink func(r *Record)

var (
	mu   sync.Mutex
	sink Sink = LogSink
)

// LogSink writes records with the standard logger. Debug records are
// dropped unless verbose diagnostics are enabled.
func LogSink(r *Record) {
	if r.Level == LevelDebug && !cfg.Debug.Verbose {
		return
	}
	log.Print(r.Error())
}

// SetSink replaces the active sink and returns a func restoring the previous one.
func SetSink(s Sink) (restore func()) {
	mu.Lock()
	prev := sink
	sink = s
	mu.Unlock()
	return func() {
		mu.Lock()
		sink = prev
		mu.Unlock()
	}
}

func emit(r *Record) {
	mu.Lock()
	s := sink
	mu.Unlock()
	if s != nil {
		s(r)
	}
}

// Debugf logs a plain debug line without building a record.
func Debugf(format string, args ...any) {
	if !cfg.Debug.Verbose {
		return
	}
	log.Printf("[DEBUG] "+format, args...)
}

// Warnf logs a warning line the way the rest of the game does.
func Warnf(format string, args ...any) {
	log.Print("Warning: " + fmt.Sprintf(format, args...))
}
