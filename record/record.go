// Package record defines the immutable log record and the context
// mapping attached to every logger that emits it.
package record

import (
	"time"

	"github.com/yamaaaaaa31/logust/level"
)

// Caller describes where in the caller's source a log call originated.
// The spec treats capture of this information as an external concern:
// the call site supplies it explicitly rather than the logger deriving
// it via runtime reflection.
type Caller struct {
	Name     string
	Function string
	Line     int
	File     string
}

// Thread identifies the logical thread or goroutine that produced a
// record.
type Thread struct {
	Name string
	ID   uint64
}

// Process identifies the process that produced a record.
type Process struct {
	Name string
	ID   int
}

// Record is the immutable value carrying everything known about one log
// event. Once constructed it is never mutated.
type Record struct {
	Timestamp time.Time
	Level     level.Level
	LevelName string
	Message   string
	Extra     *Context
	Exception string
	Caller    Caller
	Thread    Thread
	Process   Process
}

// HasException reports whether this record carries exception text.
func (r Record) HasException() bool {
	return r.Exception != ""
}
