// Package handler gates records by level and an optional filter, then
// renders and writes them to a console stream or a file sink.
package handler

import (
	"sync/atomic"

	"github.com/yamaaaaaa31/logust/format"
	"github.com/yamaaaaaa31/logust/level"
	"github.com/yamaaaaaa31/logust/record"
)

var idCounter atomic.Uint64

// NextID returns a fresh, process-wide unique handler id.
func NextID() uint64 {
	return idCounter.Add(1)
}

// Handler is one output destination: a console stream or a file sink.
type Handler interface {
	Handle(rec record.Record, levelColorName string) error
	Level() level.Level
	Requirements() format.Requirements
}

// Filter inspects a built record view and reports whether the handler
// should receive it. A nil Filter always passes.
type Filter func(v record.View) bool

// Entry pairs a Handler with its id and optional filter, the unit the
// logger's handler list is built from.
type Entry struct {
	ID      uint64
	Handler Handler
	Filter  Filter
}
