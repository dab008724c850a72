package handler

import (
	"github.com/yamaaaaaa31/logust/format"
	"github.com/yamaaaaaa31/logust/level"
	"github.com/yamaaaaaa31/logust/record"
	"github.com/yamaaaaaa31/logust/sink"
)

// FileHandler writes rendered records to a rotating file sink. Output
// is never colorized, matching the spec's "file sinks receive raw
// text" rule.
type FileHandler struct {
	sink  *sink.FileSink
	level level.Level
	cfg   *format.Config
}

// NewFile wraps an already-opened sink with a level gate and format.
func NewFile(s *sink.FileSink, lvl level.Level, template string, serialize bool) *FileHandler {
	return &FileHandler{
		sink:  s,
		level: lvl,
		cfg:   format.NewConfig(template, serialize),
	}
}

func (h *FileHandler) Level() level.Level { return h.level }

func (h *FileHandler) Requirements() format.Requirements { return h.cfg.Requirements }

func (h *FileHandler) Handle(rec record.Record, levelColorName string) error {
	if rec.Level < h.level {
		return nil
	}
	output := h.cfg.Render(rec, levelColorName, false)
	return h.sink.Write(output)
}

// Flush flushes the underlying file sink.
func (h *FileHandler) Flush() error {
	return h.sink.Flush()
}

// Close releases the underlying file sink.
func (h *FileHandler) Close() error {
	return h.sink.Close()
}
