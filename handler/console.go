package handler

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/yamaaaaaa31/logust/format"
	"github.com/yamaaaaaa31/logust/level"
	"github.com/yamaaaaaa31/logust/record"
)

// ConsoleHandler writes rendered records to stdout or stderr.
type ConsoleHandler struct {
	level    atomic.Int32
	cfg      *format.Config
	colorize bool
	stream   io.Writer
}

// ConsoleOption customizes NewConsole beyond its required arguments.
type ConsoleOption func(*ConsoleHandler)

// WithTemplate overrides the default rendering template.
func WithTemplate(template string, serialize bool) ConsoleOption {
	return func(h *ConsoleHandler) { h.cfg = format.NewConfig(template, serialize) }
}

// WithColorize forces colorization on or off, overriding the terminal
// auto-detection NewConsole otherwise performs.
func WithColorize(colorize bool) ConsoleOption {
	return func(h *ConsoleHandler) { h.colorize = colorize }
}

// NewConsole builds a console handler at lvl, writing to stderr when
// useStderr is set and otherwise stdout. Colorization defaults to
// whether the chosen stream is a terminal, detected via go-isatty; the
// stream is wrapped with go-colorable so ANSI codes render correctly on
// Windows consoles too.
func NewConsole(lvl level.Level, useStderr bool, opts ...ConsoleOption) *ConsoleHandler {
	var f *os.File
	if useStderr {
		f = os.Stderr
	} else {
		f = os.Stdout
	}

	h := &ConsoleHandler{
		cfg:      format.NewConfig(format.DefaultTemplate, false),
		colorize: isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()),
		stream:   colorable.NewColorable(f),
	}
	h.level.Store(int32(lvl))

	for _, opt := range opts {
		opt(h)
	}

	return h
}

func (h *ConsoleHandler) Level() level.Level { return level.Level(h.level.Load()) }

// SetLevel updates the handler's minimum severity.
func (h *ConsoleHandler) SetLevel(lvl level.Level) { h.level.Store(int32(lvl)) }

func (h *ConsoleHandler) Requirements() format.Requirements { return h.cfg.Requirements }

// Handle renders rec if it meets this handler's level and writes it
// with a trailing newline. levelColorName is the ANSI color name
// resolved by the caller for rec's level (built-in or custom).
func (h *ConsoleHandler) Handle(rec record.Record, levelColorName string) error {
	if rec.Level < h.Level() {
		return nil
	}
	output := h.cfg.Render(rec, levelColorName, h.colorize)
	_, err := fmt.Fprintln(h.stream, output)
	return err
}
