// Package logust is a structured, multi-sink logging engine: a level
// registry, a template/JSON formatter with inline color markup, a
// rotating file sink, and a Logger that dispatches to console and file
// handlers plus arbitrary callbacks.
package logust

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/yamaaaaaa31/logust/format"
	"github.com/yamaaaaaa31/logust/handler"
	"github.com/yamaaaaaa31/logust/level"
	"github.com/yamaaaaaa31/logust/record"
	"github.com/yamaaaaaa31/logust/sink"
)

// Callback receives a record view for every record at or above its
// registered level.
type Callback func(v record.View)

type callbackEntry struct {
	id    uint64
	fn    Callback
	level level.Level
}

// sharedState is everything a Logger and its bindings hold in common:
// the handler and callback lists, and the caches derived from them.
// Bind shares a pointer to this struct rather than copying it, matching
// the "bind shares handlers/callbacks/caches" rule.
type sharedState struct {
	mu        sync.RWMutex
	handlers  []handler.Entry
	callbacks []callbackEntry

	cachedMinLevel   atomic.Int32
	cachedHasFilters atomic.Bool

	registry *level.Registry
}

// Logger dispatches log calls to its handlers and callbacks. The zero
// value is not usable; construct with New.
type Logger struct {
	state   *sharedState
	context *record.Context
}

// New constructs a Logger with a single Console(stdout) handler at lvl.
func New(lvl level.Level) *Logger {
	state := &sharedState{registry: level.Default}
	state.handlers = append(state.handlers, handler.Entry{
		ID:      handler.NextID(),
		Handler: handler.NewConsole(lvl, false),
	})
	l := &Logger{state: state, context: record.EmptyContext}
	l.recomputeCaches()
	return l
}

// FileOption customizes Add.
type FileOption func(*fileOptions)

type fileOptions struct {
	level       level.Level
	template    string
	serialize   bool
	rotation    string
	retention   string
	compression bool
	async       bool
	filter      handler.Filter
}

func WithFileLevel(lvl level.Level) FileOption { return func(o *fileOptions) { o.level = lvl } }
func WithFileTemplate(t string) FileOption      { return func(o *fileOptions) { o.template = t } }
func WithFileSerialize(b bool) FileOption       { return func(o *fileOptions) { o.serialize = b } }
func WithFileRotation(r string) FileOption      { return func(o *fileOptions) { o.rotation = r } }
func WithFileRetention(r string) FileOption     { return func(o *fileOptions) { o.retention = r } }
func WithFileCompression(b bool) FileOption     { return func(o *fileOptions) { o.compression = b } }
func WithFileAsync(b bool) FileOption           { return func(o *fileOptions) { o.async = b } }
func WithFileFilter(f handler.Filter) FileOption {
	return func(o *fileOptions) { o.filter = f }
}

// Add constructs a file sink and handler at path and registers it.
func (l *Logger) Add(path string, opts ...FileOption) (uint64, error) {
	fo := fileOptions{level: level.DEBUG, template: format.DefaultTemplate}
	for _, opt := range opts {
		opt(&fo)
	}

	rotation, maxSize := sink.Never, uint64(0)
	if fo.rotation != "" {
		rotation, maxSize = sink.ParseRotation(fo.rotation)
	}
	var retentionDays, retentionCount uint32
	if fo.retention != "" {
		retentionDays, retentionCount = sink.ParseRetention(fo.retention)
	}

	fileSink, err := sink.New(sink.Config{
		Path:           path,
		Rotation:       rotation,
		MaxSize:        maxSize,
		RetentionDays:  retentionDays,
		RetentionCount: retentionCount,
		Compression:    fo.compression,
		Async:          fo.async,
	})
	if err != nil {
		return 0, wrapf("failed to add file handler for "+path, err)
	}

	fh := handler.NewFile(fileSink, fo.level, fo.template, fo.serialize)
	id := handler.NextID()

	l.state.mu.Lock()
	l.state.handlers = append(l.state.handlers, handler.Entry{ID: id, Handler: fh, Filter: fo.filter})
	l.state.mu.Unlock()

	l.recomputeCaches()
	return id, nil
}

// ConsoleOption customizes AddConsole.
type ConsoleOption func(*consoleOptions)

type consoleOptions struct {
	level     level.Level
	template  string
	serialize bool
	colorize  *bool
	filter    handler.Filter
}

func WithConsoleLevel(lvl level.Level) ConsoleOption { return func(o *consoleOptions) { o.level = lvl } }
func WithConsoleTemplate(t string) ConsoleOption      { return func(o *consoleOptions) { o.template = t } }
func WithConsoleSerialize(b bool) ConsoleOption       { return func(o *consoleOptions) { o.serialize = b } }
func WithConsoleColorize(b bool) ConsoleOption        { return func(o *consoleOptions) { o.colorize = &b } }
func WithConsoleFilter(f handler.Filter) ConsoleOption {
	return func(o *consoleOptions) { o.filter = f }
}

// AddConsole registers a console handler writing to "stdout" or
// "stderr".
func (l *Logger) AddConsole(stream string, opts ...ConsoleOption) (uint64, error) {
	if stream != "stdout" && stream != "stderr" {
		return 0, ErrInvalidStream
	}

	co := consoleOptions{level: level.DEBUG, template: format.DefaultTemplate}
	for _, opt := range opts {
		opt(&co)
	}

	handlerOpts := []handler.ConsoleOption{handler.WithTemplate(co.template, co.serialize)}
	if co.colorize != nil {
		handlerOpts = append(handlerOpts, handler.WithColorize(*co.colorize))
	} else {
		handlerOpts = append(handlerOpts, handler.WithColorize(!co.serialize))
	}

	ch := handler.NewConsole(co.level, stream == "stderr", handlerOpts...)
	id := handler.NextID()

	l.state.mu.Lock()
	l.state.handlers = append(l.state.handlers, handler.Entry{ID: id, Handler: ch, Filter: co.filter})
	l.state.mu.Unlock()

	l.recomputeCaches()
	return id, nil
}

// Remove removes the handler with id, or every handler if id is nil.
// Any file handler removed this way is flushed and closed — if it was
// writing asynchronously, its background goroutine is signaled to stop
// and joined — before Remove returns.
func (l *Logger) Remove(id *uint64) bool {
	l.state.mu.Lock()
	var removed bool
	var closing []*handler.FileHandler
	if id == nil {
		removed = len(l.state.handlers) > 0
		closing = fileHandlersOf(l.state.handlers)
		l.state.handlers = nil
	} else {
		for i, e := range l.state.handlers {
			if e.ID == *id {
				if fh, ok := e.Handler.(*handler.FileHandler); ok {
					closing = append(closing, fh)
				}
				l.state.handlers = append(l.state.handlers[:i], l.state.handlers[i+1:]...)
				removed = true
				break
			}
		}
	}
	l.state.mu.Unlock()

	for _, fh := range closing {
		_ = fh.Close()
	}

	l.recomputeCaches()
	return removed
}

func fileHandlersOf(entries []handler.Entry) []*handler.FileHandler {
	var out []*handler.FileHandler
	for _, e := range entries {
		if fh, ok := e.Handler.(*handler.FileHandler); ok {
			out = append(out, fh)
		}
	}
	return out
}

// AddCallback registers cb to receive every record view at or above
// lvl.
func (l *Logger) AddCallback(cb Callback, lvl level.Level) uint64 {
	id := handler.NextID()
	l.state.mu.Lock()
	l.state.callbacks = append(l.state.callbacks, callbackEntry{id: id, fn: cb, level: lvl})
	l.state.mu.Unlock()
	l.recomputeCaches()
	return id
}

// RemoveCallback removes the callback with id.
func (l *Logger) RemoveCallback(id uint64) bool {
	l.state.mu.Lock()
	var removed bool
	for i, c := range l.state.callbacks {
		if c.id == id {
			l.state.callbacks = append(l.state.callbacks[:i], l.state.callbacks[i+1:]...)
			removed = true
			break
		}
	}
	l.state.mu.Unlock()
	l.recomputeCaches()
	return removed
}

// RemoveCallbacks removes every callback whose id is in ids, returning
// how many were actually removed.
func (l *Logger) RemoveCallbacks(ids []uint64) int {
	want := make(map[uint64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	l.state.mu.Lock()
	kept := l.state.callbacks[:0]
	removed := 0
	for _, c := range l.state.callbacks {
		if want[c.id] {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	l.state.callbacks = kept
	l.state.mu.Unlock()

	l.recomputeCaches()
	return removed
}

// SetLevel updates every console handler's level.
func (l *Logger) SetLevel(lvl level.Level) {
	l.setConsoleLevel(lvl)
	l.recomputeCaches()
}

// GetLevel returns the first console handler's level, or DEBUG if none
// exists.
func (l *Logger) GetLevel() level.Level {
	l.state.mu.RLock()
	defer l.state.mu.RUnlock()
	for _, e := range l.state.handlers {
		if ch, ok := e.Handler.(*handler.ConsoleHandler); ok {
			return ch.Level()
		}
	}
	return level.DEBUG
}

// IsLevelEnabled reports whether any handler or callback would accept
// lvl.
func (l *Logger) IsLevelEnabled(lvl level.Level) bool {
	l.state.mu.RLock()
	defer l.state.mu.RUnlock()
	for _, e := range l.state.handlers {
		if lvl >= e.Handler.Level() {
			return true
		}
	}
	for _, c := range l.state.callbacks {
		if lvl >= c.level {
			return true
		}
	}
	return false
}

// MinLevel returns the cached minimum severity across handlers and
// callbacks; it is a hint, re-validated under lock at dispatch time.
func (l *Logger) MinLevel() level.Level {
	return level.Level(l.state.cachedMinLevel.Load())
}

// Disable removes every console handler.
func (l *Logger) Disable() {
	l.state.mu.Lock()
	kept := l.state.handlers[:0]
	for _, e := range l.state.handlers {
		if _, ok := e.Handler.(*handler.ConsoleHandler); !ok {
			kept = append(kept, e)
		}
	}
	l.state.handlers = kept
	l.state.mu.Unlock()
	l.recomputeCaches()
}

// Enable appends a console handler at lvl if none exists.
func (l *Logger) Enable(lvl level.Level) {
	l.state.mu.Lock()
	hasConsole := false
	for _, e := range l.state.handlers {
		if _, ok := e.Handler.(*handler.ConsoleHandler); ok {
			hasConsole = true
			break
		}
	}
	if !hasConsole {
		l.state.handlers = append(l.state.handlers, handler.Entry{
			ID:      handler.NextID(),
			Handler: handler.NewConsole(lvl, false),
		})
	}
	l.state.mu.Unlock()
	l.recomputeCaches()
}

// IsEnabled reports whether any console handler is installed.
func (l *Logger) IsEnabled() bool {
	l.state.mu.RLock()
	defer l.state.mu.RUnlock()
	for _, e := range l.state.handlers {
		if _, ok := e.Handler.(*handler.ConsoleHandler); ok {
			return true
		}
	}
	return false
}

// Complete flushes every file handler, ensuring pending writes land.
func (l *Logger) Complete() error {
	l.state.mu.RLock()
	defer l.state.mu.RUnlock()
	for _, e := range l.state.handlers {
		if fh, ok := e.Handler.(*handler.FileHandler); ok {
			if err := fh.Flush(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Close tears the logger down: every file handler is flushed and
// closed — joining its background writer goroutine if it was async —
// and every handler is removed. Call it once, at shutdown; a Logger
// is not usable afterward.
func (l *Logger) Close() error {
	l.state.mu.Lock()
	closing := fileHandlersOf(l.state.handlers)
	l.state.handlers = nil
	l.state.mu.Unlock()

	var firstErr error
	for _, fh := range closing {
		if err := fh.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	l.recomputeCaches()
	return firstErr
}

func (l *Logger) setConsoleLevel(lvl level.Level) {
	l.state.mu.Lock()
	defer l.state.mu.Unlock()
	for _, e := range l.state.handlers {
		if ch, ok := e.Handler.(*handler.ConsoleHandler); ok {
			ch.SetLevel(lvl)
		}
	}
}

// recomputeCaches traverses handlers and callbacks to refresh the
// cached minimum severity and has-filters flag.
func (l *Logger) recomputeCaches() {
	l.state.mu.RLock()
	defer l.state.mu.RUnlock()

	minLevel := int32(math.MaxInt32)
	hasFilters := false
	for _, e := range l.state.handlers {
		if v := int32(e.Handler.Level()); v < minLevel {
			minLevel = v
		}
		if e.Filter != nil {
			hasFilters = true
		}
	}
	for _, c := range l.state.callbacks {
		if v := int32(c.level); v < minLevel {
			minLevel = v
		}
	}

	l.state.cachedMinLevel.Store(minLevel)
	l.state.cachedHasFilters.Store(hasFilters)
}
