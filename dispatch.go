package logust

import (
	"slices"
	"time"

	"github.com/yamaaaaaa31/logust/level"
	"github.com/yamaaaaaa31/logust/record"
)

// Trace logs at TRACE severity.
func (l *Logger) Trace(message string, opts ...LogOption) { l.dispatch(level.TRACE, "TRACE", message, opts) }

// Debug logs at DEBUG severity.
func (l *Logger) Debug(message string, opts ...LogOption) { l.dispatch(level.DEBUG, "DEBUG", message, opts) }

// Info logs at INFO severity.
func (l *Logger) Info(message string, opts ...LogOption) { l.dispatch(level.INFO, "INFO", message, opts) }

// Success logs at SUCCESS severity.
func (l *Logger) Success(message string, opts ...LogOption) {
	l.dispatch(level.SUCCESS, "SUCCESS", message, opts)
}

// Warning logs at WARNING severity.
func (l *Logger) Warning(message string, opts ...LogOption) {
	l.dispatch(level.WARNING, "WARNING", message, opts)
}

// Error logs at ERROR severity.
func (l *Logger) Error(message string, opts ...LogOption) { l.dispatch(level.ERROR, "ERROR", message, opts) }

// Fail logs at FAIL severity.
func (l *Logger) Fail(message string, opts ...LogOption) { l.dispatch(level.FAIL, "FAIL", message, opts) }

// Critical logs at CRITICAL severity.
func (l *Logger) Critical(message string, opts ...LogOption) {
	l.dispatch(level.CRITICAL, "CRITICAL", message, opts)
}

// Log resolves lvl (a level name string or a numeric severity) against
// the logger's registry and dispatches at that severity.
func (l *Logger) Log(lvl any, message string, opts ...LogOption) error {
	var info level.Info
	var ok bool

	switch v := lvl.(type) {
	case string:
		info, ok = l.state.registry.GetByName(v)
	case level.Level:
		info, ok = l.state.registry.GetByNo(v)
	case int:
		info, ok = l.state.registry.GetByNo(level.Level(v))
	default:
		ok = false
	}
	if !ok {
		return ErrUnknownLevel
	}

	l.dispatch(info.No, info.Name, message, opts)
	return nil
}

// dispatch is the core pipeline shared by every severity-specific
// method and Log: gate on cached/eligible levels, compose a record,
// and deliver it to callbacks/handlers.
func (l *Logger) dispatch(lvl level.Level, levelName, message string, opts []LogOption) {
	if int32(lvl) < l.state.cachedMinLevel.Load() {
		return
	}

	l.state.mu.RLock()
	handlers := slices.Clone(l.state.handlers)
	callbacks := slices.Clone(l.state.callbacks)

	hasEligibleHandler := false
	for _, e := range handlers {
		if lvl >= e.Handler.Level() {
			hasEligibleHandler = true
			break
		}
	}
	hasEligibleCallback := false
	for _, c := range callbacks {
		if lvl >= c.level {
			hasEligibleCallback = true
			break
		}
	}
	l.state.mu.RUnlock()

	if !hasEligibleHandler && !hasEligibleCallback {
		return
	}

	o := logOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	rec := record.Record{
		Timestamp: time.Now(),
		Level:     lvl,
		LevelName: levelName,
		Message:   message,
		Extra:     l.context,
		Exception: o.exception,
		Caller:    o.caller,
		Thread:    o.thread,
		Process:   o.process,
	}

	colorName := "white"
	if info, ok := l.state.registry.GetByNo(lvl); ok && info.Color != "" {
		colorName = info.Color
	}

	hasCallbacks := len(callbacks) > 0 && hasEligibleCallback
	hasFilters := l.state.cachedHasFilters.Load()

	if !hasCallbacks && !hasFilters {
		for _, e := range handlers {
			_ = e.Handler.Handle(rec, colorName)
		}
		return
	}

	view := record.BuildView(rec)

	for _, c := range callbacks {
		if lvl >= c.level {
			c.fn(view)
		}
	}

	for _, e := range handlers {
		if e.Filter != nil {
			passes := func() (passes bool) {
				defer func() {
					if recover() != nil {
						passes = true // filter errors are treated as pass
					}
				}()
				return e.Filter(view)
			}()
			if !passes {
				continue
			}
		}
		_ = e.Handler.Handle(rec, colorName)
	}
}
