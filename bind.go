package logust

// Bind returns a new Logger sharing this logger's handlers, callbacks,
// and caches, but with kv overlaid onto its context. An empty kv shares
// the same context reference (zero copy); the context otherwise
// accumulates across bindings.
func (l *Logger) Bind(kv map[string]string) *Logger {
	return &Logger{
		state:   l.state,
		context: l.context.Bind(kv),
	}
}
