package logust

import "github.com/yamaaaaaa31/logust/record"

// logOptions carries the call-site-supplied fields a log call can
// attach. Caller/thread/process capture is the call site's
// responsibility; the logger never inspects runtime state to fill
// these in itself.
type logOptions struct {
	exception string
	caller    record.Caller
	thread    record.Thread
	process   record.Process
}

// LogOption attaches optional per-call data to a log record.
type LogOption func(*logOptions)

// WithException attaches exception/traceback text, appended after the
// rendered line.
func WithException(text string) LogOption {
	return func(o *logOptions) { o.exception = text }
}

// WithCaller attaches source location fields.
func WithCaller(name, function string, line int, file string) LogOption {
	return func(o *logOptions) {
		o.caller = record.Caller{Name: name, Function: function, Line: line, File: file}
	}
}

// WithThread attaches thread identity fields.
func WithThread(name string, id uint64) LogOption {
	return func(o *logOptions) { o.thread = record.Thread{Name: name, ID: id} }
}

// WithProcess attaches process identity fields.
func WithProcess(name string, id int) LogOption {
	return func(o *logOptions) { o.process = record.Process{Name: name, ID: id} }
}
