package logust

import "errors"

// ErrUnknownLevel is returned by Log when the level name or number given
// doesn't resolve in the level registry.
var ErrUnknownLevel = errors.New("logust: unknown level")

// ErrInvalidStream is returned by AddConsole for a stream name other
// than "stdout" or "stderr".
var ErrInvalidStream = errors.New("logust: stream must be \"stdout\" or \"stderr\"")

// wrappedError pairs a message with the underlying cause, unwrappable
// via errors.Is/errors.As.
type wrappedError struct {
	msg   string
	cause error
}

func (e *wrappedError) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func (e *wrappedError) Unwrap() error {
	return e.cause
}

func wrapf(msg string, cause error) error {
	return &wrappedError{msg: msg, cause: cause}
}
