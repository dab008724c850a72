package sink

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
