package cmd

import "log/slog"

// Error is a command failure that renders as "<msg>: <cause>" and carries
// structured attributes for logging.
type Error struct {
	msg   string
	err   error
	attrs []slog.Attr
}

func NewError(msg string) *Error {
	return &Error{msg: msg}
}

func (e *Error) Error() string {
	switch {
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	}

	return ""
}

func (e *Error) Unwrap() error { return e.err }

// LogValue renders the error as a group of its message, cause, and any
// attached attributes.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap returns a copy of e with err recorded as its cause. The receiver is
// unchanged, so sentinel errors can be wrapped concurrently.
func (e *Error) Wrap(err error) *Error {
	w := *e
	w.err = err

	return &w
}

// With returns a copy of e carrying the additional attributes.
func (e *Error) With(attrs ...slog.Attr) *Error {
	w := *e
	w.attrs = append(e.attrs[:len(e.attrs):len(e.attrs)], attrs...)

	return &w
}

var (
	ErrWriteConfig  = NewError("write configuration file")
	ErrFileExists   = NewError("file exists (use --force to overwrite)")
	ErrSaveState    = NewError("save project state")
	ErrRenderOutput = NewError("render output")
	ErrEncrypt      = NewError("encrypt value")
	ErrDecrypt      = NewError("decrypt value")
	ErrConfirmation = NewError(
		"environment requires confirmation (pass --yes)",
	)
)
