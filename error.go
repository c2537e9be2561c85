package picker

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind distinguishes the PickError variants that don't carry their own
// payload type.
type Kind int

const (
	// KindIO wraps an underlying I/O failure.
	KindIO Kind = iota
	// KindDisconnected means the event source disconnected while the
	// picker was still running.
	KindDisconnected
	// KindUserInterrupted means the user interrupted the picker (Ctrl-C)
	// or its run context was canceled, e.g. by SIGINT/SIGTERM. Esc quits
	// without an error.
	KindUserInterrupted
	// KindNotInteractive means the picker could not start because the
	// terminal is not interactive.
	KindNotInteractive
	// KindAborted means an upstream, application-supplied error aborted
	// the picker (see PickError.Aborted).
	KindAborted
)

// PickError is returned by Pick, PickMulti, and PickWithIO. Aborted carries
// the application-defined abort error, if Kind is KindAborted; it is nil
// otherwise.
type PickError struct {
	Kind    Kind
	Cause   error
	Aborted error
}

func (e *PickError) Error() string {
	switch e.Kind {
	case KindIO:
		return e.Cause.Error()
	case KindDisconnected:
		return "event source disconnected while picker was still active"
	case KindUserInterrupted:
		return "keyboard interrupt"
	case KindNotInteractive:
		return "picker could not start since the screen is not interactive"
	case KindAborted:
		return fmt.Sprintf("received abort: %s", e.Aborted)
	default:
		return "unknown picker error"
	}
}

func (e *PickError) Unwrap() error {
	if e.Kind == KindAborted {
		return e.Aborted
	}
	return e.Cause
}

// WrapIO builds a KindIO PickError from an underlying I/O failure.
func WrapIO(err error) *PickError {
	return &PickError{Kind: KindIO, Cause: errors.Wrap(err, "terminal I/O")}
}

// ErrDisconnected is returned when the event source closes unexpectedly.
var ErrDisconnected = &PickError{Kind: KindDisconnected}

// ErrUserInterrupted is returned when the user interrupts the picker
// (Ctrl-C) or its run context is canceled.
var ErrUserInterrupted = &PickError{Kind: KindUserInterrupted}

// ErrNotInteractive is returned when the terminal cannot be put into raw
// mode (e.g. stdin/stdout are redirected to a file).
var ErrNotInteractive = &PickError{Kind: KindNotInteractive}

// Aborted wraps an application-supplied abort error.
func Aborted(err error) *PickError {
	return &PickError{Kind: KindAborted, Aborted: err}
}
