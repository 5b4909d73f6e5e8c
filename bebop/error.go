package bebop

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a device failure. Connection failures are the only
// fatal class: the driver aborts initialization on them. Everything
// else is recoverable and callers are expected to log and carry on.
type Kind int

const (
	KindConnection Kind = iota
	KindStreaming
	KindCommand
	KindSettings
	KindFrame
)

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindStreaming:
		return "streaming"
	case KindCommand:
		return "command"
	case KindSettings:
		return "settings"
	case KindFrame:
		return "frame"
	}
	return "unknown"
}

// Error is the failure result type signalled by Device implementations.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("bebop: %s: %s failure", e.Op, e.Kind)
	}
	return fmt.Sprintf("bebop: %s: %s failure: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsFatal reports whether err must abort driver initialization. It sees
// through pkg/errors wrapping.
func IsFatal(err error) bool {
	if e, ok := errors.Cause(err).(*Error); ok {
		return e.Kind == KindConnection
	}
	return false
}
