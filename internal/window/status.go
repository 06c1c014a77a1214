package window

import (
	"errors"
	"fmt"
)

type Status int

const (
	Ok            Status = 0
	GeneralError  Status = -1
	WindowError   Status = -2
	GraphicsError Status = -3
)

func (s Status) String() string {
	switch s {
	case Ok:
		return "ok"
	case GeneralError:
		return "general error"
	case WindowError:
		return "window error"
	case GraphicsError:
		return "graphics error"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNilContext      = errors.New("nil context")
	ErrDestroyed       = errors.New("context already destroyed")
	ErrContextLive     = errors.New("another context is live in this process")
	ErrNoWindow        = errors.New("backend returned no window")
)

// Error carries the status code of a failed operation.
type Error struct {
	Op   string
	Code Status
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// StatusOf maps nil to Ok and errors without a status to GeneralError.
func StatusOf(err error) Status {
	if err == nil {
		return Ok
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return GeneralError
}

func fail(op string, code Status, err error) *Error {
	return &Error{Op: op, Code: code, Err: err}
}
