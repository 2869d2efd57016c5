package tun

import (
	"errors"
	"fmt"
)

// The Category is used for categorizing errors so that a caller can tell a
// malformed request apart from a failure reported by the kernel.
type Category int

const (
	OK          = Category(iota)
	Validation  // The name hint was rejected before any system call was made
	Acquisition // A system call in the open/ioctl/connect/getsockopt sequence failed
	Unsupported // No acquirer exists for this platform
	Unknown     // Something else
)

func (c Category) String() string {
	switch c {
	case OK:
		return "ok"
	case Validation:
		return "validation"
	case Acquisition:
		return "acquisition"
	case Unsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Error is the error returned by all failing operations in this package. Op names the step
// that failed and Err is the cause, typically a syscall.Errno that remains reachable
// through errors.Is and errors.As.
type Error struct {
	Category Category
	Op       string
	Err      error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap this categorized error.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new categorized error for the given operation. The cause
// can be an error or a string. If it isn't, it will be converted to a string
// using its '%v' formatter.
func (c Category) New(op string, untypedErr any) error {
	var err error
	switch untypedErr := untypedErr.(type) {
	case nil:
		return nil
	case error:
		err = untypedErr
	case string:
		err = errors.New(untypedErr)
	default:
		err = fmt.Errorf("%v", untypedErr)
	}
	return &Error{Category: c, Op: op, Err: err}
}

// Newf creates a new categorized error based on a format string with arguments. The
// error is created using fmt.Errorf() so using '%w' is relevant for error arguments.
func (c Category) Newf(op, format string, a ...any) error {
	return &Error{Category: c, Op: op, Err: fmt.Errorf(format, a...)}
}

// GetCategory returns the error category for a categorized error, OK for nil, and
// Unknown for other errors.
func GetCategory(err error) Category {
	if err == nil {
		return OK
	}
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Category
	}
	return Unknown
}
