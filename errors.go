package msgqueue

import "fmt"

// ErrorCode classifies an *Error for programmatic handling with errors.Is.
type ErrorCode int

const (
	// CodeUnknown is the zero value; *Error should always set a real code.
	CodeUnknown ErrorCode = iota
	// CodeQueueFull means a push was attempted against a full ring.
	CodeQueueFull
	// CodeQueueEmpty means a pop was attempted against an empty ring.
	CodeQueueEmpty
	// CodeUnknownCommand means no handler is registered for a code.
	CodeUnknownCommand
	// CodeInvalidHeader means a header failed its sanity check: a
	// wptr-rptr distance (mod PointerWrap) greater than Capacity.
	CodeInvalidHeader
	// CodeHandlerPanic means a handler's Handle method panicked.
	CodeHandlerPanic
)

func (c ErrorCode) String() string {
	switch c {
	case CodeQueueFull:
		return "queue_full"
	case CodeQueueEmpty:
		return "queue_empty"
	case CodeUnknownCommand:
		return "unknown_command"
	case CodeInvalidHeader:
		return "invalid_header"
	case CodeHandlerPanic:
		return "handler_panic"
	default:
		return "unknown"
	}
}

// Error is the structured error type returned by this package's exported
// operations. Op names the failing operation, Queue identifies which
// queue (or -1 if not queue-scoped), Code classifies the failure, and
// Inner optionally wraps the underlying cause.
type Error struct {
	Op    string
	Queue int
	Code  ErrorCode
	Msg   string
	Inner error
}

func (e *Error) Error() string {
	if e.Queue >= 0 {
		if e.Msg != "" {
			return fmt.Sprintf("msgqueue: %s: queue %d: %s: %s", e.Op, e.Queue, e.Code, e.Msg)
		}
		return fmt.Sprintf("msgqueue: %s: queue %d: %s", e.Op, e.Queue, e.Code)
	}
	if e.Msg != "" {
		return fmt.Sprintf("msgqueue: %s: %s: %s", e.Op, e.Code, e.Msg)
	}
	return fmt.Sprintf("msgqueue: %s: %s", e.Op, e.Code)
}

func (e *Error) Unwrap() error { return e.Inner }

// Is reports whether target is an *Error with the same Code, so callers
// can write errors.Is(err, msgqueue.ErrQueueFull) without caring which
// queue or operation produced err.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// ErrQueueFull is the sentinel matched by errors.Is against any *Error
// with Code == CodeQueueFull.
var ErrQueueFull = &Error{Op: "*", Queue: -1, Code: CodeQueueFull}

// ErrQueueEmpty is the sentinel matched by errors.Is against any *Error
// with Code == CodeQueueEmpty.
var ErrQueueEmpty = &Error{Op: "*", Queue: -1, Code: CodeQueueEmpty}

// ErrInvalidHeader is the sentinel matched by errors.Is against any
// *Error with Code == CodeInvalidHeader.
var ErrInvalidHeader = &Error{Op: "*", Queue: -1, Code: CodeInvalidHeader}

func newError(op string, queue int, code ErrorCode, inner error) *Error {
	return &Error{Op: op, Queue: queue, Code: code, Inner: inner}
}
