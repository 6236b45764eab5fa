package device

import (
	"errors"
	"syscall"
)

var (
	// ErrInvalidState is returned when an operation is illegal for the
	// current lifecycle state.
	ErrInvalidState = errors.New("invalid state")
	// ErrInvalidArgument is returned for unsupported formats or
	// dimensions and undersized destination buffers.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfMemory is returned when a required allocation fails.
	ErrOutOfMemory = errors.New("out of memory")
	// ErrIO is returned when a control signal cannot be delivered to the
	// worker.
	ErrIO = errors.New("i/o error")
	// ErrInternal is returned when a value assumed pre-validated turns
	// out to be inconsistent, e.g. the cached pixel format has no
	// converter.
	ErrInternal = errors.New("internal inconsistency")
)

// Errno maps an error returned by this package onto the POSIX status
// code an owning HAL layer reports upward. nil maps to 0.
func Errno(err error) syscall.Errno {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrInvalidState),
		errors.Is(err, ErrInvalidArgument),
		errors.Is(err, ErrInternal):
		return syscall.EINVAL
	case errors.Is(err, ErrOutOfMemory):
		return syscall.ENOMEM
	default:
		return syscall.EIO
	}
}
