package device

import (
	"errors"
	"fmt"
	"syscall"
	"testing"
)

func TestErrno(t *testing.T) {
	cases := []struct {
		err      error
		expected syscall.Errno
	}{
		{nil, 0},
		{ErrInvalidState, syscall.EINVAL},
		{ErrInvalidArgument, syscall.EINVAL},
		{ErrInternal, syscall.EINVAL},
		{ErrOutOfMemory, syscall.ENOMEM},
		{ErrIO, syscall.EIO},
		{fmt.Errorf("%w: device is not initialized", ErrInvalidState), syscall.EINVAL},
		{errors.New("source refused to start"), syscall.EIO},
	}

	for _, c := range cases {
		if got := Errno(c.err); got != c.expected {
			t.Errorf("Errno(%v): expected %d, got %d", c.err, int(c.expected), int(got))
		}
	}
}
