package device

import (
	"time"

	"github.com/pion/emucam/pkg/frame"
)

// Source is the concrete capture source behind a Device. The device
// core never depends on a particular implementation; anything that can
// acquire a capture target and fill planar frames will do.
type Source interface {
	// StartDevice acquires the capture target for the given geometry.
	StartDevice(width, height int, f frame.Format) error
	// StopDevice releases it.
	StopDevice() error
	// ProduceFrame writes the next frame into dst, which holds exactly
	// one frame in the format negotiated by StartDevice. Returning false
	// ends the capture loop.
	ProduceFrame(dst []byte) bool
}

// FrameReadier is implemented by sources that can announce frame
// availability; the capture loop waits on the returned channel instead
// of pacing blindly.
type FrameReadier interface {
	FrameReady() <-chan struct{}
}

// FramePacer is implemented by sources that want the capture loop to
// wake up on a fixed interval, e.g. to synthesize frames at a target
// rate.
type FramePacer interface {
	FrameInterval() time.Duration
}
