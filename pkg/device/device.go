// Package device implements a single emulated camera capture device:
// the lifecycle state machine, the frame buffer it owns, and the
// cooperatively stoppable worker that produces frames into it. Frame
// synthesis itself belongs to the Source implementation behind the
// device.
package device

import (
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pion/emucam/internal/logging"
	"github.com/pion/emucam/pkg/frame"
)

var logger = logging.NewLogger("emucam/device")

// defaultWakeInterval bounds the capture loop's wait for sources that
// provide neither a readiness channel nor a pacing interval; without it
// the loop would block on the control endpoint alone and never invoke
// the production hook.
const defaultWakeInterval = 10 * time.Millisecond

// Device is one emulated camera capture device. All operations are
// gated on the lifecycle state; the zero of everything else is reached
// through Initialize and StartCapturing.
//
// The mutex guards frame buffer replacement, frame buffer reads and
// frame production, so a reader can never observe a torn frame or a
// buffer freed mid-copy. Lifecycle operations are owner-side and are
// not meant to be called concurrently with each other.
type Device struct {
	mu sync.Mutex

	id     string
	source Source
	state  State
	worker *worker

	capturing      bool
	currentFrame   []byte
	frameWidth     int
	frameHeight    int
	pixelFormat    frame.Format
	frameSize      int
	totalPixels    int
	frameTimestamp time.Time
}

// New returns a device in the constructed state, backed by source.
func New(source Source) *Device {
	return &Device{
		id:     uuid.NewString(),
		source: source,
		state:  StateConstructed,
	}
}

// ID is the stable identifier the owning layer multiplexes devices by.
func (d *Device) ID() string {
	return d.id
}

// State reports the current lifecycle state.
func (d *Device) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Capturing reports whether a capture source is active and a frame
// buffer is live.
func (d *Device) Capturing() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.isCapturing()
}

// FrameSize returns the byte size of one frame at the current capture
// geometry, or 0 when not capturing. Callers size CurrentFrame
// destinations with it.
func (d *Device) FrameSize() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.isCapturing() {
		return 0
	}
	return d.frameSize
}

// FrameTimestamp returns the time the most recent frame was produced.
func (d *Device) FrameTimestamp() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frameTimestamp
}

func (d *Device) isInitialized() bool {
	return d.state == StateInitialized
}

func (d *Device) isCapturing() bool {
	return d.isInitialized() && d.capturing
}

// Initialize transitions the device from constructed to initialized and
// allocates the worker controller. Calling it on an already initialized
// device is a no-op that succeeds.
func (d *Device) Initialize() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.isInitialized() {
		logger.Warnf("device %s is already initialized: state = %s", d.id, d.state)
		return nil
	}

	d.worker = newWorker(d.produceFrame)
	d.state = StateInitialized
	return nil
}

// StartCapturing validates the requested geometry, allocates the frame
// buffer and starts the capture source. On source failure the buffer is
// released again and the device stays non-capturing.
func (d *Device) StartCapturing(width, height int, f frame.Format) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.isInitialized() {
		return fmt.Errorf("%w: device is not initialized", ErrInvalidState)
	}

	// The device core produces into exactly one layout.
	if f != frame.FormatI420 {
		return fmt.Errorf("%w: unsupported pixel format %s", ErrInvalidArgument, f)
	}
	// Planar 4:2:0 subsamples chroma 2x in both directions, so both
	// dimensions must be even for the plane offsets and the byte size
	// to agree.
	if width <= 0 || height <= 0 || width%2 != 0 || height%2 != 0 {
		return fmt.Errorf("%w: bad frame dimensions %dx%d", ErrInvalidArgument, width, height)
	}
	size, err := frame.Size(f, width, height)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	buf := make([]byte, size)

	if err := d.source.StartDevice(width, height, f); err != nil {
		// The freshly allocated buffer is dropped; capture state is
		// unchanged and the source error surfaces as-is.
		return err
	}

	d.currentFrame = buf
	d.frameWidth = width
	d.frameHeight = height
	d.pixelFormat = f
	d.frameSize = size
	d.totalPixels = width * height
	d.capturing = true

	logger.Debugf("camera device is started: framebuffer %dx%d, format %s, %d bytes",
		width, height, f, size)
	return nil
}

// StopCapturing stops the capture source and, only on its success,
// releases the frame buffer and clears the capturing flag. On source
// failure the buffer and capture state are deliberately retained so the
// owner may retry the stop.
func (d *Device) StopCapturing() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.isInitialized() {
		return fmt.Errorf("%w: device is not initialized", ErrInvalidState)
	}

	if err := d.source.StopDevice(); err != nil {
		return err
	}

	d.currentFrame = nil
	d.capturing = false
	return nil
}

// CurrentFrame copies the most recent raw planar frame into dst. dst
// must hold at least FrameSize bytes.
func (d *Device) CurrentFrame(dst []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.isCapturing() || d.currentFrame == nil {
		return fmt.Errorf("%w: device is not in the capturing state", ErrInvalidState)
	}
	if len(dst) < d.frameSize {
		return fmt.Errorf("%w: destination holds %d bytes, frame is %d",
			ErrInvalidArgument, len(dst), d.frameSize)
	}

	copy(dst, d.currentFrame)
	return nil
}

// CurrentPreviewFrame converts the most recent frame to packed RGBA and
// writes it into dst, 4 bytes per pixel at the capture resolution. The
// cached pixel format was validated at StartCapturing; failing to find
// a converter for it here means the device state is corrupt.
func (d *Device) CurrentPreviewFrame(dst []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.isCapturing() || d.currentFrame == nil {
		return fmt.Errorf("%w: device is not in the capturing state", ErrInvalidState)
	}
	size := 4 * d.totalPixels
	if len(dst) < size {
		return fmt.Errorf("%w: destination holds %d bytes, preview frame is %d",
			ErrInvalidArgument, len(dst), size)
	}

	dec, err := frame.NewDecoder(d.pixelFormat)
	if err != nil {
		return fmt.Errorf("%w: no decoder for cached pixel format %s", ErrInternal, d.pixelFormat)
	}
	img, err := dec.Decode(d.currentFrame, d.frameWidth, d.frameHeight)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	rgba := &image.RGBA{
		Pix:    dst[:size:size],
		Stride: 4 * d.frameWidth,
		Rect:   image.Rect(0, 0, d.frameWidth, d.frameHeight),
	}
	frame.ToRGBA(rgba, img)
	return nil
}

// StartWorker spawns the capture loop. Sources implementing FrameReadier
// or FramePacer get their readiness channel and wait timeout wired into
// the loop's multiplexed wait; a source providing neither is woken on a
// default interval so production still runs.
func (d *Device) StartWorker() error {
	if !d.initialized() {
		return fmt.Errorf("%w: device is not initialized", ErrInvalidState)
	}

	var ready <-chan struct{}
	var timeout time.Duration
	if r, ok := d.source.(FrameReadier); ok {
		ready = r.FrameReady()
	}
	if p, ok := d.source.(FramePacer); ok {
		timeout = p.FrameInterval()
	}
	if ready == nil && timeout == 0 {
		timeout = defaultWakeInterval
	}

	if err := d.worker.start(ready, timeout); err != nil {
		logger.Errorf("unable to start worker thread: %v", err)
		return err
	}
	return nil
}

// StopWorker signals the capture loop to stop and blocks until it has
// fully exited. After a successful return no further writes to the
// frame buffer occur.
func (d *Device) StopWorker() error {
	if !d.initialized() {
		return fmt.Errorf("%w: device is not initialized", ErrInvalidState)
	}
	return d.worker.stop()
}

func (d *Device) initialized() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.isInitialized()
}

// produceFrame is the worker loop body: one source frame into the
// shared buffer, under the same lock that guards readers and buffer
// replacement.
func (d *Device) produceFrame() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.isCapturing() || d.currentFrame == nil {
		// Nothing to write into; keep looping until told to stop.
		return true
	}

	if !d.source.ProduceFrame(d.currentFrame) {
		return false
	}
	d.frameTimestamp = time.Now()
	return true
}
