//go:build linux

// Package v4l2 provides a capture source backed by a Video4Linux2
// device node.
// Reference: https://linuxtv.org/downloads/v4l-dvb-apis/uapi/v4l/videodev.html
package v4l2

import (
	"fmt"

	"github.com/blackjack/webcam"

	"github.com/pion/emucam/internal/logging"
	"github.com/pion/emucam/pkg/frame"
)

// fourcc "YU12", i.e. V4L2_PIX_FMT_YUV420: the planar 4:2:0 layout the
// device core captures into.
const pixelFormatYUV420 = webcam.PixelFormat('Y' | 'U'<<8 | '1'<<16 | '2'<<24)

// waitTimeoutSec bounds a single frame wait so a stalled device node
// cannot wedge the capture loop.
const waitTimeoutSec = 1

var logger = logging.NewLogger("emucam/v4l2")

// Source captures planar 4:2:0 frames from a V4L2 device node.
type Source struct {
	path string
	cam  *webcam.Webcam
}

// New returns a source reading from the device node at path, e.g.
// /dev/video0.
func New(path string) *Source {
	return &Source{path: path}
}

// StartDevice opens the node, negotiates the geometry and starts
// streaming.
func (s *Source) StartDevice(width, height int, f frame.Format) error {
	if f != frame.FormatI420 {
		return fmt.Errorf("v4l2 source cannot produce %s frames", f)
	}

	cam, err := webcam.Open(s.path)
	if err != nil {
		return err
	}

	_, w, h, err := cam.SetImageFormat(pixelFormatYUV420, uint32(width), uint32(height))
	if err != nil {
		cam.Close()
		return err
	}
	if int(w) != width || int(h) != height {
		cam.Close()
		return fmt.Errorf("device %s negotiated %dx%d instead of %dx%d", s.path, w, h, width, height)
	}

	if err := cam.StartStreaming(); err != nil {
		cam.Close()
		return err
	}

	s.cam = cam
	return nil
}

// StopDevice stops streaming and closes the node. The node stays open
// if streaming cannot be stopped, so a retry remains possible.
func (s *Source) StopDevice() error {
	if s.cam == nil {
		return nil
	}
	if err := s.cam.StopStreaming(); err != nil {
		return err
	}
	err := s.cam.Close()
	s.cam = nil
	return err
}

// ProduceFrame copies the next device frame into dst. A wait timeout
// keeps the loop alive; read errors end it.
func (s *Source) ProduceFrame(dst []byte) bool {
	if s.cam == nil {
		return false
	}

	if err := s.cam.WaitForFrame(waitTimeoutSec); err != nil {
		if _, ok := err.(*webcam.Timeout); ok {
			return true
		}
		logger.Errorf("waiting for frame on %s: %v", s.path, err)
		return false
	}

	buf, err := s.cam.ReadFrame()
	if err != nil {
		logger.Errorf("reading frame from %s: %v", s.path, err)
		return false
	}
	return s.copyFrame(dst, buf)
}

// copyFrame moves one device frame into dst. An empty frame is skipped
// and the loop stays alive; any other size mismatch means the stream no
// longer matches the geometry negotiated at StartDevice, so the loop
// ends rather than expose a torn frame.
func (s *Source) copyFrame(dst, buf []byte) bool {
	if len(buf) == 0 {
		return true
	}
	if len(buf) != len(dst) {
		logger.Errorf("device frame from %s is %d bytes, expected %d", s.path, len(buf), len(dst))
		return false
	}
	copy(dst, buf)
	return true
}
