// Package pattern provides a synthetic capture source producing a
// color bar test pattern, for exercising a device without hardware.
package pattern

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pion/emucam/pkg/frame"
)

const defaultFrameRate = 30

// Source synthesizes I420 frames: color bars over the top three
// quarters of the image, a gray gradation and a noise band below.
type Source struct {
	frameRate float32

	width  int
	height int
	planes frame.Planes

	yBase  []byte
	cbBase []byte
	crBase []byte
	random *rand.Rand

	started bool
}

// New returns a source that paces the capture loop at frameRate frames
// per second. A rate of 0 selects the default of 30.
func New(frameRate float32) *Source {
	if frameRate == 0 {
		frameRate = defaultFrameRate
	}
	return &Source{frameRate: frameRate}
}

// StartDevice precomputes the static part of the pattern for the
// requested geometry.
func (s *Source) StartDevice(width, height int, f frame.Format) error {
	if f != frame.FormatI420 {
		return fmt.Errorf("pattern source cannot produce %s frames", f)
	}

	s.width = width
	s.height = height
	s.planes = frame.I420Planes(width, height)
	s.yBase = make([]byte, s.planes.YLen)
	s.cbBase = make([]byte, s.planes.CbLen)
	s.crBase = make([]byte, s.planes.CrLen)

	// 75% color bars in YCbCr.
	colors := [][3]byte{
		{235, 128, 128},
		{210, 16, 146},
		{170, 166, 16},
		{145, 54, 34},
		{107, 202, 222},
		{82, 90, 240},
		{41, 240, 110},
	}

	hColorBarEnd := height * 3 / 4
	wGradationEnd := width * 5 / 7

	for y := 0; y < hColorBarEnd; y++ {
		yi := width * y
		for x := 0; x < width; x++ {
			c := x * 7 / width
			s.yBase[yi+x] = uint8(uint16(colors[c][0]) * 75 / 100)
		}
	}
	for y := hColorBarEnd; y < height; y++ {
		yi := width * y
		for x := 0; x < wGradationEnd; x++ {
			// Gray gradation; the remaining columns stay black until
			// ProduceFrame paints noise over them.
			s.yBase[yi+x] = uint8(x * 255 / wGradationEnd)
		}
	}

	// Chroma planes are quarter resolution.
	cw := width / 2
	for cy := 0; cy < height/2; cy++ {
		ci := cw * cy
		for cx := 0; cx < cw; cx++ {
			if cy*2 < hColorBarEnd {
				c := cx * 2 * 7 / width
				s.cbBase[ci+cx] = colors[c][1]
				s.crBase[ci+cx] = colors[c][2]
			} else {
				s.cbBase[ci+cx] = 128
				s.crBase[ci+cx] = 128
			}
		}
	}

	s.random = rand.New(rand.NewSource(0))
	s.started = true
	return nil
}

// StopDevice forgets the precomputed pattern.
func (s *Source) StopDevice() error {
	s.started = false
	s.yBase = nil
	s.cbBase = nil
	s.crBase = nil
	return nil
}

// ProduceFrame copies the static pattern into dst and refreshes the
// noise band.
func (s *Source) ProduceFrame(dst []byte) bool {
	if !s.started {
		return false
	}

	copy(s.planes.Y(dst), s.yBase)
	copy(s.planes.Cb(dst), s.cbBase)
	copy(s.planes.Cr(dst), s.crBase)

	yPlane := s.planes.Y(dst)
	hColorBarEnd := s.height * 3 / 4
	wGradationEnd := s.width * 5 / 7
	for y := hColorBarEnd; y < s.height; y++ {
		yi := s.width * y
		for x := wGradationEnd; x < s.width; x++ {
			yPlane[yi+x] = uint8(s.random.Int31n(2) * 255)
		}
	}
	return true
}

// FrameInterval paces the capture loop at the configured frame rate.
func (s *Source) FrameInterval() time.Duration {
	return time.Duration(float32(time.Second) / s.frameRate)
}
