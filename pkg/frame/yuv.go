package frame

import (
	"fmt"
	"image"
)

// decodeI420 wraps the planar buffer without copying; the returned
// image aliases frame.
func decodeI420(frame []byte, width, height int) (image.Image, error) {
	p := I420Planes(width, height)
	if p.Size() > len(frame) {
		return nil, fmt.Errorf("frame length (%d) less than expected (%d)", len(frame), p.Size())
	}

	return &image.YCbCr{
		Y:              p.Y(frame),
		YStride:        width,
		Cb:             p.Cb(frame),
		Cr:             p.Cr(frame),
		CStride:        width / 2,
		SubsampleRatio: image.YCbCrSubsampleRatio420,
		Rect:           image.Rect(0, 0, width, height),
	}, nil
}

func decodeNV21(frame []byte, width, height int) (image.Image, error) {
	yi := width * height
	ci := yi + width*height/2

	if ci > len(frame) {
		return nil, fmt.Errorf("frame length (%d) less than expected (%d)", len(frame), ci)
	}

	// Chroma is interleaved CbCr and has to be split.
	n := width * height / 4
	cb := make([]byte, 0, n)
	cr := make([]byte, 0, n)
	for i := yi; i < ci; i += 2 {
		cb = append(cb, frame[i])
		cr = append(cr, frame[i+1])
	}

	return &image.YCbCr{
		Y:              frame[:yi],
		YStride:        width,
		Cb:             cb,
		Cr:             cr,
		CStride:        width / 2,
		SubsampleRatio: image.YCbCrSubsampleRatio420,
		Rect:           image.Rect(0, 0, width, height),
	}, nil
}
