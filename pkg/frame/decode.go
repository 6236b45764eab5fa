package frame

import (
	"fmt"
	"image"
)

// Decoder turns a raw frame buffer into an image.
type Decoder interface {
	Decode(frame []byte, width, height int) (image.Image, error)
}

type decoderFunc func(frame []byte, width, height int) (image.Image, error)

func (f decoderFunc) Decode(frame []byte, width, height int) (image.Image, error) {
	return f(frame, width, height)
}

// NewDecoder returns a Decoder for the given format.
func NewDecoder(f Format) (Decoder, error) {
	switch f {
	case FormatI420:
		return decoderFunc(decodeI420), nil
	case FormatNV21:
		return decoderFunc(decodeNV21), nil
	default:
		return nil, fmt.Errorf("%s is not supported", f)
	}
}
