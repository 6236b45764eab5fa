package frame

import (
	"image"
	"reflect"
	"testing"
)

func TestDecodeI420(t *testing.T) {
	const (
		width  = 2
		height = 2
	)
	input := []byte{
		// Y
		0x01, 0x02,
		0x03, 0x04,
		// Cb
		0x82,
		// Cr
		0x84,
	}
	expected := &image.YCbCr{
		Y:              []byte{0x01, 0x02, 0x03, 0x04},
		YStride:        width,
		Cb:             []byte{0x82},
		Cr:             []byte{0x84},
		CStride:        width / 2,
		SubsampleRatio: image.YCbCrSubsampleRatio420,
		Rect:           image.Rect(0, 0, width, height),
	}

	img, err := decodeI420(input, width, height)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(expected, img) {
		t.Errorf("Wrong decode result,\nexpected:\n%+v\ngot:\n%+v", expected, img)
	}
}

func TestDecodeI420TooShort(t *testing.T) {
	if _, err := decodeI420(make([]byte, 5), 2, 2); err == nil {
		t.Fatal("expected error for short frame, got nil")
	}
}

func TestDecodeNV21(t *testing.T) {
	const (
		width  = 2
		height = 2
	)
	input := []byte{
		// Y
		0x01, 0x02,
		0x03, 0x04,
		// CbCr interleaved
		0x82, 0x84,
	}
	expected := &image.YCbCr{
		Y:              []byte{0x01, 0x02, 0x03, 0x04},
		YStride:        width,
		Cb:             []byte{0x82},
		Cr:             []byte{0x84},
		CStride:        width / 2,
		SubsampleRatio: image.YCbCrSubsampleRatio420,
		Rect:           image.Rect(0, 0, width, height),
	}

	img, err := decodeNV21(input, width, height)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(expected, img) {
		t.Errorf("Wrong decode result,\nexpected:\n%+v\ngot:\n%+v", expected, img)
	}
}

func TestNewDecoderUnsupported(t *testing.T) {
	if _, err := NewDecoder(FormatYUY2); err == nil {
		t.Fatal("expected error for format without decoder, got nil")
	}
}
