package frame

import (
	"image"
	"image/color"
	"testing"
)

// grayI420 builds a uniform mid-gray I420 frame; YCbCr (128, 128, 128)
// converts to RGB (128, 128, 128) exactly.
func grayI420(width, height int) []byte {
	p := I420Planes(width, height)
	buf := make([]byte, p.Size())
	for i := range buf {
		buf[i] = 128
	}
	return buf
}

func TestToRGBA(t *testing.T) {
	const (
		width  = 4
		height = 2
	)
	img, err := decodeI420(grayI420(width, height), width, height)
	if err != nil {
		t.Fatal(err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	ToRGBA(dst, img)

	expected := color.RGBA{128, 128, 128, 255}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if got := dst.RGBAAt(x, y); got != expected {
				t.Fatalf("pixel (%d, %d): expected %v, got %v", x, y, expected, got)
			}
		}
	}
}

func TestToRGBAScales(t *testing.T) {
	const (
		width  = 4
		height = 4
	)
	img, err := decodeI420(grayI420(width, height), width, height)
	if err != nil {
		t.Fatal(err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, 2, 2))
	ToRGBA(dst, img)

	expected := color.RGBA{128, 128, 128, 255}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := dst.RGBAAt(x, y); got != expected {
				t.Fatalf("pixel (%d, %d): expected %v, got %v", x, y, expected, got)
			}
		}
	}
}
