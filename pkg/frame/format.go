package frame

import "fmt"

// Format identifies the pixel format of a raw frame buffer.
type Format string

const (
	// FormatI420 https://www.fourcc.org/pixel-format/yuv-i420/
	// Planar YUV 4:2:0: a full resolution luma plane followed by two
	// quarter resolution chroma planes in one contiguous allocation.
	FormatI420 Format = "I420"
	// FormatNV21 https://www.fourcc.org/pixel-format/yuv-nv21/
	FormatNV21 Format = "NV21"
	// FormatYUY2 https://www.fourcc.org/pixel-format/yuv-yuy2/
	FormatYUY2 Format = "YUY2"
)

// Size returns the number of bytes a single frame of the given format
// and dimensions occupies.
func Size(f Format, width, height int) (int, error) {
	switch f {
	case FormatI420, FormatNV21:
		// 12 bits per pixel.
		return width * height * 12 / 8, nil
	case FormatYUY2:
		return 2 * width * height, nil
	default:
		return 0, fmt.Errorf("%s is not supported", f)
	}
}
