// Raw frame layout helpers used by YUV media descriptors.
package media

import "github.com/thesyncim/pdrawmedia/pdraw"

// PixelFormat represents video pixel formats.
type PixelFormat int

const (
	PixelFormatUnknown PixelFormat = iota
	PixelFormatI420                // YUV 4:2:0 planar (Y + U + V)
	PixelFormatNV12                // YUV 4:2:0 semi-planar (Y + interleaved UV)
)

func (p PixelFormat) String() string {
	switch p {
	case PixelFormatI420:
		return "I420"
	case PixelFormatNV12:
		return "NV12"
	default:
		return "Unknown"
	}
}

// PlaneCount returns the number of planes for this pixel format.
func (p PixelFormat) PlaneCount() int {
	switch p {
	case PixelFormatI420:
		return 3 // Y, U, V
	case PixelFormatNV12:
		return 2 // Y, UV
	default:
		return 0
	}
}

// FrameSize returns the total buffer size of one tightly packed frame.
// Both formats carry one chroma sample pair per 2x2 luma block, so odd
// dimensions round the chroma planes up.
func (p PixelFormat) FrameSize(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	switch p {
	case PixelFormatI420, PixelFormatNV12:
		cw := (width + 1) / 2
		ch := (height + 1) / 2
		return width*height + 2*cw*ch
	default:
		return 0
	}
}

func pixelFormatOf(f pdraw.YUVFormat) PixelFormat {
	switch f {
	case pdraw.YUVFormatI420:
		return PixelFormatI420
	case pdraw.YUVFormatNV12:
		return PixelFormatNV12
	default:
		return PixelFormatUnknown
	}
}
