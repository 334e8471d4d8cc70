package media

import (
	"fmt"
	"testing"

	"github.com/thesyncim/pdrawmedia/pdraw"
)

func TestPixelFormat_String(t *testing.T) {
	tests := []struct {
		format PixelFormat
		want   string
	}{
		{PixelFormatI420, "I420"},
		{PixelFormatNV12, "NV12"},
		{PixelFormatUnknown, "Unknown"},
		{PixelFormat(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.format.String(); got != tt.want {
				t.Errorf("PixelFormat.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPixelFormat_PlaneCount(t *testing.T) {
	tests := []struct {
		format PixelFormat
		want   int
	}{
		{PixelFormatI420, 3},
		{PixelFormatNV12, 2},
		{PixelFormat(99), 0},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.PlaneCount(); got != tt.want {
				t.Errorf("PixelFormat.PlaneCount() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPixelFormat_FrameSize(t *testing.T) {
	tests := []struct {
		format        PixelFormat
		width, height int
		want          int
	}{
		{PixelFormatI420, 1920, 1080, 1920*1080 + 2*(960*540)},
		{PixelFormatNV12, 1280, 720, 1280*720 + 2*(640*360)},
		{PixelFormatI420, 641, 481, 641*481 + 2*(321*241)},
		{PixelFormatNV12, 0, 480, 0},
		{PixelFormatUnknown, 640, 480, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v_%dx%d", tt.format, tt.width, tt.height), func(t *testing.T) {
			if got := tt.format.FrameSize(tt.width, tt.height); got != tt.want {
				t.Errorf("FrameSize(%d, %d) = %v, want %v", tt.width, tt.height, got, tt.want)
			}
		})
	}
}

func TestPixelFormatOf(t *testing.T) {
	tests := []struct {
		in   pdraw.YUVFormat
		want PixelFormat
	}{
		{pdraw.YUVFormatI420, PixelFormatI420},
		{pdraw.YUVFormatNV12, PixelFormatNV12},
		{pdraw.YUVFormatUnknown, PixelFormatUnknown},
	}

	for _, tt := range tests {
		if got := pixelFormatOf(tt.in); got != tt.want {
			t.Errorf("pixelFormatOf(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
