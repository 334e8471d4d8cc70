package pdraw

import (
	"fmt"
	"strconv"
	"strings"
)

// MediaType is the kind of media a record describes (enum pdraw_media_type).
type MediaType int

const (
	MediaTypeUnknown MediaType = iota
	MediaTypeVideo
)

var mediaTypeNames = []string{
	MediaTypeUnknown: "unknown",
	MediaTypeVideo:   "video",
}

func (t MediaType) String() string { return enumString(t, mediaTypeNames) }

func (t MediaType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *MediaType) UnmarshalText(text []byte) error {
	return enumParse(t, mediaTypeNames, "media type", text)
}

// VideoMediaFormat is the encoding of a video media (enum pdraw_video_media_format).
type VideoMediaFormat int

const (
	VideoMediaFormatUnknown VideoMediaFormat = iota
	VideoMediaFormatYUV
	VideoMediaFormatH264
	VideoMediaFormatH265
)

var videoMediaFormatNames = []string{
	VideoMediaFormatUnknown: "unknown",
	VideoMediaFormatYUV:     "yuv",
	VideoMediaFormatH264:    "h264",
	VideoMediaFormatH265:    "h265",
}

func (f VideoMediaFormat) String() string { return enumString(f, videoMediaFormatNames) }

func (f VideoMediaFormat) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *VideoMediaFormat) UnmarshalText(text []byte) error {
	return enumParse(f, videoMediaFormatNames, "video media format", text)
}

// YUVFormat is the pixel layout of raw frames (enum pdraw_yuv_format).
type YUVFormat int

const (
	YUVFormatUnknown YUVFormat = iota
	YUVFormatI420              // planar Y, U, V
	YUVFormatNV12              // planar Y, interleaved UV
)

var yuvFormatNames = []string{
	YUVFormatUnknown: "unknown",
	YUVFormatI420:    "i420",
	YUVFormatNV12:    "nv12",
}

func (f YUVFormat) String() string { return enumString(f, yuvFormatNames) }

func (f YUVFormat) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *YUVFormat) UnmarshalText(text []byte) error {
	return enumParse(f, yuvFormatNames, "yuv format", text)
}

// H264Format is the framing of H.264 access units (enum pdraw_h264_format).
type H264Format int

const (
	H264FormatUnknown    H264Format = iota
	H264FormatByteStream            // Annex B, start codes
	H264FormatAVCC                  // 4-byte big endian length prefix
)

var h264FormatNames = []string{
	H264FormatUnknown:    "unknown",
	H264FormatByteStream: "byte_stream",
	H264FormatAVCC:       "avcc",
}

func (f H264Format) String() string { return enumString(f, h264FormatNames) }

func (f H264Format) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *H264Format) UnmarshalText(text []byte) error {
	return enumParse(f, h264FormatNames, "h264 format", text)
}

// VideoType tells which camera (or derived view) a video comes from
// (enum pdraw_video_type).
type VideoType int

const (
	VideoTypeDefaultCamera VideoType = iota
	VideoTypeFrontCamera
	VideoTypeFrontStereoCameraLeft
	VideoTypeFrontStereoCameraRight
	VideoTypeVerticalCamera
	VideoTypeDisparity
	VideoTypeDepth
)

var videoTypeNames = []string{
	VideoTypeDefaultCamera:          "default_camera",
	VideoTypeFrontCamera:            "front_camera",
	VideoTypeFrontStereoCameraLeft:  "front_stereo_camera_left",
	VideoTypeFrontStereoCameraRight: "front_stereo_camera_right",
	VideoTypeVerticalCamera:         "vertical_camera",
	VideoTypeDisparity:              "disparity",
	VideoTypeDepth:                  "depth",
}

func (t VideoType) String() string { return enumString(t, videoTypeNames) }

func (t VideoType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *VideoType) UnmarshalText(text []byte) error {
	return enumParse(t, videoTypeNames, "video type", text)
}

func enumString[T ~int](v T, names []string) string {
	if v < 0 || int(v) >= len(names) {
		return fmt.Sprintf("invalid(%d)", int(v))
	}
	return names[v]
}

// enumParse reads a name from names, or the "invalid(N)" form enumString
// gives values outside of it.
func enumParse[T ~int](v *T, names []string, what string, text []byte) error {
	s := string(text)
	for i, name := range names {
		if name == s {
			*v = T(i)
			return nil
		}
	}
	if n, ok := parseInvalid(s); ok && (n < 0 || n >= len(names)) {
		*v = T(n)
		return nil
	}
	return fmt.Errorf("unknown %s %q", what, s)
}

func parseInvalid(s string) (int, bool) {
	rest, ok := strings.CutPrefix(s, "invalid(")
	if !ok {
		return 0, false
	}
	digits, ok := strings.CutSuffix(rest, ")")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	return n, err == nil
}
