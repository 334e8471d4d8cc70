package media

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/thesyncim/pdrawmedia/pdraw"
)

var (
	// ErrNotSupported is returned for media kinds this package does not
	// handle. It matches unix.ENOSYS with errors.Is.
	ErrNotSupported = fmt.Errorf("media info not supported: %w", unix.ENOSYS)

	// ErrInvalidMediaInfo is returned for nil or inconsistent records. It
	// matches unix.EINVAL with errors.Is.
	ErrInvalidMediaInfo = fmt.Errorf("invalid media info: %w", unix.EINVAL)
)

// Static support tables, indexed by format.
var supportedH264Formats = [...]bool{
	pdraw.H264FormatUnknown:    false,
	pdraw.H264FormatByteStream: true,
	pdraw.H264FormatAVCC:       true,
}

var supportedYUVFormats = [...]bool{
	pdraw.YUVFormatUnknown: false,
	pdraw.YUVFormatI420:    true,
	pdraw.YUVFormatNV12:    true,
}

// IsSupported tells whether a PDRAW media info can be turned into a
// MediaInfo. It returns 0 when supported, -ENOSYS when the kind is not
// supported and -EINVAL when info is nil or inconsistent.
func IsSupported(info *pdraw.MediaInfo) int {
	return Errno(CheckSupported(info))
}

// CheckSupported is IsSupported with Go errors: nil, ErrNotSupported or
// ErrInvalidMediaInfo.
func CheckSupported(info *pdraw.MediaInfo) error {
	if info == nil {
		return ErrInvalidMediaInfo
	}
	if info.Type != pdraw.MediaTypeVideo {
		return ErrNotSupported
	}
	video := info.Video
	if video == nil {
		return fmt.Errorf("%w: video media %d has no video info", ErrInvalidMediaInfo, info.ID)
	}

	switch video.Format {
	case pdraw.VideoMediaFormatH264:
		if video.H264 == nil {
			return fmt.Errorf("%w: h264 media %d has no h264 info", ErrInvalidMediaInfo, info.ID)
		}
		if !lookup(supportedH264Formats[:], video.H264.Format) {
			return ErrNotSupported
		}
		return nil
	case pdraw.VideoMediaFormatYUV:
		if video.YUV == nil {
			return fmt.Errorf("%w: yuv media %d has no yuv info", ErrInvalidMediaInfo, info.ID)
		}
		if !lookup(supportedYUVFormats[:], video.YUV.Format) {
			return ErrNotSupported
		}
		return nil
	default:
		return ErrNotSupported
	}
}

// Errno maps an error returned by this package to a negative errno value:
// 0 for nil, -ENOSYS for ErrNotSupported, -EINVAL for ErrInvalidMediaInfo
// and -EPROTO for anything else.
func Errno(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, unix.ENOSYS):
		return -int(unix.ENOSYS)
	case errors.Is(err, unix.EINVAL):
		return -int(unix.EINVAL)
	default:
		return -int(unix.EPROTO)
	}
}

func lookup[T ~int](table []bool, v T) bool {
	return v >= 0 && int(v) < len(table) && table[v]
}
