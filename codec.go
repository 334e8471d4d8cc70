package media

import "github.com/thesyncim/pdrawmedia/pdraw"

// VideoCodec identifies the coding of a video media.
type VideoCodec int

const (
	VideoCodecUnknown VideoCodec = iota
	VideoCodecH264
	VideoCodecH265
	VideoCodecRaw // decoded YUV frames
)

func (c VideoCodec) String() string {
	switch c {
	case VideoCodecH264:
		return "H264"
	case VideoCodecH265:
		return "H265"
	case VideoCodecRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// MimeType returns the MIME type for this codec, or "" when the codec has no
// RTP mapping.
func (c VideoCodec) MimeType() string {
	switch c {
	case VideoCodecH264:
		return "video/H264"
	case VideoCodecH265:
		return "video/H265"
	default:
		return ""
	}
}

// ClockRate returns the RTP clock rate for this codec.
func (c VideoCodec) ClockRate() uint32 {
	return 90000
}

// DefaultPayloadType returns a typical payload type for this codec.
// Note: Actual payload type is negotiated via SDP.
func (c VideoCodec) DefaultPayloadType() uint8 {
	switch c {
	case VideoCodecH264:
		return 102
	default:
		return 96
	}
}

// CodecOf returns the codec of a PDRAW media, supported or not.
func CodecOf(info *pdraw.MediaInfo) VideoCodec {
	if info == nil || info.Type != pdraw.MediaTypeVideo || info.Video == nil {
		return VideoCodecUnknown
	}
	return videoCodecOf(info.Video.Format)
}

func videoCodecOf(f pdraw.VideoMediaFormat) VideoCodec {
	switch f {
	case pdraw.VideoMediaFormatH264:
		return VideoCodecH264
	case pdraw.VideoMediaFormatH265:
		return VideoCodecH265
	case pdraw.VideoMediaFormatYUV:
		return VideoCodecRaw
	default:
		return VideoCodecUnknown
	}
}

// MediaKind is the kind of a media descriptor.
type MediaKind int

const (
	MediaKindUnknown MediaKind = iota
	MediaKindH264Video
	MediaKindYUVVideo
)

func (k MediaKind) String() string {
	switch k {
	case MediaKindH264Video:
		return "h264"
	case MediaKindYUVVideo:
		return "yuv"
	default:
		return "unknown"
	}
}

// VideoSource tells where a video comes from on the drone.
type VideoSource int

const (
	VideoSourceDefaultCamera VideoSource = iota
	VideoSourceFrontCamera
	VideoSourceFrontStereoCameraLeft
	VideoSourceFrontStereoCameraRight
	VideoSourceVerticalCamera
	VideoSourceDisparity
	VideoSourceDepth
	VideoSourceUnspecified
)

func (s VideoSource) String() string {
	switch s {
	case VideoSourceDefaultCamera:
		return "default_camera"
	case VideoSourceFrontCamera:
		return "front_camera"
	case VideoSourceFrontStereoCameraLeft:
		return "front_stereo_camera_left"
	case VideoSourceFrontStereoCameraRight:
		return "front_stereo_camera_right"
	case VideoSourceVerticalCamera:
		return "vertical_camera"
	case VideoSourceDisparity:
		return "disparity"
	case VideoSourceDepth:
		return "depth"
	default:
		return "unspecified"
	}
}

func videoSourceOf(t pdraw.VideoType) VideoSource {
	switch t {
	case pdraw.VideoTypeDefaultCamera:
		return VideoSourceDefaultCamera
	case pdraw.VideoTypeFrontCamera:
		return VideoSourceFrontCamera
	case pdraw.VideoTypeFrontStereoCameraLeft:
		return VideoSourceFrontStereoCameraLeft
	case pdraw.VideoTypeFrontStereoCameraRight:
		return VideoSourceFrontStereoCameraRight
	case pdraw.VideoTypeVerticalCamera:
		return VideoSourceVerticalCamera
	case pdraw.VideoTypeDisparity:
		return VideoSourceDisparity
	case pdraw.VideoTypeDepth:
		return VideoSourceDepth
	default:
		return VideoSourceUnspecified
	}
}

// StreamFormat is the framing of H.264 access units delivered for a media.
type StreamFormat int

const (
	StreamFormatByteStream StreamFormat = iota // Annex B start codes
	StreamFormatAVCC                           // length prefixed NAL units
)

func (f StreamFormat) String() string {
	switch f {
	case StreamFormatByteStream:
		return "byte_stream"
	case StreamFormatAVCC:
		return "avcc"
	default:
		return "unknown"
	}
}
