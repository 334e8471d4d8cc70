package media

import (
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/thesyncim/pdrawmedia/pdraw"
)

// MediaInfo is an application level descriptor of one PDRAW media.
// Descriptors are immutable and hold no reference to the record they were
// built from.
type MediaInfo interface {
	// MediaID returns the identifier PDRAW assigned to the media.
	MediaID() uint32

	// Name returns the media name, which may be empty.
	Name() string

	// Kind returns the descriptor kind.
	Kind() MediaKind
}

// VideoInfo holds what every video descriptor exposes.
type VideoInfo struct {
	id        uint32
	name      string
	source    VideoSource
	codec     VideoCodec
	width     int
	height    int
	framerate float64
}

func (v *VideoInfo) MediaID() uint32 { return v.id }

func (v *VideoInfo) Name() string { return v.name }

// Source returns the camera the video comes from.
func (v *VideoInfo) Source() VideoSource { return v.source }

// Codec returns how the video is coded.
func (v *VideoInfo) Codec() VideoCodec { return v.codec }

// Width returns the coded width in pixels, or 0 when unknown.
func (v *VideoInfo) Width() int { return v.width }

// Height returns the coded height in pixels, or 0 when unknown.
func (v *VideoInfo) Height() int { return v.height }

// Resolution returns "WxH".
func (v *VideoInfo) Resolution() string { return fmt.Sprintf("%dx%d", v.width, v.height) }

// Framerate returns the nominal frame rate, or 0 when unknown.
func (v *VideoInfo) Framerate() float64 { return v.framerate }

// H264Info describes an H.264 coded video media.
type H264Info struct {
	VideoInfo
	format StreamFormat
	sps    []byte
	pps    []byte
}

func (*H264Info) Kind() MediaKind { return MediaKindH264Video }

// StreamFormat returns the framing of the access units of the media.
func (h *H264Info) StreamFormat() StreamFormat { return h.format }

// SPS returns a copy of the sequence parameter set NAL unit, without start
// code. It is nil when the pipeline did not provide one.
func (h *H264Info) SPS() []byte { return slices.Clone(h.sps) }

// PPS returns a copy of the picture parameter set NAL unit, without start
// code. It is nil when the pipeline did not provide one.
func (h *H264Info) PPS() []byte { return slices.Clone(h.pps) }

// HasParameterSets reports whether both SPS and PPS are known.
func (h *H264Info) HasParameterSets() bool { return len(h.sps) > 0 && len(h.pps) > 0 }

// ParameterSets returns SPS and PPS in Annex B form, each prefixed with a
// 4-byte start code. Missing parameter sets are skipped.
func (h *H264Info) ParameterSets() []byte {
	return appendAnnexB(nil, h.sps, h.pps)
}

// Params parses the SPS.
func (h *H264Info) Params() (H264Params, error) {
	return ParseSPS(h.sps)
}

// YUVInfo describes a decoded (raw) video media.
type YUVInfo struct {
	VideoInfo
	format    PixelFormat
	fullRange bool
}

func (*YUVInfo) Kind() MediaKind { return MediaKindYUVVideo }

// Format returns the pixel format of the frames.
func (y *YUVInfo) Format() PixelFormat { return y.format }

// FullRange reports whether samples use the full 0-255 range.
func (y *YUVInfo) FullRange() bool { return y.fullRange }

// PlaneCount returns the number of planes of one frame.
func (y *YUVInfo) PlaneCount() int { return y.format.PlaneCount() }

// FrameSize returns the size of one tightly packed frame in bytes.
func (y *YUVInfo) FrameSize() int { return y.format.FrameSize(y.width, y.height) }

// NewMediaInfo builds a descriptor from a PDRAW media info. It succeeds for
// every record IsSupported accepts and returns a nil MediaInfo otherwise.
// info is only read, and nothing of it is retained.
func NewMediaInfo(info *pdraw.MediaInfo) (MediaInfo, error) {
	if err := CheckSupported(info); err != nil {
		var id uint32
		if info != nil {
			id = info.ID
		}
		log().WithError(err).WithField("media_id", id).Debug("media info skipped")
		return nil, err
	}

	video := info.Video
	base := VideoInfo{
		id:        info.ID,
		name:      info.Name,
		source:    videoSourceOf(video.Type),
		codec:     videoCodecOf(video.Format),
		width:     int(video.Width),
		height:    int(video.Height),
		framerate: video.Framerate.Float(),
	}

	var mi MediaInfo
	switch video.Format {
	case pdraw.VideoMediaFormatH264:
		h := &H264Info{
			VideoInfo: base,
			format:    streamFormatOf(video.H264.Format),
			sps:       stripStartCode(video.H264.SPS),
			pps:       stripStartCode(video.H264.PPS),
		}
		if h.width == 0 || h.height == 0 || h.framerate == 0 {
			h.fillFromSPS()
		}
		mi = h
	case pdraw.VideoMediaFormatYUV:
		mi = &YUVInfo{
			VideoInfo: base,
			format:    pixelFormatOf(video.YUV.Format),
			fullRange: video.FullRange,
		}
	default:
		// CheckSupported only lets the formats above through.
		return nil, ErrNotSupported
	}

	log().WithFields(logrus.Fields{
		"media_id": info.ID,
		"kind":     mi.Kind(),
		"source":   base.source,
	}).Debug("media info created")
	return mi, nil
}

// fillFromSPS completes unknown size and rate from the SPS, when it parses.
func (h *H264Info) fillFromSPS() {
	if len(h.sps) == 0 {
		return
	}
	p, err := ParseSPS(h.sps)
	if err != nil {
		log().WithError(err).WithField("media_id", h.id).Debug("sps not parsed")
		return
	}
	if h.width == 0 || h.height == 0 {
		h.width, h.height = p.Width, p.Height
	}
	if h.framerate == 0 {
		h.framerate = p.FPS
	}
}

func streamFormatOf(f pdraw.H264Format) StreamFormat {
	if f == pdraw.H264FormatAVCC {
		return StreamFormatAVCC
	}
	return StreamFormatByteStream
}
