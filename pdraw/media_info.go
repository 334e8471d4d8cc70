// Package pdraw declares the media-info records produced by the PDRAW media
// pipeline (struct pdraw_media_info and friends).
//
// Records are owned by the pipeline. Consumers read them for the duration of
// a callback and must copy whatever they keep.
package pdraw

import "slices"

// MediaInfo describes one media of a PDRAW session.
type MediaInfo struct {
	Type MediaType `json:"type" yaml:"type"`
	ID   uint32    `json:"id" yaml:"id"`
	Name string    `json:"name,omitempty" yaml:"name,omitempty"`
	Path string    `json:"path,omitempty" yaml:"path,omitempty"`

	// Video is set when Type is MediaTypeVideo.
	Video *VideoInfo `json:"video,omitempty" yaml:"video,omitempty"`
}

// VideoInfo holds the parameters shared by every video format, plus the
// format specific member matching Format.
type VideoInfo struct {
	Format    VideoMediaFormat `json:"format" yaml:"format"`
	Type      VideoType        `json:"type" yaml:"type"`
	Width     uint32           `json:"width" yaml:"width"`
	Height    uint32           `json:"height" yaml:"height"`
	Crop      Crop             `json:"crop" yaml:"crop"`
	SAR       Ratio            `json:"sar" yaml:"sar"`
	FullRange bool             `json:"full_range" yaml:"full_range"`
	Framerate Ratio            `json:"framerate" yaml:"framerate"`

	YUV  *YUVInfo  `json:"yuv,omitempty" yaml:"yuv,omitempty"`
	H264 *H264Info `json:"h264,omitempty" yaml:"h264,omitempty"`
	H265 *H265Info `json:"h265,omitempty" yaml:"h265,omitempty"`
}

// Crop is the visible area inside the coded picture.
type Crop struct {
	Left   uint32 `json:"left" yaml:"left"`
	Top    uint32 `json:"top" yaml:"top"`
	Width  uint32 `json:"width" yaml:"width"`
	Height uint32 `json:"height" yaml:"height"`
}

// Ratio is a num/den pair. A zero Den means unknown.
type Ratio struct {
	Num uint32 `json:"num" yaml:"num"`
	Den uint32 `json:"den" yaml:"den"`
}

// Float returns num/den, or 0 when the ratio is unknown.
func (r Ratio) Float() float64 {
	if r.Den == 0 {
		return 0
	}
	return float64(r.Num) / float64(r.Den)
}

type YUVInfo struct {
	Format YUVFormat `json:"format" yaml:"format"`
}

// H264Info carries the stream framing and the raw parameter sets, without
// start codes or length prefixes.
type H264Info struct {
	Format H264Format `json:"format" yaml:"format"`
	SPS    []byte     `json:"sps,omitempty" yaml:"sps,omitempty"`
	PPS    []byte     `json:"pps,omitempty" yaml:"pps,omitempty"`
}

type H265Info struct {
	VPS []byte `json:"vps,omitempty" yaml:"vps,omitempty"`
	SPS []byte `json:"sps,omitempty" yaml:"sps,omitempty"`
	PPS []byte `json:"pps,omitempty" yaml:"pps,omitempty"`
}

// Clone returns a deep copy of the record.
func (m *MediaInfo) Clone() *MediaInfo {
	if m == nil {
		return nil
	}
	c := *m
	if m.Video != nil {
		v := *m.Video
		if m.Video.YUV != nil {
			yuv := *m.Video.YUV
			v.YUV = &yuv
		}
		if m.Video.H264 != nil {
			v.H264 = &H264Info{
				Format: m.Video.H264.Format,
				SPS:    slices.Clone(m.Video.H264.SPS),
				PPS:    slices.Clone(m.Video.H264.PPS),
			}
		}
		if m.Video.H265 != nil {
			v.H265 = &H265Info{
				VPS: slices.Clone(m.Video.H265.VPS),
				SPS: slices.Clone(m.Video.H265.SPS),
				PPS: slices.Clone(m.Video.H265.PPS),
			}
		}
		c.Video = &v
	}
	return &c
}
