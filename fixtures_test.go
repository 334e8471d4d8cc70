package media

import "github.com/thesyncim/pdrawmedia/pdraw"

// Baseline (constrained), level 3.1, 1280x720, no VUI.
var testSPS = []byte{0x67, 0x42, 0xc0, 0x1f, 0xda, 0x01, 0x40, 0x16, 0xe4}

// Same stream with VUI timing info: 30 fps.
var testSPSWithTiming = []byte{
	0x67, 0x42, 0xc0, 0x1f, 0xda, 0x01, 0x40, 0x16,
	0xe8, 0x40, 0x00, 0x00, 0x03, 0x00, 0x40, 0x00,
	0x00, 0x0f, 0x21,
}

// Timing info with num_units_in_tick = 0.
var testSPSZeroTick = []byte{
	0x67, 0x42, 0xc0, 0x1f, 0xda, 0x01, 0x40, 0x16,
	0xe8, 0x40, 0x00, 0x00, 0x03, 0x00, 0x00, 0x00,
	0x00, 0x0f, 0x21,
}

var testPPS = []byte{0x68, 0xce, 0x3c, 0x80}

func h264Record(id uint32, format pdraw.H264Format) *pdraw.MediaInfo {
	return &pdraw.MediaInfo{
		Type: pdraw.MediaTypeVideo,
		ID:   id,
		Name: "front",
		Video: &pdraw.VideoInfo{
			Format:    pdraw.VideoMediaFormatH264,
			Type:      pdraw.VideoTypeFrontCamera,
			Width:     1280,
			Height:    720,
			Framerate: pdraw.Ratio{Num: 30, Den: 1},
			H264: &pdraw.H264Info{
				Format: format,
				SPS:    append([]byte(nil), testSPS...),
				PPS:    append([]byte(nil), testPPS...),
			},
		},
	}
}

func yuvRecord(id uint32, format pdraw.YUVFormat) *pdraw.MediaInfo {
	return &pdraw.MediaInfo{
		Type: pdraw.MediaTypeVideo,
		ID:   id,
		Name: "decoded",
		Video: &pdraw.VideoInfo{
			Format:    pdraw.VideoMediaFormatYUV,
			Type:      pdraw.VideoTypeDefaultCamera,
			Width:     640,
			Height:    480,
			FullRange: true,
			YUV:       &pdraw.YUVInfo{Format: format},
		},
	}
}

func h265Record(id uint32) *pdraw.MediaInfo {
	return &pdraw.MediaInfo{
		Type: pdraw.MediaTypeVideo,
		ID:   id,
		Video: &pdraw.VideoInfo{
			Format: pdraw.VideoMediaFormatH265,
			Width:  1920,
			Height: 1080,
			H265:   &pdraw.H265Info{SPS: []byte{0x42, 0x01}},
		},
	}
}

func mustH264(t interface{ Fatalf(string, ...any) }, info *pdraw.MediaInfo) *H264Info {
	mi, err := NewMediaInfo(info)
	if err != nil {
		t.Fatalf("NewMediaInfo failed: %v", err)
	}
	h, ok := mi.(*H264Info)
	if !ok {
		t.Fatalf("NewMediaInfo returned %T, want *H264Info", mi)
	}
	return h
}
