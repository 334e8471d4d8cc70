package media

import (
	"bytes"
	"fmt"

	rtmpmsg "github.com/yutopp/go-rtmp/message"
)

// FLV video tag and AVCDecoderConfigurationRecord fields
const (
	flvFrameTypeKey        = 1
	flvCodecIDAVC          = 7
	flvAVCSequenceHeader   = 0
	avcConfigVersion       = 1
	avcLengthSizeMinusOne  = 3 // 4-byte NAL unit lengths
	avcConfigReservedBits6 = 0xFC
	avcConfigReservedBits3 = 0xE0
)

// DecoderConfig returns the AVCDecoderConfigurationRecord of the media
// (ISO/IEC 14496-15 section 5.2.4.1) with one SPS and one PPS, as carried in
// avcC boxes and FLV sequence headers.
func (h *H264Info) DecoderConfig() ([]byte, error) {
	if len(h.sps) < 4 {
		return nil, fmt.Errorf("%w: need at least 4 bytes, have %d", ErrNoSPS, len(h.sps))
	}
	if err := h.checkParameterSets(); err != nil {
		return nil, err
	}
	if len(h.sps) > 0xFFFF || len(h.pps) > 0xFFFF {
		return nil, fmt.Errorf("parameter sets too large: sps %d, pps %d", len(h.sps), len(h.pps))
	}

	out := make([]byte, 0, 11+len(h.sps)+len(h.pps))
	out = append(out,
		avcConfigVersion,
		h.sps[1], // AVCProfileIndication
		h.sps[2], // profile_compatibility
		h.sps[3], // AVCLevelIndication
		avcConfigReservedBits6|avcLengthSizeMinusOne,
		avcConfigReservedBits3|1,
		byte(len(h.sps)>>8), byte(len(h.sps)),
	)
	out = append(out, h.sps...)
	out = append(out, 1, byte(len(h.pps)>>8), byte(len(h.pps)))
	out = append(out, h.pps...)
	return out, nil
}

// SequenceHeader returns the RTMP video message announcing the media's
// decoder configuration. It must be sent before the first NAL unit message.
func (h *H264Info) SequenceHeader() (*rtmpmsg.VideoMessage, error) {
	config, err := h.DecoderConfig()
	if err != nil {
		return nil, err
	}

	body := make([]byte, 0, 5+len(config))
	body = append(body,
		flvFrameTypeKey<<4|flvCodecIDAVC,
		flvAVCSequenceHeader,
		0, 0, 0, // composition time
	)
	body = append(body, config...)

	return &rtmpmsg.VideoMessage{Payload: bytes.NewReader(body)}, nil
}
