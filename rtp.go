package media

import (
	"fmt"

	"github.com/pion/rtp"
)

// Re-export pion/rtp types for convenience
type (
	// RTPPacket is an alias to pion's rtp.Packet
	RTPPacket = rtp.Packet

	// RTPHeader is an alias to pion's rtp.Header
	RTPHeader = rtp.Header
)

// ParameterSetsPacket returns one RTP packet carrying SPS and PPS in a
// STAP-A aggregation unit (RFC 6184 section 5.7.1). Receivers joining a
// stream can be primed with it before the next IDR.
func (h *H264Info) ParameterSetsPacket(ssrc uint32, payloadType uint8, timestamp uint32) (*RTPPacket, error) {
	if err := h.checkParameterSets(); err != nil {
		return nil, err
	}

	payload, err := stapA(h.sps, h.pps)
	if err != nil {
		return nil, err
	}

	return &RTPPacket{
		Header: RTPHeader{
			Version:        2,
			Padding:        false,
			Extension:      false,
			Marker:         false,
			PayloadType:    payloadType,
			SequenceNumber: rtp.NewRandomSequencer().NextSequenceNumber(),
			Timestamp:      timestamp,
			SSRC:           ssrc,
		},
		Payload: payload,
	}, nil
}

// stapA aggregates NAL units: one STAP-A header byte, then for each unit a
// 16-bit size and the unit itself. The header NRI is the highest NRI of the
// aggregated units.
func stapA(nalus ...[]byte) ([]byte, error) {
	size := 1
	var nri byte
	for _, nalu := range nalus {
		if len(nalu) == 0 || len(nalu) > 0xFFFF {
			return nil, fmt.Errorf("cannot aggregate nal unit of %d bytes", len(nalu))
		}
		if n := nalu[0] & 0x60; n > nri {
			nri = n
		}
		size += 2 + len(nalu)
	}

	out := make([]byte, 0, size)
	out = append(out, nri|nalTypeSTAPA)
	for _, nalu := range nalus {
		out = append(out, byte(len(nalu)>>8), byte(len(nalu)))
		out = append(out, nalu...)
	}
	return out, nil
}
