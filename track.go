package media

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/pion/webrtc/v4"
)

// defaultProfileLevelID is used when no SPS is known: Constrained Baseline,
// level 3.1.
const defaultProfileLevelID = "42e01f"

var h264Feedback = []webrtc.RTCPFeedback{
	{Type: "goog-remb"},
	{Type: "ccm", Parameter: "fir"},
	{Type: "nack"},
	{Type: "nack", Parameter: "pli"},
}

// FmtpLine returns the SDP fmtp parameters of the media (RFC 6184 section
// 8.1). sprop-parameter-sets is only set when both SPS and PPS are known.
func (h *H264Info) FmtpLine() string {
	params := []string{
		"level-asymmetry-allowed=1",
		"packetization-mode=1",
		"profile-level-id=" + h.profileLevelID(),
	}
	if h.HasParameterSets() {
		params = append(params, fmt.Sprintf("sprop-parameter-sets=%s,%s",
			base64.StdEncoding.EncodeToString(h.sps),
			base64.StdEncoding.EncodeToString(h.pps)))
	}
	return strings.Join(params, ";")
}

// profileLevelID reads the three bytes following the SPS NAL header, which
// is all profile-level-id needs.
func (h *H264Info) profileLevelID() string {
	if len(h.sps) < 4 || nalType(h.sps) != nalTypeSPS {
		return defaultProfileLevelID
	}
	return fmt.Sprintf("%02x%02x%02x", h.sps[1], h.sps[2], h.sps[3])
}

// CodecCapability returns the pion codec capability matching the media.
func (h *H264Info) CodecCapability() webrtc.RTPCodecCapability {
	return webrtc.RTPCodecCapability{
		MimeType:     h.codec.MimeType(),
		ClockRate:    VideoCodecH264.ClockRate(),
		SDPFmtpLine:  h.FmtpLine(),
		RTCPFeedback: h264Feedback,
	}
}

// CodecParameters returns the codec capability bound to a payload type. A
// zero payload type selects the codec's default one.
func (h *H264Info) CodecParameters(payloadType uint8) webrtc.RTPCodecParameters {
	if payloadType == 0 {
		payloadType = VideoCodecH264.DefaultPayloadType()
	}
	return webrtc.RTPCodecParameters{
		RTPCodecCapability: h.CodecCapability(),
		PayloadType:        webrtc.PayloadType(payloadType),
	}
}

// NewLocalTrack creates a WebRTC sample track for the media. Empty ids are
// derived from the media ID.
func (h *H264Info) NewLocalTrack(id, streamID string) (*webrtc.TrackLocalStaticSample, error) {
	if id == "" {
		id = fmt.Sprintf("video-%d", h.id)
	}
	if streamID == "" {
		streamID = fmt.Sprintf("pdraw-%d", h.id)
	}
	track, err := webrtc.NewTrackLocalStaticSample(h.CodecCapability(), id, streamID)
	if err != nil {
		return nil, fmt.Errorf("unable to create track for media %d: %w", h.id, err)
	}
	return track, nil
}
