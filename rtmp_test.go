package media

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesyncim/pdrawmedia/pdraw"
)

func TestDecoderConfig(t *testing.T) {
	h := mustH264(t, h264Record(1, pdraw.H264FormatAVCC))

	cfg, err := h.DecoderConfig()
	require.NoError(t, err)

	want := []byte{0x01, 0x42, 0xc0, 0x1f, 0xff, 0xe1, 0x00, byte(len(testSPS))}
	want = append(want, testSPS...)
	want = append(want, 0x01, 0x00, byte(len(testPPS)))
	want = append(want, testPPS...)
	assert.Equal(t, want, cfg)
}

func TestDecoderConfigMissingParameterSets(t *testing.T) {
	info := h264Record(1, pdraw.H264FormatAVCC)
	info.Video.H264.PPS = nil
	_, err := mustH264(t, info).DecoderConfig()
	assert.ErrorIs(t, err, ErrNoPPS)

	info.Video.H264.SPS = []byte{0x67, 0x42}
	_, err = mustH264(t, info).DecoderConfig()
	assert.ErrorIs(t, err, ErrNoSPS)
}

func TestDecoderConfigWrongNALTypes(t *testing.T) {
	info := h264Record(1, pdraw.H264FormatAVCC)
	info.Video.H264.PPS = append([]byte(nil), testSPS...)
	_, err := mustH264(t, info).DecoderConfig()
	assert.ErrorIs(t, err, ErrNoPPS)

	info = h264Record(1, pdraw.H264FormatAVCC)
	info.Video.H264.SPS = []byte{0x65, 0x88, 0x84, 0x00}
	_, err = mustH264(t, info).DecoderConfig()
	assert.ErrorIs(t, err, ErrNoSPS)
}

func TestSequenceHeader(t *testing.T) {
	h := mustH264(t, h264Record(1, pdraw.H264FormatByteStream))

	msg, err := h.SequenceHeader()
	require.NoError(t, err)

	body, err := io.ReadAll(msg.Payload)
	require.NoError(t, err)
	require.Greater(t, len(body), 5)

	// Same layout the FLV parser of an RTMP ingest expects.
	frameType := (body[0] >> 4) & 0x0F
	codecID := body[0] & 0x0F
	assert.Equal(t, byte(1), frameType)
	assert.Equal(t, byte(7), codecID)
	assert.Equal(t, byte(0), body[1], "AVC packet type")
	assert.Equal(t, []byte{0, 0, 0}, body[2:5], "composition time")

	cfg, err := h.DecoderConfig()
	require.NoError(t, err)
	assert.Equal(t, cfg, body[5:])
}
