// Package media turns PDRAW media-info records into Go media descriptors.
//
// PDRAW announces every media of a session with a pdraw.MediaInfo record.
// The record belongs to the pipeline and is only valid while it is being
// reported, so this package never keeps it: NewMediaInfo copies what it
// needs into an immutable MediaInfo.
//
// # Supported Medias
//
// IsSupported tells, without building anything, whether a record can be
// turned into a descriptor:
//
//   - H.264 video, byte stream or AVCC framed -> *H264Info
//   - YUV video, I420 or NV12 -> *YUVInfo
//
// Anything else yields -ENOSYS (ErrNotSupported). Nil or inconsistent
// records yield -EINVAL (ErrInvalidMediaInfo).
//
// # Consuming Descriptors
//
// H264Info exposes its parameter sets in the forms downstream code needs:
//
//	SPS/PPS -> ParseSPS         -> profile, level, size, frame rate
//	SPS/PPS -> CodecCapability  -> pion/webrtc tracks and SDP fmtp
//	SPS/PPS -> ParameterSetsPacket -> STAP-A RTP packet
//	SPS/PPS -> SequenceHeader   -> RTMP AVC sequence header
//
// MediaSet keeps the descriptors of a session's medias as they come and go.
package media
