package media

import (
	"errors"
	"fmt"
	"math"

	"github.com/bluenviron/mediacommon/v2/pkg/codecs/h264"
)

var (
	ErrNoSPS = errors.New("no sps")
	ErrNoPPS = errors.New("no pps")
)

// checkParameterSets verifies that SPS and PPS are present and carry the
// matching NAL unit types.
func (h *H264Info) checkParameterSets() error {
	if len(h.sps) == 0 {
		return ErrNoSPS
	}
	if t := nalType(h.sps); t != nalTypeSPS {
		return fmt.Errorf("%w: nal type %d", ErrNoSPS, t)
	}
	if len(h.pps) == 0 {
		return ErrNoPPS
	}
	if t := nalType(h.pps); t != nalTypePPS {
		return fmt.Errorf("%w: nal type %d", ErrNoPPS, t)
	}
	return nil
}

// H264Profile is the profile an H.264 stream conforms to.
type H264Profile int

const (
	H264ProfileUnknown H264Profile = iota
	H264ProfileConstrainedBaseline
	H264ProfileBaseline
	H264ProfileMain
	H264ProfileExtended
	H264ProfileHigh
	H264ProfileHigh10
	H264ProfileHigh422
	H264ProfileHigh444
)

func (p H264Profile) String() string {
	switch p {
	case H264ProfileConstrainedBaseline:
		return "ConstrainedBaseline"
	case H264ProfileBaseline:
		return "Baseline"
	case H264ProfileMain:
		return "Main"
	case H264ProfileExtended:
		return "Extended"
	case H264ProfileHigh:
		return "High"
	case H264ProfileHigh10:
		return "High10"
	case H264ProfileHigh422:
		return "High422"
	case H264ProfileHigh444:
		return "High444"
	default:
		return "Unknown"
	}
}

// H264Params is what an SPS tells about a stream.
type H264Params struct {
	ProfileIdc  uint8
	Constraints uint8 // constraint_set0..5 flags and reserved bits, as coded
	LevelIdc    uint8
	Width       int
	Height      int
	FPS         float64 // 0 when the SPS carries no timing info
}

// Profile maps profile_idc and the constraint flags to a profile.
func (p H264Params) Profile() H264Profile {
	switch p.ProfileIdc {
	case 66:
		if p.Constraints&0x40 != 0 {
			return H264ProfileConstrainedBaseline
		}
		return H264ProfileBaseline
	case 77:
		return H264ProfileMain
	case 88:
		return H264ProfileExtended
	case 100:
		return H264ProfileHigh
	case 110:
		return H264ProfileHigh10
	case 122:
		return H264ProfileHigh422
	case 244:
		return H264ProfileHigh444
	default:
		return H264ProfileUnknown
	}
}

// ProfileLevelID returns the RFC 6184 profile-level-id, e.g. "42e01f".
func (p H264Params) ProfileLevelID() string {
	return fmt.Sprintf("%02x%02x%02x", p.ProfileIdc, p.Constraints, p.LevelIdc)
}

// Level returns the level as a decimal, e.g. 3.1 for level_idc 31.
func (p H264Params) Level() float64 {
	return float64(p.LevelIdc) / 10
}

// ParseSPS parses an H.264 sequence parameter set. The NAL unit may be given
// with or without start code.
func ParseSPS(sps []byte) (H264Params, error) {
	if hasStartCode(sps) {
		nalus := parseAnnexBNALUnits(sps)
		if len(nalus) == 0 {
			return H264Params{}, ErrNoSPS
		}
		sps = nalus[0]
	}
	if len(sps) == 0 {
		return H264Params{}, ErrNoSPS
	}
	if nalType(sps) != nalTypeSPS {
		return H264Params{}, fmt.Errorf("not an sps: nal type %d", nalType(sps))
	}
	if len(sps) < 4 {
		return H264Params{}, fmt.Errorf("sps too short: %d bytes", len(sps))
	}

	var s h264.SPS
	if err := s.Unmarshal(sps); err != nil {
		return H264Params{}, fmt.Errorf("unable to parse sps: %w", err)
	}

	return H264Params{
		ProfileIdc:  sps[1],
		Constraints: sps[2],
		LevelIdc:    sps[3],
		Width:       s.Width(),
		Height:      s.Height(),
		FPS:         validFPS(s.FPS()),
	}, nil
}

// validFPS drops rates derived from broken VUI timing, such as a zero
// num_units_in_tick.
func validFPS(fps float64) float64 {
	if math.IsNaN(fps) || math.IsInf(fps, 0) || fps <= 0 {
		return 0
	}
	return fps
}
