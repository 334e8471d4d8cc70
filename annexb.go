package media

import "slices"

// H264 NAL unit types
const (
	nalTypeSPS   = 7
	nalTypePPS   = 8
	nalTypeSTAPA = 24 // Single-Time Aggregation Packet A
)

var startCode = []byte{0, 0, 0, 1}

// parseAnnexBNALUnits parses Annex B format into individual NAL units.
// Annex B uses start codes: 0x00000001 or 0x000001
func parseAnnexBNALUnits(data []byte) [][]byte {
	var nalUnits [][]byte
	start := -1

	for i := 0; i < len(data); i++ {
		if i+3 < len(data) && data[i] == 0 && data[i+1] == 0 && data[i+2] == 0 && data[i+3] == 1 {
			// 4-byte start code
			if start >= 0 && i > start {
				nalUnits = append(nalUnits, data[start:i])
			}
			start = i + 4
			i += 3
		} else if i+2 < len(data) && data[i] == 0 && data[i+1] == 0 && data[i+2] == 1 {
			// 3-byte start code
			if start >= 0 && i > start {
				nalUnits = append(nalUnits, data[start:i])
			}
			start = i + 3
			i += 2
		}
	}

	// Handle last NAL unit
	if start >= 0 && start < len(data) {
		nalUnits = append(nalUnits, data[start:])
	}

	return nalUnits
}

// hasStartCode reports whether data begins with a 3 or 4 byte start code.
func hasStartCode(data []byte) bool {
	if len(data) >= 3 && data[0] == 0 && data[1] == 0 && data[2] == 1 {
		return true
	}
	return len(data) >= 4 && data[0] == 0 && data[1] == 0 && data[2] == 0 && data[3] == 1
}

// stripStartCode returns a copy of the first NAL unit of data. Data without
// start code is taken as a single bare NAL unit.
func stripStartCode(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}
	if !hasStartCode(data) {
		return slices.Clone(data)
	}
	nalus := parseAnnexBNALUnits(data)
	if len(nalus) == 0 {
		return nil
	}
	return slices.Clone(nalus[0])
}

// appendAnnexB appends every non-empty NAL unit to dst, each behind a
// 4-byte start code.
func appendAnnexB(dst []byte, nalus ...[]byte) []byte {
	for _, nalu := range nalus {
		if len(nalu) == 0 {
			continue
		}
		dst = append(dst, startCode...)
		dst = append(dst, nalu...)
	}
	return dst
}

func nalType(nalu []byte) byte {
	if len(nalu) == 0 {
		return 0
	}
	return nalu[0] & 0x1F
}
