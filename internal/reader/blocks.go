package reader

import (
	"bytes"

	"github.com/jsbtools/jsbkit/internal/format"
	"github.com/jsbtools/jsbkit/pkg/types"
)

// Label byte sequences delimiting one coefficient entry. Block boundaries
// are not separately marked in the container, so the parser scans for these
// instead of stepping token by token.
var (
	coeffNameLabel  = []byte(":\x04name")
	coeffValueLabel = []byte("\x05value")
)

// ParseCoefficientBlocks scans b between the anchored container and stop,
// collecting (name, value) coefficient entries and sealing a block every
// perBlock entries. A trailing partial block is discarded, never padded;
// dropped reports how many entries it held.
func ParseCoefficientBlocks(b []byte, anchor, stop, perBlock int) (blocks []types.CoefficientBlock, dropped int, err error) {
	body, _, _, err := format.BodyStart(b, anchor, "role_data")
	if err != nil {
		return nil, 0, containerErr(b, anchor, err)
	}
	if stop > len(b) || stop < body {
		stop = len(b)
	}

	var coeffs []types.Coefficient
	cur := body
	for {
		rel := bytes.Index(b[cur:stop], coeffNameLabel)
		if rel < 0 {
			break
		}
		lstart := cur + rel + len(coeffNameLabel)

		vrel := bytes.Index(b[lstart:stop], coeffValueLabel)
		if vrel < 0 {
			// No value label after the last name label: the scan has
			// run into the next section. End here; the entry is part
			// of whatever partial block remains.
			break
		}
		name := cleanLabel(b[lstart : lstart+vrel])

		vpos := lstart + vrel + len(coeffValueLabel)
		value, next, derr := format.DecodeInt(b, vpos, format.CoefficientIntRules)
		if derr != nil {
			return nil, 0, decodeFail(b, "role_data coefficient "+name, vpos, derr)
		}

		coeffs = append(coeffs, types.Coefficient{Name: name, Value: value})
		if len(coeffs) == perBlock {
			blocks = append(blocks, types.CoefficientBlock{Coefficients: coeffs})
			coeffs = nil
		}

		cur = next
		if cur >= stop {
			break
		}
	}

	return blocks, len(coeffs), nil
}

// cleanLabel strips the string-marker bytes that precede a label's text.
// Labels arrive with their value marker attached because the scan cuts on
// the next label sequence, not on token boundaries.
func cleanLabel(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	switch tag := raw[0]; {
	case tag == format.MarkerLongString && len(raw) >= 5:
		raw = raw[5:]
	case tag >= 0x80 || tag == 0x68:
		raw = raw[1:]
	default:
		for len(raw) > 0 && raw[0] < 32 {
			raw = raw[1:]
		}
	}
	return format.DecodeText(raw)
}

func containerErr(b []byte, anchor int, err error) *types.Error {
	return &types.Error{
		Kind:    types.ErrKindContainer,
		Msg:     "container marker",
		Offset:  anchor,
		Context: format.Dump(b, anchor, types.DumpWindow),
		Err:     err,
	}
}
