package cryptography

import "github.com/arya2004/cybersecurity/internal/pkg/gf16"

// spnState is the 2x2 nibble matrix of the 16-bit cipher, stored in
// column-major order: indices 0 and 1 form the first row, 2 and 3 the second,
// and the columns are (0,2) and (1,3).
type spnState [4]uint8

// stateFromUint unpacks a 16-bit block into the nibble matrix.
func stateFromUint(v uint16) spnState {
	return spnState{
		uint8(v >> 12 & 0xF),
		uint8(v >> 4 & 0xF),
		uint8(v >> 8 & 0xF),
		uint8(v & 0xF),
	}
}

// uintFromState packs the nibble matrix back into a 16-bit block.
func uintFromState(s spnState) uint16 {
	return uint16(s[0])<<12 | uint16(s[2])<<8 | uint16(s[1])<<4 | uint16(s[3])
}

func xorState(a, b spnState) spnState {
	return spnState{a[0] ^ b[0], a[1] ^ b[1], a[2] ^ b[2], a[3] ^ b[3]}
}

// substituteState replaces every nibble through the given box.
func substituteState(s spnState, box [16]uint8) spnState {
	return spnState{box[s[0]], box[s[1]], box[s[2]], box[s[3]]}
}

// shiftRowsState swaps the nibbles of the second row. The transform is its
// own inverse.
func shiftRowsState(s spnState) spnState {
	return spnState{s[0], s[1], s[3], s[2]}
}

// mixColumnsState multiplies each column by the mix matrix [[1,4],[4,1]]
// over GF(2⁴).
func mixColumnsState(s spnState, field *gf16.Field) spnState {
	return spnState{
		field.Add(s[0], field.Mul(4, s[2])),
		field.Add(s[1], field.Mul(4, s[3])),
		field.Add(s[2], field.Mul(4, s[0])),
		field.Add(s[3], field.Mul(4, s[1])),
	}
}

// inverseMixColumnsState multiplies each column by the inverse matrix
// [[9,2],[2,9]] over GF(2⁴).
func inverseMixColumnsState(s spnState, field *gf16.Field) spnState {
	return spnState{
		field.Add(field.Mul(9, s[0]), field.Mul(2, s[2])),
		field.Add(field.Mul(9, s[1]), field.Mul(2, s[3])),
		field.Add(field.Mul(9, s[2]), field.Mul(2, s[0])),
		field.Add(field.Mul(9, s[3]), field.Mul(2, s[1])),
	}
}
