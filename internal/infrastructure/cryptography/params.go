package cryptography

import "fmt"

// FeistelParams holds the permutation tables and substitution boxes of the
// 8-bit Feistel cipher. Tables use 1-based indices. P10, IP, IPInverse and P4
// must be bijections; P8 selects 8 of 10 key bits and EP expands 4 block bits
// to 8, so both only need entries within range.
type FeistelParams struct {
	P10       []int
	P8        []int
	IP        []int
	IPInverse []int
	EP        []int
	P4        []int
	SBox0     [4][4]uint8
	SBox1     [4][4]uint8
}

// DefaultFeistelParams returns the reference parameter set of the cipher.
func DefaultFeistelParams() FeistelParams {
	return FeistelParams{
		P10:       []int{3, 5, 2, 7, 4, 10, 1, 9, 8, 6},
		P8:        []int{6, 3, 7, 4, 8, 5, 10, 9},
		IP:        []int{2, 6, 3, 1, 4, 8, 5, 7},
		IPInverse: []int{4, 1, 3, 5, 7, 2, 8, 6},
		EP:        []int{4, 1, 2, 3, 2, 3, 4, 1},
		P4:        []int{2, 4, 3, 1},
		SBox0: [4][4]uint8{
			{1, 0, 3, 2},
			{3, 2, 1, 0},
			{0, 2, 1, 3},
			{3, 1, 3, 2},
		},
		SBox1: [4][4]uint8{
			{0, 1, 2, 3},
			{2, 0, 1, 3},
			{3, 0, 1, 0},
			{2, 1, 0, 3},
		},
	}
}

func (p FeistelParams) validate() error {
	if err := validateBijection("P10", p.P10, 10); err != nil {
		return err
	}
	if err := validateSelection("P8", p.P8, 8, 10); err != nil {
		return err
	}
	if err := validateBijection("IP", p.IP, 8); err != nil {
		return err
	}
	if err := validateBijection("IP inverse", p.IPInverse, 8); err != nil {
		return err
	}
	for i, entry := range p.IP {
		if p.IPInverse[entry-1] != i+1 {
			return fmt.Errorf("IP inverse does not invert IP at position %d", i+1)
		}
	}
	if err := validateSelection("EP", p.EP, 8, 4); err != nil {
		return err
	}
	if err := validateSelection("P4", p.P4, 4, 4); err != nil {
		return err
	}
	if err := validateSBox4("S0", p.SBox0); err != nil {
		return err
	}
	return validateSBox4("S1", p.SBox1)
}

// SPNParams holds the substitution boxes and round constants of the 16-bit
// substitution-permutation cipher. The column mix always reduces over the
// fixed GF(2⁴) polynomial because its multiplier pairs are inverses only
// there.
type SPNParams struct {
	SBox        [16]uint8
	SBoxInverse [16]uint8

	// Round constants mixed into the first byte of the derived key words.
	RoundConstant1 uint8
	RoundConstant2 uint8
}

// DefaultSPNParams returns the reference parameter set of the cipher.
func DefaultSPNParams() SPNParams {
	return SPNParams{
		SBox: [16]uint8{
			0x9, 0x4, 0xA, 0xB, 0xD, 0x1, 0x8, 0x5,
			0x6, 0x2, 0x0, 0x3, 0xC, 0xE, 0xF, 0x7,
		},
		SBoxInverse: [16]uint8{
			0xA, 0x5, 0x9, 0xB, 0x1, 0x7, 0x8, 0xF,
			0x6, 0x0, 0x2, 0x3, 0xC, 0x4, 0xD, 0xE,
		},
		RoundConstant1: 0x80,
		RoundConstant2: 0x30,
	}
}

func (p SPNParams) validate() error {
	if err := validateNibbleBox("S-box", p.SBox); err != nil {
		return err
	}
	if err := validateNibbleBox("inverse S-box", p.SBoxInverse); err != nil {
		return err
	}
	for i, v := range p.SBox {
		if p.SBoxInverse[v] != uint8(i) {
			return fmt.Errorf("inverse S-box does not invert S-box at index %#x", i)
		}
	}
	return nil
}

// validateBijection checks that table is a permutation of 1..width.
func validateBijection(name string, table []int, width int) error {
	if len(table) != width {
		return fmt.Errorf("%s must have %d entries, got %d", name, width, len(table))
	}
	seen := make([]bool, width)
	for _, entry := range table {
		if entry < 1 || entry > width {
			return fmt.Errorf("%s entry %d out of range [1, %d]", name, entry, width)
		}
		if seen[entry-1] {
			return fmt.Errorf("%s entry %d appears more than once", name, entry)
		}
		seen[entry-1] = true
	}
	return nil
}

// validateSelection checks a selection or expansion table: exactly length
// entries, each addressing a bit of an inputWidth-bit value.
func validateSelection(name string, table []int, length, inputWidth int) error {
	if len(table) != length {
		return fmt.Errorf("%s must have %d entries, got %d", name, length, len(table))
	}
	for _, entry := range table {
		if entry < 1 || entry > inputWidth {
			return fmt.Errorf("%s entry %d out of range [1, %d]", name, entry, inputWidth)
		}
	}
	return nil
}

// validateSBox4 checks that every entry of a 4x4 box is a 2-bit value.
func validateSBox4(name string, box [4][4]uint8) error {
	for row := range box {
		for col, v := range box[row] {
			if v > 3 {
				return fmt.Errorf("%s entry at row %d column %d exceeds 3", name, row, col)
			}
		}
	}
	return nil
}

// validateNibbleBox checks that a 16-entry box is a permutation of the nibble values.
func validateNibbleBox(name string, box [16]uint8) error {
	var seen [16]bool
	for i, v := range box {
		if v > 0xF {
			return fmt.Errorf("%s entry %#x at index %#x is not a nibble", name, v, i)
		}
		if seen[v] {
			return fmt.Errorf("%s value %#x appears more than once", name, v)
		}
		seen[v] = true
	}
	return nil
}
