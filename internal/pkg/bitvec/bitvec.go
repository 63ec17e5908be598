package bitvec

import (
	"errors"
	"fmt"
	"strings"
)

// ErrLengthMismatch is returned when two bit vectors of different widths are combined.
var ErrLengthMismatch = errors.New("bit vectors differ in width")

// TableIndexError reports a permutation table entry outside the valid range [1, Len].
type TableIndexError struct {
	Entry int
	Len   int
}

func (e *TableIndexError) Error() string {
	return fmt.Sprintf("permutation table entry %d out of range [1, %d]", e.Entry, e.Len)
}

// BitVector is an immutable fixed-width sequence of bits.
// Index 0 holds the most significant bit. All operations return new vectors.
type BitVector struct {
	bits []uint8
}

// New creates a BitVector from a slice of bits. Each element must be 0 or 1.
func New(bits []uint8) (BitVector, error) {
	if len(bits) == 0 {
		return BitVector{}, fmt.Errorf("bit vector must contain at least one bit")
	}
	copied := make([]uint8, len(bits))
	for i, b := range bits {
		if b > 1 {
			return BitVector{}, fmt.Errorf("invalid bit value %d at index %d", b, i)
		}
		copied[i] = b
	}
	return BitVector{bits: copied}, nil
}

// Parse creates a BitVector from a string of '0' and '1' characters.
func Parse(s string) (BitVector, error) {
	if s == "" {
		return BitVector{}, fmt.Errorf("bit string must not be empty")
	}
	bits := make([]uint8, len(s))
	for i, r := range s {
		switch r {
		case '0':
			bits[i] = 0
		case '1':
			bits[i] = 1
		default:
			return BitVector{}, fmt.Errorf("invalid character %q at position %d in bit string", r, i)
		}
	}
	return BitVector{bits: bits}, nil
}

// FromUint creates a BitVector of the given width from an unsigned integer.
// The value must fit into width bits.
func FromUint(value uint64, width int) (BitVector, error) {
	if width < 1 || width > 64 {
		return BitVector{}, fmt.Errorf("width %d out of range [1, 64]", width)
	}
	if width < 64 && value >= 1<<uint(width) {
		return BitVector{}, fmt.Errorf("value %d does not fit into %d bits", value, width)
	}
	bits := make([]uint8, width)
	for i := 0; i < width; i++ {
		bits[i] = uint8(value >> uint(width-1-i) & 1)
	}
	return BitVector{bits: bits}, nil
}

// Concat joins the given vectors left to right into a single vector.
func Concat(vectors ...BitVector) BitVector {
	total := 0
	for _, v := range vectors {
		total += len(v.bits)
	}
	bits := make([]uint8, 0, total)
	for _, v := range vectors {
		bits = append(bits, v.bits...)
	}
	return BitVector{bits: bits}
}

// Len returns the width of the vector in bits.
func (v BitVector) Len() int {
	return len(v.bits)
}

// Bit returns the bit at index i. Index 0 is the most significant bit.
// i must be in [0, Len()).
func (v BitVector) Bit(i int) uint8 {
	return v.bits[i]
}

// Bits returns a copy of the underlying bit slice.
func (v BitVector) Bits() []uint8 {
	copied := make([]uint8, len(v.bits))
	copy(copied, v.bits)
	return copied
}

// String renders the vector as a string of '0' and '1' characters.
func (v BitVector) String() string {
	var sb strings.Builder
	sb.Grow(len(v.bits))
	for _, b := range v.bits {
		sb.WriteByte('0' + b)
	}
	return sb.String()
}

// Uint returns the value of the vector interpreted as a big-endian unsigned integer.
func (v BitVector) Uint() uint64 {
	var value uint64
	for _, b := range v.bits {
		value = value<<1 | uint64(b)
	}
	return value
}

// Equal reports whether two vectors have the same width and bits.
func (v BitVector) Equal(other BitVector) bool {
	if len(v.bits) != len(other.bits) {
		return false
	}
	for i, b := range v.bits {
		if other.bits[i] != b {
			return false
		}
	}
	return true
}

// Permute builds a new vector by selecting bits according to a 1-based index table:
// output[i] = v[table[i]-1]. The output width equals the table length, so a table
// may expand, compress or reorder the input.
func (v BitVector) Permute(table []int) (BitVector, error) {
	bits := make([]uint8, len(table))
	for i, entry := range table {
		if entry < 1 || entry > len(v.bits) {
			return BitVector{}, &TableIndexError{Entry: entry, Len: len(v.bits)}
		}
		bits[i] = v.bits[entry-1]
	}
	return BitVector{bits: bits}, nil
}

// RotateLeft returns the vector rotated left by n positions. Rotation is circular
// and n may be negative or exceed the width.
func (v BitVector) RotateLeft(n int) BitVector {
	width := len(v.bits)
	if width == 0 {
		return v
	}
	n = ((n % width) + width) % width
	bits := make([]uint8, width)
	for i := range v.bits {
		bits[i] = v.bits[(i+n)%width]
	}
	return BitVector{bits: bits}
}

// XOR returns the elementwise exclusive-or of two vectors of equal width.
func (v BitVector) XOR(other BitVector) (BitVector, error) {
	if len(v.bits) != len(other.bits) {
		return BitVector{}, ErrLengthMismatch
	}
	bits := make([]uint8, len(v.bits))
	for i, b := range v.bits {
		bits[i] = b ^ other.bits[i]
	}
	return BitVector{bits: bits}, nil
}

// Split divides the vector into two equal halves. The width must be even.
func (v BitVector) Split() (BitVector, BitVector, error) {
	if len(v.bits)%2 != 0 {
		return BitVector{}, BitVector{}, fmt.Errorf("cannot split vector of odd width %d", len(v.bits))
	}
	half := len(v.bits) / 2
	left := make([]uint8, half)
	right := make([]uint8, half)
	copy(left, v.bits[:half])
	copy(right, v.bits[half:])
	return BitVector{bits: left}, BitVector{bits: right}, nil
}
