//go:build unit
// +build unit

package gf16

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupField(t *testing.T) *Field {
	t.Helper()
	field, err := NewField(DefaultModulus)
	require.NoError(t, err)
	return field
}

func TestNewField(t *testing.T) {
	tests := []struct {
		name      string
		modulus   uint8
		shouldErr bool
	}{
		{"default polynomial", DefaultModulus, false},
		{"another degree-4 polynomial", 0b11001, false},
		{"degree too low", 0b01011, true},
		{"degree too high", 0b100011, true},
		{"zero", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, err := NewField(tt.modulus)
			if tt.shouldErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.modulus, field.Modulus())
		})
	}
}

func TestMul_KnownProducts(t *testing.T) {
	field := setupField(t)

	// Products under x⁴ + x + 1 used by the mix-columns transforms.
	tests := []struct {
		a, b, expected uint8
	}{
		{0x4, 0xE, 0xD},
		{0x4, 0x2, 0x8},
		{0x9, 0xF, 0xE},
		{0x2, 0x6, 0xC},
		{0x3, 0x7, 0x9},
		{0xF, 0xF, 0xA},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, field.Mul(tt.a, tt.b),
			"Mul(%#x, %#x)", tt.a, tt.b)
	}
}

func TestMul_Identity(t *testing.T) {
	field := setupField(t)

	for a := uint8(0); a < 16; a++ {
		assert.Equal(t, a, field.Mul(a, 1))
		assert.Equal(t, uint8(0), field.Mul(a, 0))
	}
}

func TestMul_Commutative(t *testing.T) {
	field := setupField(t)

	for a := uint8(0); a < 16; a++ {
		for b := uint8(0); b < 16; b++ {
			assert.Equal(t, field.Mul(a, b), field.Mul(b, a))
		}
	}
}

func TestMul_StaysInField(t *testing.T) {
	field := setupField(t)

	for a := uint8(0); a < 16; a++ {
		for b := uint8(0); b < 16; b++ {
			assert.Less(t, field.Mul(a, b), uint8(16))
		}
	}
}

func TestMul_MasksInputs(t *testing.T) {
	field := setupField(t)

	// High bits beyond the nibble are discarded before multiplying.
	assert.Equal(t, field.Mul(0x4, 0xE), field.Mul(0xF4, 0xFE))
}

func TestAdd(t *testing.T) {
	field := setupField(t)

	assert.Equal(t, uint8(0x6), field.Add(0xC, 0xA))
	for a := uint8(0); a < 16; a++ {
		assert.Equal(t, uint8(0), field.Add(a, a))
		assert.Equal(t, a, field.Add(a, 0))
	}
}
