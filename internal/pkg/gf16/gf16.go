// Package gf16 implements arithmetic over the finite field GF(2⁴).
// Elements are nibbles (4-bit values) and multiplication is carried out
// modulo a degree-4 reduction polynomial supplied at construction.
package gf16

import "fmt"

// DefaultModulus is x⁴ + x + 1, the reduction polynomial used by the
// 16-bit substitution-permutation cipher.
const DefaultModulus = 0b10011

// Field represents GF(2⁴) under a fixed reduction polynomial.
type Field struct {
	modulus uint8
}

// NewField creates a Field with the given reduction polynomial.
// The polynomial must be of degree exactly 4, i.e. in [0b10000, 0b11111].
func NewField(modulus uint8) (*Field, error) {
	if modulus&0x10 == 0 || modulus >= 0x20 {
		return nil, fmt.Errorf("reduction polynomial %#b must have degree 4", modulus)
	}
	return &Field{modulus: modulus}, nil
}

// Modulus returns the reduction polynomial of the field.
func (f *Field) Modulus() uint8 {
	return f.modulus
}

// Add returns the sum of two field elements. Addition in GF(2⁴) is XOR.
func (f *Field) Add(a, b uint8) uint8 {
	return (a ^ b) & 0xF
}

// Mul returns the product of two field elements. Inputs are masked to
// 4 bits; the running product is reduced whenever it reaches degree 4.
func (f *Field) Mul(a, b uint8) uint8 {
	a &= 0xF
	b &= 0xF

	var product uint8
	for b > 0 {
		if b&1 == 1 {
			product ^= a
		}
		a <<= 1
		if a&0x10 != 0 {
			a ^= f.modulus
		}
		b >>= 1
	}
	return product & 0xF
}
