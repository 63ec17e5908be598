package ciphers

import (
	"github.com/arya2004/cybersecurity/internal/pkg/bitvec"
)

// BlockCipherProcessor handles encryption and decryption on fixed-width blocks.
// Implementations operate on exact bit widths; inputs of any other width are
// rejected before any transform runs.
type BlockCipherProcessor interface {
	// Algorithm returns the identifier of the cipher construction.
	Algorithm() string

	// BlockSize returns the block width in bits.
	BlockSize() int

	// KeySize returns the key width in bits.
	KeySize() int

	// RoundKeyCount returns the number of round keys the schedule derives.
	RoundKeyCount() int

	// ExpandKey derives the round keys from a key of exactly KeySize bits.
	// The derivation is deterministic: equal keys yield equal round keys.
	ExpandKey(key bitvec.BitVector) ([]bitvec.BitVector, error)

	// Encrypt transforms a plaintext block of exactly BlockSize bits into
	// a ciphertext block of the same width under the given key.
	Encrypt(block, key bitvec.BitVector) (bitvec.BitVector, error)

	// Decrypt inverts Encrypt: for every block and key,
	// Decrypt(Encrypt(block, key), key) equals block.
	Decrypt(block, key bitvec.BitVector) (bitvec.BitVector, error)
}

// Description summarizes a cipher construction for discovery endpoints.
type Description struct {
	Algorithm     string
	BlockSize     int
	KeySize       int
	RoundKeyCount int
}
