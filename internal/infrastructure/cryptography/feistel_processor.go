package cryptography

import (
	"github.com/arya2004/cybersecurity/internal/domain/ciphers"
	"github.com/arya2004/cybersecurity/internal/pkg/bitvec"
	"github.com/arya2004/cybersecurity/internal/pkg/logger"
)

// feistelProcessor struct that implements the BlockCipherProcessor interface
// for the two-round Feistel cipher over 8-bit blocks and 10-bit keys
type feistelProcessor struct {
	params FeistelParams
	logger logger.Logger
}

// NewFeistelProcessor creates and returns a new instance of feistelProcessor
// after checking the parameter tables
func NewFeistelProcessor(params FeistelParams, logger logger.Logger) (ciphers.BlockCipherProcessor, error) {
	if err := params.validate(); err != nil {
		return nil, &ciphers.ConfigurationError{Algorithm: ciphers.AlgorithmFeistel8, Reason: err.Error()}
	}
	return &feistelProcessor{
		params: params,
		logger: logger,
	}, nil
}

// Algorithm returns the cipher identifier
func (p *feistelProcessor) Algorithm() string {
	return ciphers.AlgorithmFeistel8
}

// BlockSize returns the block width in bits
func (p *feistelProcessor) BlockSize() int {
	return ciphers.Feistel8BlockSize
}

// KeySize returns the key width in bits
func (p *feistelProcessor) KeySize() int {
	return ciphers.Feistel8KeySize
}

// RoundKeyCount returns the number of round keys the schedule derives
func (p *feistelProcessor) RoundKeyCount() int {
	return ciphers.Feistel8RoundKeyCount
}

// ExpandKey derives the two 8-bit round keys from a 10-bit key. The key is
// permuted through P10, both halves rotate left once for the first round key
// and twice more for the second, and P8 compresses each rotated pair.
func (p *feistelProcessor) ExpandKey(key bitvec.BitVector) ([]bitvec.BitVector, error) {
	if key.Len() != ciphers.Feistel8KeySize {
		return nil, &ciphers.InvalidWidthError{Subject: "key", Want: ciphers.Feistel8KeySize, Got: key.Len()}
	}

	permuted, err := key.Permute(p.params.P10)
	if err != nil {
		return nil, err
	}
	left, right, err := permuted.Split()
	if err != nil {
		return nil, err
	}

	left, right = left.RotateLeft(1), right.RotateLeft(1)
	first, err := bitvec.Concat(left, right).Permute(p.params.P8)
	if err != nil {
		return nil, err
	}

	left, right = left.RotateLeft(2), right.RotateLeft(2)
	second, err := bitvec.Concat(left, right).Permute(p.params.P8)
	if err != nil {
		return nil, err
	}

	return []bitvec.BitVector{first, second}, nil
}

// Encrypt transforms an 8-bit plaintext block under the given 10-bit key
func (p *feistelProcessor) Encrypt(block, key bitvec.BitVector) (bitvec.BitVector, error) {
	roundKeys, err := p.ExpandKey(key)
	if err != nil {
		return bitvec.BitVector{}, err
	}

	out, err := p.run(block, roundKeys[0], roundKeys[1])
	if err != nil {
		return bitvec.BitVector{}, err
	}

	p.logger.Info("feistel8 encryption succeeded")
	return out, nil
}

// Decrypt inverts Encrypt. Decryption reuses the encryption pipeline with the
// round keys applied in reverse order.
func (p *feistelProcessor) Decrypt(block, key bitvec.BitVector) (bitvec.BitVector, error) {
	roundKeys, err := p.ExpandKey(key)
	if err != nil {
		return bitvec.BitVector{}, err
	}

	out, err := p.run(block, roundKeys[1], roundKeys[0])
	if err != nil {
		return bitvec.BitVector{}, err
	}

	p.logger.Info("feistel8 decryption succeeded")
	return out, nil
}

// run pushes a block through the five-stage pipeline with the given round key order
func (p *feistelProcessor) run(block, first, second bitvec.BitVector) (bitvec.BitVector, error) {
	if block.Len() != ciphers.Feistel8BlockSize {
		return bitvec.BitVector{}, &ciphers.InvalidWidthError{Subject: "block", Want: ciphers.Feistel8BlockSize, Got: block.Len()}
	}
	return runPipeline(p.stages(first, second), block)
}

// stages assembles the pipeline: initial permutation, one round per key with a
// half swap between them, and the inverse permutation at the end.
func (p *feistelProcessor) stages(first, second bitvec.BitVector) []stage[bitvec.BitVector] {
	return []stage[bitvec.BitVector]{
		{name: "initial permutation", apply: p.permuteStage(p.params.IP)},
		{name: "round one", apply: p.roundStage(first)},
		{name: "swap halves", apply: swapHalves},
		{name: "round two", apply: p.roundStage(second)},
		{name: "final permutation", apply: p.permuteStage(p.params.IPInverse)},
	}
}

func (p *feistelProcessor) permuteStage(table []int) func(bitvec.BitVector) (bitvec.BitVector, error) {
	return func(state bitvec.BitVector) (bitvec.BitVector, error) {
		return state.Permute(table)
	}
}

// roundStage builds a Feistel round: the mix of the right half and the round
// key is XORed into the left half while the right half passes through unchanged.
func (p *feistelProcessor) roundStage(roundKey bitvec.BitVector) func(bitvec.BitVector) (bitvec.BitVector, error) {
	return func(state bitvec.BitVector) (bitvec.BitVector, error) {
		left, right, err := state.Split()
		if err != nil {
			return state, err
		}
		mixed, err := p.roundFunction(right, roundKey)
		if err != nil {
			return state, err
		}
		newLeft, err := left.XOR(mixed)
		if err != nil {
			return state, err
		}
		return bitvec.Concat(newLeft, right), nil
	}
}

// roundFunction expands the right half through EP, mixes in the round key,
// substitutes through both S-boxes and permutes the result through P4.
func (p *feistelProcessor) roundFunction(half, roundKey bitvec.BitVector) (bitvec.BitVector, error) {
	expanded, err := half.Permute(p.params.EP)
	if err != nil {
		return bitvec.BitVector{}, err
	}
	mixed, err := expanded.XOR(roundKey)
	if err != nil {
		return bitvec.BitVector{}, err
	}
	leftHalf, rightHalf, err := mixed.Split()
	if err != nil {
		return bitvec.BitVector{}, err
	}

	combined, err := bitvec.FromUint(
		uint64(sboxLookup(p.params.SBox0, leftHalf))<<2|uint64(sboxLookup(p.params.SBox1, rightHalf)), 4)
	if err != nil {
		return bitvec.BitVector{}, err
	}
	return combined.Permute(p.params.P4)
}

// sboxLookup addresses a 4x4 S-box with a 4-bit input: the outer bits select
// the row and the inner bits the column.
func sboxLookup(box [4][4]uint8, nibble bitvec.BitVector) uint8 {
	row := nibble.Bit(0)<<1 | nibble.Bit(3)
	col := nibble.Bit(1)<<1 | nibble.Bit(2)
	return box[row][col]
}

// swapHalves exchanges the two halves of the block between rounds
func swapHalves(state bitvec.BitVector) (bitvec.BitVector, error) {
	left, right, err := state.Split()
	if err != nil {
		return state, err
	}
	return bitvec.Concat(right, left), nil
}
