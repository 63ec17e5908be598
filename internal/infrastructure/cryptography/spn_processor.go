package cryptography

import (
	"github.com/arya2004/cybersecurity/internal/domain/ciphers"
	"github.com/arya2004/cybersecurity/internal/pkg/bitvec"
	"github.com/arya2004/cybersecurity/internal/pkg/gf16"
	"github.com/arya2004/cybersecurity/internal/pkg/logger"
)

// spnProcessor struct that implements the BlockCipherProcessor interface for
// the two-round substitution-permutation cipher over 16-bit blocks and keys
type spnProcessor struct {
	params SPNParams
	field  *gf16.Field
	logger logger.Logger
}

// NewSPNProcessor creates and returns a new instance of spnProcessor after
// checking the substitution boxes
func NewSPNProcessor(params SPNParams, logger logger.Logger) (ciphers.BlockCipherProcessor, error) {
	if err := params.validate(); err != nil {
		return nil, &ciphers.ConfigurationError{Algorithm: ciphers.AlgorithmSPN16, Reason: err.Error()}
	}
	field, err := gf16.NewField(gf16.DefaultModulus)
	if err != nil {
		return nil, &ciphers.ConfigurationError{Algorithm: ciphers.AlgorithmSPN16, Reason: err.Error()}
	}
	return &spnProcessor{
		params: params,
		field:  field,
		logger: logger,
	}, nil
}

// Algorithm returns the cipher identifier
func (p *spnProcessor) Algorithm() string {
	return ciphers.AlgorithmSPN16
}

// BlockSize returns the block width in bits
func (p *spnProcessor) BlockSize() int {
	return ciphers.SPN16BlockSize
}

// KeySize returns the key width in bits
func (p *spnProcessor) KeySize() int {
	return ciphers.SPN16KeySize
}

// RoundKeyCount returns the number of round keys the schedule derives
func (p *spnProcessor) RoundKeyCount() int {
	return ciphers.SPN16RoundKeyCount
}

// ExpandKey derives the pre-round key and the two round keys from a 16-bit
// key. Each derived word feeds the next, with the odd words built from a
// rotate-substitute of their predecessor plus a round constant.
func (p *spnProcessor) ExpandKey(key bitvec.BitVector) ([]bitvec.BitVector, error) {
	if key.Len() != ciphers.SPN16KeySize {
		return nil, &ciphers.InvalidWidthError{Subject: "key", Want: ciphers.SPN16KeySize, Got: key.Len()}
	}

	words := p.expandWords(uint16(key.Uint()))
	roundKeys := make([]bitvec.BitVector, len(words))
	for i, word := range words {
		v, err := bitvec.FromUint(uint64(word), ciphers.SPN16KeySize)
		if err != nil {
			return nil, err
		}
		roundKeys[i] = v
	}
	return roundKeys, nil
}

// expandWords runs the byte-level key schedule
func (p *spnProcessor) expandWords(key uint16) [3]uint16 {
	w0 := uint8(key >> 8)
	w1 := uint8(key)
	w2 := w0 ^ p.params.RoundConstant1 ^ p.subWord(rotWord(w1))
	w3 := w2 ^ w1
	w4 := w2 ^ p.params.RoundConstant2 ^ p.subWord(rotWord(w3))
	w5 := w4 ^ w3

	return [3]uint16{
		uint16(w0)<<8 | uint16(w1),
		uint16(w2)<<8 | uint16(w3),
		uint16(w4)<<8 | uint16(w5),
	}
}

// rotWord swaps the nibbles of a byte
func rotWord(w uint8) uint8 {
	return w<<4 | w>>4
}

// subWord substitutes both nibbles of a byte through the S-box
func (p *spnProcessor) subWord(w uint8) uint8 {
	return p.params.SBox[w>>4]<<4 | p.params.SBox[w&0xF]
}

// Encrypt transforms a 16-bit plaintext block under the given 16-bit key
func (p *spnProcessor) Encrypt(block, key bitvec.BitVector) (bitvec.BitVector, error) {
	out, err := p.run(block, key, p.encryptStages)
	if err != nil {
		return bitvec.BitVector{}, err
	}

	p.logger.Info("spn16 encryption succeeded")
	return out, nil
}

// Decrypt inverts Encrypt by applying the inverse stages in reverse order
func (p *spnProcessor) Decrypt(block, key bitvec.BitVector) (bitvec.BitVector, error) {
	out, err := p.run(block, key, p.decryptStages)
	if err != nil {
		return bitvec.BitVector{}, err
	}

	p.logger.Info("spn16 decryption succeeded")
	return out, nil
}

func (p *spnProcessor) run(block, key bitvec.BitVector, pipeline func(pre, r1, r2 spnState) []stage[spnState]) (bitvec.BitVector, error) {
	if block.Len() != ciphers.SPN16BlockSize {
		return bitvec.BitVector{}, &ciphers.InvalidWidthError{Subject: "block", Want: ciphers.SPN16BlockSize, Got: block.Len()}
	}
	roundKeys, err := p.ExpandKey(key)
	if err != nil {
		return bitvec.BitVector{}, err
	}

	pre := stateFromUint(uint16(roundKeys[0].Uint()))
	r1 := stateFromUint(uint16(roundKeys[1].Uint()))
	r2 := stateFromUint(uint16(roundKeys[2].Uint()))

	state, err := runPipeline(pipeline(pre, r1, r2), stateFromUint(uint16(block.Uint())))
	if err != nil {
		return bitvec.BitVector{}, err
	}
	return bitvec.FromUint(uint64(uintFromState(state)), ciphers.SPN16BlockSize)
}

// encryptStages assembles the forward pipeline: a pre-round key mix, a full
// round of substitute, shift and column mix, then a final round without the
// column mix.
func (p *spnProcessor) encryptStages(pre, r1, r2 spnState) []stage[spnState] {
	return []stage[spnState]{
		{name: "pre-round key", apply: p.keyStage(pre)},
		{name: "substitute nibbles", apply: p.substituteStage(p.params.SBox)},
		{name: "shift rows", apply: shiftStage},
		{name: "mix columns", apply: p.mixStage},
		{name: "round one key", apply: p.keyStage(r1)},
		{name: "substitute nibbles", apply: p.substituteStage(p.params.SBox)},
		{name: "shift rows", apply: shiftStage},
		{name: "round two key", apply: p.keyStage(r2)},
	}
}

// decryptStages assembles the inverse pipeline, undoing the forward stages in
// reverse order with the inverse S-box and inverse column mix.
func (p *spnProcessor) decryptStages(pre, r1, r2 spnState) []stage[spnState] {
	return []stage[spnState]{
		{name: "round two key", apply: p.keyStage(r2)},
		{name: "shift rows", apply: shiftStage},
		{name: "inverse substitute nibbles", apply: p.substituteStage(p.params.SBoxInverse)},
		{name: "round one key", apply: p.keyStage(r1)},
		{name: "inverse mix columns", apply: p.inverseMixStage},
		{name: "shift rows", apply: shiftStage},
		{name: "inverse substitute nibbles", apply: p.substituteStage(p.params.SBoxInverse)},
		{name: "pre-round key", apply: p.keyStage(pre)},
	}
}

func (p *spnProcessor) keyStage(roundKey spnState) func(spnState) (spnState, error) {
	return func(state spnState) (spnState, error) {
		return xorState(state, roundKey), nil
	}
}

func (p *spnProcessor) substituteStage(box [16]uint8) func(spnState) (spnState, error) {
	return func(state spnState) (spnState, error) {
		return substituteState(state, box), nil
	}
}

func shiftStage(state spnState) (spnState, error) {
	return shiftRowsState(state), nil
}

func (p *spnProcessor) mixStage(state spnState) (spnState, error) {
	return mixColumnsState(state, p.field), nil
}

func (p *spnProcessor) inverseMixStage(state spnState) (spnState, error) {
	return inverseMixColumnsState(state, p.field), nil
}
