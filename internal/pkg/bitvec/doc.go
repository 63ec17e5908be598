// Package bitvec provides fixed-width bit vector utilities for building bit-level
// cipher primitives, including table-driven permutation, circular rotation,
// elementwise XOR and integer conversion. Vectors are immutable and store bits
// most significant first.
package bitvec
