// Package ciphers defines the core interfaces and structures for the educational
// block ciphers, including the processor contract shared by the Feistel and
// substitution-permutation constructions and the typed errors both report.
package ciphers
