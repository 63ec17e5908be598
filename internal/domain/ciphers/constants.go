package ciphers

// AlgorithmFeistel8 identifies the two-round Feistel cipher over 8-bit blocks
const AlgorithmFeistel8 = "feistel8"

// AlgorithmSPN16 identifies the substitution-permutation cipher over 16-bit blocks
const AlgorithmSPN16 = "spn16"

// OperationEncrypt represents the encryption operation type
const OperationEncrypt = "encrypt"

// OperationDecrypt represents the decryption operation type
const OperationDecrypt = "decrypt"

// Feistel8BlockSize is the Feistel cipher block width in bits
const Feistel8BlockSize = 8

// Feistel8KeySize is the Feistel cipher key width in bits
const Feistel8KeySize = 10

// Feistel8RoundKeyCount is the number of round keys the Feistel schedule derives
const Feistel8RoundKeyCount = 2

// SPN16BlockSize is the substitution-permutation cipher block width in bits
const SPN16BlockSize = 16

// SPN16KeySize is the substitution-permutation cipher key width in bits
const SPN16KeySize = 16

// SPN16RoundKeyCount is the number of round keys the substitution-permutation schedule derives
const SPN16RoundKeyCount = 3
