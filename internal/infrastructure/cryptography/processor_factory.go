package cryptography

import (
	"fmt"

	"github.com/arya2004/cybersecurity/internal/domain/ciphers"
	"github.com/arya2004/cybersecurity/internal/pkg/logger"
)

// NewProcessor creates the block cipher processor registered under the given
// algorithm identifier, configured with its reference parameters
func NewProcessor(algorithm string, logger logger.Logger) (ciphers.BlockCipherProcessor, error) {
	switch algorithm {
	case ciphers.AlgorithmFeistel8:
		return NewFeistelProcessor(DefaultFeistelParams(), logger)
	case ciphers.AlgorithmSPN16:
		return NewSPNProcessor(DefaultSPNParams(), logger)
	default:
		return nil, fmt.Errorf("unsupported algorithm: %s", algorithm)
	}
}
