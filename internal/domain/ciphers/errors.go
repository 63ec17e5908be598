package ciphers

import "fmt"

// ConfigurationError reports invalid cipher parameters detected at construction
// time, such as a non-bijective permutation table or a malformed S-box.
type ConfigurationError struct {
	Algorithm string
	Reason    string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s configuration: %s", e.Algorithm, e.Reason)
}

// InvalidWidthError reports an input whose bit width does not match the
// width the cipher operates on. It is returned before any transform runs.
type InvalidWidthError struct {
	Subject string // "block" or "key"
	Want    int
	Got     int
}

func (e *InvalidWidthError) Error() string {
	return fmt.Sprintf("%s must be %d bits wide, got %d", e.Subject, e.Want, e.Got)
}
