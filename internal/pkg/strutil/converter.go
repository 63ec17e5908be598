package strutil

import "strconv"

// ConvertToInt parses s as a decimal integer. Unparsable input yields 0 so
// that downstream query validation rejects it.
func ConvertToInt(s string) int {
	value, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return value
}
