package utils

import (
	"fmt"
	"strconv"
)

// ConvertToInt parses the query parameter name as a decimal int.
func ConvertToInt(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: expected an integer", name, s)
	}
	return n, nil
}

// ConvertToInt64 parses the query parameter name as a decimal int64.
func ConvertToInt64(name, s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: expected a 64-bit integer", name, s)
	}
	return n, nil
}

// ConvertToUint64 parses the query parameter name as a non-negative decimal no larger
// than math.MaxInt64, the range persisted moduli live in.
func ConvertToUint64(name, s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: expected a non-negative integer", name, s)
	}
	return n, nil
}
