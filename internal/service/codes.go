package service

import (
	"strings"
)

// IsValidCurrencyCode checks whether a string is a 3-letter currency code, in any case.
func IsValidCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, c := range strings.ToUpper(code) {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

// NormalizeCode trims and uppercases code, rejecting anything that is not a valid code.
func NormalizeCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !IsValidCurrencyCode(code) {
		return "", ErrInvalidInput
	}
	return code, nil
}
