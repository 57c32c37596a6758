package app

import (
	"strings"
	"unicode/utf8"
)

// symbols is the punctuation/symbol set a strong password must draw from.
const symbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// IsStrong reports whether a password meets the strength rules: at least
// 8 characters with one lowercase letter, one uppercase letter, one digit
// and one symbol. Shared by registration and password reset.
func IsStrong(password string) bool {
	if utf8.RuneCountInString(password) < 8 {
		return false
	}

	var lower, upper, digit, symbol bool
	for _, c := range password {
		switch {
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= '0' && c <= '9':
			digit = true
		case strings.ContainsRune(symbols, c):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}
