package vin

import (
	"errors"
	"strings"
)

// Error variables
var (
	ErrFormat   = errors.New("vin must be 17 characters of digits and allowed letters")
	ErrChecksum = errors.New("vin check digit mismatch")
)

// Length is the fixed size of a vehicle identification number.
const Length = 17

// allowedLetters are the letters permitted in a VIN. I, O and Q are
// excluded to avoid confusion with 1 and 0.
const allowedLetters = "ABCDEFGHJKLMNPRSTUVWXYZ"

// weights are the per-position multipliers of the check digit algorithm.
// Position 9 (index 8) is the check digit slot and carries weight 0.
var weights = [Length]int{8, 7, 6, 5, 4, 3, 2, 10, 0, 9, 8, 7, 6, 5, 4, 3, 2}

type config struct {
	checksum bool
}

// Option configures VIN validation.
type Option func(*config)

// WithoutChecksum disables check digit verification.
// Format checking is always performed.
func WithoutChecksum() Option {
	return func(c *config) {
		c.checksum = false
	}
}

// Validate checks the format of a VIN and, unless disabled, its check
// digit. It returns the VIN normalized to uppercase.
func Validate(code string, opts ...Option) (string, error) {
	cfg := config{checksum: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	code = strings.ToUpper(code)
	if len(code) != Length {
		return "", ErrFormat
	}
	for i := 0; i < Length; i++ {
		c := code[i]
		if c >= '0' && c <= '9' {
			continue
		}
		if !strings.ContainsRune(allowedLetters, rune(c)) {
			return "", ErrFormat
		}
	}

	if cfg.checksum && CheckDigit(code) != code[8] {
		return "", ErrChecksum
	}

	return code, nil
}

// CheckDigit computes the check character for a 17-character uppercase
// VIN: transliterated characters are multiplied by the position weights,
// summed and reduced mod 11. A remainder of 10 maps to 'X'.
func CheckDigit(code string) byte {
	sum := 0
	for i := 0; i < Length; i++ {
		sum += transliterate(code[i]) * weights[i]
	}
	rem := sum % 11
	if rem == 10 {
		return 'X'
	}
	return byte('0' + rem)
}

// transliterate maps a VIN character to its numeric value. Digits map to
// themselves; anything outside both sets maps to 0, which is unreachable
// after format checking.
func transliterate(c byte) int {
	if c >= '0' && c <= '9' {
		return int(c - '0')
	}
	switch c {
	case 'A', 'J':
		return 1
	case 'B', 'K', 'S':
		return 2
	case 'C', 'L', 'T':
		return 3
	case 'D', 'M', 'U':
		return 4
	case 'E', 'N', 'V':
		return 5
	case 'F', 'W':
		return 6
	case 'G', 'P', 'X':
		return 7
	case 'H', 'Y':
		return 8
	case 'R', 'Z':
		return 9
	}
	return 0
}
