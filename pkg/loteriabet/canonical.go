package loteriabet

import (
	"fmt"
	"regexp"
)

// canonicalNumberRE matches the canonical number form: 2 or 3 digits,
// leading zeros significant — never a numeric integer.
var canonicalNumberRE = regexp.MustCompile(`^[0-9]{2,3}$`)

// IsCanonicalNumber reports whether s is a valid canonical number string.
func IsCanonicalNumber(s string) bool {
	return canonicalNumberRE.MatchString(s)
}

// PadNumber zero-pads an integer to width 2, wrapping mod 100.
func PadNumber(n int) string {
	return fmt.Sprintf("%02d", ((n % 100) + 100) % 100)
}

// PadCentena zero-pads an integer to width 3, wrapping mod 1000.
func PadCentena(n int) string {
	return fmt.Sprintf("%03d", ((n % 1000) + 1000) % 1000)
}
