package pathutil

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// ParseID parses a path segment such as the {id} wildcard as a positive int64.
//
// Parsing is lenient about what follows the number: surrounding whitespace
// and an optional sign are accepted, then the longest run of leading digits
// is used ("1abc" -> 1, "2.5" -> 2, "3e2" -> 3). A "0x" prefix switches to
// hexadecimal. Segments with no leading digits, non-positive values and
// values that do not fit in an int64 are rejected.
//
// Example:
//
//	id, err := ParseID(r.PathValue("id"))
//	// "/api/news/3" -> 3, nil
func ParseID(segment string) (int64, error) {
	s := strings.TrimSpace(segment)

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	base, isDigit := 10, isDecimal
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base, isDigit = 16, isHex
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == 0 || neg {
		return 0, ErrInvalidID
	}

	id, err := strconv.ParseInt(s[:end], base, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

func isDecimal(c byte) bool { return '0' <= c && c <= '9' }

func isHex(c byte) bool {
	return isDecimal(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
