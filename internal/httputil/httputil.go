// Package httputil classifies the status code keys of OpenAPI responses objects.
package httputil

import "strconv"

// HTTP Status Code Constants
const (
	StatusCodeLength     = 3   // Standard length of HTTP status codes (e.g., "200", "404")
	MinStatusCode        = 100 // Minimum valid HTTP status code
	MaxStatusCode        = 599 // Maximum valid HTTP status code
	MinWildcardFirstChar = '1' // Minimum first digit for wildcard patterns
	MaxWildcardFirstChar = '5' // Maximum first digit for wildcard patterns
)

// StatusKind is the shape of a response key other than "default".
type StatusKind int

const (
	// StatusLiteral is a three-digit code such as 200.
	StatusLiteral StatusKind = iota
	// StatusRange is a wildcard range such as 2XX (case-insensitive).
	StatusRange
	// StatusInvalid is anything else.
	StatusInvalid
)

func (k StatusKind) String() string {
	switch k {
	case StatusLiteral:
		return "literal"
	case StatusRange:
		return "range"
	default:
		return "invalid"
	}
}

// ParseStatusCode classifies a response key. The returned code is only
// meaningful for StatusLiteral.
func ParseStatusCode(code string) (int, StatusKind) {
	if len(code) != StatusCodeLength || code[0] < MinWildcardFirstChar || code[0] > MaxWildcardFirstChar {
		return 0, StatusInvalid
	}
	if isWildcard(code[1]) && isWildcard(code[2]) {
		return 0, StatusRange
	}
	if !isDigit(code[1]) || !isDigit(code[2]) {
		return 0, StatusInvalid
	}
	n, err := strconv.Atoi(code)
	if err != nil || n < MinStatusCode || n > MaxStatusCode {
		return 0, StatusInvalid
	}
	return n, StatusLiteral
}

func isWildcard(c byte) bool { return c == 'X' || c == 'x' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
