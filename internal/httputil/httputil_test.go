package httputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatusCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want int
		kind StatusKind
	}{
		{"ok", "200", 200, StatusLiteral},
		{"not found", "404", 404, StatusLiteral},
		{"lowest", "100", 100, StatusLiteral},
		{"highest", "599", 599, StatusLiteral},
		{"non-standard", "299", 299, StatusLiteral},

		{"wildcard 1XX", "1XX", 0, StatusRange},
		{"wildcard 2XX", "2XX", 0, StatusRange},
		{"wildcard 5XX", "5XX", 0, StatusRange},
		{"lower-case wildcard", "5xx", 0, StatusRange},
		{"mixed-case wildcard", "4Xx", 0, StatusRange},

		{"too short", "20", 0, StatusInvalid},
		{"too long", "2000", 0, StatusInvalid},
		{"empty", "", 0, StatusInvalid},
		{"letters", "abc", 0, StatusInvalid},
		{"wildcard 0XX", "0XX", 0, StatusInvalid},
		{"wildcard 6XX", "6XX", 0, StatusInvalid},
		{"code 600", "600", 0, StatusInvalid},
		{"code 099", "099", 0, StatusInvalid},
		{"partial wildcard 20X", "20X", 0, StatusInvalid},
		{"partial wildcard 2X0", "2X0", 0, StatusInvalid},
		{"sign", "2+1", 0, StatusInvalid},
		{"extension", "x-200", 0, StatusInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, kind := ParseStatusCode(tt.code)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestStatusKind_String(t *testing.T) {
	assert.Equal(t, "literal", StatusLiteral.String())
	assert.Equal(t, "range", StatusRange.String())
	assert.Equal(t, "invalid", StatusInvalid.String())
}
