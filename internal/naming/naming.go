package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/stoewer/go-strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SummaryToCamelCase converts a human-readable summary to camelCase.
// Words are separated by Unicode whitespace. The first word is lower-cased;
// each following word gets an upper-cased first rune and a lower-cased rest.
// Example: "List all the Pets" -> "listAllThePets"
func SummaryToCamelCase(s string) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	lower := cases.Lower(language.Und)
	upper := cases.Upper(language.Und)

	var result strings.Builder
	result.Grow(len(s))
	result.WriteString(lower.String(words[0]))
	for _, w := range words[1:] {
		r, size := utf8.DecodeRuneInString(w)
		result.WriteString(upper.String(string(r)))
		result.WriteString(lower.String(w[size:]))
	}
	return result.String()
}

// reservedWords are TypeScript keywords that cannot name a binding.
var reservedWords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true, "do": true,
	"else": true, "enum": true, "export": true, "extends": true, "false": true,
	"finally": true, "for": true, "function": true, "if": true, "import": true,
	"in": true, "instanceof": true, "new": true, "null": true, "return": true,
	"super": true, "switch": true, "this": true, "throw": true, "true": true,
	"try": true, "typeof": true, "var": true, "void": true, "while": true,
	"with": true, "let": true, "static": true, "yield": true, "await": true,
}

// IsIdentifier reports whether s can be used verbatim as a TypeScript binding name.
func IsIdentifier(s string) bool {
	if s == "" || reservedWords[s] {
		return false
	}
	for i, r := range s {
		if !isIdentRune(r, i == 0) {
			return false
		}
	}
	return true
}

// ToIdentifier returns s unchanged when it is a valid identifier, otherwise a
// lowerCamelCase rendition of it.
// Example: "api-key" -> "apiKey"
func ToIdentifier(s string) string {
	if IsIdentifier(s) {
		return s
	}
	return sanitize(strcase.LowerCamelCase(s), s)
}

// ToTypeName returns s unchanged when it is a valid identifier, otherwise an
// UpperCamelCase rendition of it.
// Example: "pet-summary" -> "PetSummary"
func ToTypeName(s string) string {
	if IsIdentifier(s) {
		return s
	}
	return sanitize(strcase.UpperCamelCase(s), s)
}

// sanitize replaces runes strcase leaves behind and fixes a leading digit or
// a reserved word.
func sanitize(converted, original string) string {
	if converted == "" {
		converted = original
	}

	var result strings.Builder
	result.Grow(len(converted) + 1)
	for i, r := range converted {
		if i == 0 && unicode.IsDigit(r) {
			result.WriteByte('_')
		}
		if isIdentRune(r, false) {
			result.WriteRune(r)
		} else {
			result.WriteByte('_')
		}
	}

	out := result.String()
	if out == "" {
		return "_"
	}
	if reservedWords[out] {
		return out + "_"
	}
	return out
}

func isIdentRune(r rune, first bool) bool {
	if r == '_' || r == '$' || unicode.IsLetter(r) {
		return true
	}
	return !first && unicode.IsDigit(r)
}
