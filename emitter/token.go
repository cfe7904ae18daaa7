package emitter

import (
	"bytes"
	"strings"
)

type tokenKind uint8

const (
	tokOr tokenKind = iota
	tokColon
	tokEquals
	tokQuestion
	tokComma
	tokDot
	tokTripleDot
	tokAndAnd
	tokSemicolon
	tokLeftBrace
	tokRightBrace
	tokLeftBracket
	tokRightBracket
	tokLeftParen
	tokRightParen
	tokLowerThan
	tokGreaterThan
	tokIdentifier
	tokString
	tokDoc
	tokRaw
)

var punctuation = [...]string{
	tokOr:           "|",
	tokColon:        ":",
	tokEquals:       "=",
	tokQuestion:     "?",
	tokComma:        ",",
	tokDot:          ".",
	tokTripleDot:    "...",
	tokAndAnd:       "&&",
	tokSemicolon:    ";",
	tokLeftBrace:    "{",
	tokRightBrace:   "}",
	tokLeftBracket:  "[",
	tokRightBracket: "]",
	tokLeftParen:    "(",
	tokRightParen:   ")",
	tokLowerThan:    "<",
	tokGreaterThan:  ">",
}

type token struct {
	kind tokenKind
	text string
}

// writeTo renders t without the trailing separator.
func (t token) writeTo(out *bytes.Buffer) {
	switch t.kind {
	case tokIdentifier, tokRaw:
		out.WriteString(t.text)
	case tokString:
		out.WriteByte('\'')
		out.WriteString(quoteEscaper.Replace(t.text))
		out.WriteByte('\'')
	case tokDoc:
		out.WriteString("\n/**\n")
		for _, line := range strings.Split(t.text, "\n") {
			out.WriteString(" * ")
			out.WriteString(docEscaper.Replace(line))
			out.WriteByte('\n')
		}
		out.WriteString("*/\n")
	default:
		out.WriteString(punctuation[t.kind])
	}
}

var (
	quoteEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`, "\t", `\t`)
	docEscaper   = strings.NewReplacer("*/", `*\/`)
)

// buffer is an append-only token stream.
type buffer struct {
	tokens []token
}

func newBuffer() *buffer {
	return &buffer{tokens: make([]token, 0, 1024)}
}

func (b *buffer) push(k tokenKind) {
	b.tokens = append(b.tokens, token{kind: k})
}

func (b *buffer) pushText(k tokenKind, s string) {
	b.tokens = append(b.tokens, token{kind: k, text: s})
}

func (b *buffer) or() {
	b.push(tokOr)
}

func (b *buffer) colon() {
	b.push(tokColon)
}

func (b *buffer) equals() {
	b.push(tokEquals)
}

func (b *buffer) question() {
	b.push(tokQuestion)
}

func (b *buffer) comma() {
	b.push(tokComma)
}

func (b *buffer) dot() {
	b.push(tokDot)
}

func (b *buffer) tripleDot() {
	b.push(tokTripleDot)
}

func (b *buffer) andAnd() {
	b.push(tokAndAnd)
}

func (b *buffer) semicolon() {
	b.push(tokSemicolon)
}

func (b *buffer) identifier(s string) {
	b.pushText(tokIdentifier, s)
}

func (b *buffer) str(s string) {
	b.pushText(tokString, s)
}

func (b *buffer) doc(s string) {
	b.pushText(tokDoc, s)
}

func (b *buffer) raw(s string) {
	b.pushText(tokRaw, s)
}

func (b *buffer) wrap(opening, closing tokenKind, f func()) {
	b.push(opening)
	if f != nil {
		f()
	}
	b.push(closing)
}

// braces emits { f }.
func (b *buffer) braces(f func()) { b.wrap(tokLeftBrace, tokRightBrace, f) }

// brackets emits [ f ].
func (b *buffer) brackets(f func()) { b.wrap(tokLeftBracket, tokRightBracket, f) }

// parens emits ( f ).
func (b *buffer) parens(f func()) { b.wrap(tokLeftParen, tokRightParen, f) }

// generics emits < f >.
func (b *buffer) generics(f func()) { b.wrap(tokLowerThan, tokGreaterThan, f) }

// writeTo flattens the stream, one space after every token, and trims the
// surrounding whitespace.
func (b *buffer) writeTo(out *bytes.Buffer) {
	start := out.Len()
	for _, t := range b.tokens {
		t.writeTo(out)
		out.WriteByte(' ')
	}
	trimmed := bytes.TrimSpace(out.Bytes()[start:])
	out.Truncate(start)
	out.Write(trimmed)
}
