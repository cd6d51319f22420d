package taskfile

import (
	"strings"
)

// Escape encodes the fixed escape set used for quoted text values in the
// task file: double quote, backslash, and the single-character control
// escapes. All other bytes pass through unchanged; there is no code-point
// escaping.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Unescape is the inverse of Escape. A backslash followed by a byte
// outside the escape set yields that byte itself, so stray escapes
// degrade to their literal character instead of failing the value.
func Unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i == len(s)-1 {
			b.WriteByte(c)
			continue
		}
		i++
		b.WriteByte(unescapeByte(s[i]))
	}
	return b.String()
}

// unescapeByte maps the byte following a backslash to its decoded value.
func unescapeByte(c byte) byte {
	switch c {
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	default:
		// Covers '"' and '\\'; anything else is taken literally.
		return c
	}
}
