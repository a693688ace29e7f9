package util

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type escapeState int

const (
	escapeNone escapeState = iota
	// after "\"
	escapeNext
	// after "\\"
	escapeSecond
	// after "\\x", a "{" must follow
	escapeWillBeHex
	// inside "\\x{...}"
	escapeReadingNumber
)

// EscapeCatalogString quotes s for a msgid or msgstr line.
//
// Newline and double quote use a single backslash, while carriage return,
// backslash and other non-printing characters use a doubled one ("\\r",
// "\\", "\\x{1b}"). Any rune outside unicode.IsGraphic, such as U+200B
// or U+FEFF, counts as non-printing. Catalogs already in use depend on this
// exact layout.
func EscapeCatalogString(s string) string {
	var b strings.Builder

	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i, r := range s {
		switch {
		case r == '"':
			b.WriteString(`\"`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\\r`)
		case r == '\\':
			// "\\" followed by x or r would read back as a hex or CR escape
			if next := s[i+1:]; strings.HasPrefix(next, "x") || strings.HasPrefix(next, "r") {
				b.WriteString(`\\x{5c}`)
			} else {
				b.WriteString(`\\`)
			}
		case !unicode.IsGraphic(r):
			fmt.Fprintf(&b, `\\x{%x}`, r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// UnescapeCatalogString decodes a string produced by EscapeCatalogString.
// Text outside of quotes is ignored. Unlike the line decoder of the parser,
// an unterminated quote or escape is an error.
func UnescapeCatalogString(s string) (string, error) {
	var (
		d   lineDecoder
		out strings.Builder
	)

	if err := d.feed(s, &out); err != nil {
		return "", err
	}
	switch d.state {
	case escapeNone:
	case escapeReadingNumber, escapeWillBeHex:
		return "", fmt.Errorf("%w: unterminated \\\\x{...}", ErrMalformedEscape)
	default:
		return "", ErrUnfinishedEscape
	}
	if d.quoted {
		return "", ErrUnclosedQuote
	}
	return out.String(), nil
}

// lineDecoder unescapes the quoted spans of catalog lines.
type lineDecoder struct {
	state  escapeState
	quoted bool
	number strings.Builder
}

// feed decodes text and appends the unescaped content of its quoted spans
// to out. The returned error wraps ErrMalformedEscape.
func (d *lineDecoder) feed(text string, out *strings.Builder) error {
	for _, r := range text {
		if err := d.step(r, out); err != nil {
			return err
		}
	}
	return nil
}

func (d *lineDecoder) step(r rune, out *strings.Builder) error {
	switch d.state {
	case escapeNext:
		d.state = escapeNone
		switch r {
		case 'n':
			out.WriteByte('\n')
		case 'r':
			out.WriteByte('\r')
		case '\\':
			d.state = escapeSecond
		default:
			out.WriteRune(r)
		}
		return nil

	case escapeSecond:
		d.state = escapeNone
		switch r {
		case 'x':
			d.state = escapeWillBeHex
			return nil
		case 'r':
			out.WriteByte('\r')
			return nil
		}
		out.WriteByte('\\')
		return d.step(r, out)

	case escapeWillBeHex:
		if r != '{' {
			return fmt.Errorf("%w: expected '{' after \\\\x, got %q", ErrMalformedEscape, r)
		}
		d.state = escapeReadingNumber
		d.number.Reset()
		return nil

	case escapeReadingNumber:
		if r != '}' {
			if !isHexDigit(r) {
				return fmt.Errorf("%w: %q is not a hexadecimal digit", ErrMalformedEscape, r)
			}
			d.number.WriteRune(r)
			return nil
		}
		d.state = escapeNone
		code, err := strconv.ParseUint(d.number.String(), 16, 32)
		if err != nil || !utf8.ValidRune(rune(code)) {
			return fmt.Errorf("%w: bad code point \\\\x{%s}", ErrMalformedEscape, d.number.String())
		}
		out.WriteRune(rune(code))
		return nil
	}

	switch r {
	case '"':
		d.quoted = !d.quoted
	case '\\':
		if d.quoted {
			d.state = escapeNext
		}
	default:
		if d.quoted {
			out.WriteRune(r)
		}
	}
	return nil
}

// endLine resets the decoder at the end of a line. A pending "\\" resolves
// to a literal backslash; any other pending escape is dropped.
func (d *lineDecoder) endLine(out *strings.Builder) (unclosed, unfinished bool) {
	switch d.state {
	case escapeSecond:
		out.WriteByte('\\')
	case escapeNext, escapeWillBeHex, escapeReadingNumber:
		unfinished = true
	}
	unclosed = d.quoted

	d.state = escapeNone
	d.quoted = false
	d.number.Reset()
	return
}

func isHexDigit(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}
