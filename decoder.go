package json

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/verdaderoken/json/internal"
)

// decoder holds the transient state of one Decode call: the input text
// and a forward-only cursor. Nothing survives the call, so concurrent
// decodes never share state.
type decoder struct {
	src      string
	pos      int
	maxDepth int
}

func newDecoder(src string, maxDepth int) *decoder {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxNestingDepth
	}
	return &decoder{src: src, maxDepth: maxDepth}
}

// decodeLiteral parses src as literal JSON text with default limits.
// Used where the path convenience must not apply, e.g. UnmarshalJSON.
func decodeLiteral(src string) (*Value, error) {
	return newDecoder(src, DefaultMaxNestingDepth).decode()
}

// decode parses exactly one JSON document. Trailing non-whitespace
// content after the root value is a syntax error.
func (d *decoder) decode() (*Value, error) {
	d.skipSpace()
	if d.pos >= len(d.src) {
		return nil, d.syntaxError("unexpected end of input, expected a JSON value", d.pos)
	}

	v, err := d.parseValue(0)
	if err != nil {
		return nil, err
	}

	d.skipSpace()
	if d.pos < len(d.src) {
		return nil, d.syntaxError("extra data after top-level value", d.pos)
	}
	return v, nil
}

// skipSpace advances the cursor past JSON whitespace. Whitespace is
// skippable in every parser state.
func (d *decoder) skipSpace() {
	for d.pos < len(d.src) && internal.IsSpace(d.src[d.pos]) {
		d.pos++
	}
}

// parseValue parses one value of any kind starting at the cursor.
// The caller must have skipped leading whitespace.
func (d *decoder) parseValue(depth int) (*Value, error) {
	if depth > d.maxDepth {
		return nil, &CodecError{
			Op:      "decode",
			Message: fmt.Sprintf("nesting depth exceeds maximum %d", d.maxDepth),
			Err:     ErrDepthLimit,
		}
	}

	if d.pos >= len(d.src) {
		return nil, d.syntaxError("unexpected end of input, expected a JSON value", d.pos)
	}

	switch d.src[d.pos] {
	case '{':
		return d.parseObject(depth)
	case '[':
		return d.parseArray(depth)
	case '"':
		s, err := d.parseStringToken()
		if err != nil {
			return nil, err
		}
		return NewString(s), nil
	default:
		return d.parseLiteralToken()
	}
}

// parseObject parses an object whose '{' is at the cursor. Duplicate
// keys overwrite earlier bindings; the key keeps its first position.
func (d *decoder) parseObject(depth int) (*Value, error) {
	d.pos++ // consume '{'
	obj := NewObject()

	d.skipSpace()
	if d.pos < len(d.src) && d.src[d.pos] == '}' {
		d.pos++
		return obj, nil
	}

	for {
		d.skipSpace()
		if d.pos >= len(d.src) || d.src[d.pos] != '"' {
			return nil, d.syntaxError("expecting object key enclosed in double quotes", d.pos)
		}

		keyStart := d.pos
		key, err := d.parseStringToken()
		if err != nil {
			return nil, err
		}
		if key == "" {
			return nil, d.syntaxError("object key must not be empty", keyStart)
		}

		d.skipSpace()
		if d.pos >= len(d.src) || d.src[d.pos] != ':' {
			return nil, d.syntaxError("expected ':' after object key", d.pos)
		}
		d.pos++ // consume ':'

		d.skipSpace()
		val, err := d.parseValue(depth + 1)
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)

		d.skipSpace()
		if d.pos >= len(d.src) {
			return nil, d.syntaxError("expected ',' or '}' after object value", d.pos)
		}
		switch d.src[d.pos] {
		case ',':
			d.pos++
		case '}':
			d.pos++
			return obj, nil
		default:
			return nil, d.syntaxError("expected ',' or '}' after object value", d.pos)
		}
	}
}

// parseArray parses an array whose '[' is at the cursor
func (d *decoder) parseArray(depth int) (*Value, error) {
	d.pos++ // consume '['
	arr := NewArray()

	d.skipSpace()
	if d.pos < len(d.src) && d.src[d.pos] == ']' {
		d.pos++
		return arr, nil
	}

	for {
		d.skipSpace()
		elem, err := d.parseValue(depth + 1)
		if err != nil {
			return nil, err
		}
		arr.Append(elem)

		d.skipSpace()
		if d.pos >= len(d.src) {
			return nil, d.syntaxError("expected ',' or ']' after array element", d.pos)
		}
		switch d.src[d.pos] {
		case ',':
			d.pos++
		case ']':
			d.pos++
			return arr, nil
		default:
			return nil, d.syntaxError("expected ',' or ']' after array element", d.pos)
		}
	}
}

// parseStringToken parses a quoted string whose opening '"' is at the
// cursor and returns the decoded text. Escape sequences follow the
// standard table, and \uXXXX escapes combine surrogate pairs into a
// single code point.
func (d *decoder) parseStringToken() (string, error) {
	start := d.pos
	d.pos++ // consume opening '"'

	var sb strings.Builder
	for {
		if d.pos >= len(d.src) {
			return "", d.syntaxError("unterminated string", start)
		}

		c := d.src[d.pos]
		switch c {
		case '"':
			d.pos++
			return sb.String(), nil
		case '\\':
			if err := d.parseEscape(&sb); err != nil {
				return "", err
			}
		default:
			sb.WriteByte(c)
			d.pos++
		}
	}
}

// parseEscape decodes one escape sequence whose '\' is at the cursor
// and writes the result to sb
func (d *decoder) parseEscape(sb *strings.Builder) error {
	escStart := d.pos
	d.pos++ // consume '\'
	if d.pos >= len(d.src) {
		return d.syntaxError("unterminated string", escStart)
	}

	switch d.src[d.pos] {
	case '"':
		sb.WriteByte('"')
	case '\\':
		sb.WriteByte('\\')
	case '/':
		sb.WriteByte('/')
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case 'n':
		sb.WriteByte('\n')
	case 'r':
		sb.WriteByte('\r')
	case 't':
		sb.WriteByte('\t')
	case 'u':
		d.pos++ // consume 'u'
		r1, ok := d.parseHexRune()
		if !ok {
			return d.syntaxError("invalid escape sequence", escStart)
		}
		if utf16.IsSurrogate(r1) {
			// A high surrogate may be followed by \uXXXX carrying the
			// low half; combine them into one code point.
			if d.pos+1 < len(d.src) && d.src[d.pos] == '\\' && d.src[d.pos+1] == 'u' {
				save := d.pos
				d.pos += 2
				r2, ok := d.parseHexRune()
				if !ok {
					return d.syntaxError("invalid escape sequence", save)
				}
				if combined := utf16.DecodeRune(r1, r2); combined != 0xFFFD {
					sb.WriteRune(combined)
					return nil
				}
				// Not a valid pair, emit both halves as replacement runes
				sb.WriteRune(r1)
				sb.WriteRune(r2)
				return nil
			}
		}
		sb.WriteRune(r1)
		return nil
	default:
		return d.syntaxError("invalid escape sequence", escStart)
	}

	d.pos++
	return nil
}

// parseHexRune reads exactly four hex digits at the cursor
func (d *decoder) parseHexRune() (rune, bool) {
	if d.pos+4 > len(d.src) {
		return 0, false
	}
	var r rune
	for i := 0; i < 4; i++ {
		c := d.src[d.pos+i]
		if !internal.IsHexDigit(c) {
			return 0, false
		}
		r = r<<4 | rune(internal.HexDigitValue(c))
	}
	d.pos += 4
	return r, true
}

// parseLiteralToken isolates an unquoted literal by scanning to the
// next structural delimiter or whitespace, then classifies it as true,
// false, null, or a number
func (d *decoder) parseLiteralToken() (*Value, error) {
	start := d.pos
	for d.pos < len(d.src) && !isDelimiter(d.src[d.pos]) {
		d.pos++
	}

	lit := d.src[start:d.pos]
	switch lit {
	case "true":
		return NewBool(true), nil
	case "false":
		return NewBool(false), nil
	case "null":
		return NewNull(), nil
	}

	if num, ok := parseNumberLiteral(lit); ok {
		return NewNumber(num), nil
	}

	return nil, d.syntaxError("invalid value", start)
}

// isDelimiter reports whether c terminates an unquoted literal token
func isDelimiter(c byte) bool {
	switch c {
	case ',', ':', '{', '}', '[', ']', '"':
		return true
	}
	return internal.IsSpace(c)
}

// syntaxError builds a SyntaxError for the given absolute byte offset.
// Line and column are 1-based; the column counts bytes since the last
// newline.
func (d *decoder) syntaxError(message string, offset int) error {
	if offset > len(d.src) {
		offset = len(d.src)
	}

	line := 1
	lastNewline := -1
	for i := 0; i < offset; i++ {
		if d.src[i] == '\n' {
			line++
			lastNewline = i
		}
	}

	end := offset + MaxErrorExcerptLength
	if end > len(d.src) {
		end = len(d.src)
	}
	// Never clip in the middle of a multi-byte rune
	for end > offset && end < len(d.src) && d.src[end]&0xC0 == 0x80 {
		end--
	}

	return &SyntaxError{
		Message: message,
		Line:    line,
		Column:  offset - lastNewline,
		Offset:  offset,
		Excerpt: d.src[offset:end],
	}
}
