package json

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/verdaderoken/json/internal"
)

// encoder serializes a Value tree to JSON text according to an
// EncodeConfig. The buffer comes from the shared pool and must be
// released with close.
type encoder struct {
	config *EncodeConfig
	buffer *bytes.Buffer
	depth  int
}

func newEncoder(config *EncodeConfig) *encoder {
	if config == nil {
		config = DefaultEncodeConfig()
	}
	return &encoder{
		config: config,
		buffer: internal.GetEncoderBuffer(),
	}
}

// close releases the encoder's buffer back to the pool
func (e *encoder) close() {
	if e.buffer != nil {
		internal.PutEncoderBuffer(e.buffer)
		e.buffer = nil
	}
}

// encode serializes the value tree and returns the resulting text.
// No trailing newline is emitted.
func (e *encoder) encode(v *Value) (string, error) {
	e.buffer.Reset()
	e.depth = 0

	if err := e.encodeValue(v); err != nil {
		return "", err
	}
	return e.buffer.String(), nil
}

// encodeValue encodes one value recursively. The Kind switch is
// exhaustive over the defined variants; anything else is an
// unsupported-type error rather than a silent stringification.
func (e *encoder) encodeValue(v *Value) error {
	if v == nil {
		return newUnsupportedTypeError("encode", "cannot encode a nil value")
	}

	switch v.kind {
	case KindNull:
		e.buffer.WriteString("null")
	case KindBool:
		if v.b {
			e.buffer.WriteString("true")
		} else {
			e.buffer.WriteString("false")
		}
	case KindNumber:
		if !v.num.IsFinite() {
			return newUnsupportedTypeError("encode",
				fmt.Sprintf("cannot encode non-finite number %v", v.num.f))
		}
		e.buffer.WriteString(v.num.String())
	case KindString:
		e.encodeString(v.str)
	case KindArray:
		return e.encodeArray(v.arr)
	case KindObject:
		return e.encodeObject(v.obj)
	default:
		return newUnsupportedTypeError("encode",
			fmt.Sprintf("cannot encode value of kind %s", v.kind))
	}

	return nil
}

// encodeString writes a quoted, escaped string
func (e *encoder) encodeString(s string) {
	e.buffer.WriteByte('"')
	for _, r := range s {
		e.escapeRune(r)
	}
	e.buffer.WriteByte('"')
}

// escapeRune writes one rune, escaped per the bidirectional table the
// decoder reverses. Code points below 0x100 that are non-printable are
// written as \uXXXX; larger code points pass through raw unless
// EscapeUnicode is set.
func (e *encoder) escapeRune(r rune) {
	switch r {
	case '"':
		e.buffer.WriteString(`\"`)
	case '\\':
		e.buffer.WriteString(`\\`)
	case '/':
		if e.config.EscapeSlash {
			e.buffer.WriteString(`\/`)
		} else {
			e.buffer.WriteByte('/')
		}
	case '\b':
		e.buffer.WriteString(`\b`)
	case '\f':
		e.buffer.WriteString(`\f`)
	case '\n':
		e.buffer.WriteString(`\n`)
	case '\r':
		e.buffer.WriteString(`\r`)
	case '\t':
		e.buffer.WriteString(`\t`)
	default:
		switch {
		case r < 0x20 || (r >= 0x7F && r < 0x100):
			fmt.Fprintf(e.buffer, `\u%04x`, r)
		case e.config.EscapeHTML && (r == '<' || r == '>' || r == '&'):
			fmt.Fprintf(e.buffer, `\u%04x`, r)
		case e.config.EscapeUnicode && r > 0x7F:
			fmt.Fprintf(e.buffer, `\u%04x`, r)
		default:
			e.buffer.WriteRune(r)
		}
	}
}

// encodeArray writes a bracket-delimited element list. A trailing comma
// is never emitted.
func (e *encoder) encodeArray(elems []*Value) error {
	e.buffer.WriteByte('[')
	e.depth++

	for i, elem := range elems {
		if i > 0 {
			e.buffer.WriteByte(',')
		}
		if e.config.Pretty {
			e.writeIndent()
		}
		if err := e.encodeValue(elem); err != nil {
			return err
		}
	}

	e.depth--
	if e.config.Pretty && len(elems) > 0 {
		e.writeIndent()
	}
	e.buffer.WriteByte(']')
	return nil
}

// encodeObject writes a brace-delimited entry list in insertion order,
// or sorted order when SortKeys is set
func (e *encoder) encodeObject(obj *Object) error {
	e.buffer.WriteByte('{')
	e.depth++

	keys := obj.Keys()
	if e.config.SortKeys {
		sort.Strings(keys)
	}

	for i, key := range keys {
		if key == "" {
			return newInvalidKeyError("encode", "object key must not be empty")
		}

		if i > 0 {
			e.buffer.WriteByte(',')
		}
		if e.config.Pretty {
			e.writeIndent()
		}

		e.encodeString(key)
		e.buffer.WriteByte(':')
		if e.config.Pretty {
			e.buffer.WriteByte(' ')
		}

		val, _ := obj.Get(key)
		if err := e.encodeValue(val); err != nil {
			return err
		}
	}

	e.depth--
	if e.config.Pretty && len(keys) > 0 {
		e.writeIndent()
	}
	e.buffer.WriteByte('}')
	return nil
}

// writeIndent writes a newline followed by per-level indentation
func (e *encoder) writeIndent() {
	e.buffer.WriteByte('\n')
	e.buffer.WriteString(e.config.Prefix)
	for i := 0; i < e.depth; i++ {
		e.buffer.WriteString(e.config.Indent)
	}
}
