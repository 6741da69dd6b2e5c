package json

import "io"

// Package-level API delegating to the lazily created global processor.
// All functions are safe for concurrent use.

// Decode parses one JSON document into a value tree. The input is
// literal JSON text or a path to a readable file containing one; an
// unreadable path falls back to literal text without error.
func Decode(input string) (*Value, error) {
	return getDefaultProcessor().Decode(input)
}

// DecodeFile parses the JSON document stored in the file at path
func DecodeFile(path string) (*Value, error) {
	return getDefaultProcessor().DecodeFile(path)
}

// DecodeReader parses one JSON document from an io.Reader
func DecodeReader(reader io.Reader) (*Value, error) {
	return getDefaultProcessor().DecodeReader(reader)
}

// Encode serializes a value tree to compact JSON text
func Encode(v *Value) (string, error) {
	return getDefaultProcessor().Encode(v)
}

// EncodeIndent serializes a value tree with indent spaces per nesting
// level. A negative indent is a configuration error.
func EncodeIndent(v *Value, indent int) (string, error) {
	return getDefaultProcessor().EncodeIndent(v, indent)
}

// EncodeWithConfig serializes a value tree using cfg; nil means compact
func EncodeWithConfig(v *Value, cfg *EncodeConfig) (string, error) {
	return getDefaultProcessor().EncodeWithConfig(v, cfg)
}

// EncodeTo serializes a value tree and writes the text to w
func EncodeTo(w io.Writer, v *Value, cfg *EncodeConfig) error {
	return getDefaultProcessor().EncodeTo(w, v, cfg)
}

// SaveToFile serializes a value tree to the file at path
func SaveToFile(path string, v *Value, pretty bool) error {
	return getDefaultProcessor().SaveToFile(path, v, pretty)
}

// Valid reports whether the input decodes without error
func Valid(input string) bool {
	return getDefaultProcessor().Valid(input)
}

// Parse is an ecosystem-familiar alias for Decode
func Parse(input string) (*Value, error) {
	return Decode(input)
}

// Stringify is an ecosystem-familiar alias for Encode
func Stringify(v *Value) (string, error) {
	return Encode(v)
}
