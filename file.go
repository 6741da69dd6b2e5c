package json

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// readFileInput implements the Decode path convenience: if the argument
// plausibly names a readable regular file, its contents are returned.
// Every failure reports ok=false so the caller falls back to treating
// the argument as literal JSON text; this path never returns an error.
func readFileInput(input string) (contents string, ok bool) {
	if input == "" || len(input) > MaxFilePathLength {
		return "", false
	}
	// A path cannot contain NUL or newlines; skipping these avoids
	// pointless stat calls on obvious JSON text.
	if strings.ContainsAny(input, "\x00\n\r") {
		return "", false
	}

	info, err := os.Stat(input)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// DecodeFile parses the JSON document stored in the file at path. Unlike
// Decode, a missing or unreadable file is an error here, not a fallback.
func (p *Processor) DecodeFile(path string) (v *Value, err error) {
	defer func() { p.track("decode_file", err) }()

	if err = p.checkClosed(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &CodecError{
			Op:      "decode_file",
			Message: fmt.Sprintf("failed to read file %s", path),
			Err:     fmt.Errorf("read file error: %w", err),
		}
	}

	if int64(len(data)) > p.config.MaxJSONSize {
		return nil, newSizeLimitError("decode_file", int64(len(data)), p.config.MaxJSONSize)
	}

	return newDecoder(string(data), p.config.MaxNestingDepth).decode()
}

// DecodeReader parses one JSON document from an io.Reader. Reading is
// capped at the configured MaxJSONSize.
func (p *Processor) DecodeReader(reader io.Reader) (v *Value, err error) {
	defer func() { p.track("decode_reader", err) }()

	if err = p.checkClosed(); err != nil {
		return nil, err
	}

	// Read one byte past the limit so truncation is detectable
	limited := io.LimitReader(reader, p.config.MaxJSONSize+1)
	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, &CodecError{
			Op:      "decode_reader",
			Message: "failed to read from reader",
			Err:     fmt.Errorf("reader error: %w", err),
		}
	}

	if int64(len(data)) > p.config.MaxJSONSize {
		return nil, newSizeLimitError("decode_reader", int64(len(data)), p.config.MaxJSONSize)
	}

	return newDecoder(string(data), p.config.MaxNestingDepth).decode()
}

// EncodeTo serializes a value tree and writes the text to w. A nil
// config yields compact output.
func (p *Processor) EncodeTo(w io.Writer, v *Value, cfg *EncodeConfig) (err error) {
	defer func() { p.track("encode_to", err) }()

	if err = p.checkClosed(); err != nil {
		return err
	}

	result, err := p.encodeWith(v, cfg)
	if err != nil {
		return err
	}

	if _, err = io.WriteString(w, result); err != nil {
		return &CodecError{
			Op:      "encode_to",
			Message: "failed to write encoded output",
			Err:     fmt.Errorf("write error: %w", err),
		}
	}
	return nil
}

// SaveToFile serializes a value tree and writes it to the file at path,
// creating or truncating it. Pretty output uses the default two-space
// indentation.
func (p *Processor) SaveToFile(path string, v *Value, pretty bool) (err error) {
	defer func() { p.track("save_to_file", err) }()

	if err = p.checkClosed(); err != nil {
		return err
	}

	cfg := DefaultEncodeConfig()
	cfg.Pretty = pretty

	result, err := p.encodeWith(v, cfg)
	if err != nil {
		return err
	}

	if err = os.WriteFile(path, []byte(result), 0o644); err != nil {
		return &CodecError{
			Op:      "save_to_file",
			Message: fmt.Sprintf("failed to write file %s", path),
			Err:     fmt.Errorf("write file error: %w", err),
		}
	}
	return nil
}
