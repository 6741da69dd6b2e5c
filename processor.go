package json

import (
	"fmt"
	"log/slog"
	"sync/atomic"
)

// Processor states
const (
	stateActive int32 = iota
	stateClosed
)

// Processor is the JSON codec engine. It is safe for concurrent use:
// every Decode/Encode call is self-contained and the processor itself
// holds only configuration and counters.
type Processor struct {
	config *Config
	state  atomic.Int32
	stats  processorStats
	logger *slog.Logger
}

// processorStats tracks operation counters for Stats
type processorStats struct {
	operations atomic.Int64
	errors     atomic.Int64
}

// Stats is a snapshot of a processor's operation counters
type Stats struct {
	Operations int64 // Total Decode/Encode calls
	Errors     int64 // Calls that returned an error
}

// New creates a new JSON processor with the given configuration.
// If no configuration is provided, uses default configuration.
func New(config ...*Config) *Processor {
	var cfg *Config
	if len(config) > 0 && config[0] != nil {
		cfg = config[0].Clone()
	} else {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("invalid configuration: %v", err))
	}

	return &Processor{
		config: cfg,
		logger: slog.Default().With("component", "json-codec"),
	}
}

// Config returns a copy of the processor's configuration
func (p *Processor) Config() *Config {
	return p.config.Clone()
}

// Close marks the processor as closed. Subsequent operations fail with
// ErrProcessorClosed. Closing an already closed processor is a no-op.
func (p *Processor) Close() error {
	p.state.Store(stateClosed)
	return nil
}

// IsClosed reports whether the processor has been closed
func (p *Processor) IsClosed() bool {
	return p.state.Load() == stateClosed
}

// checkClosed returns an error if the processor is closed
func (p *Processor) checkClosed() error {
	if p.IsClosed() {
		return newOperationError("processor", "processor has been closed", ErrProcessorClosed)
	}
	return nil
}

// Stats returns a snapshot of the processor's operation counters
func (p *Processor) Stats() Stats {
	return Stats{
		Operations: p.stats.operations.Load(),
		Errors:     p.stats.errors.Load(),
	}
}

// track records one operation and its outcome for Stats, and logs at
// debug level. The codec performs no other side effects on error.
func (p *Processor) track(op string, err error) {
	p.stats.operations.Add(1)
	if err != nil {
		p.stats.errors.Add(1)
		p.logger.Debug("operation failed", "op", op, "error", err)
	}
}

// Decode parses one JSON document into a value tree. The input is
// either literal JSON text or, when AllowFileInput is set, a filesystem
// path whose contents are used instead; an unreadable path silently
// falls back to treating the argument as literal text.
//
// Decoding is all-or-nothing: on error no partial tree is returned, and
// the error carries line, column and offset context when the input was
// syntactically invalid.
func (p *Processor) Decode(input string) (v *Value, err error) {
	defer func() { p.track("decode", err) }()

	if err = p.checkClosed(); err != nil {
		return nil, err
	}

	text := input
	if p.config.AllowFileInput {
		if contents, ok := readFileInput(input); ok {
			text = contents
		}
	}

	if int64(len(text)) > p.config.MaxJSONSize {
		return nil, newSizeLimitError("decode", int64(len(text)), p.config.MaxJSONSize)
	}

	return newDecoder(text, p.config.MaxNestingDepth).decode()
}

// Valid reports whether the input decodes without error. The same
// file-path convenience as Decode applies.
func (p *Processor) Valid(input string) bool {
	_, err := p.Decode(input)
	return err == nil
}

// Encode serializes a value tree to compact JSON text
func (p *Processor) Encode(v *Value) (string, error) {
	return p.EncodeWithConfig(v, nil)
}

// EncodeIndent serializes a value tree to pretty-printed JSON text with
// indent spaces per nesting level. A negative indent is a configuration
// error.
func (p *Processor) EncodeIndent(v *Value, indent int) (s string, err error) {
	defer func() { p.track("encode_indent", err) }()

	if err = p.checkClosed(); err != nil {
		return "", err
	}

	cfg, err := indentConfig(indent)
	if err != nil {
		return "", err
	}
	return p.encodeWith(v, cfg)
}

// EncodeWithConfig serializes a value tree using the given encoding
// configuration. A nil config yields compact output with default
// escaping.
func (p *Processor) EncodeWithConfig(v *Value, cfg *EncodeConfig) (s string, err error) {
	defer func() { p.track("encode", err) }()

	if err = p.checkClosed(); err != nil {
		return "", err
	}
	return p.encodeWith(v, cfg)
}

func (p *Processor) encodeWith(v *Value, cfg *EncodeConfig) (string, error) {
	enc := newEncoder(cfg)
	defer enc.close()

	result, err := enc.encode(v)
	if err != nil {
		return "", err
	}

	if int64(len(result)) > p.config.MaxJSONSize {
		return "", newSizeLimitError("encode", int64(len(result)), p.config.MaxJSONSize)
	}
	return result, nil
}
