package json

import "strings"

// Config controls processor-wide limits and input handling
type Config struct {
	MaxJSONSize     int64 // Maximum input/output size in bytes
	MaxNestingDepth int   // Maximum container nesting depth during decoding
	AllowFileInput  bool  // Treat a readable path argument to Decode as a file
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		MaxJSONSize:     DefaultMaxJSONSize,
		MaxNestingDepth: DefaultMaxNestingDepth,
		AllowFileInput:  true,
	}
}

// Validate validates configuration values and applies corrections
func (c *Config) Validate() error {
	if c == nil {
		return newOperationError("validate_config", "config cannot be nil", ErrInvalidConfig)
	}

	// Apply defaults for invalid values
	if c.MaxJSONSize <= 0 {
		c.MaxJSONSize = DefaultMaxJSONSize
	}
	if c.MaxNestingDepth <= 0 {
		c.MaxNestingDepth = DefaultMaxNestingDepth
	}

	return nil
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	if c == nil {
		return DefaultConfig()
	}
	clone := *c
	return &clone
}

// EncodeConfig controls output formatting and escaping
type EncodeConfig struct {
	Pretty        bool   // Insert newlines and indentation
	Indent        string // Indentation unit when Pretty is set
	Prefix        string // Prefix written before each indented line
	SortKeys      bool   // Emit object keys in sorted order instead of insertion order
	EscapeSlash   bool   // Escape '/' as '\/' for embedding in HTML/script contexts
	EscapeHTML    bool   // Escape '<', '>' and '&' as \uXXXX
	EscapeUnicode bool   // Escape all code points above 0x7F as \uXXXX
}

// DefaultEncodeConfig returns default encoding configuration.
// Slash escaping is on by default so that compact output can be embedded
// in script contexts unchanged.
func DefaultEncodeConfig() *EncodeConfig {
	return &EncodeConfig{
		Pretty:        false,
		Indent:        "  ",
		Prefix:        "",
		SortKeys:      false,
		EscapeSlash:   true,
		EscapeHTML:    false,
		EscapeUnicode: false,
	}
}

// NewPrettyConfig returns configuration for pretty-printed JSON
func NewPrettyConfig() *EncodeConfig {
	cfg := DefaultEncodeConfig()
	cfg.Pretty = true
	return cfg
}

// indentConfig builds an EncodeConfig for an indent measured in spaces.
// A negative indent is a configuration error; zero requests pretty
// layout with no indentation, matching an explicit indent of 0.
func indentConfig(indent int) (*EncodeConfig, error) {
	if indent < 0 {
		return nil, newOperationError("encode", "indent cannot be negative", ErrInvalidConfig)
	}
	cfg := DefaultEncodeConfig()
	cfg.Pretty = true
	cfg.Indent = strings.Repeat(" ", indent)
	return cfg, nil
}
