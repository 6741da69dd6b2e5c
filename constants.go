package json

const (
	// Operation Limits
	DefaultMaxJSONSize     = 10 * 1024 * 1024
	DefaultMaxNestingDepth = 100

	// Decoder input handling
	MaxFilePathLength = 4096

	// Error reporting
	MaxErrorExcerptLength = 20
)

// Error codes for machine-readable error identification
const (
	ErrCodeInvalidJSON     = "ERR_INVALID_JSON"
	ErrCodeUnsupportedType = "ERR_UNSUPPORTED_TYPE"
	ErrCodeInvalidKey      = "ERR_INVALID_KEY"
	ErrCodeInvalidConfig   = "ERR_INVALID_CONFIG"
	ErrCodeSizeLimit       = "ERR_SIZE_LIMIT"
	ErrCodeDepthLimit      = "ERR_DEPTH_LIMIT"
	ErrCodeProcessorClosed = "ERR_PROCESSOR_CLOSED"
	ErrCodeUnknown         = "ERR_UNKNOWN"
)
