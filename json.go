// Package json provides an ordered, position-aware JSON codec built
// around an explicit value tree.
//
// Key Features:
//   - Tagged-union Value type with exhaustive, compiler-checked encoding
//   - Objects preserve key insertion order; duplicate keys overwrite in place
//   - Numbers remember whether the source literal was an integer or a float
//   - Syntax errors carry line, column, absolute offset and an input excerpt
//   - Decode accepts literal JSON text or, as a convenience, a file path
//   - Thread-safe concurrent operations with no shared parse state
//
// Basic Usage:
//
//	// Decode JSON text (or a path to a JSON file) into a value tree
//	v, err := json.Decode(`{"user":{"name":"John"},"tags":[1,2]}`)
//
//	// Inspect and mutate the tree
//	name, _ := v.Get("user").Get("name").AsString()
//	v.Set("active", json.NewBool(true))
//
//	// Encode compact or pretty
//	text, err := json.Encode(v)
//	pretty, err := json.EncodeIndent(v, 2)
//
//	// Dedicated processor with custom limits
//	processor := json.New() // Use default config
//	defer processor.Close()
//	v, err = processor.Decode(jsonStr)
package json

import (
	"sync"
	"sync/atomic"
)

var (
	defaultProcessor   atomic.Pointer[Processor]
	defaultProcessorMu sync.Mutex
)

// getDefaultProcessor returns the lazily created global processor,
// replacing it if a previous one was closed
func getDefaultProcessor() *Processor {
	// Fast path: check if processor exists and is not closed
	if p := defaultProcessor.Load(); p != nil && !p.IsClosed() {
		return p
	}

	defaultProcessorMu.Lock()
	defer defaultProcessorMu.Unlock()

	// Double-check after acquiring lock
	if p := defaultProcessor.Load(); p != nil && !p.IsClosed() {
		return p
	}

	p := New()
	defaultProcessor.Store(p)
	return p
}

// SetGlobalProcessor sets a custom global processor (thread-safe)
func SetGlobalProcessor(processor *Processor) {
	if processor == nil {
		return
	}

	defaultProcessorMu.Lock()
	defer defaultProcessorMu.Unlock()

	if old := defaultProcessor.Swap(processor); old != nil {
		old.Close()
	}
}

// ShutdownGlobalProcessor shuts down the global processor
func ShutdownGlobalProcessor() {
	defaultProcessorMu.Lock()
	defer defaultProcessorMu.Unlock()

	if old := defaultProcessor.Swap(nil); old != nil {
		old.Close()
	}
}
