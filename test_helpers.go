package json

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

// TestHelper provides utilities for testing codec operations
type TestHelper struct {
	t *testing.T
}

// NewTestHelper creates a new test helper
func NewTestHelper(t *testing.T) *TestHelper {
	return &TestHelper{t: t}
}

// AssertEqual checks if two values are equal
func (h *TestHelper) AssertEqual(expected, actual any, msgAndArgs ...any) {
	h.t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		msg := "Values are not equal"
		if len(msgAndArgs) > 0 {
			msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
		}
		h.t.Errorf("%s\nExpected: %v (%T)\nActual: %v (%T)", msg, expected, expected, actual, actual)
	}
}

// AssertValueEqual checks deep structural equality of two value trees
func (h *TestHelper) AssertValueEqual(expected, actual *Value, msgAndArgs ...any) {
	h.t.Helper()
	if !expected.Equal(actual) {
		msg := "Value trees are not structurally equal"
		if len(msgAndArgs) > 0 {
			msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
		}
		h.t.Errorf("%s\nExpected: %v\nActual: %v", msg, expected, actual)
	}
}

// AssertNoError checks that error is nil
func (h *TestHelper) AssertNoError(err error, msgAndArgs ...any) {
	h.t.Helper()
	if err != nil {
		msg := "Expected no error"
		if len(msgAndArgs) > 0 {
			msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
		}
		h.t.Errorf("%s, but got: %v", msg, err)
	}
}

// AssertError checks that error is not nil
func (h *TestHelper) AssertError(err error, msgAndArgs ...any) {
	h.t.Helper()
	if err == nil {
		msg := "Expected an error"
		if len(msgAndArgs) > 0 {
			msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
		}
		h.t.Error(msg + ", but got nil")
	}
}

// AssertErrorContains checks that error contains specific text
func (h *TestHelper) AssertErrorContains(err error, contains string, msgAndArgs ...any) {
	h.t.Helper()
	if err == nil {
		msg := "Expected an error"
		if len(msgAndArgs) > 0 {
			msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
		}
		h.t.Error(msg + ", but got nil")
		return
	}
	if !strings.Contains(err.Error(), contains) {
		msg := fmt.Sprintf("Expected error to contain '%s'", contains)
		if len(msgAndArgs) > 0 {
			msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
		}
		h.t.Errorf("%s, but got: %v", msg, err)
	}
}

// AssertTrue checks that condition is true
func (h *TestHelper) AssertTrue(condition bool, msgAndArgs ...any) {
	h.t.Helper()
	if !condition {
		msg := "Expected condition to be true"
		if len(msgAndArgs) > 0 {
			msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
		}
		h.t.Error(msg)
	}
}

// AssertFalse checks that condition is false
func (h *TestHelper) AssertFalse(condition bool, msgAndArgs ...any) {
	h.t.Helper()
	if condition {
		msg := "Expected condition to be false"
		if len(msgAndArgs) > 0 {
			msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
		}
		h.t.Error(msg)
	}
}

// mustDecode decodes input or fails the test
func mustDecode(t *testing.T, input string) *Value {
	t.Helper()
	v, err := Decode(input)
	if err != nil {
		t.Fatalf("Decode(%q) failed: %v", input, err)
	}
	return v
}

// mustEncode encodes v compactly or fails the test
func mustEncode(t *testing.T, v *Value) string {
	t.Helper()
	s, err := Encode(v)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	return s
}
