package json

import (
	"errors"
	"math"
	"strings"
	"testing"
)

// TestEncodeScalars tests compact encoding of scalar values
func TestEncodeScalars(t *testing.T) {
	helper := NewTestHelper(t)

	helper.AssertEqual("null", mustEncode(t, NewNull()))
	helper.AssertEqual("true", mustEncode(t, NewBool(true)))
	helper.AssertEqual("false", mustEncode(t, NewBool(false)))
	helper.AssertEqual("42", mustEncode(t, NewInt(42)))
	helper.AssertEqual("-7", mustEncode(t, NewInt(-7)))
	helper.AssertEqual("1.5", mustEncode(t, NewFloat(1.5)))
	helper.AssertEqual("2.0", mustEncode(t, NewFloat(2)))
	helper.AssertEqual(`"hello"`, mustEncode(t, NewString("hello")))
	helper.AssertEqual(`""`, mustEncode(t, NewString("")))
}

// TestEncodeCompact tests that compact output carries no whitespace
func TestEncodeCompact(t *testing.T) {
	helper := NewTestHelper(t)

	obj := NewObject()
	obj.Set("a", NewInt(1))
	obj.Set("b", NewArray(NewInt(2), NewInt(3)))

	result := mustEncode(t, obj)
	helper.AssertEqual(`{"a":1,"b":[2,3]}`, result)
	helper.AssertFalse(strings.ContainsAny(result, " \n\t"))
}

// TestEncodeEscaping tests the encoder side of the escape table
func TestEncodeEscaping(t *testing.T) {
	helper := NewTestHelper(t)

	t.Run("ControlCharacters", func(t *testing.T) {
		result := mustEncode(t, NewString("A\n\t"))
		helper.AssertEqual(`"A\n\t"`, result)
	})

	t.Run("FullEscapeTable", func(t *testing.T) {
		result := mustEncode(t, NewString("\" \\ \b \f \n \r \t"))
		helper.AssertEqual(`"\" \\ \b \f \n \r \t"`, result)
	})

	t.Run("SlashEscapedByDefault", func(t *testing.T) {
		result := mustEncode(t, NewString("a/b"))
		helper.AssertEqual(`"a\/b"`, result)
	})

	t.Run("SlashEscapingDisabled", func(t *testing.T) {
		cfg := DefaultEncodeConfig()
		cfg.EscapeSlash = false
		result, err := EncodeWithConfig(NewString("a/b"), cfg)
		helper.AssertNoError(err)
		helper.AssertEqual(`"a/b"`, result)
	})

	t.Run("NonPrintableBelow0x100", func(t *testing.T) {
		result := mustEncode(t, NewString("\u0001"))
		helper.AssertEqual(`"\u0001"`, result)

		result = mustEncode(t, NewString("é"))
		helper.AssertEqual(`"\u00e9"`, result)
	})

	t.Run("WideRunesPassThroughRaw", func(t *testing.T) {
		result := mustEncode(t, NewString("中文"))
		helper.AssertEqual(`"中文"`, result)
	})

	t.Run("EscapeUnicodeOption", func(t *testing.T) {
		cfg := DefaultEncodeConfig()
		cfg.EscapeUnicode = true
		result, err := EncodeWithConfig(NewString("中"), cfg)
		helper.AssertNoError(err)
		helper.AssertEqual(`"\u4e2d"`, result)
	})

	t.Run("EscapeHTMLOption", func(t *testing.T) {
		cfg := DefaultEncodeConfig()
		cfg.EscapeHTML = true
		result, err := EncodeWithConfig(NewString("<b>&</b>"), cfg)
		helper.AssertNoError(err)
		helper.AssertEqual(`"\u003cb\u003e\u0026\u003c\/b\u003e"`, result)
	})
}

// TestEncodeIndent tests pretty-printing layout
func TestEncodeIndent(t *testing.T) {
	helper := NewTestHelper(t)

	t.Run("NestedStructure", func(t *testing.T) {
		v := mustDecode(t, `[1,[2,3],{"k":[4,5]}]`)
		result, err := EncodeIndent(v, 2)
		helper.AssertNoError(err)

		expected := strings.Join([]string{
			"[",
			"  1,",
			"  [",
			"    2,",
			"    3",
			"  ],",
			"  {",
			`    "k": [`,
			"      4,",
			"      5",
			"    ]",
			"  }",
			"]",
		}, "\n")
		helper.AssertEqual(expected, result)
	})

	t.Run("ObjectLayout", func(t *testing.T) {
		obj := NewObject()
		obj.Set("name", NewString("test"))
		obj.Set("count", NewInt(3))

		result, err := EncodeIndent(obj, 4)
		helper.AssertNoError(err)
		expected := "{\n    \"name\": \"test\",\n    \"count\": 3\n}"
		helper.AssertEqual(expected, result)
	})

	t.Run("NoTrailingNewline", func(t *testing.T) {
		result, err := EncodeIndent(mustDecode(t, `[1]`), 2)
		helper.AssertNoError(err)
		helper.AssertFalse(strings.HasSuffix(result, "\n"))
	})

	t.Run("EmptyContainersStayFlat", func(t *testing.T) {
		result, err := EncodeIndent(NewArray(), 2)
		helper.AssertNoError(err)
		helper.AssertEqual("[]", result)

		result, err = EncodeIndent(NewObject(), 2)
		helper.AssertNoError(err)
		helper.AssertEqual("{}", result)
	})

	t.Run("ZeroIndent", func(t *testing.T) {
		result, err := EncodeIndent(mustDecode(t, `[1,2]`), 0)
		helper.AssertNoError(err)
		helper.AssertEqual("[\n1,\n2\n]", result)
	})

	t.Run("NegativeIndentIsConfigError", func(t *testing.T) {
		_, err := EncodeIndent(NewArray(), -1)
		helper.AssertError(err)
		helper.AssertTrue(errors.Is(err, ErrInvalidConfig))
	})
}

// TestEncodeSortKeys tests the SortKeys configuration option
func TestEncodeSortKeys(t *testing.T) {
	helper := NewTestHelper(t)

	obj := NewObject()
	obj.Set("z", NewInt(1))
	obj.Set("a", NewInt(2))

	// Insertion order by default
	helper.AssertEqual(`{"z":1,"a":2}`, mustEncode(t, obj))

	cfg := DefaultEncodeConfig()
	cfg.SortKeys = true
	result, err := EncodeWithConfig(obj, cfg)
	helper.AssertNoError(err)
	helper.AssertEqual(`{"a":2,"z":1}`, result)
}

// TestEncodeErrors tests the encoder's error taxonomy
func TestEncodeErrors(t *testing.T) {
	helper := NewTestHelper(t)

	t.Run("NilValue", func(t *testing.T) {
		_, err := Encode(nil)
		helper.AssertError(err)
		helper.AssertTrue(errors.Is(err, ErrUnsupportedType))
	})

	t.Run("InvalidKind", func(t *testing.T) {
		_, err := Encode(&Value{})
		helper.AssertError(err)
		helper.AssertTrue(errors.Is(err, ErrUnsupportedType))
	})

	t.Run("InvalidKindNested", func(t *testing.T) {
		arr := NewArray(NewInt(1), &Value{})
		_, err := Encode(arr)
		helper.AssertError(err)
		helper.AssertTrue(errors.Is(err, ErrUnsupportedType))
	})

	t.Run("EmptyObjectKey", func(t *testing.T) {
		obj := NewObject()
		obj.Set("", NewInt(1))
		_, err := Encode(obj)
		helper.AssertError(err)
		helper.AssertTrue(errors.Is(err, ErrInvalidKey))
	})

	t.Run("NonFiniteFloats", func(t *testing.T) {
		for _, f := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
			_, err := Encode(NewFloat(f))
			helper.AssertError(err, "encoding float %v must fail", f)
			helper.AssertTrue(errors.Is(err, ErrUnsupportedType))
		}

		arr := NewArray(NewInt(1), NewFloat(math.NaN()))
		_, err := Encode(arr)
		helper.AssertError(err)
		helper.AssertTrue(errors.Is(err, ErrUnsupportedType))
	})

	t.Run("SizeLimit", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MaxJSONSize = 8
		p := New(cfg)
		defer p.Close()

		_, err := p.Encode(NewString(strings.Repeat("x", 32)))
		helper.AssertError(err)
		helper.AssertTrue(errors.Is(err, ErrSizeLimit))
	})
}

// TestEncodeKeyEscaping ensures keys travel through the same escaping
// path as string values
func TestEncodeKeyEscaping(t *testing.T) {
	helper := NewTestHelper(t)

	obj := NewObject()
	obj.Set("a\"b", NewInt(1))
	result := mustEncode(t, obj)
	helper.AssertEqual(`{"a\"b":1}`, result)

	// And it decodes back to the same key
	v := mustDecode(t, result)
	n, _ := v.Get("a\"b").AsNumber()
	helper.AssertEqual(int64(1), n.Int64())
}
