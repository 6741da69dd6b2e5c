package json

import (
	"errors"
	"math"
	"sync"
	"testing"
)

// roundTripSamples covers every variant and several shapes of nesting
var roundTripSamples = []string{
	`null`,
	`true`,
	`false`,
	`0`,
	`-42`,
	`1.5`,
	`"hello"`,
	`""`,
	`"with \"escapes\" and \n breaks"`,
	`[]`,
	`{}`,
	`[1,2,3]`,
	`[1,"two",3.5,true,null]`,
	`{"a":1}`,
	`{"z":1,"m":{"nested":[1,{"deep":null}]},"a":"last"}`,
	`[[[[1]]]]`,
	`{"mixed":[1,{"k":"v"},[true,false]],"tail":2.5}`,
}

// TestRoundTrip verifies Decode(Encode(v)) is structurally equal to v
func TestRoundTrip(t *testing.T) {
	helper := NewTestHelper(t)

	for _, sample := range roundTripSamples {
		v := mustDecode(t, sample)
		encoded := mustEncode(t, v)
		reparsed := mustDecode(t, encoded)
		helper.AssertValueEqual(v, reparsed, "round-trip failed for %s", sample)
	}
}

// TestCompactIdempotence verifies Encode(Decode(Encode(v))) is
// byte-identical to Encode(v)
func TestCompactIdempotence(t *testing.T) {
	helper := NewTestHelper(t)

	for _, sample := range roundTripSamples {
		v := mustDecode(t, sample)
		first := mustEncode(t, v)
		second := mustEncode(t, mustDecode(t, first))
		helper.AssertEqual(first, second, "compact encoding not idempotent for %s", sample)
	}
}

// TestPrettyRoundTrip verifies indented output decodes to the same tree
func TestPrettyRoundTrip(t *testing.T) {
	helper := NewTestHelper(t)

	for _, sample := range roundTripSamples {
		v := mustDecode(t, sample)
		pretty, err := EncodeIndent(v, 2)
		helper.AssertNoError(err)
		helper.AssertValueEqual(v, mustDecode(t, pretty), "pretty round-trip failed for %s", sample)
	}
}

// TestAliases tests the Parse/Stringify naming conveniences
func TestAliases(t *testing.T) {
	helper := NewTestHelper(t)

	v, err := Parse(`{"a":1}`)
	helper.AssertNoError(err)

	s, err := Stringify(v)
	helper.AssertNoError(err)
	helper.AssertEqual(`{"a":1}`, s)
}

// TestValid tests the validation helper
func TestValid(t *testing.T) {
	helper := NewTestHelper(t)

	helper.AssertTrue(Valid(`{"a":[1,2]}`))
	helper.AssertTrue(Valid(`null`))
	helper.AssertFalse(Valid(`{"a":`))
	helper.AssertFalse(Valid(``))
	helper.AssertFalse(Valid(`{"a":1} trailing`))
}

// TestProcessorLifecycle tests Close semantics and stats
func TestProcessorLifecycle(t *testing.T) {
	helper := NewTestHelper(t)

	t.Run("ClosedProcessorRejectsOperations", func(t *testing.T) {
		p := New()
		helper.AssertFalse(p.IsClosed())
		helper.AssertNoError(p.Close())
		helper.AssertTrue(p.IsClosed())

		_, err := p.Decode(`1`)
		helper.AssertTrue(errors.Is(err, ErrProcessorClosed))

		_, err = p.Encode(NewNull())
		helper.AssertTrue(errors.Is(err, ErrProcessorClosed))

		// Closing twice is a no-op
		helper.AssertNoError(p.Close())
	})

	t.Run("StatsCountOperationsAndErrors", func(t *testing.T) {
		p := New()
		defer p.Close()

		p.Decode(`1`)
		p.Decode(`{bad`)
		p.Encode(NewInt(1))

		stats := p.Stats()
		helper.AssertEqual(int64(3), stats.Operations)
		helper.AssertEqual(int64(1), stats.Errors)
	})

	t.Run("ConfigIsCopied", func(t *testing.T) {
		cfg := DefaultConfig()
		p := New(cfg)
		defer p.Close()

		cfg.MaxNestingDepth = 1
		_, err := p.Decode(`[[1]]`)
		helper.AssertNoError(err, "mutating the caller's config must not affect the processor")
	})
}

// TestGlobalProcessor tests the lazily created default processor
func TestGlobalProcessor(t *testing.T) {
	helper := NewTestHelper(t)

	t.Run("ReplacedAfterShutdown", func(t *testing.T) {
		ShutdownGlobalProcessor()
		v, err := Decode(`1`)
		helper.AssertNoError(err)
		helper.AssertEqual(KindNumber, v.Kind())
	})

	t.Run("SetGlobalProcessor", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MaxNestingDepth = 2
		SetGlobalProcessor(New(cfg))
		defer ShutdownGlobalProcessor()

		_, err := Decode(`[[[1]]]`)
		helper.AssertTrue(errors.Is(err, ErrDepthLimit))
	})
}

// TestConcurrentUse exercises the codec from many goroutines; every
// call is self-contained so no locking is involved
func TestConcurrentUse(t *testing.T) {
	const workers = 16
	const iterations = 50

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				sample := roundTripSamples[(worker+j)%len(roundTripSamples)]
				v, err := Decode(sample)
				if err != nil {
					t.Errorf("worker %d: Decode(%q): %v", worker, sample, err)
					return
				}
				if _, err := Encode(v); err != nil {
					t.Errorf("worker %d: Encode: %v", worker, err)
					return
				}
			}
		}(i)
	}
	wg.Wait()
}

// TestFromAny tests building trees from ordinary Go values
func TestFromAny(t *testing.T) {
	helper := NewTestHelper(t)

	t.Run("Scalars", func(t *testing.T) {
		v, err := FromAny(nil)
		helper.AssertNoError(err)
		helper.AssertTrue(v.IsNull())

		v, _ = FromAny(true)
		b, _ := v.AsBool()
		helper.AssertTrue(b)

		v, _ = FromAny(42)
		n, _ := v.AsNumber()
		helper.AssertTrue(n.IsInt())

		v, _ = FromAny(1.5)
		n, _ = v.AsNumber()
		helper.AssertFalse(n.IsInt())

		v, _ = FromAny("s")
		s, _ := v.AsString()
		helper.AssertEqual("s", s)
	})

	t.Run("Containers", func(t *testing.T) {
		v, err := FromAny(map[string]any{
			"b": []any{1, "two"},
			"a": nil,
		})
		helper.AssertNoError(err)

		// Map keys are inserted in sorted order for determinism
		obj, _ := v.AsObject()
		helper.AssertEqual([]string{"a", "b"}, obj.Keys())
		helper.AssertEqual(`{"a":null,"b":[1,"two"]}`, mustEncode(t, v))
	})

	t.Run("UnsupportedType", func(t *testing.T) {
		_, err := FromAny(make(chan int))
		helper.AssertTrue(errors.Is(err, ErrUnsupportedType))

		_, err = FromAny([]any{struct{}{}})
		helper.AssertTrue(errors.Is(err, ErrUnsupportedType))
	})

	t.Run("NonFiniteFloats", func(t *testing.T) {
		for _, f := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
			_, err := FromAny(f)
			helper.AssertError(err, "converting float %v must fail", f)
			helper.AssertTrue(errors.Is(err, ErrUnsupportedType))
		}

		_, err := FromAny(float32(math.Inf(1)))
		helper.AssertTrue(errors.Is(err, ErrUnsupportedType))
	})

	t.Run("EmptyMapKey", func(t *testing.T) {
		_, err := FromAny(map[string]any{"": 1})
		helper.AssertTrue(errors.Is(err, ErrInvalidKey))
	})
}

// TestToAny tests flattening trees to ordinary Go values
func TestToAny(t *testing.T) {
	helper := NewTestHelper(t)

	v := mustDecode(t, `{"a":[1,2.5],"b":"s","c":null,"d":true}`)
	flat, ok := v.ToAny().(map[string]any)
	helper.AssertTrue(ok)

	arr, ok := flat["a"].([]any)
	helper.AssertTrue(ok)
	helper.AssertEqual(int64(1), arr[0])
	helper.AssertEqual(2.5, arr[1])
	helper.AssertEqual("s", flat["b"])
	helper.AssertTrue(flat["c"] == nil)
	helper.AssertEqual(true, flat["d"])
}

// TestFromAnyToAnyRoundTrip ensures the bridge preserves structure
func TestFromAnyToAnyRoundTrip(t *testing.T) {
	helper := NewTestHelper(t)

	original := map[string]any{
		"name":  "test",
		"count": 3,
		"ratio": 0.5,
		"tags":  []any{"a", "b"},
	}

	v, err := FromAny(original)
	helper.AssertNoError(err)

	back, ok := v.ToAny().(map[string]any)
	helper.AssertTrue(ok)
	helper.AssertEqual("test", back["name"])
	helper.AssertEqual(int64(3), back["count"])
	helper.AssertEqual(0.5, back["ratio"])
}
