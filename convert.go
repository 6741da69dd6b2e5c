package json

import (
	"fmt"
	"math"
	"sort"
)

// FromAny builds a value tree from ordinary Go values: nil, bool,
// integer and float types, string, []any and map[string]any. Map keys
// are inserted in sorted order so the result is deterministic. Any
// other Go type yields an unsupported-type error.
func FromAny(data any) (*Value, error) {
	switch v := data.(type) {
	case nil:
		return NewNull(), nil
	case bool:
		return NewBool(v), nil
	case int:
		return NewInt(int64(v)), nil
	case int8:
		return NewInt(int64(v)), nil
	case int16:
		return NewInt(int64(v)), nil
	case int32:
		return NewInt(int64(v)), nil
	case int64:
		return NewInt(v), nil
	case uint:
		return NewInt(int64(v)), nil
	case uint8:
		return NewInt(int64(v)), nil
	case uint16:
		return NewInt(int64(v)), nil
	case uint32:
		return NewInt(int64(v)), nil
	case uint64:
		if v > uint64(1)<<63-1 {
			return nil, newUnsupportedTypeError("from_any",
				fmt.Sprintf("uint64 value %d exceeds int64 range", v))
		}
		return NewInt(int64(v)), nil
	case float32:
		return fromFloat(float64(v))
	case float64:
		return fromFloat(v)
	case string:
		return NewString(v), nil
	case Number:
		return NewNumber(v), nil
	case *Value:
		return v, nil
	case []any:
		arr := NewArray()
		for i, elem := range v {
			converted, err := FromAny(elem)
			if err != nil {
				return nil, WrapError(err, "from_any", fmt.Sprintf("at array index %d", i))
			}
			arr.Append(converted)
		}
		return arr, nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		obj := NewObject()
		for _, key := range keys {
			if key == "" {
				return nil, newInvalidKeyError("from_any", "object key must not be empty")
			}
			converted, err := FromAny(v[key])
			if err != nil {
				return nil, WrapError(err, "from_any", fmt.Sprintf("at object key %q", key))
			}
			obj.Set(key, converted)
		}
		return obj, nil
	default:
		return nil, newUnsupportedTypeError("from_any",
			fmt.Sprintf("cannot convert Go type %T", data))
	}
}

// fromFloat builds a float value, rejecting NaN and the infinities
// because JSON cannot express them
func fromFloat(f float64) (*Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, newUnsupportedTypeError("from_any",
			fmt.Sprintf("cannot convert non-finite float %v", f))
	}
	return NewFloat(f), nil
}

// ToAny converts a value tree to ordinary Go values: nil, bool, int64,
// float64, string, []any and map[string]any. Object key order is lost
// in the map form; use AsObject to keep it.
func (v *Value) ToAny() any {
	if v == nil {
		return nil
	}
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindNumber:
		if v.num.isInt {
			return v.num.i
		}
		return v.num.f
	case KindString:
		return v.str
	case KindArray:
		result := make([]any, len(v.arr))
		for i, elem := range v.arr {
			result[i] = elem.ToAny()
		}
		return result
	case KindObject:
		result := make(map[string]any, v.obj.Len())
		v.obj.Range(func(key string, val *Value) bool {
			result[key] = val.ToAny()
			return true
		})
		return result
	default:
		return nil
	}
}
