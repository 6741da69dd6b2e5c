package json

// Kind identifies which variant of the JSON value union a Value holds.
// The zero Kind is KindInvalid so that an uninitialized Value is never
// mistaken for a valid document node.
type Kind int

const (
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns a human-readable name for the kind
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Value is the tagged-union in-memory representation of one JSON document
// or sub-document. A Value is created by the decoder or by the New*
// constructors and belongs exclusively to whichever caller holds it;
// the codec keeps no references after a call returns.
type Value struct {
	kind Kind
	b    bool
	num  Number
	str  string
	arr  []*Value
	obj  *Object
}

// NewNull returns the null value
func NewNull() *Value {
	return &Value{kind: KindNull}
}

// NewBool returns a boolean value
func NewBool(b bool) *Value {
	return &Value{kind: KindBool, b: b}
}

// NewInt returns an integer-typed number value
func NewInt(i int64) *Value {
	return &Value{kind: KindNumber, num: IntNumber(i)}
}

// NewFloat returns a float-typed number value
func NewFloat(f float64) *Value {
	return &Value{kind: KindNumber, num: FloatNumber(f)}
}

// NewNumber returns a number value from an existing Number
func NewNumber(n Number) *Value {
	return &Value{kind: KindNumber, num: n}
}

// NewString returns a string value
func NewString(s string) *Value {
	return &Value{kind: KindString, str: s}
}

// NewArray returns an array value holding the given elements in order
func NewArray(elems ...*Value) *Value {
	arr := make([]*Value, len(elems))
	copy(arr, elems)
	return &Value{kind: KindArray, arr: arr}
}

// NewObject returns an empty object value
func NewObject() *Value {
	return &Value{kind: KindObject, obj: newObject()}
}

// Kind reports which variant the value holds
func (v *Value) Kind() Kind {
	if v == nil {
		return KindInvalid
	}
	return v.kind
}

// IsNull reports whether the value is the JSON null
func (v *Value) IsNull() bool {
	return v != nil && v.kind == KindNull
}

// AsBool returns the boolean payload and whether the value is a boolean
func (v *Value) AsBool() (bool, bool) {
	if v == nil || v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsNumber returns the number payload and whether the value is a number
func (v *Value) AsNumber() (Number, bool) {
	if v == nil || v.kind != KindNumber {
		return Number{}, false
	}
	return v.num, true
}

// AsString returns the string payload and whether the value is a string
func (v *Value) AsString() (string, bool) {
	if v == nil || v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsArray returns the element slice and whether the value is an array.
// The slice is the value's own backing storage, not a copy.
func (v *Value) AsArray() ([]*Value, bool) {
	if v == nil || v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

// AsObject returns the ordered object and whether the value is an object
func (v *Value) AsObject() (*Object, bool) {
	if v == nil || v.kind != KindObject {
		return nil, false
	}
	return v.obj, true
}

// Len returns the element count for arrays and the entry count for
// objects, and 0 for every other kind
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return v.obj.Len()
	default:
		return 0
	}
}

// Index returns the i-th array element, or nil if the value is not an
// array or the index is out of range
func (v *Value) Index(i int) *Value {
	if v == nil || v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return nil
	}
	return v.arr[i]
}

// Append adds elements to an array value. It is a no-op on other kinds.
func (v *Value) Append(elems ...*Value) {
	if v == nil || v.kind != KindArray {
		return
	}
	v.arr = append(v.arr, elems...)
}

// Get returns the value bound to key in an object value, or nil if the
// value is not an object or the key is absent
func (v *Value) Get(key string) *Value {
	if v == nil || v.kind != KindObject {
		return nil
	}
	val, _ := v.obj.Get(key)
	return val
}

// Set binds key to val in an object value, overwriting an existing
// binding in place. It is a no-op on other kinds.
func (v *Value) Set(key string, val *Value) {
	if v == nil || v.kind != KindObject {
		return
	}
	v.obj.Set(key, val)
}

// Equal reports deep structural equality: same kind, same scalar
// payloads, same array order, same object keys in the same order with
// equal per-key values. Numbers compare distinguishably, so the integer
// 1 and the float 1.0 are not equal.
func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindNumber:
		return v.num.Equal(other.num)
	case KindString:
		return v.str == other.str
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return v.obj.equal(other.obj)
	default:
		return false
	}
}

// Clone returns a deep copy of the value tree
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	switch v.kind {
	case KindArray:
		arr := make([]*Value, len(v.arr))
		for i, elem := range v.arr {
			arr[i] = elem.Clone()
		}
		return &Value{kind: KindArray, arr: arr}
	case KindObject:
		clone := NewObject()
		for _, key := range v.obj.keys {
			clone.obj.Set(key, v.obj.values[key].Clone())
		}
		return clone
	default:
		c := *v
		return &c
	}
}

// String returns the compact JSON encoding of the value for debugging.
// Invalid values render as "<invalid>".
func (v *Value) String() string {
	s, err := Encode(v)
	if err != nil {
		return "<invalid>"
	}
	return s
}

// MarshalJSON implements json.Marshaler using the compact encoder
func (v *Value) MarshalJSON() ([]byte, error) {
	s, err := Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalJSON implements json.Unmarshaler using the decoder.
// The data is always treated as literal JSON text, never as a path.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := decodeLiteral(string(data))
	if err != nil {
		return err
	}
	*v = *parsed
	return nil
}

// Object is an insertion-ordered mapping from string keys to values.
// Keys are unique; setting an existing key overwrites its value while
// keeping the key's original position.
type Object struct {
	keys   []string
	values map[string]*Value
}

func newObject() *Object {
	return &Object{
		values: make(map[string]*Value, 8),
	}
}

// Len returns the number of entries
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Get returns the value bound to key and whether the key is present
func (o *Object) Get(key string) (*Value, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether the key is present
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Set binds key to val. An existing key is overwritten in place; a new
// key is appended after all current keys.
func (o *Object) Set(key string, val *Value) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = val
}

// Delete removes the key and reports whether it was present
func (o *Object) Delete(key string) bool {
	if o == nil {
		return false
	}
	if _, exists := o.values[key]; !exists {
		return false
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return true
}

// Range calls fn for each entry in insertion order until fn returns false
func (o *Object) Range(fn func(key string, val *Value) bool) {
	if o == nil {
		return
	}
	for _, key := range o.keys {
		if !fn(key, o.values[key]) {
			return
		}
	}
}

func (o *Object) equal(other *Object) bool {
	if o.Len() != other.Len() {
		return false
	}
	for i, key := range o.keys {
		if other.keys[i] != key {
			return false
		}
		if !o.values[key].Equal(other.values[key]) {
			return false
		}
	}
	return true
}
