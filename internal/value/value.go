// Package value implements the dynamically typed, JSON-shaped data model
// that expressions evaluate to: null, boolean, signed/unsigned 64-bit
// integers, double, string, ordered array, and insertion-order-preserving
// object.
//
// Value intentionally avoids interface{}/any for its payload so that the
// evaluator can switch on a small Kind enum instead of type-asserting,
// mirroring how go-dws's jsonvalue.Value keeps the interpreter's hot path
// type-safe.
package value

import (
	"bytes"
	"encoding/json"
)

// Kind identifies which alternative of the Value sum type is populated.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt64
	KindUint64
	KindFloat64
	KindString
	KindArray
	KindObject
)

// String returns a human-readable name for the kind, used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt64:
		return "int"
	case KindUint64:
		return "uint"
	case KindFloat64:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a single node of the data model. Values are cheap to pass
// around: scalar payloads are stored inline and array/object payloads are
// backed by slices/maps that callers are expected to treat as owned by the
// Value once constructed (Clone performs the only deep copy this package
// needs).
type Value struct {
	kind Kind

	b   bool
	i64 int64
	u64 uint64
	f64 float64
	str string

	arr []*Value

	objEntries map[string]*Value
	objKeys    []string // insertion order
}

// Null returns the JSON null value. The zero Value is also null, so this
// constructor exists mainly for readability at call sites.
func Null() *Value { return &Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) *Value { return &Value{kind: KindBool, b: b} }

// Int64 returns a signed 64-bit integer value.
func Int64(n int64) *Value { return &Value{kind: KindInt64, i64: n} }

// Uint64 returns an unsigned 64-bit integer value.
func Uint64(n uint64) *Value { return &Value{kind: KindUint64, u64: n} }

// Float64 returns a double-precision floating point value.
func Float64(f float64) *Value { return &Value{kind: KindFloat64, f64: f} }

// String returns a string value.
func String(s string) *Value { return &Value{kind: KindString, str: s} }

// NewArray returns an array value wrapping the given elements. The slice is
// taken by reference; pass a copy if the caller must keep mutating it.
func NewArray(elems []*Value) *Value {
	if elems == nil {
		elems = []*Value{}
	}
	return &Value{kind: KindArray, arr: elems}
}

// NewObject returns an empty object value ready for ObjectSet calls.
func NewObject() *Value {
	return &Value{kind: KindObject, objEntries: map[string]*Value{}, objKeys: []string{}}
}

// Kind reports which alternative of the sum type v holds. A nil receiver is
// treated as null so callers don't need nil checks before dispatching.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull reports whether v is null (including a nil *Value).
func (v *Value) IsNull() bool { return v.Kind() == KindNull }

// Bool returns the boolean payload, or false if v is not a KindBool.
func (v *Value) Bool() bool {
	if v.Kind() != KindBool {
		return false
	}
	return v.b
}

// Str returns the string payload, or "" if v is not a KindString.
func (v *Value) Str() string {
	if v.Kind() != KindString {
		return ""
	}
	return v.str
}

// ArrayElements returns the array payload, or nil if v is not a KindArray.
// The returned slice aliases v's storage and must not be mutated.
func (v *Value) ArrayElements() []*Value {
	if v.Kind() != KindArray {
		return nil
	}
	return v.arr
}

// ArrayGet returns the element at index, or nil if v is not an array or the
// index is out of bounds.
func (v *Value) ArrayGet(index int) *Value {
	if v.Kind() != KindArray || index < 0 || index >= len(v.arr) {
		return nil
	}
	return v.arr[index]
}

// ArrayLen returns the number of elements, or 0 if v is not an array.
func (v *Value) ArrayLen() int {
	if v.Kind() != KindArray {
		return 0
	}
	return len(v.arr)
}

// ObjectGet returns the value stored under key, or nil if v is not an
// object or the key is absent.
func (v *Value) ObjectGet(key string) *Value {
	if v.Kind() != KindObject {
		return nil
	}
	return v.objEntries[key]
}

// ObjectSet inserts or replaces key, preserving insertion order for new keys.
func (v *Value) ObjectSet(key string, child *Value) {
	if v.Kind() != KindObject {
		return
	}
	if _, exists := v.objEntries[key]; !exists {
		v.objKeys = append(v.objKeys, key)
	}
	v.objEntries[key] = child
}

// ObjectKeys returns the object's keys in insertion order, or nil if v is
// not an object.
func (v *Value) ObjectKeys() []string {
	if v.Kind() != KindObject {
		return nil
	}
	keys := make([]string, len(v.objKeys))
	copy(keys, v.objKeys)
	return keys
}

// ObjectLen returns the number of entries, or 0 if v is not an object.
func (v *Value) ObjectLen() int {
	if v.Kind() != KindObject {
		return 0
	}
	return len(v.objEntries)
}

// IsNumeric reports whether v holds one of the three numeric subtypes.
func (v *Value) IsNumeric() bool {
	switch v.Kind() {
	case KindInt64, KindUint64, KindFloat64:
		return true
	default:
		return false
	}
}

// Float64Value coerces any numeric kind to a float64. It panics if v is not
// numeric; callers must check IsNumeric (or Kind) first.
func (v *Value) Float64Value() float64 {
	switch v.Kind() {
	case KindInt64:
		return float64(v.i64)
	case KindUint64:
		return float64(v.u64)
	case KindFloat64:
		return v.f64
	default:
		panic("value: Float64Value on non-numeric Value")
	}
}

// AsIndex returns v's integer payload for use as an array index. Only
// Int64 and Uint64 kinds qualify — a Float64, even an integral one, is
// rejected, matching the grammar's distinction between an index
// expression and a general numeric value.
func (v *Value) AsIndex() (int, bool) {
	switch v.Kind() {
	case KindInt64:
		return int(v.i64), true
	case KindUint64:
		return int(v.u64), true
	default:
		return 0, false
	}
}

// Clone returns a deep copy of v so that a caller can keep mutating the
// original (e.g. a context entry) without affecting a value handed out by
// the evaluator.
func (v *Value) Clone() *Value {
	if v == nil {
		return Null()
	}
	switch v.kind {
	case KindArray:
		elems := make([]*Value, len(v.arr))
		for i, e := range v.arr {
			elems[i] = e.Clone()
		}
		return NewArray(elems)
	case KindObject:
		out := NewObject()
		for _, k := range v.objKeys {
			out.ObjectSet(k, v.objEntries[k].Clone())
		}
		return out
	default:
		cp := *v
		return &cp
	}
}

// MarshalJSON implements json.Marshaler so a Value tree can be serialized
// directly with encoding/json, e.g. by the CLI's --pretty output path.
func (v *Value) MarshalJSON() ([]byte, error) {
	if v == nil || v.kind == KindNull {
		return []byte("null"), nil
	}
	switch v.kind {
	case KindBool:
		if v.b {
			return []byte("true"), nil
		}
		return []byte("false"), nil
	case KindInt64:
		return json.Marshal(v.i64)
	case KindUint64:
		return json.Marshal(v.u64)
	case KindFloat64:
		return json.Marshal(v.f64)
	case KindString:
		return json.Marshal(v.str)
	case KindArray:
		return json.Marshal(v.arr)
	case KindObject:
		// json.Marshal on a map always sorts keys alphabetically, which
		// would silently discard insertion order; build the object
		// manually from objKeys instead.
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, k := range v.objKeys {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(k)
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			val, err := json.Marshal(v.objEntries[k])
			if err != nil {
				return nil, err
			}
			buf.Write(val)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	default:
		return []byte("null"), nil
	}
}

// FromAny converts a generic decoded-JSON tree (as produced by
// encoding/json, gjson, or goccy/go-yaml's generic decode) into a Value.
// Numbers decoded as float64 that have no fractional part and fit in
// int64 are kept as KindFloat64. This package has no integer-preserving
// JSON decoder; pkg/xpr's ContextFromJSON gets one by reading numeric
// literals directly from the source text.
func FromAny(v any) *Value {
	switch t := v.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case float64:
		return Float64(t)
	case int:
		return Int64(int64(t))
	case int64:
		return Int64(t)
	case uint64:
		return Uint64(t)
	case []any:
		elems := make([]*Value, len(t))
		for i, e := range t {
			elems[i] = FromAny(e)
		}
		return NewArray(elems)
	case map[string]any:
		obj := NewObject()
		for k, e := range t {
			obj.ObjectSet(k, FromAny(e))
		}
		return obj
	default:
		return Null()
	}
}
