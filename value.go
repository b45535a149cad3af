package jtrim

import (
	"strconv"
	"strings"
)

// Kind discriminates the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInteger
	KindFloat
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
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

// Value is a decoded JSON value. Only the field matching Kind is populated;
// the others hold their zero value. Callers branch on Kind rather than a
// type switch over interface{}.
type Value struct {
	Kind   Kind
	Bool   bool
	Int    int64
	Float  float64
	Str    string
	Arr    []Value
	Obj    *Object
}

// Array returns the element slice, or nil if Kind is not KindArray.
func (v Value) Array() []Value {
	if v.Kind != KindArray {
		return nil
	}
	return v.Arr
}

// Object returns the backing object, or nil if Kind is not KindObject.
func (v Value) Object() *Object {
	if v.Kind != KindObject {
		return nil
	}
	return v.Obj
}

// AsString returns the string payload, or "" if Kind is not KindString.
func (v Value) AsString() string {
	if v.Kind != KindString {
		return ""
	}
	return v.Str
}

// String renders v for diagnostics and satisfies fmt.Stringer, formatting
// every Kind rather than just KindString so %v/%+v stay useful for failure
// messages on non-string values.
func (v Value) String() string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindInteger:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.Str)
	case KindArray:
		parts := make([]string, len(v.Arr))
		for i, e := range v.Arr {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ",") + "]"
	case KindObject:
		if v.Obj == nil {
			return "{}"
		}
		parts := make([]string, 0, len(v.Obj.Map))
		for k, e := range v.Obj.Map {
			parts = append(parts, strconv.Quote(k)+":"+e.String())
		}
		return "{" + strings.Join(parts, ",") + "}"
	default:
		return "invalid"
	}
}

// ObjectEntry is one key/value pair of an order-preserving object decode.
type ObjectEntry struct {
	Key   string
	Value Value
}

// Object holds a decoded JSON object under either duplicate-key policy
// (see DecodeOptions.DuplicateKeys). Under LastKeyWins, Entries is nil and
// Map is the sole source of truth. Under KeepDuplicates, Entries preserves
// source order and all duplicates, and Map still reflects last-key-wins for
// convenient lookup. Both policies share the same object parser, differing
// only in which members get recorded.
type Object struct {
	Map     map[string]Value
	Entries []ObjectEntry
}

// Get looks up key using last-key-wins semantics regardless of the
// decoding policy used to build the Object.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return Value{}, false
	}
	v, ok := o.Map[key]
	return v, ok
}

// Len reports the number of distinct keys (LastKeyWins) or the number of
// recorded entries (KeepDuplicates).
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	if o.Entries != nil {
		return len(o.Entries)
	}
	return len(o.Map)
}
