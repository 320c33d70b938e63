package kvmap

import "github.com/specialistvlad/optmap/name"

// Value is the set of Go types that have a DataValue variant.
type Value interface {
	string | bool | name.Name | uint64 | int64
}

// DefaultOf returns the default payload for T: "", false, the anonymous
// name, or 0.
func DefaultOf[T Value]() T {
	var zero T
	return zero
}

// OfValue wraps v in the matching DataValue variant.
func OfValue[T Value](v T) DataValue {
	switch x := any(v).(type) {
	case string:
		return OfString(x)
	case bool:
		return OfBool(x)
	case name.Name:
		return OfName(x)
	case uint64:
		return OfNat(x)
	case int64:
		return OfInt(x)
	}
	return DataValue{}
}

// As unwraps v when it holds the variant matching T.
func As[T Value](v DataValue) (T, bool) {
	var zero T
	var got any
	var ok bool
	switch any(zero).(type) {
	case string:
		got, ok = v.AsString()
	case bool:
		got, ok = v.AsBool()
	case name.Name:
		got, ok = v.AsName()
	case uint64:
		got, ok = v.AsNat()
	case int64:
		got, ok = v.AsInt()
	}
	if !ok {
		return zero, false
	}
	return got.(T), true
}

// Get looks up key and unwraps it as T, returning def when the key is
// absent or holds another kind.
func Get[T Value](m KVMap, key name.Name, def T) T {
	v, ok := m.FindCore(key)
	if !ok {
		return def
	}
	if out, ok := As[T](v); ok {
		return out
	}
	return def
}

// Set binds key to v wrapped in its DataValue variant.
func Set[T Value](m KVMap, key name.Name, v T) KVMap {
	return m.InsertCore(key, OfValue(v))
}
