package kvmap

import "github.com/specialistvlad/optmap/name"

// GetString returns the Str payload under key, or def when the key is
// absent or holds another kind.
func (m KVMap) GetString(key name.Name, def string) string {
	if v, ok := m.FindCore(key); ok {
		if s, ok := v.AsString(); ok {
			return s
		}
	}
	return def
}

// GetNat returns the Nat payload under key, or def.
func (m KVMap) GetNat(key name.Name, def uint64) uint64 {
	if v, ok := m.FindCore(key); ok {
		if n, ok := v.AsNat(); ok {
			return n
		}
	}
	return def
}

// GetInt returns the Int payload under key, or def.
func (m KVMap) GetInt(key name.Name, def int64) int64 {
	if v, ok := m.FindCore(key); ok {
		if i, ok := v.AsInt(); ok {
			return i
		}
	}
	return def
}

// GetBool returns the Bool payload under key, or def.
func (m KVMap) GetBool(key name.Name, def bool) bool {
	if v, ok := m.FindCore(key); ok {
		if b, ok := v.AsBool(); ok {
			return b
		}
	}
	return def
}

// GetName returns the Name payload under key, or def.
func (m KVMap) GetName(key name.Name, def name.Name) name.Name {
	if v, ok := m.FindCore(key); ok {
		if n, ok := v.AsName(); ok {
			return n
		}
	}
	return def
}

func (m KVMap) SetString(key name.Name, s string) KVMap {
	return m.InsertCore(key, OfString(s))
}

func (m KVMap) SetNat(key name.Name, n uint64) KVMap {
	return m.InsertCore(key, OfNat(n))
}

func (m KVMap) SetInt(key name.Name, i int64) KVMap {
	return m.InsertCore(key, OfInt(i))
}

func (m KVMap) SetBool(key name.Name, b bool) KVMap {
	return m.InsertCore(key, OfBool(b))
}

func (m KVMap) SetName(key name.Name, n name.Name) KVMap {
	return m.InsertCore(key, OfName(n))
}
