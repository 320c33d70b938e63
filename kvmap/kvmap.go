package kvmap

import (
	"github.com/specialistvlad/optmap/name"
)

// node is one cell of the persistent entry list. Nodes are never modified
// once reachable from a KVMap.
type node struct {
	key  name.Name
	val  DataValue
	next *node
}

// KVMap is an immutable, duplicate-free association list from names to
// values. The zero value is the empty map.
type KVMap struct {
	head *node
}

// Empty returns the empty map.
func Empty() KVMap {
	return KVMap{}
}

// IsEmpty reports whether the map has no entries.
func (m KVMap) IsEmpty() bool {
	return m.head == nil
}

// Size returns the number of entries. It walks the whole list.
func (m KVMap) Size() int {
	n := 0
	for c := m.head; c != nil; c = c.next {
		n++
	}
	return n
}

// FindCore returns the value stored under key. The scan starts at the front
// and stops at the first match.
func (m KVMap) FindCore(key name.Name) (DataValue, bool) {
	for c := m.head; c != nil; c = c.next {
		if c.key.Equal(key) {
			return c.val, true
		}
	}
	return DataValue{}, false
}

// Find is an alias of FindCore.
func (m KVMap) Find(key name.Name) (DataValue, bool) {
	return m.FindCore(key)
}

// FindD returns the value stored under key, or def when it is absent.
func (m KVMap) FindD(key name.Name, def DataValue) DataValue {
	if v, ok := m.FindCore(key); ok {
		return v
	}
	return def
}

// Contains reports whether key has an entry.
func (m KVMap) Contains(key name.Name) bool {
	_, ok := m.FindCore(key)
	return ok
}

// InsertCore returns a map with key bound to val. An existing entry keeps its
// position and gets the new value; a new key is added at the front.
func (m KVMap) InsertCore(key name.Name, val DataValue) KVMap {
	idx := -1
	i := 0
	for c := m.head; c != nil; c = c.next {
		if c.key.Equal(key) {
			idx = i
			break
		}
		i++
	}
	if idx < 0 {
		return KVMap{head: &node{key: key, val: val, next: m.head}}
	}

	// Copy the prefix up to the matching node; share everything after it.
	var head, tail *node
	c := m.head
	for j := 0; j < idx; j++ {
		cp := &node{key: c.key, val: c.val}
		if tail == nil {
			head = cp
		} else {
			tail.next = cp
		}
		tail = cp
		c = c.next
	}
	repl := &node{key: c.key, val: val, next: c.next}
	if tail == nil {
		head = repl
	} else {
		tail.next = repl
	}
	return KVMap{head: head}
}

// Insert is an alias of InsertCore.
func (m KVMap) Insert(key name.Name, val DataValue) KVMap {
	return m.InsertCore(key, val)
}

// SubsetAux reports whether every entry of a is present in b with an equal
// value. It stops at the first entry that does not match.
func SubsetAux(a, b KVMap) bool {
	for c := a.head; c != nil; c = c.next {
		v, ok := b.FindCore(c.key)
		if !ok || !Equal(v, c.val) {
			return false
		}
	}
	return true
}

// Subset is an alias of SubsetAux.
func Subset(a, b KVMap) bool {
	return SubsetAux(a, b)
}

// Eqv reports whether a and b hold the same entries, in any order.
func Eqv(a, b KVMap) bool {
	return SubsetAux(a, b) && SubsetAux(b, a)
}
