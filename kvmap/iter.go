package kvmap

import (
	"iter"

	"github.com/specialistvlad/optmap/name"
)

// Step tells ForIn whether to keep folding.
type Step int

const (
	Continue Step = iota
	Stop
)

// Entry is a single key/value pair.
type Entry struct {
	Key   name.Name
	Value DataValue
}

// All returns an iterator over the entries in storage order. The iterator
// can be ranged over any number of times.
func (m KVMap) All() iter.Seq2[name.Name, DataValue] {
	return func(yield func(name.Name, DataValue) bool) {
		for c := m.head; c != nil; c = c.next {
			if !yield(c.key, c.val) {
				return
			}
		}
	}
}

// Keys returns an iterator over the keys in storage order.
func (m KVMap) Keys() iter.Seq[name.Name] {
	return func(yield func(name.Name) bool) {
		for c := m.head; c != nil; c = c.next {
			if !yield(c.key) {
				return
			}
		}
	}
}

// Entries materializes the map as a slice in storage order.
func (m KVMap) Entries() []Entry {
	var out []Entry
	for k, v := range m.All() {
		out = append(out, Entry{Key: k, Value: v})
	}
	return out
}

// ForIn folds f over the entries in storage order, starting from init.
// Folding ends after the first call that returns Stop; the accumulator it
// returned is the result.
func ForIn[A any](m KVMap, init A, f func(key name.Name, val DataValue, acc A) (A, Step)) A {
	acc := init
	for c := m.head; c != nil; c = c.next {
		var step Step
		acc, step = f(c.key, c.val, acc)
		if step == Stop {
			break
		}
	}
	return acc
}
