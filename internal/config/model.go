package config

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/optmap/filemap"
	"github.com/specialistvlad/optmap/kvmap"
	"github.com/specialistvlad/optmap/name"
)

// Model is the unified representation of every loaded option source.
type Model struct {
	Options kvmap.KVMap
	// Sources indexes each loaded file by filename.
	Sources map[string]*filemap.FileMap
	// Origins records where each option was last defined, keyed by the
	// option's canonical name.
	Origins map[string]hcl.Range
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{
		Sources: make(map[string]*filemap.FileMap),
		Origins: make(map[string]hcl.Range),
	}
}

// Define binds key to val and records where it came from. A zero range
// clears any previously recorded origin.
func (m *Model) Define(key name.Name, val kvmap.DataValue, origin hcl.Range) {
	m.Options = m.Options.InsertCore(key, val)
	if origin.Filename == "" {
		delete(m.Origins, key.String())
		return
	}
	m.Origins[key.String()] = origin
}

// Overlay applies every entry of over on top of the model's options.
// Overlaid entries have no file origin.
func (m *Model) Overlay(over kvmap.KVMap) {
	// Apply oldest first so that new keys keep over's relative order.
	entries := over.Entries()
	for i := len(entries) - 1; i >= 0; i-- {
		m.Define(entries[i].Key, entries[i].Value, hcl.Range{})
	}
}

// Origin returns the recorded definition site of key.
func (m *Model) Origin(key name.Name) (hcl.Range, bool) {
	r, ok := m.Origins[key.String()]
	return r, ok
}
