package kvmap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/optmap/name"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	keyA = name.Must("a")
	keyB = name.Must("b")
	keyC = name.Must("c")
)

func keysOf(m KVMap) []string {
	var out []string
	for k := range m.Keys() {
		out = append(out, k.String())
	}
	return out
}

func TestEmpty(t *testing.T) {
	m := Empty()
	assert.True(t, m.IsEmpty())
	assert.Equal(t, 0, m.Size())
	assert.False(t, m.Contains(keyA))
	_, ok := m.Find(keyA)
	assert.False(t, ok)
	assert.True(t, KVMap{}.IsEmpty(), "zero value is the empty map")
}

func TestInsert_NewKeyIsFoundAndPrepended(t *testing.T) {
	m := Empty().Insert(keyA, OfNat(1))
	m = m.Insert(keyB, OfNat(2))
	m = m.Insert(keyC, OfNat(3))

	require.Equal(t, 3, m.Size())
	assert.Equal(t, []string{"c", "b", "a"}, keysOf(m))

	for _, k := range []name.Name{keyA, keyB, keyC} {
		assert.True(t, m.Contains(k), k.String())
	}
	assert.Equal(t, OfNat(2), m.FindD(keyB, OfNat(0)))
}

func TestInsert_OverwriteKeepsPositionAndSize(t *testing.T) {
	m := Empty().SetNat(keyA, 1).SetNat(keyB, 2).SetNat(keyC, 3)
	before := m.Size()

	testCases := []struct {
		name string
		key  name.Name
	}{
		{name: "front", key: keyC},
		{name: "middle", key: keyB},
		{name: "tail", key: keyA},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			updated := m.InsertCore(tc.key, OfString("new"))
			assert.Equal(t, before, updated.Size())
			assert.Equal(t, []string{"c", "b", "a"}, keysOf(updated))
			assert.Equal(t, OfString("new"), updated.FindD(tc.key, OfNat(0)))
		})
	}
}

func TestInsert_PreviousMapUnchanged(t *testing.T) {
	base := Empty().SetNat(keyA, 1).SetNat(keyB, 2)
	snapshot := base.String()

	_ = base.SetNat(keyA, 100)
	_ = base.SetNat(keyB, 200)
	_ = base.SetNat(keyC, 300)

	assert.Equal(t, snapshot, base.String())
	assert.Equal(t, uint64(1), base.GetNat(keyA, 0))
	assert.Equal(t, uint64(2), base.GetNat(keyB, 0))
	assert.False(t, base.Contains(keyC))
}

func TestInsert_SharesSuffix(t *testing.T) {
	base := Empty().SetNat(keyA, 1).SetNat(keyB, 2).SetNat(keyC, 3)
	updated := base.SetNat(keyB, 20)

	// c is copied, b replaced, a shared.
	assert.NotSame(t, base.head, updated.head)
	assert.Same(t, base.head.next.next, updated.head.next.next)
}

func TestFindD(t *testing.T) {
	m := Empty().SetString(keyA, "x")
	assert.Equal(t, OfString("x"), m.FindD(keyA, OfBool(false)))
	assert.Equal(t, OfBool(false), m.FindD(keyB, OfBool(false)))
}

func TestTypedAccessors(t *testing.T) {
	m := Empty().
		SetString(name.Must("s"), "hi").
		SetNat(name.Must("n"), 8).
		SetInt(name.Must("i"), -8).
		SetBool(name.Must("b"), true).
		SetName(name.Must("nm"), name.Must("pp.all"))

	assert.Equal(t, "hi", m.GetString(name.Must("s"), "d"))
	assert.Equal(t, uint64(8), m.GetNat(name.Must("n"), 0))
	assert.Equal(t, int64(-8), m.GetInt(name.Must("i"), 0))
	assert.True(t, m.GetBool(name.Must("b"), false))
	assert.Equal(t, "pp.all", m.GetName(name.Must("nm"), name.Anonymous()).String())

	t.Run("missing key returns default", func(t *testing.T) {
		assert.Equal(t, "d", m.GetString(name.Must("missing"), "d"))
		assert.Equal(t, uint64(7), m.GetNat(name.Must("missing"), 7))
		assert.Equal(t, int64(-7), m.GetInt(name.Must("missing"), -7))
		assert.True(t, m.GetBool(name.Must("missing"), true))
		assert.True(t, m.GetName(name.Must("missing"), name.Anonymous()).IsAnonymous())
	})

	t.Run("kind mismatch returns default", func(t *testing.T) {
		x := name.Must("x")
		assert.Equal(t, uint64(7), Empty().SetString(x, "hi").GetNat(x, 7))
		assert.Equal(t, int64(3), Empty().SetNat(x, 5).GetInt(x, 3))
		assert.Equal(t, uint64(3), Empty().SetInt(x, 5).GetNat(x, 3))
		assert.Equal(t, "d", Empty().SetName(x, name.Must("s")).GetString(x, "d"))
		assert.False(t, Empty().SetString(x, "true").GetBool(x, false))
	})
}

func TestSubsetAndEqv(t *testing.T) {
	one := Empty().InsertCore(keyA, OfNat(1))
	two := Empty().InsertCore(keyB, OfNat(2)).InsertCore(keyA, OfNat(1))

	testCases := []struct {
		name          string
		a, b          KVMap
		subset, eqv   bool
		reverseSubset bool
	}{
		{name: "empty vs empty", a: Empty(), b: Empty(), subset: true, reverseSubset: true, eqv: true},
		{name: "empty vs non-empty", a: Empty(), b: one, subset: true, reverseSubset: false, eqv: false},
		{name: "missing key on one side", a: one, b: two, subset: true, reverseSubset: false, eqv: false},
		{
			name:          "same entries different order",
			a:             Empty().SetNat(keyA, 1).SetBool(keyB, true),
			b:             Empty().SetBool(keyB, true).SetNat(keyA, 1),
			subset:        true,
			reverseSubset: true,
			eqv:           true,
		},
		{
			name:          "same keys different value",
			a:             Empty().SetNat(keyA, 1),
			b:             Empty().SetNat(keyA, 2),
			subset:        false,
			reverseSubset: false,
			eqv:           false,
		},
		{
			name:          "same number different kind",
			a:             Empty().SetNat(keyA, 1),
			b:             Empty().SetInt(keyA, 1),
			subset:        false,
			reverseSubset: false,
			eqv:           false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.subset, Subset(tc.a, tc.b))
			assert.Equal(t, tc.reverseSubset, SubsetAux(tc.b, tc.a))
			assert.Equal(t, tc.eqv, Eqv(tc.a, tc.b))
			assert.Equal(t, tc.eqv, Eqv(tc.b, tc.a))
		})
	}
}

func TestEqv_Reflexive(t *testing.T) {
	maps := []KVMap{
		Empty(),
		Empty().SetNat(keyA, 1),
		Empty().SetString(keyA, "x").SetInt(keyB, -3).SetName(keyC, name.Must("q.r")),
	}
	for _, m := range maps {
		assert.True(t, Eqv(m, m), m.String())
	}
}

func TestEntries(t *testing.T) {
	m := Empty().SetNat(keyA, 1).SetString(keyB, "two")

	want := []Entry{
		{Key: keyB, Value: OfString("two")},
		{Key: keyA, Value: OfNat(1)},
	}
	if diff := cmp.Diff(want, m.Entries()); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, Empty().Entries())
}
