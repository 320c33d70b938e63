package envsource

import (
	"context"
	"testing"

	"github.com/specialistvlad/optmap/kvmap"
	"github.com/specialistvlad/optmap/name"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	environ := []string{
		"HOME=/root",
		"OPTMAP_PP__WIDTH=120",
		"OPTMAP_PP__UNICODE=true",
		"OPTMAP_MAX_REC_DEPTH=-1",
		"OPTMAP_TITLE=hello=world",
		"OPTMAP_BAD____NAME=1",
		"OPTMAP_=x",
	}

	m := Load(context.Background(), "OPTMAP_", environ)

	assert.Equal(t, 4, m.Size())
	assert.Equal(t, uint64(120), m.GetNat(name.Must("pp.width"), 0))
	assert.True(t, m.GetBool(name.Must("pp.unicode"), false))
	assert.Equal(t, int64(-1), m.GetInt(name.Must("max_rec_depth"), 0))
	assert.Equal(t, "hello=world", m.GetString(name.Must("title"), ""))
}

func TestLoad_EmptyPrefixDisables(t *testing.T) {
	m := Load(context.Background(), "", []string{"PP__WIDTH=1"})
	assert.True(t, m.IsEmpty())
}

func TestInfer(t *testing.T) {
	testCases := []struct {
		raw      string
		expected kvmap.DataValue
	}{
		{raw: "true", expected: kvmap.OfBool(true)},
		{raw: "false", expected: kvmap.OfBool(false)},
		{raw: "True", expected: kvmap.OfString("True")},
		{raw: "0", expected: kvmap.OfNat(0)},
		{raw: "42", expected: kvmap.OfNat(42)},
		{raw: "-42", expected: kvmap.OfInt(-42)},
		{raw: "-", expected: kvmap.OfString("-")},
		{raw: "1.5", expected: kvmap.OfString("1.5")},
		{raw: "", expected: kvmap.OfString("")},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			assert.True(t, kvmap.Equal(tc.expected, Infer(tc.raw)), "got %v", Infer(tc.raw))
		})
	}
}

func TestParseAs(t *testing.T) {
	testCases := []struct {
		name      string
		kind      kvmap.Kind
		raw       string
		expected  kvmap.DataValue
		expectErr bool
	}{
		{name: "string keeps digits", kind: kvmap.KindString, raw: "12", expected: kvmap.OfString("12")},
		{name: "bool", kind: kvmap.KindBool, raw: "true", expected: kvmap.OfBool(true)},
		{name: "name", kind: kvmap.KindName, raw: "pp.all", expected: kvmap.OfName(name.Must("pp.all"))},
		{name: "nat", kind: kvmap.KindNat, raw: "9", expected: kvmap.OfNat(9)},
		{name: "int", kind: kvmap.KindInt, raw: "-9", expected: kvmap.OfInt(-9)},
		{name: "error - negative nat", kind: kvmap.KindNat, raw: "-9", expectErr: true},
		{name: "error - bad bool", kind: kvmap.KindBool, raw: "maybe", expectErr: true},
		{name: "error - bad name", kind: kvmap.KindName, raw: "a..b", expectErr: true},
		{name: "error - unknown kind", kind: kvmap.Kind(42), raw: "x", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAs(tc.kind, tc.raw)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, kvmap.Equal(tc.expected, got))
		})
	}
}
