package kvmap

import (
	"strconv"

	"github.com/specialistvlad/optmap/name"
)

// Kind identifies which variant a DataValue holds.
type Kind uint8

const (
	KindString Kind = iota
	KindBool
	KindName
	KindNat
	KindInt
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindName:
		return "name"
	case KindNat:
		return "nat"
	case KindInt:
		return "int"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ParseKind maps a kind name as printed by Kind.String back to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "string":
		return KindString, true
	case "bool":
		return KindBool, true
	case "name":
		return KindName, true
	case "nat":
		return KindNat, true
	case "int":
		return KindInt, true
	}
	return 0, false
}

// DataValue is a tagged union over the five option value kinds. Only the
// payload field matching kind is meaningful. The zero value is the empty
// string.
type DataValue struct {
	kind Kind
	str  string
	flag bool
	nm   name.Name
	nat  uint64
	num  int64
}

func OfString(s string) DataValue { return DataValue{kind: KindString, str: s} }

func OfBool(b bool) DataValue { return DataValue{kind: KindBool, flag: b} }

func OfName(n name.Name) DataValue { return DataValue{kind: KindName, nm: n} }

func OfNat(n uint64) DataValue { return DataValue{kind: KindNat, nat: n} }

func OfInt(i int64) DataValue { return DataValue{kind: KindInt, num: i} }

// Kind returns the variant tag.
func (v DataValue) Kind() Kind {
	return v.kind
}

// AsString unwraps a Str value.
func (v DataValue) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsBool unwraps a Bool value.
func (v DataValue) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.flag, true
}

// AsName unwraps a Name value.
func (v DataValue) AsName() (name.Name, bool) {
	if v.kind != KindName {
		return name.Name{}, false
	}
	return v.nm, true
}

// AsNat unwraps a Nat value.
func (v DataValue) AsNat() (uint64, bool) {
	if v.kind != KindNat {
		return 0, false
	}
	return v.nat, true
}

// AsInt unwraps an Int value.
func (v DataValue) AsInt() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.num, true
}

// BoolOrFalse returns the payload of a Bool value and false for any other kind.
func (v DataValue) BoolOrFalse() bool {
	return v.kind == KindBool && v.flag
}

// Equal reports whether a and b hold the same variant with equal payloads.
func Equal(a, b DataValue) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindString:
		return a.str == b.str
	case KindBool:
		return a.flag == b.flag
	case KindName:
		return a.nm.Equal(b.nm)
	case KindNat:
		return a.nat == b.nat
	case KindInt:
		return a.num == b.num
	}
	return false
}

// Equal is the method form of the package-level Equal.
func (v DataValue) Equal(other DataValue) bool {
	return Equal(v, other)
}

// SameKind reports whether a and b hold the same variant, ignoring payloads.
func SameKind(a, b DataValue) bool {
	return a.kind == b.kind
}

// String renders the payload. Strings are returned verbatim, without quotes.
func (v DataValue) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindBool:
		return strconv.FormatBool(v.flag)
	case KindName:
		return v.nm.String()
	case KindNat:
		return strconv.FormatUint(v.nat, 10)
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	}
	return ""
}
