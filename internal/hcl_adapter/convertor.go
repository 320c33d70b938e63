package hcl_adapter

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/optmap/filemap"
	"github.com/specialistvlad/optmap/kvmap"
	"github.com/specialistvlad/optmap/name"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// sourceFile pairs a filename with its line index so diagnostics can be
// positioned from byte offsets.
type sourceFile struct {
	name string
	fm   *filemap.FileMap
}

// rangeOf re-derives r's line and column from its byte offsets.
func (sf sourceFile) rangeOf(r hcl.Range) *hcl.Range {
	out := sf.fm.Range(sf.name, r.Start.Byte, r.End.Byte)
	return &out
}

func unsupported(sf sourceFile, expr hcl.Expression, detail string) hcl.Diagnostics {
	return hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  "Unsupported option value",
		Detail:   detail,
		Subject:  sf.rangeOf(expr.Range()),
	}}
}

// toDataValue converts an attribute expression into an option value. A bare
// reference such as `pp.all` becomes a Name; literals map to Str, Bool, Nat
// (whole numbers >= 0) or Int (negative whole numbers).
func toDataValue(sf sourceFile, expr hclsyntax.Expression) (kvmap.DataValue, hcl.Diagnostics) {
	// Checked by type: LiteralValueExpr also answers AsTraversal for true,
	// false and null.
	if st, ok := expr.(*hclsyntax.ScopeTraversalExpr); ok {
		return traversalToName(sf, expr, st.Traversal)
	}

	v, diags := expr.Value(nil)
	if diags.HasErrors() {
		return kvmap.DataValue{}, diags
	}
	if v.IsNull() {
		return kvmap.DataValue{}, unsupported(sf, expr, "Options cannot be null.")
	}

	switch v.Type() {
	case cty.String:
		return kvmap.OfString(v.AsString()), nil
	case cty.Bool:
		return kvmap.OfBool(v.True()), nil
	case cty.Number:
		if !v.AsBigFloat().IsInt() {
			return kvmap.DataValue{}, unsupported(sf, expr, fmt.Sprintf("Numeric options must be whole numbers, got %s.", v.AsBigFloat().String()))
		}
		if v.AsBigFloat().Sign() < 0 {
			var i int64
			if err := gocty.FromCtyValue(v, &i); err != nil {
				return kvmap.DataValue{}, unsupported(sf, expr, fmt.Sprintf("Value out of range for int: %s.", err))
			}
			return kvmap.OfInt(i), nil
		}
		var n uint64
		if err := gocty.FromCtyValue(v, &n); err != nil {
			return kvmap.DataValue{}, unsupported(sf, expr, fmt.Sprintf("Value out of range for nat: %s.", err))
		}
		return kvmap.OfNat(n), nil
	default:
		return kvmap.DataValue{}, unsupported(sf, expr, fmt.Sprintf("Values of type %s cannot be stored as options.", v.Type().FriendlyName()))
	}
}

func traversalToName(sf sourceFile, expr hcl.Expression, trav hcl.Traversal) (kvmap.DataValue, hcl.Diagnostics) {
	parts := make([]string, 0, len(trav))
	for _, step := range trav {
		switch s := step.(type) {
		case hcl.TraverseRoot:
			parts = append(parts, s.Name)
		case hcl.TraverseAttr:
			parts = append(parts, s.Name)
		default:
			return kvmap.DataValue{}, unsupported(sf, expr, "Name values may only use attribute access, e.g. pp.all.")
		}
	}
	return kvmap.OfName(name.New(parts...)), nil
}

// ToCtyValue converts an option value into its cty equivalent. Names are
// represented by their canonical string.
func ToCtyValue(v kvmap.DataValue) (cty.Value, error) {
	switch v.Kind() {
	case kvmap.KindString:
		s, _ := v.AsString()
		return cty.StringVal(s), nil
	case kvmap.KindBool:
		b, _ := v.AsBool()
		return cty.BoolVal(b), nil
	case kvmap.KindName:
		n, _ := v.AsName()
		return cty.StringVal(n.String()), nil
	case kvmap.KindNat:
		n, _ := v.AsNat()
		return gocty.ToCtyValue(n, cty.Number)
	case kvmap.KindInt:
		i, _ := v.AsInt()
		return gocty.ToCtyValue(i, cty.Number)
	}
	return cty.NilVal, fmt.Errorf("unknown option kind %s", v.Kind())
}

// OptionsToCty converts a whole map into a cty object keyed by canonical
// option names.
func OptionsToCty(m kvmap.KVMap) (cty.Value, error) {
	if m.IsEmpty() {
		return cty.EmptyObjectVal, nil
	}
	attrs := make(map[string]cty.Value)
	for k, v := range m.All() {
		cv, err := ToCtyValue(v)
		if err != nil {
			return cty.NilVal, fmt.Errorf("option %s: %w", k, err)
		}
		attrs[k.String()] = cv
	}
	return cty.ObjectVal(attrs), nil
}

// MarshalJSON renders a map as a JSON object with keys in lexical order.
func MarshalJSON(m kvmap.KVMap) ([]byte, error) {
	obj, err := OptionsToCty(m)
	if err != nil {
		return nil, err
	}
	return ctyjson.Marshal(obj, obj.Type())
}
