// Package envsource reads options from environment variables and parses
// option values given as plain text.
//
// A variable named PREFIX + `PP__WIDTH` defines the option `pp.width`:
// the prefix is stripped, `__` separates name components and components are
// lowercased.
package envsource

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/specialistvlad/optmap/internal/ctxlog"
	"github.com/specialistvlad/optmap/kvmap"
	"github.com/specialistvlad/optmap/name"
)

// componentSep separates name components inside a variable name.
const componentSep = "__"

// Load collects every variable in environ (KEY=VALUE pairs, as returned by
// os.Environ) whose key starts with prefix. Variables that do not form a
// valid option name are skipped with a warning. An empty prefix disables
// the source.
func Load(ctx context.Context, prefix string, environ []string) kvmap.KVMap {
	logger := ctxlog.FromContext(ctx)
	m := kvmap.Empty()
	if prefix == "" {
		return m
	}

	for _, e := range environ {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) != 2 || !strings.HasPrefix(pair[0], prefix) {
			continue
		}
		key, err := KeyFor(strings.TrimPrefix(pair[0], prefix))
		if err != nil {
			logger.Warn("Skipping environment variable.", "variable", pair[0], "error", err)
			continue
		}
		val := Infer(pair[1])
		m = m.InsertCore(key, val)
		logger.Debug("Option read from environment.", "variable", pair[0], "name", key.String(), "kind", val.Kind().String())
	}
	return m
}

// KeyFor converts the part of a variable name after the prefix into an
// option name.
func KeyFor(rest string) (name.Name, error) {
	if rest == "" {
		return name.Name{}, fmt.Errorf("variable has no name after the prefix")
	}
	parts := strings.Split(strings.ToLower(rest), componentSep)
	return name.Parse(strings.Join(parts, "."))
}

// Infer picks the most specific kind for raw: Bool for `true`/`false`, Nat
// for unsigned decimals, Int for negative decimals, Str otherwise.
func Infer(raw string) kvmap.DataValue {
	switch raw {
	case "true":
		return kvmap.OfBool(true)
	case "false":
		return kvmap.OfBool(false)
	}
	if n, err := strconv.ParseUint(raw, 10, 64); err == nil {
		return kvmap.OfNat(n)
	}
	if strings.HasPrefix(raw, "-") {
		if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return kvmap.OfInt(i)
		}
	}
	return kvmap.OfString(raw)
}

// ParseAs parses raw as a value of the given kind.
func ParseAs(kind kvmap.Kind, raw string) (kvmap.DataValue, error) {
	switch kind {
	case kvmap.KindString:
		return kvmap.OfString(raw), nil
	case kvmap.KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return kvmap.DataValue{}, fmt.Errorf("invalid bool %q: %w", raw, err)
		}
		return kvmap.OfBool(b), nil
	case kvmap.KindName:
		n, err := name.Parse(raw)
		if err != nil {
			return kvmap.DataValue{}, err
		}
		return kvmap.OfName(n), nil
	case kvmap.KindNat:
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return kvmap.DataValue{}, fmt.Errorf("invalid nat %q: %w", raw, err)
		}
		return kvmap.OfNat(n), nil
	case kvmap.KindInt:
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return kvmap.DataValue{}, fmt.Errorf("invalid int %q: %w", raw, err)
		}
		return kvmap.OfInt(i), nil
	}
	return kvmap.DataValue{}, fmt.Errorf("unknown kind %s", kind)
}
