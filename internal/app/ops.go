package app

import (
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/optmap/filemap"
	"github.com/specialistvlad/optmap/internal/envsource"
	"github.com/specialistvlad/optmap/internal/hcl_adapter"
	"github.com/specialistvlad/optmap/kvmap"
	"github.com/specialistvlad/optmap/name"
)

// Show prints the merged options of paths.
func (a *App) Show(ctx context.Context, paths ...string) error {
	model, err := a.LoadOptions(ctx, paths...)
	if err != nil {
		return err
	}

	if a.config.OutputFormat == "json" {
		out, err := hcl_adapter.MarshalJSON(model.Options)
		if err != nil {
			return fmt.Errorf("failed to render options: %w", err)
		}
		_, err = fmt.Fprintln(a.outW, string(out))
		return err
	}
	_, err = fmt.Fprintln(a.outW, model.Options.String())
	return err
}

// Get prints the value of key as kind, or the default when the option is
// missing or holds another kind. An empty rawDefault means the kind's own
// default.
func (a *App) Get(ctx context.Context, paths []string, key name.Name, kind kvmap.Kind, rawDefault string) error {
	def := zeroOf(kind)
	if rawDefault != "" {
		parsed, err := envsource.ParseAs(kind, rawDefault)
		if err != nil {
			return fmt.Errorf("invalid default: %w", err)
		}
		def = parsed
	}

	model, err := a.LoadOptions(ctx, paths...)
	if err != nil {
		return err
	}

	opts := model.Options
	var out kvmap.DataValue
	switch kind {
	case kvmap.KindString:
		s, _ := def.AsString()
		out = kvmap.OfString(opts.GetString(key, s))
	case kvmap.KindBool:
		b, _ := def.AsBool()
		out = kvmap.OfBool(opts.GetBool(key, b))
	case kvmap.KindName:
		n, _ := def.AsName()
		out = kvmap.OfName(opts.GetName(key, n))
	case kvmap.KindNat:
		n, _ := def.AsNat()
		out = kvmap.OfNat(opts.GetNat(key, n))
	case kvmap.KindInt:
		i, _ := def.AsInt()
		out = kvmap.OfInt(opts.GetInt(key, i))
	default:
		return fmt.Errorf("unknown kind %s", kind)
	}

	if stored, ok := opts.Find(key); !ok {
		a.logger.Debug("Option not set, using default.", "name", key.String())
	} else if !kvmap.SameKind(stored, def) {
		a.logger.Warn("Option has a different kind, using default.", "name", key.String(), "stored", stored.Kind().String(), "requested", kind.String())
	} else if origin, ok := model.Origin(key); ok {
		a.logger.Debug("Option found.", "name", key.String(), "at", origin.String())
	}

	_, err = fmt.Fprintln(a.outW, out.String())
	return err
}

// zeroOf returns the default payload of kind wrapped as a value.
func zeroOf(kind kvmap.Kind) kvmap.DataValue {
	switch kind {
	case kvmap.KindBool:
		return kvmap.OfValue(kvmap.DefaultOf[bool]())
	case kvmap.KindName:
		return kvmap.OfValue(kvmap.DefaultOf[name.Name]())
	case kvmap.KindNat:
		return kvmap.OfValue(kvmap.DefaultOf[uint64]())
	case kvmap.KindInt:
		return kvmap.OfValue(kvmap.DefaultOf[int64]())
	}
	return kvmap.OfValue(kvmap.DefaultOf[string]())
}

// Compare loads two option sets and prints how they relate.
func (a *App) Compare(ctx context.Context, left, right []string) (Relation, error) {
	l, err := a.LoadOptions(ctx, left...)
	if err != nil {
		return Different, err
	}
	r, err := a.LoadOptions(ctx, right...)
	if err != nil {
		return Different, err
	}

	rel := Relate(l.Options, r.Options)
	if rel != Equivalent {
		for k, v := range l.Options.All() {
			if other, ok := r.Options.Find(k); !ok || !kvmap.Equal(v, other) {
				a.logger.Info("Option differs.", "name", k.String(), "left", v.String(), "right", other.String(), "right_set", ok)
			}
		}
	}

	_, err = fmt.Fprintln(a.outW, rel.String())
	return rel, err
}

// Locate prints `file:line:column` for each byte offset into file.
func (a *App) Locate(ctx context.Context, file string, offsets []int) error {
	src, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}

	fm := filemap.OfString(string(src))
	a.logger.Debug("Line index built.", "file", file, "lines", fm.LineCount())

	for _, off := range offsets {
		if off > len(src) {
			a.logger.Warn("Offset past end of file.", "offset", off, "size", len(src))
		}
		p := fm.ToPosition(off)
		if _, err := fmt.Fprintf(a.outW, "%s:%d:%d\n", file, p.Line, p.Column); err != nil {
			return err
		}
	}
	return nil
}
