package hcl_adapter

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/optmap/filemap"
	"github.com/specialistvlad/optmap/internal/config"
	"github.com/specialistvlad/optmap/internal/ctxlog"
	"github.com/specialistvlad/optmap/internal/fsutil"
	"github.com/specialistvlad/optmap/name"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL option loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load finds every .hcl file under paths and merges their options into one
// model, in the order the files are discovered.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := config.NewModel()
	parser := hclparse.NewParser()
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		if err := l.loadSource(ctx, parser, model, file, src); err != nil {
			return nil, err
		}
	}

	logger.Debug("HCL loading complete.", "files", len(files), "options", model.Options.Size())
	return model, nil
}

// LoadSource merges the options of a single in-memory HCL document into model.
func (l *Loader) LoadSource(ctx context.Context, model *config.Model, filename string, src []byte) error {
	return l.loadSource(ctx, hclparse.NewParser(), model, filename, src)
}

func (l *Loader) loadSource(ctx context.Context, parser *hclparse.Parser, model *config.Model, filename string, src []byte) error {
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	body, ok := hclFile.Body.(*hclsyntax.Body)
	if !ok {
		return fmt.Errorf("failed to parse HCL file %s: unexpected body type %T", filename, hclFile.Body)
	}

	sf := sourceFile{name: filename, fm: filemap.OfString(string(src))}
	model.Sources[filename] = sf.fm
	ctx = ctxlog.With(ctx, "file", filename)

	diags = l.flatten(ctx, model, sf, name.Anonymous(), body)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	return nil
}

// bodyItem is an attribute or a block, whichever is set.
type bodyItem struct {
	start int
	attr  *hclsyntax.Attribute
	block *hclsyntax.Block
}

// flatten defines every attribute of body under prefix and recurses into
// nested blocks, in source order.
func (l *Loader) flatten(ctx context.Context, model *config.Model, sf sourceFile, prefix name.Name, body *hclsyntax.Body) hcl.Diagnostics {
	logger := ctxlog.FromContext(ctx)
	var diags hcl.Diagnostics

	items := make([]bodyItem, 0, len(body.Attributes)+len(body.Blocks))
	for _, attr := range body.Attributes {
		items = append(items, bodyItem{start: attr.SrcRange.Start.Byte, attr: attr})
	}
	for _, block := range body.Blocks {
		items = append(items, bodyItem{start: block.TypeRange.Start.Byte, block: block})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].start < items[j].start })

	for _, it := range items {
		if it.attr != nil {
			key := prefix.Append(it.attr.Name)
			val, valDiags := toDataValue(sf, it.attr.Expr)
			diags = append(diags, valDiags...)
			if valDiags.HasErrors() {
				continue
			}
			origin := sf.rangeOf(it.attr.SrcRange)
			model.Define(key, val, *origin)
			logger.Debug("Option defined.", "name", key.String(), "kind", val.Kind().String(), "at", origin.String())
			continue
		}

		key, keyDiags := blockName(sf, prefix, it.block)
		diags = append(diags, keyDiags...)
		if keyDiags.HasErrors() {
			continue
		}
		diags = append(diags, l.flatten(ctx, model, sf, key, it.block.Body)...)
	}
	return diags
}

// blockName extends prefix with the block type and each label. A label may
// itself be a dotted name.
func blockName(sf sourceFile, prefix name.Name, block *hclsyntax.Block) (name.Name, hcl.Diagnostics) {
	key := prefix.Append(block.Type)
	for i, label := range block.Labels {
		n, err := name.Parse(label)
		if err != nil || n.IsAnonymous() {
			detail := fmt.Sprintf("Block label %q is not a valid option name.", label)
			if err != nil {
				detail = fmt.Sprintf("Block label %q is not a valid option name: %s.", label, err)
			}
			return name.Name{}, hcl.Diagnostics{{
				Severity: hcl.DiagError,
				Summary:  "Invalid block label",
				Detail:   detail,
				Subject:  sf.rangeOf(block.LabelRanges[i]),
			}}
		}
		key = key.Append(n.Components()...)
	}
	return key, nil
}
