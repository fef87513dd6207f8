package gridfile

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/icebergs/grid"
)

var (
	// ErrNoGrids indicates a document without any grid block.
	ErrNoGrids = errors.New("gridfile: document has no grid blocks")
	// ErrLayoutAndShape indicates a block that mixes layout with rows/columns/icebergs.
	ErrLayoutAndShape = errors.New("gridfile: layout cannot be combined with rows, columns or icebergs")
	// ErrMissingShape indicates a block with neither layout nor rows+columns.
	ErrMissingShape = errors.New("gridfile: grid needs either layout or rows and columns")
	// ErrBadIceberg indicates an iceberg entry that is not a [row, col] pair.
	ErrBadIceberg = errors.New("gridfile: iceberg must be a [row, col] pair")
	// ErrDuplicateName indicates two grid blocks with the same label.
	ErrDuplicateName = errors.New("gridfile: duplicate grid name")
)

// Named is a grid together with its block label.
type Named struct {
	Name string
	Grid *grid.Grid
}

// document is the top-level HCL schema.
type document struct {
	Grids []*gridBlock `hcl:"grid,block"`
}

// gridBlock is one `grid "name" { ... }` block.
type gridBlock struct {
	Name     string         `hcl:"name,label"`
	Rows     *int           `hcl:"rows,optional"`
	Columns  *int           `hcl:"columns,optional"`
	Layout   []string       `hcl:"layout,optional"`
	Icebergs hcl.Expression `hcl:"icebergs,optional"`
	DefRange hcl.Range      `hcl:",def_range"`
}

// Decoder parses grid documents. The zero value is not usable; use NewDecoder.
type Decoder struct {
	logger *slog.Logger
	vars   map[string]cty.Value
}

// Option customizes a Decoder.
type Option func(*Decoder)

// WithLogger routes debug output to l. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(d *Decoder) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithVariables exposes integer variables to attribute expressions.
func WithVariables(vars map[string]int) Option {
	return func(d *Decoder) {
		for k, v := range vars {
			d.vars[k] = cty.NumberIntVal(int64(v))
		}
	}
}

// NewDecoder returns a Decoder configured by opts.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		logger: slog.Default(),
		vars:   map[string]cty.Value{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Load reads and decodes the HCL file at path.
func (d *Decoder) Load(path string) ([]Named, error) {
	d.logger.Debug("Loading grid file.", "path", path)
	f, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, diags
	}
	return d.decodeBody(f.Body)
}

// Decode parses src as an HCL document; filename is used in diagnostics only.
func (d *Decoder) Decode(src []byte, filename string) ([]Named, error) {
	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diags
	}
	return d.decodeBody(f.Body)
}

// decodeBody binds the body to the schema and builds every grid in order.
func (d *Decoder) decodeBody(body hcl.Body) ([]Named, error) {
	evalCtx := &hcl.EvalContext{Variables: d.vars}

	var doc document
	if diags := gohcl.DecodeBody(body, evalCtx, &doc); diags.HasErrors() {
		return nil, diags
	}
	if len(doc.Grids) == 0 {
		return nil, ErrNoGrids
	}

	seen := make(map[string]bool, len(doc.Grids))
	out := make([]Named, 0, len(doc.Grids))
	for _, b := range doc.Grids {
		if seen[b.Name] {
			return nil, fmt.Errorf("%s: grid %q: %w", b.DefRange, b.Name, ErrDuplicateName)
		}
		seen[b.Name] = true

		g, err := d.build(b, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("%s: grid %q: %w", b.DefRange, b.Name, err)
		}
		d.logger.Debug("Decoded grid.", "name", b.Name, "rows", g.Rows(), "columns", g.Columns(), "icebergs", len(g.Icebergs()))
		out = append(out, Named{Name: b.Name, Grid: g})
	}

	return out, nil
}

// build turns one block into a grid.
func (d *Decoder) build(b *gridBlock, evalCtx *hcl.EvalContext) (*grid.Grid, error) {
	icebergs, err := decodeIcebergs(b.Icebergs, evalCtx)
	if err != nil {
		return nil, err
	}

	if b.Layout != nil {
		if b.Rows != nil || b.Columns != nil || icebergs != nil {
			return nil, ErrLayoutAndShape
		}
		return grid.Parse(b.Layout)
	}
	if b.Rows == nil || b.Columns == nil {
		return nil, ErrMissingShape
	}

	return grid.New(*b.Rows, *b.Columns, icebergs...)
}

// decodeIcebergs evaluates the icebergs expression into cells.
// A missing attribute yields nil.
func decodeIcebergs(expr hcl.Expression, evalCtx *hcl.EvalContext) ([]grid.Cell, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}

	listVal, err := convert.Convert(val, cty.List(cty.List(cty.Number)))
	if err != nil {
		return nil, fmt.Errorf("cannot convert %s: %w", val.Type().FriendlyName(), ErrBadIceberg)
	}
	var pairs [][]int
	if err := gocty.FromCtyValue(listVal, &pairs); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrBadIceberg)
	}

	cells := make([]grid.Cell, 0, len(pairs))
	for i, p := range pairs {
		if len(p) != 2 {
			return nil, fmt.Errorf("entry %d has %d values: %w", i, len(p), ErrBadIceberg)
		}
		cells = append(cells, grid.Cell{Row: p[0], Col: p[1]})
	}

	return cells, nil
}
