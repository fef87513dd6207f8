package grid

// Path is a candidate walk from the origin (0,0): the directions taken so
// far and the cell they lead to. Every appended step lands on a cell the
// underlying Stepper allows.
type Path struct {
	on       Stepper
	steps    []Direction
	row, col int
}

// NewPath starts an empty path at the origin of s.
func NewPath(s Stepper) *Path {
	return &Path{on: s}
}

// IsStepValid reports whether taking d from the current cell lands on a
// cell that is in bounds and open.
func (p *Path) IsStepValid(d Direction) bool {
	dr, dc := d.delta()
	return p.on.MayStep(p.row+dr, p.col+dc)
}

// AddStep appends d and moves to the new cell.
// Panics with ErrInvalidStep if IsStepValid(d) is false; callers check first.
func (p *Path) AddStep(d Direction) {
	if !p.IsStepValid(d) {
		panic(ErrInvalidStep)
	}
	dr, dc := d.delta()
	p.row += dr
	p.col += dc
	p.steps = append(p.steps, d)
}

// Steps returns a copy of the directions taken so far.
func (p *Path) Steps() []Direction {
	out := make([]Direction, len(p.steps))
	copy(out, p.steps)
	return out
}

// Len returns the number of steps taken.
func (p *Path) Len() int { return len(p.steps) }

// Row returns the row of the current cell.
func (p *Path) Row() int { return p.row }

// Col returns the column of the current cell.
func (p *Path) Col() int { return p.col }

// Complete reports whether the path stands on the bottom-right cell.
func (p *Path) Complete() bool {
	return p.row == p.on.Rows()-1 && p.col == p.on.Columns()-1
}
