package region

import "fmt"

// Classifier holds a private copy of a grid after exterior classification.
// It is immutable once New returns and safe for concurrent readers.
type Classifier struct {
	cells [][]int
	conn  Connectivity
}

// New deep-copies grid and classifies every cell before returning.
// Rows may differ in length; an empty grid classifies as a no-op.
// Cell values are not validated. The only error is ErrOptionViolation.
// Complexity: O(R×C) time and memory.
func New(grid [][]int, opts ...Option) (*Classifier, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Deep copy so the caller's slices and ours never alias.
	cells := make([][]int, len(grid))
	for y, row := range grid {
		cells[y] = make([]int, len(row))
		copy(cells[y], row)
	}

	c := &Classifier{cells: cells, conn: o.Conn}
	c.fill(o.OnFill)

	return c, nil
}

// MustNew is like New but panics if an option is invalid.
func MustNew(grid [][]int, opts ...Option) *Classifier {
	c, err := New(grid, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// IsInside reports whether (x,y) is not exterior. Boundary cells are inside.
// x and y must satisfy InBounds; otherwise IsInside panics with an error
// wrapping ErrOutOfRange. Use State for a checked lookup.
func (c *Classifier) IsInside(x, y int) bool {
	if !c.InBounds(x, y) {
		panic(c.rangeError(x, y))
	}
	return State(c.cells[y][x]) != Exterior
}

// State returns the classified value of (x,y), or ErrOutOfRange.
func (c *Classifier) State(x, y int) (State, error) {
	if !c.InBounds(x, y) {
		return 0, c.rangeError(x, y)
	}
	return State(c.cells[y][x]), nil
}

// InBounds reports whether (x,y) addresses a cell. Row length is checked per row.
// Complexity: O(1).
func (c *Classifier) InBounds(x, y int) bool {
	return y >= 0 && y < len(c.cells) && x >= 0 && x < len(c.cells[y])
}

// Rows returns the number of rows.
func (c *Classifier) Rows() int { return len(c.cells) }

// RowLen returns the length of row y, or 0 if y is not a row.
func (c *Classifier) RowLen(y int) int {
	if y < 0 || y >= len(c.cells) {
		return 0
	}
	return len(c.cells[y])
}

// Connectivity returns the neighbor rule the grid was classified with.
func (c *Classifier) Connectivity() Connectivity { return c.conn }

// Grid returns a deep copy of the classified grid.
func (c *Classifier) Grid() [][]int {
	out := make([][]int, len(c.cells))
	for y, row := range c.cells {
		out[y] = make([]int, len(row))
		copy(out[y], row)
	}
	return out
}

// Counts tallies inside and exterior cells.
func (c *Classifier) Counts() Counts {
	var n Counts
	for _, row := range c.cells {
		for _, v := range row {
			if State(v) == Exterior {
				n.Exterior++
			} else {
				n.Inside++
			}
		}
	}
	return n
}

func (c *Classifier) rangeError(x, y int) error {
	return fmt.Errorf("%w: (%d,%d) in grid of %d rows", ErrOutOfRange, x, y, len(c.cells))
}
