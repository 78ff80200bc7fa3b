package region

import (
	"errors"
	"fmt"
)

// Sentinel errors for region operations.
var (
	// ErrOutOfRange indicates a query coordinate lies outside the grid.
	ErrOutOfRange = errors.New("region: coordinate out of range")
	// ErrOptionViolation indicates an invalid Option was supplied to New.
	ErrOptionViolation = errors.New("region: invalid option supplied")
)

// State is the classification value stored in each cell.
// Values other than the three below are carried through untouched.
type State int

const (
	// Empty is an empty cell the fill never reached; after New it means interior.
	Empty State = 0
	// Boundary marks a wall cell. The fill never crosses or relabels it.
	Boundary State = 1
	// Exterior marks an originally Empty cell reachable from the grid border.
	Exterior State = 2
)

// String returns a short human-readable name for s.
func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Boundary:
		return "boundary"
	case Exterior:
		return "exterior"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Point is a cell coordinate: X is the column, Y the row.
type Point struct {
	X, Y int
}

// Connectivity selects which neighbors the fill spreads to.
type Connectivity int

const (
	// Conn4 spreads to N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 also spreads across diagonals.
	Conn8
)

// Counts tallies a classified grid.
type Counts struct {
	Inside   int // cells whose state is not Exterior
	Exterior int // cells reached from the border
}

// Option configures New via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the parameters of a classification pass.
type Options struct {
	// Conn chooses 4- or 8-directional spreading. Default Conn4.
	Conn Connectivity

	// OnFill is called each time a cell turns from Empty to Exterior,
	// in the order cells are enqueued.
	OnFill func(p Point)

	err error
}

// DefaultOptions returns Options with Conn4 and a no-op OnFill.
func DefaultOptions() Options {
	return Options{
		Conn:   Conn4,
		OnFill: func(Point) {},
	}
}

// WithConnectivity sets the neighbor rule used by the fill.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		switch c {
		case Conn4, Conn8:
			o.Conn = c
		default:
			o.err = fmt.Errorf("%w: unknown connectivity %d", ErrOptionViolation, int(c))
		}
	}
}

// WithOnFill registers a callback run when a cell becomes Exterior.
func WithOnFill(fn func(p Point)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFill = fn
		}
	}
}
