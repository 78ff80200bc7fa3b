package region_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regionfill/region"
)

// randomGrid builds an h×w grid where roughly density of cells are Boundary.
// When ragged is set, each row gets a random length in [1, w].
func randomGrid(rng *rand.Rand, h, w int, density float64, ragged bool) [][]int {
	g := make([][]int, h)
	for y := range g {
		n := w
		if ragged {
			n = 1 + rng.Intn(w)
		}
		g[y] = make([]int, n)
		for x := range g[y] {
			if rng.Float64() < density {
				g[y][x] = int(region.Boundary)
			}
		}
	}
	return g
}

// onBorder reports whether (x,y) is a perimeter seed of g.
func onBorder(g [][]int, x, y int) bool {
	return y == 0 || y == len(g)-1 || x == 0 || x == len(g[y])-1
}

// TestProperties_RandomGrids checks the fill invariants on random input:
//   - Boundary cells never become Exterior and are always inside.
//   - Only originally Empty cells become Exterior.
//   - Empty border cells are always Exterior.
//   - No Empty cell is left next to an Exterior one (the fill is a fixpoint).
//   - OnFill sees every Exterior cell exactly once.
func TestProperties_RandomGrids(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	offsets := [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	for iter := 0; iter < 200; iter++ {
		h, w := 1+rng.Intn(12), 1+rng.Intn(12)
		grid := randomGrid(rng, h, w, rng.Float64()*0.6, iter%3 == 0)

		seen := make(map[region.Point]int)
		c, err := region.New(grid, region.WithOnFill(func(p region.Point) {
			seen[p]++
		}))
		require.NoError(t, err)
		got := c.Grid()

		empty := 0
		for y := range grid {
			for x, v := range grid[y] {
				if v == int(region.Empty) {
					empty++
				}
				switch {
				case v == int(region.Boundary):
					require.Equal(t, v, got[y][x], "wall (%d,%d) changed", x, y)
					require.True(t, c.IsInside(x, y))
				case got[y][x] == int(region.Exterior):
					require.Equal(t, int(region.Empty), v, "(%d,%d) was not Empty", x, y)
				}
				if v == int(region.Empty) && onBorder(grid, x, y) {
					require.False(t, c.IsInside(x, y), "border (%d,%d) must be outside", x, y)
				}
				if got[y][x] != int(region.Empty) {
					continue
				}
				for _, d := range offsets {
					nx, ny := x+d[0], y+d[1]
					if c.InBounds(nx, ny) {
						require.NotEqual(t, int(region.Exterior), got[ny][nx],
							"Empty (%d,%d) next to Exterior (%d,%d)", x, y, nx, ny)
					}
				}
			}
		}

		n := c.Counts()
		assert.LessOrEqual(t, n.Exterior, empty)
		assert.Len(t, seen, n.Exterior)
		for p, k := range seen {
			assert.Equal(t, 1, k, "%v filled %d times", p, k)
		}
	}
}

// TestProperties_Conn8WithoutWalls: with nothing to block it, either
// neighbor rule reaches every cell.
func TestProperties_Conn8WithoutWalls(t *testing.T) {
	grid := zeros(6, 9)
	a := region.MustNew(grid, region.WithConnectivity(region.Conn4))
	b := region.MustNew(grid, region.WithConnectivity(region.Conn8))
	assert.Equal(t, a.Grid(), b.Grid())
}

// TestProperties_FillOrderIsBreadthFirst: seeds come first, in perimeter order.
func TestProperties_FillOrderIsBreadthFirst(t *testing.T) {
	var order []region.Point
	region.MustNew(zeros(3, 3), region.WithOnFill(func(p region.Point) {
		order = append(order, p)
	}))

	want := []region.Point{
		{0, 0}, {1, 0}, {2, 0},
		{0, 2}, {1, 2}, {2, 2},
		{0, 1}, {2, 1},
		{1, 1},
	}
	assert.Equal(t, want, order)
}
