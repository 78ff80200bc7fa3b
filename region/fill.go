package region

var (
	offsets4 = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	offsets8 = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
)

// filler carries the state of one classification pass.
type filler struct {
	cells  [][]int
	queue  []Point
	onFill func(Point)
}

// fill runs a multi-source BFS from every perimeter cell, turning each
// Empty cell reachable through Empty cells into Exterior.
//
// A cell leaves Empty the first time it is seeded, so it is enqueued at most once.
// Time: O(R×C). Memory: O(R×C) for the queue.
func (c *Classifier) fill(onFill func(Point)) {
	if len(c.cells) == 0 {
		return
	}
	f := &filler{cells: c.cells, onFill: onFill}

	first, last := 0, len(c.cells)-1
	for x := range c.cells[first] {
		f.seed(x, first)
	}
	for x := range c.cells[last] {
		f.seed(x, last)
	}
	for y := first + 1; y < last; y++ {
		f.seed(0, y)
		f.seed(len(c.cells[y])-1, y)
	}

	offsets := offsets4
	if c.conn == Conn8 {
		offsets = offsets8
	}
	for qi := 0; qi < len(f.queue); qi++ {
		p := f.queue[qi]
		for _, d := range offsets {
			f.seed(p.X+d[0], p.Y+d[1])
		}
	}
}

// seed marks (x,y) Exterior and enqueues it if it is in range and Empty.
func (f *filler) seed(x, y int) {
	if y < 0 || y >= len(f.cells) {
		return
	}
	row := f.cells[y]
	if x < 0 || x >= len(row) || State(row[x]) != Empty {
		return
	}
	row[x] = int(Exterior)
	p := Point{X: x, Y: y}
	f.onFill(p)
	f.queue = append(f.queue, p)
}
