// Package region classifies the cells of a 2D grid as inside or outside
// a closed boundary.
//
// What:
//
//   - Cells valued 1 (Boundary) form walls; cells valued 0 (Empty) are open.
//   - New copies the grid and flood-fills from every border cell through Empty
//     cells, relabelling each reached cell as 2 (Exterior).
//   - IsInside reports true for every cell that is not Exterior, which includes
//     the Boundary cells themselves.
//
// Why:
//
//   - Raster maps: find the area enclosed by a drawn outline.
//   - Puzzles and games: detect captured regions, lakes versus sea.
//
// The grid is assumed to be framed by at least one layer of Empty cells,
// so the exterior touches every edge. On other input the pass still
// terminates, but the inside/outside split only means "not reachable from
// the border".
//
// Complexity:
//
//   - New:      O(R×C) time, O(R×C) memory (copy + queue).
//   - IsInside: O(1).
//
// Options:
//
//   - WithConnectivity: Conn4 (default) or Conn8 spreading.
//   - WithOnFill: hook called for each cell turned Exterior.
//
// Errors:
//
//   - ErrOutOfRange: query coordinate outside the grid (State; IsInside panics).
//   - ErrOptionViolation: invalid option passed to New.
//
// Rows may differ in length. A neighbor past the end of a short row is
// treated as outside the grid.
package region
