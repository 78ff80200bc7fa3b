// Package regionfill finds the area enclosed by a boundary drawn on a 2D grid.
//
// What is it?
//
//	A small, dependency-free library built around one algorithm: a
//	multi-source breadth-first flood fill that starts from every border
//	cell and marks what it can reach as exterior. Whatever the fill cannot
//	reach, plus the boundary itself, is inside.
//
// Layout:
//
//	region/ — Classifier: New, IsInside, State, Grid, Counts
//
// Quick ASCII example (1 = boundary, # = inside after classification):
//
//	0 0 0 0 0        . . . . .
//	0 1 1 1 0        . # # # .
//	0 1 0 1 0   →    . # # # .
//	0 1 1 1 0        . # # # .
//	0 0 0 0 0        . . . . .
//
//	go get github.com/katalvlaran/regionfill/region
package regionfill
