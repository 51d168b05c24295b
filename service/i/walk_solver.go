package i

import (
	"github.com/beka-birhanu/vinom-guard/game/grid"
	"github.com/google/uuid"
)

// Report is the outcome of one guard walk run.
type Report struct {
	ID            uuid.UUID           // Run identifier
	Rows          int                 // Grid rows
	Cols          int                 // Grid columns
	Start         grid.CellPosition   // Guard start
	Part1         int                 // Distinct cells visited
	Part2         int                 // Cycle-inducing obstacle placements
	LoopPositions []grid.CellPosition // Cells counted by Part2, row-major
}

// WalkSolver runs both guard walk puzzles over a grid.
type WalkSolver interface {
	// Solve parses lines as a grid and solves it.
	Solve(lines []string) (*Report, error)

	// SolveFile loads the grid at path and solves it.
	SolveFile(path string) (*Report, error)
}
