/*
Package grid provides tools for loading guard grids and walking a guard through them.

It defines the `Grid` structure, a rectangular buffer of cells that are either empty,
obstacles, or the guard's start marker, and the `Walker` that simulates the guard.

The guard moves forward while the cell ahead is passable and turns clockwise in place
when it is blocked. The walker counts the distinct cells of that walk and finds every
single-obstacle placement that traps the guard in a cycle.
*/
package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Grid-related errors.
var (
	ErrEmptyOrMissingGrid   = errors.New("grid is empty or missing")
	ErrNonRectangularGrid   = errors.New("grid is not rectangular")
	ErrMissingStartMarker   = errors.New("grid has no start marker")
	ErrMultipleStartMarkers = errors.New("grid has more than one start marker")
	ErrUnknownCell          = errors.New("grid has an unknown cell")
)

// Grid represents a rectangular guard grid.
type Grid struct {
	rows  int      // Number of rows
	cols  int      // Number of columns
	cells [][]byte // Row-major cell buffer
}

// Load reads a grid from the file at path.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEmptyOrMissingGrid, err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses a grid from r, one row per line.
func Read(r io.Reader) (*Grid, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return Parse(lines)
}

// Parse builds a grid from ordered text lines.
// The grid must be rectangular and hold exactly one start marker.
func Parse(lines []string) (*Grid, error) {
	for len(lines) > 0 && strings.TrimRight(lines[len(lines)-1], "\r") == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyOrMissingGrid
	}

	cols := len(strings.TrimRight(lines[0], "\r"))
	cells := make([][]byte, len(lines))
	starts := 0
	for r, line := range lines {
		line = strings.TrimRight(line, "\r")
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangularGrid, r, len(line), cols)
		}

		cells[r] = []byte(line)
		for c, cell := range cells[r] {
			switch cell {
			case Empty, Obstacle:
			case Start:
				starts++
			default:
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrUnknownCell, cell, r, c)
			}
		}
	}

	if starts == 0 {
		return nil, ErrMissingStartMarker
	}
	if starts > 1 {
		return nil, fmt.Errorf("%w: found %d", ErrMultipleStartMarkers, starts)
	}

	return &Grid{rows: len(cells), cols: cols, cells: cells}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// At returns the cell at pos. pos must be in bounds.
func (g *Grid) At(pos CellPosition) byte {
	return g.cells[pos.Row][pos.Col]
}

// InBound reports whether (row, col) lies inside the grid.
func (g *Grid) InBound(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// IsEdge reports whether (row, col) lies on the grid's outer border.
func (g *Grid) IsEdge(row, col int) bool {
	return row == 0 || row == g.rows-1 || col == 0 || col == g.cols-1
}

// blocked reports whether the guard cannot step into pos.
func (g *Grid) blocked(pos CellPosition) bool {
	return !g.InBound(pos.Row, pos.Col) || g.cells[pos.Row][pos.Col] == Obstacle
}

// Clone returns a deep copy that shares no buffers with g.
func (g *Grid) Clone() *Grid {
	cells := make([][]byte, g.rows)
	for r := range g.cells {
		cells[r] = make([]byte, g.cols)
		copy(cells[r], g.cells[r])
	}
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// String provides a textual representation of the grid.
func (g *Grid) String() string {
	var sb strings.Builder
	for _, row := range g.cells {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}
