// Package walkapi provides structures for guard walk requests and responses.
package walkapi

import (
	"github.com/beka-birhanu/vinom-guard/service/i"
)

// WalkRequest carries a grid, one row per entry.
type WalkRequest struct {
	Grid []string `json:"grid" binding:"required"`
}

// Position is a grid cell in a response.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// WalkResponse reports both puzzle answers for a grid.
type WalkResponse struct {
	ID            string     `json:"id"`
	Rows          int        `json:"rows"`
	Cols          int        `json:"cols"`
	Start         Position   `json:"start"`
	Part1         int        `json:"part1"`
	Part2         int        `json:"part2"`
	LoopPositions []Position `json:"loop_positions"`
}

func responseFromReport(r *i.Report) *WalkResponse {
	loops := make([]Position, 0, len(r.LoopPositions))
	for _, p := range r.LoopPositions {
		loops = append(loops, Position{Row: p.Row, Col: p.Col})
	}
	return &WalkResponse{
		ID:            r.ID.String(),
		Rows:          r.Rows,
		Cols:          r.Cols,
		Start:         Position{Row: r.Start.Row, Col: r.Start.Col},
		Part1:         r.Part1,
		Part2:         r.Part2,
		LoopPositions: loops,
	}
}
