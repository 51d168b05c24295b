package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-guard/game/grid"
	"github.com/beka-birhanu/vinom-guard/service/i"
	"github.com/google/uuid"
)

var (
	ErrNilLogger = errors.New("logger must not be nil")
)

// WalkService solves guard walks and reports each run under its own ID.
type WalkService struct {
	logger i.Logger
}

// NewWalkService creates a WalkService that logs through logger.
func NewWalkService(logger i.Logger) (i.WalkSolver, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}
	return &WalkService{logger: logger}, nil
}

// Solve implements i.WalkSolver.
func (s *WalkService) Solve(lines []string) (*i.Report, error) {
	id := uuid.New()
	g, err := grid.Parse(lines)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Run %s: parsing grid: %v", id, err))
		return nil, fmt.Errorf("run %s: %w", id, err)
	}
	return s.solve(id, g), nil
}

// SolveFile implements i.WalkSolver.
func (s *WalkService) SolveFile(path string) (*i.Report, error) {
	id := uuid.New()
	g, err := grid.Load(path)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Run %s: loading grid %q: %v", id, path, err))
		return nil, fmt.Errorf("run %s: %w", id, err)
	}
	s.logger.Info(fmt.Sprintf("Run %s: loaded grid from %s", id, path))
	return s.solve(id, g), nil
}

func (s *WalkService) solve(id uuid.UUID, g *grid.Grid) *i.Report {
	w := grid.NewWalker(g)
	start := w.FindStart()
	s.logger.Info(fmt.Sprintf("Run %s: %dx%d grid, guard at (%d,%d)", id, g.Rows(), g.Cols(), start.Row, start.Col))

	began := time.Now()
	part1 := w.SimulatePath()
	s.logger.Debug(fmt.Sprintf("Run %s: part 1 took %s", id, time.Since(began)))

	began = time.Now()
	loops := w.LoopPositions()
	s.logger.Debug(fmt.Sprintf("Run %s: part 2 took %s", id, time.Since(began)))

	s.logger.Info(fmt.Sprintf("Run %s: part 1 = %d, part 2 = %d", id, part1, len(loops)))
	return &i.Report{
		ID:            id,
		Rows:          g.Rows(),
		Cols:          g.Cols(),
		Start:         start,
		Part1:         part1,
		Part2:         len(loops),
		LoopPositions: loops,
	}
}
