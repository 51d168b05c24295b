package grid

// Walker simulates a guard walking through a grid.
type Walker struct {
	grid  *Grid
	start CellPosition
}

// NewWalker creates a walker for g. g is never mutated by the walker.
func NewWalker(g *Grid) *Walker {
	w := &Walker{grid: g}
	w.start = w.FindStart()
	return w
}

// Grid returns the grid being walked.
func (w *Walker) Grid() *Grid {
	return w.grid
}

// FindStart returns the first start marker in row-major order,
// or {-1, -1} if the grid has none.
func (w *Walker) FindStart() CellPosition {
	for r, row := range w.grid.cells {
		for c, cell := range row {
			if cell == Start {
				return CellPosition{Row: r, Col: c}
			}
		}
	}
	return CellPosition{Row: -1, Col: -1}
}

// step advances the guard one transition: forward if passable, else a clockwise turn.
func step(g *Grid, pos CellPosition, dir Direction) (CellPosition, Direction) {
	next := pos.Add(dir.Delta())
	if g.blocked(next) {
		return pos, dir.Turn()
	}
	return next, dir
}

// Path returns the distinct cells the guard covers, in first-visit order.
// The walk stops as soon as the guard stands on an edge cell; that cell is the last entry.
// A guard that can never reach an edge stops once it repeats a state.
func (w *Walker) Path() []CellPosition {
	visited := make(map[CellPosition]struct{})
	states := make(map[state]struct{})
	var path []CellPosition

	pos, dir := w.start, Up
	for w.grid.InBound(pos.Row, pos.Col) && !w.grid.IsEdge(pos.Row, pos.Col) {
		s := state{pos: pos, dir: dir}
		if _, ok := states[s]; ok {
			// Trapped: every reachable cell is already recorded.
			return path
		}
		states[s] = struct{}{}

		if _, seen := visited[pos]; !seen {
			visited[pos] = struct{}{}
			path = append(path, pos)
		}
		pos, dir = step(w.grid, pos, dir)
	}

	if w.grid.InBound(pos.Row, pos.Col) {
		path = append(path, pos)
	}
	return path
}

// SimulatePath walks the guard from the start and returns the number of distinct cells visited.
func (w *Walker) SimulatePath() int {
	return len(w.Path())
}

// LoopPositions returns, in row-major order, every empty cell that traps the guard
// in a cycle when turned into an obstacle.
func (w *Walker) LoopPositions() []CellPosition {
	var positions []CellPosition
	for r, row := range w.grid.cells {
		for c, cell := range row {
			if cell != Empty || (r == w.start.Row && c == w.start.Col) {
				continue
			}
			if w.createsLoop(r, c) {
				positions = append(positions, CellPosition{Row: r, Col: c})
			}
		}
	}
	return positions
}

// FindLoopPositions returns the number of cycle-inducing obstacle placements.
func (w *Walker) FindLoopPositions() int {
	return len(w.LoopPositions())
}

// createsLoop places an obstacle at (obstacleRow, obstacleCol) on a private copy of the grid
// and reports whether the guard then revisits a (position, heading) state.
func (w *Walker) createsLoop(obstacleRow, obstacleCol int) bool {
	trial := w.grid.Clone()
	trial.cells[obstacleRow][obstacleCol] = Obstacle

	seen := make(map[state]struct{}, trial.rows*trial.cols)
	pos, dir := w.start, Up
	for trial.InBound(pos.Row, pos.Col) && !trial.IsEdge(pos.Row, pos.Col) {
		s := state{pos: pos, dir: dir}
		if _, ok := seen[s]; ok {
			return true
		}
		seen[s] = struct{}{}
		pos, dir = step(trial, pos, dir)
	}

	return false
}

// Render returns the grid with the guard's path drawn over empty cells.
func (w *Walker) Render() string {
	out := w.grid.Clone()
	for _, pos := range w.Path() {
		if out.cells[pos.Row][pos.Col] == Empty {
			out.cells[pos.Row][pos.Col] = Trail
		}
	}
	return out.String()
}
