package grid

// Cell markers recognised in a guard grid.
const (
	Empty    byte = '.' // Empty is a passable cell.
	Obstacle byte = '#' // Obstacle blocks the guard and makes it turn.
	Start    byte = '^' // Start marks the guard's initial cell, facing up.
	Trail    byte = 'X' // Trail is only used when rendering a walked path.
)

// CellPosition represents the position of a cell in the grid.
type CellPosition struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// GetRow returns the row index of the cell.
func (cp CellPosition) GetRow() int {
	return cp.Row
}

// GetCol returns the column index of the cell.
func (cp CellPosition) GetCol() int {
	return cp.Col
}

// Add returns the position reached by stepping delta from cp.
func (cp CellPosition) Add(delta CellPosition) CellPosition {
	return CellPosition{Row: cp.Row + delta.Row, Col: cp.Col + delta.Col}
}

// Direction is one of the four headings, indexed clockwise from Up.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions maps each heading to its row/col delta.
var Directions = [4]CellPosition{
	Up:    {Row: -1, Col: 0},
	Right: {Row: 0, Col: 1},
	Down:  {Row: 1, Col: 0},
	Left:  {Row: 0, Col: -1},
}

// Turn returns the heading one step clockwise.
func (d Direction) Turn() Direction {
	return (d + 1) % Direction(len(Directions))
}

// Delta returns the row/col step for the heading.
func (d Direction) Delta() CellPosition {
	return Directions[d]
}

// String returns the heading name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// state is a walker's full position, used for cycle detection.
type state struct {
	pos CellPosition
	dir Direction
}
