package grid

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exampleLines = []string{
	"....#.....",
	".........#",
	"..........",
	"..#.......",
	".......#..",
	"..........",
	".#..^.....",
	"........#.",
	"#.........",
	"......#...",
}

func TestParse(t *testing.T) {
	t.Run("Parse example grid", func(t *testing.T) {
		g, err := Parse(exampleLines)
		require.NoError(t, err)
		assert.Equal(t, 10, g.Rows())
		assert.Equal(t, 10, g.Cols())
		assert.Equal(t, Obstacle, g.At(CellPosition{Row: 0, Col: 4}))
		assert.Equal(t, Start, g.At(CellPosition{Row: 6, Col: 4}))
		assert.Equal(t, strings.Join(exampleLines, "\n")+"\n", g.String())
	})

	t.Run("Ignore trailing blank lines and carriage returns", func(t *testing.T) {
		g, err := Parse([]string{"...\r", ".^.\r", "...\r", "", ""})
		require.NoError(t, err)
		assert.Equal(t, 3, g.Rows())
		assert.Equal(t, 3, g.Cols())
	})

	t.Run("Own the input buffer", func(t *testing.T) {
		lines := []string{"...", ".^.", "..."}
		g, err := Parse(lines)
		require.NoError(t, err)
		lines[0] = "###"
		assert.Equal(t, Empty, g.At(CellPosition{Row: 0, Col: 0}))
	})

	t.Run("Reject malformed grids", func(t *testing.T) {
		tests := []struct {
			name  string
			lines []string
			want  error
		}{
			{"nil", nil, ErrEmptyOrMissingGrid},
			{"blank lines only", []string{"", ""}, ErrEmptyOrMissingGrid},
			{"ragged rows", []string{"...", ".^", "..."}, ErrNonRectangularGrid},
			{"no start", []string{"...", ".#.", "..."}, ErrMissingStartMarker},
			{"two starts", []string{"^..", "...", "..^"}, ErrMultipleStartMarkers},
			{"other heading marker", []string{"...", ".v.", "..^"}, ErrUnknownCell},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := Parse(tt.lines)
				assert.ErrorIs(t, err, tt.want)
			})
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("Load grid from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "grid.txt")
		require.NoError(t, os.WriteFile(path, []byte(strings.Join(exampleLines, "\n")+"\n"), 0o600))

		g, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 10, g.Rows())
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.txt"))
		assert.ErrorIs(t, err, ErrEmptyOrMissingGrid)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Empty file", func(t *testing.T) {
		_, err := Read(strings.NewReader(""))
		assert.ErrorIs(t, err, ErrEmptyOrMissingGrid)
	})
}

func TestGridBounds(t *testing.T) {
	g, err := Parse([]string{"....", ".^..", "...."})
	require.NoError(t, err)

	assert.True(t, g.InBound(0, 0))
	assert.True(t, g.InBound(2, 3))
	assert.False(t, g.InBound(-1, 0))
	assert.False(t, g.InBound(3, 0))
	assert.False(t, g.InBound(0, 4))

	assert.True(t, g.IsEdge(0, 2))
	assert.True(t, g.IsEdge(2, 1))
	assert.True(t, g.IsEdge(1, 0))
	assert.True(t, g.IsEdge(1, 3))
	assert.False(t, g.IsEdge(1, 1))
	assert.False(t, g.IsEdge(1, 2))
}

func TestClone(t *testing.T) {
	g, err := Parse(exampleLines)
	require.NoError(t, err)

	c := g.Clone()
	c.cells[0][0] = Obstacle
	assert.Equal(t, Empty, g.At(CellPosition{Row: 0, Col: 0}))
	assert.Equal(t, Obstacle, c.At(CellPosition{Row: 0, Col: 0}))
}

func TestDirection(t *testing.T) {
	assert.Equal(t, Right, Up.Turn())
	assert.Equal(t, Down, Right.Turn())
	assert.Equal(t, Left, Down.Turn())
	assert.Equal(t, Up, Left.Turn())
	assert.Equal(t, CellPosition{Row: -1, Col: 0}, Up.Delta())
	assert.Equal(t, "Left", Left.String())
}
