package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/beka-birhanu/vinom-guard/config"
	"github.com/beka-birhanu/vinom-guard/game/grid"
	logger "github.com/beka-birhanu/vinom-guard/infrastruture/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	appLogger, err := logger.New("TEST", config.ColorGreen, io.Discard)
	require.NoError(t, err)

	t.Run("Solve input file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "Day6.txt")
		require.NoError(t, os.WriteFile(path, []byte("...\n.^.\n...\n"), 0o600))
		assert.NoError(t, run(appLogger, path))
	})

	t.Run("Missing input file fails fast", func(t *testing.T) {
		err := run(appLogger, filepath.Join(t.TempDir(), "Day6.txt"))
		assert.ErrorIs(t, err, grid.ErrEmptyOrMissingGrid)
	})
}
