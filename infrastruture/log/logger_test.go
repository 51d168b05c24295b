package logger

import (
	"bytes"
	"testing"

	"github.com/beka-birhanu/vinom-guard/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("Info line carries prefix, level and color", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("APP", config.ColorGreen, &buf)
		require.NoError(t, err)

		l.Info("grid loaded")
		out := buf.String()
		assert.Contains(t, out, "[APP] [INFO] grid loaded")
		assert.Contains(t, out, config.ColorGreen)
		assert.Contains(t, out, config.ColorReset)
	})

	t.Run("Error lines are red", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("APP", config.ColorGreen, &buf)
		require.NoError(t, err)

		l.Error("boom")
		assert.Contains(t, buf.String(), config.ColorRed)
		assert.Contains(t, buf.String(), "[APP] [ERROR] boom")
	})

	t.Run("Debug is enabled", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("WALK", config.ColorCyan, &buf)
		require.NoError(t, err)

		l.Debug("trial 3")
		assert.Contains(t, buf.String(), "[WALK] [DEBUG] trial 3")
	})

	t.Run("Reject invalid arguments", func(t *testing.T) {
		_, err := New("", config.ColorGreen, &bytes.Buffer{})
		assert.ErrorIs(t, err, ErrEmptyPrefix)

		_, err = New("APP", config.ColorGreen, nil)
		assert.ErrorIs(t, err, ErrNilWriter)
	})
}
