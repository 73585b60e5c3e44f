package config_test

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/config"
)

func TestSetupLog(t *testing.T) {
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(log.LstdFlags)
	})

	t.Run("fallback", func(t *testing.T) {
		var buf bytes.Buffer
		closeLog, err := config.SetupLog("", &buf)
		require.NoError(t, err)
		defer closeLog()

		log.Print("to the buffer")
		assert.Contains(t, buf.String(), "to the buffer")
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "blockfall.log")
		closeLog, err := config.SetupLog(path, io.Discard)
		require.NoError(t, err)

		log.Print("to the file")
		closeLog()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "to the file")
	})

	t.Run("unwritable", func(t *testing.T) {
		_, err := config.SetupLog(filepath.Join(t.TempDir(), "missing", "x.log"), io.Discard)
		assert.Error(t, err)
	})
}
