package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	require.Equal(t, zerolog.InfoLevel, ParseLevel("loud"))
	require.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	require.Equal(t, zerolog.WarnLevel, ParseLevel("warn"))
}

func TestForMatch(t *testing.T) {
	previous := log.Logger
	defer func() { log.Logger = previous }()

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	l := ForMatch("m-42")
	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "m-42", entry["match"])
	require.Equal(t, "hello", entry["message"])
}

func TestWithFile(t *testing.T) {
	t.Run("teeing into the file", func(t *testing.T) {
		var buf bytes.Buffer
		path := filepath.Join(t.TempDir(), "run.log")

		output, err := withFile(&buf, path)
		require.NoError(t, err)
		_, err = output.Write([]byte("line\n"))
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, "line\n", string(data))
		require.Equal(t, "line\n", buf.String())
	})

	t.Run("keeping the output when the file cannot be opened", func(t *testing.T) {
		var buf bytes.Buffer
		dir := t.TempDir()

		output, err := withFile(&buf, dir)
		require.Error(t, err)
		require.Same(t, &buf, output)
	})

	t.Run("ignoring an empty path", func(t *testing.T) {
		var buf bytes.Buffer

		output, err := withFile(&buf, "")
		require.NoError(t, err)
		require.Same(t, &buf, output)
	})
}

func TestInitWarnsOnUnopenableFile(t *testing.T) {
	previous := log.Logger
	level := zerolog.GlobalLevel()
	defer func() {
		log.Logger = previous
		zerolog.SetGlobalLevel(level)
	}()

	dir := t.TempDir()
	t.Setenv("LOG_FILE", filepath.Join(dir, "missing", "run.log"))
	t.Setenv("LOG_JSON", "true")
	t.Setenv("LOG_LEVEL", "warn")

	require.NotPanics(t, Init)
	_, err := os.Stat(filepath.Join(dir, "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
