package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/config"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&config.LoggerConfig{Level: "debug", Format: "json"}, &buf)

	log.Debug("hello", slog.String("coin", "bitcoin"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "DEBUG", rec["level"])
	require.Equal(t, "hello", rec["msg"])
	require.Equal(t, "bitcoin", rec["coin"])
	require.Equal(t, "crypto-tracker", rec["service"])

	src, _ := rec["source"].(string)
	require.True(t, strings.HasPrefix(src, "logger_test.go:"), src)

	ts, _ := rec["time"].(string)
	_, err := time.Parse(time.RFC3339, ts)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(ts, "Z"), ts)
}

func TestNew_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := New(&config.LoggerConfig{Level: "warn", Format: "text"}, &buf)

	log.Info("skipped")
	log.Warn("kept")

	out := buf.String()
	require.NotContains(t, out, "skipped")
	require.Contains(t, out, "level=WARN")
	require.Contains(t, out, "msg=kept")
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"":        slog.LevelInfo,
		" INFO ":  slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		got, err := parseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got.Level(), in)
	}

	_, err := parseLevel("verbose")
	require.Error(t, err)
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(&config.LoggerConfig{Level: "verbose", Format: "json"}, &buf)

	log.Debug("hidden")
	log.Info("shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}
