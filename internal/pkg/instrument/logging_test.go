package instrument

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), buf.String())
	return line
}

func TestNewLogger_MasksAndAddsContext(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "formguard", slog.LevelInfo, nil, NewMasker(DefaultMaskFields...))

	ctx := SetCorrelationID(context.Background(), "cid-9")
	logger.InfoContext(ctx, "request received",
		"body", map[string]any{"email": "jane@example.com", "password": "Abc123!x"},
		"raw", `{"pin_key":"0123"}`,
		"Confirm_Password", "Abc123!x",
	)

	line := decodeLine(t, &buf)
	assert.Equal(t, "request received", line["msg"])
	assert.Equal(t, "INFO", line["severity"])
	assert.Equal(t, "cid-9", line["_cID"])
	assert.Equal(t, "formguard", line["service"])
	assert.Contains(t, line["file"], "internal/pkg/instrument/logging_test.go:")
	assert.Equal(t, map[string]any{"email": "jane@example.com", "password": "***"}, line["body"])
	assert.JSONEq(t, `{"pin_key":"***"}`, line["raw"].(string))
	assert.Equal(t, "***", line["Confirm_Password"])
}

func TestNewLogger_WithAttrsAreMasked(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "formguard", slog.LevelInfo, nil, NewMasker("pin_key"))

	logger.With("pin_key", "secret").Info("hello")

	line := decodeLine(t, &buf)
	assert.Equal(t, "***", line["pin_key"])
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "formguard", parseLevel("warn"), nil, Masker{})

	logger.Info("dropped")
	assert.Zero(t, buf.Len())

	logger.Warn("kept")
	assert.Equal(t, "WARN", decodeLine(t, &buf)["severity"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelError, parseLevel(" ERROR "))
	assert.Equal(t, slog.LevelInfo, parseLevel("loud"))
}
