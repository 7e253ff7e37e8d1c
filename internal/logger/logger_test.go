package logger

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevWriter, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevWriter)
		log.SetFlags(prevFlags)
	})
	return &buf
}

func TestFormatFieldsSortedKeys(t *testing.T) {
	got := formatFields(Fields{
		"status_code": 200,
		"duration_ms": int64(12),
		"method":      "POST",
		"ratio":       0.5,
	})
	assert.Equal(t, "{duration_ms=12, method=POST, ratio=0.50, status_code=200}", got)
}

func TestFormatFieldsEmpty(t *testing.T) {
	assert.Equal(t, "", formatFields(nil))
}

func TestLevelsWriteToStandardLogger(t *testing.T) {
	buf := captureLog(t)

	Info("request completed", Fields{"path": "/generate"})
	Warn("client error", nil)
	Error("generation failed", errors.New("quota exceeded"), Fields{"model": "gemini-1.5-pro"})

	out := buf.String()
	assert.Contains(t, out, "[INFO] request completed {path=/generate}")
	assert.Contains(t, out, "[WARN] client error")
	assert.Contains(t, out, "[ERROR] generation failed: quota exceeded {model=gemini-1.5-pro}")
}
