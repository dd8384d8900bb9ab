package logger

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestSetTheme(t *testing.T) {
	original := currentTheme
	defer SetTheme(original)

	SetTheme("gruvbox")
	assert.Equal(t, "gruvbox", currentTheme)

	SetTheme("everforest")
	assert.Equal(t, "everforest", currentTheme)

	// Unknown themes are ignored
	SetTheme("solarized")
	assert.Equal(t, "everforest", currentTheme)
}

func TestAbbreviateName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"resolve", "resolve"},
		{"resolve.watch", "r.watch"},
		{"config.watcher", "c.watcher"},
		{"a.b.c", "a.b.c"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, abbreviateName(tt.input))
	}
}

func TestLevelColorString(t *testing.T) {
	assert.Contains(t, levelColorString(zapcore.WarnLevel), "WARN")
	assert.Contains(t, levelColorString(zapcore.ErrorLevel), "ERROR")
	assert.Empty(t, levelColorString(zapcore.InfoLevel))
}

func TestColorizeMessage_BracketedContexts(t *testing.T) {
	out := colorizeMessage("resolving [variant:Default] from demos.yaml")
	// Content is preserved through colorization
	assert.Contains(t, stripANSI(out), "resolving [variant:Default] from demos.yaml")
}

func TestEncodeEntry(t *testing.T) {
	enc := newMinimalEncoder()
	buf, err := enc.EncodeEntry(zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Date(2026, 3, 1, 13, 4, 35, 0, time.UTC),
		LoggerName: "resolve.watch",
		Message:    "manifest changed",
	}, []zapcore.Field{
		zap.String(FieldManifest, "demos.yaml"),
		zap.Int(FieldFileCount, 4),
		zap.Int(FieldCollisions, 0),
	})
	require.NoError(t, err)

	line := stripANSI(buf.String())
	assert.Contains(t, line, "13:04:35")
	assert.Contains(t, line, "r.watch")
	assert.Contains(t, line, "manifest changed")
	assert.Contains(t, line, "demos.yaml")
	assert.Contains(t, line, "(4 files, 0 collisions)")
	assert.True(t, strings.HasSuffix(line, "\n"))
}

func TestEncodeEntry_WarnShowsLevel(t *testing.T) {
	enc := newMinimalEncoder()
	buf, err := enc.EncodeEntry(zapcore.Entry{
		Level:   zapcore.WarnLevel,
		Time:    time.Now(),
		Message: "collision detected",
	}, nil)
	require.NoError(t, err)
	assert.Contains(t, stripANSI(buf.String()), "WARN")
}

func TestExtractFieldValues_Duration(t *testing.T) {
	out := stripANSI(extractFieldValues([]zapcore.Field{
		zap.Int64(FieldDurationMS, 42),
	}))
	assert.Equal(t, "42ms", out)
}

func TestGetFieldValue(t *testing.T) {
	assert.Equal(t, "demos.yaml", getFieldValue(zap.String("k", "demos.yaml")))
	assert.Equal(t, "7", getFieldValue(zap.Int("k", 7)))
}

// stripANSI removes escape sequences so tests can assert on content.
func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
