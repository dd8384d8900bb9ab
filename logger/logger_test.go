package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
	}{
		{"console output", false},
		{"JSON output", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Initialize(tt.jsonOutput)
			require.NoError(t, err)
			require.NotNil(t, Logger)
			assert.Equal(t, tt.jsonOutput, JSONOutput)
		})
	}
}

func TestInitializeWithVerbosity(t *testing.T) {
	err := InitializeWithVerbosity(false, VerbosityDebug)
	require.NoError(t, err)
	require.NotNil(t, Logger)

	// Quiet mode suppresses info
	err = InitializeWithVerbosity(false, VerbosityUser)
	require.NoError(t, err)
	require.NotNil(t, Logger)
}

func TestLoggerIsNopBeforeInitialize(t *testing.T) {
	// The package-level init installs a no-op logger; logging before
	// Initialize must not panic.
	assert.NotPanics(t, func() {
		Info("before initialize")
		Warnw("still fine", FieldCount, 1)
	})
}

func TestCleanup(t *testing.T) {
	require.NoError(t, Initialize(false))
	assert.NotPanics(t, Cleanup)
}

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		expected  zapcore.Level
	}{
		{VerbosityUser, zapcore.WarnLevel},
		{VerbosityInfo, zapcore.InfoLevel},
		{VerbosityDebug, zapcore.DebugLevel},
		{VerbosityTrace, zapcore.DebugLevel},
		{VerbosityAll, zapcore.DebugLevel},
		{99, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, VerbosityToLevel(tt.verbosity),
			"verbosity %d", tt.verbosity)
	}
}

func TestShouldOutput(t *testing.T) {
	assert.True(t, ShouldOutput(VerbosityUser, OutputResults))
	assert.True(t, ShouldOutput(VerbosityUser, OutputErrors))
	assert.False(t, ShouldOutput(VerbosityUser, OutputProgress))

	assert.True(t, ShouldOutput(VerbosityInfo, OutputCollisions))
	assert.False(t, ShouldOutput(VerbosityInfo, OutputResolutionDetail))

	assert.True(t, ShouldOutput(VerbosityDebug, OutputResolutionDetail))
	assert.False(t, ShouldOutput(VerbosityDebug, OutputWatchEvents))

	assert.True(t, ShouldOutput(VerbosityTrace, OutputWatchEvents))
	assert.True(t, ShouldOutput(VerbosityAll, OutputDataDump))
}

func TestEnabledCategories(t *testing.T) {
	base := EnabledCategories(VerbosityUser)
	all := EnabledCategories(VerbosityAll)
	assert.Len(t, base, 3)
	assert.Len(t, all, len(categoryLevels))
}

func TestCategoryName(t *testing.T) {
	assert.Equal(t, "resolution", CategoryName(OutputResolutionDetail))
	assert.Equal(t, "unknown", CategoryName(OutputCategory(999)))
}

func TestComponentLogger(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	Logger = zap.New(core).Sugar()
	defer func() { Logger = zap.NewNop().Sugar() }()

	ComponentLogger("resolve.watch").Infow("manifest changed", FieldManifest, "demos.yaml")

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "resolve.watch", entries[0].LoggerName)
	assert.Equal(t, "manifest changed", entries[0].Message)
}

func TestChildLogger(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	Logger = zap.New(core).Sugar()
	defer func() { Logger = zap.NewNop().Sugar() }()

	child := ChildLogger(Logger, FieldVariant, "Default")
	child.Infow("resolved", FieldFileCount, 3)

	entries := observed.All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "Default", ctx[FieldVariant])
}
