package logger

// Output controls what categories of information are shown at each verbosity level.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT types of information are displayed regardless of severity.
//
// Verbosity Levels:
//
//	0 (default) - User-facing output only: resolved paths, errors, final status
//	1 (-v)      - + Progress, manifest summaries, variant counts
//	2 (-vv)     - + Per-file resolution detail, timing, config loaded
//	3 (-vvv)    - + Watch events, internal resolution flow
//	4 (-vvvv)   - + Full variant structure dumps

// OutputCategory defines a category of output that can be enabled/disabled
type OutputCategory int

const (
	// Level 0 (default) - Always shown
	OutputResults    OutputCategory = iota // Resolved paths, command output
	OutputErrors                           // Errors with hints and resolution steps
	OutputUserStatus                       // Final success/failure status

	// Level 1 (-v) - Informational
	OutputProgress        // Progress indicators (e.g., "Resolving 3/7 variants")
	OutputManifestSummary // Manifest loaded, variant counts
	OutputCollisions      // Collision warnings per variant

	// Level 2 (-vv) - Detailed
	OutputResolutionDetail // Per-file path assignments
	OutputTiming           // Operation timing (e.g., "resolved in 2ms")
	OutputConfig           // Config values loaded/applied

	// Level 3 (-vvv) - Debug
	OutputWatchEvents // fsnotify events in --watch mode
	OutputInternalOp  // Internal resolution flow

	// Level 4 (-vvvv) - Full dump
	OutputDataDump // Full variant structure contents
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	OutputResults:    VerbosityUser,
	OutputErrors:     VerbosityUser,
	OutputUserStatus: VerbosityUser,

	OutputProgress:        VerbosityInfo,
	OutputManifestSummary: VerbosityInfo,
	OutputCollisions:      VerbosityInfo,

	OutputResolutionDetail: VerbosityDebug,
	OutputTiming:           VerbosityDebug,
	OutputConfig:           VerbosityDebug,

	OutputWatchEvents: VerbosityTrace,
	OutputInternalOp:  VerbosityTrace,

	OutputDataDump: VerbosityAll,
}

// ShouldOutput reports whether a category is enabled at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		return false
	}
	return verbosity >= minLevel
}

// categoryNames provides human-readable names for categories
var categoryNames = map[OutputCategory]string{
	OutputResults:          "results",
	OutputErrors:           "errors",
	OutputUserStatus:       "status",
	OutputProgress:         "progress",
	OutputManifestSummary:  "manifest",
	OutputCollisions:       "collisions",
	OutputResolutionDetail: "resolution",
	OutputTiming:           "timing",
	OutputConfig:           "config",
	OutputWatchEvents:      "watch",
	OutputInternalOp:       "internal",
	OutputDataDump:         "dump",
}

// CategoryName returns the human-readable name of a category
func CategoryName(category OutputCategory) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "unknown"
}

// EnabledCategories returns all categories enabled at the given verbosity
func EnabledCategories(verbosity int) []OutputCategory {
	var enabled []OutputCategory
	for category, minLevel := range categoryLevels {
		if verbosity >= minLevel {
			enabled = append(enabled, category)
		}
	}
	return enabled
}
