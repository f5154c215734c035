// Package constants provides shared constants used throughout the
// reconciliation codebase. This includes matching thresholds, policy
// defaults, and file permissions that should be consistent across the
// application.
package constants

import "time"

// Matching constants define the discrete boundaries of the comparators
const (
	// DefaultFuzzyThreshold is the minimum normalized similarity score
	// (0..1) at which the fuzzy fallback accepts two spellings as the
	// same name. The orgname fixture table is the regression gate for
	// changes here.
	DefaultFuzzyThreshold = 0.85

	// ListSeparator is the token separator for list-valued fields
	// delivered as a single string.
	ListSeparator = ","
)

// Validity policy constants
const (
	// DefaultValidityDays is the fixed validity window applied when a
	// policy table declares no default of its own.
	DefaultValidityDays = 30
)

// Timeout constants define timeout durations used by the CLI
const (
	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 10 * time.Minute
)
