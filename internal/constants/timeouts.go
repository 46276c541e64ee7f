package constants

import "time"

// Timeout constants used throughout the application
const (
	// DefaultFollowPollInterval is the wait between stat checks when
	// following a file
	DefaultFollowPollInterval = 1 * time.Second

	// ForceExitDelay is how long a graceful shutdown may take before the
	// process exits regardless
	ForceExitDelay = 5 * time.Second
)
