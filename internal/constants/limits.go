package constants

// Numeric limits and configuration values
const (
	// DefaultMmapThreshold is the smallest file size read through a
	// mapped view (1MB)
	DefaultMmapThreshold = 1024 * 1024

	// DefaultSqueezeLimit is the run of consecutive blank lines beyond
	// which further blanks are dropped when squeezing
	DefaultSqueezeLimit = 1

	// LineNumberWidth is the column width of right-justified line numbers
	LineNumberWidth = 6

	// InterruptTimeoutSeconds is the window for a second interrupt to
	// force an exit
	InterruptTimeoutSeconds = 3

	// PercentageMultiplier is used for percentage calculations
	PercentageMultiplier = 100
)
