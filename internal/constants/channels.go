package constants

// Channel buffer size constants
const (
	// SignalChannelSize is the buffer size for OS signal channels
	SignalChannelSize = 10
)
