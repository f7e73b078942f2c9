package components

import "time"

// UI timing constants
const (
	// UITickInterval is the base tick rate of the console panel
	UITickInterval = 100 * time.Millisecond

	// UITicksPerSecond is the derived animation frame rate
	UITicksPerSecond = int(time.Second / UITickInterval)

	// NoticeTicks is how long a footer notice stays visible
	NoticeTicks = 3 * UITicksPerSecond
)

// Header layout constants
const (
	HeaderSeparatorMinWidth = 4
	HeaderFixedChars        = 10
)

// Footer layout constants
const (
	FooterSeparatorMinWidth = 4
	FooterFixedChars        = 5
)

// Panel layout constants
const (
	HeaderHeight         = 1
	FooterHeight         = 2
	DefaultViewportWidth = 80
)
