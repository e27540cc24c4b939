package constants

import "time"

// Loop Timing
const (
	// AstroUpdateRate is the nominal astrobits tick period (30 FPS)
	AstroUpdateRate = time.Second / 30

	// DistribsUpdateRate is the nominal distribs tick period (60 FPS)
	DistribsUpdateRate = time.Second / 60

	// FrameClampFactor bounds the measured frame duration; anything above
	// FrameClampFactor * nominal period is replaced by the nominal period
	FrameClampFactor = 1.1

	// EventQueueSize is the buffered capacity of the terminal event channel
	EventQueueSize = 256
)

// Canvas
const (
	// PixelsPerDot is the logical pixel size of one braille dot
	PixelsPerDot = 3.0

	// DotsPerCellX and DotsPerCellY describe the braille cell grid
	DotsPerCellX = 2
	DotsPerCellY = 4
)
