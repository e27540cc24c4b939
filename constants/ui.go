package constants

// Body colors
const (
	SunColor      = "#E6DF52"
	MeteorColor   = "#8B4513"
	PlanetColor   = "#0066cc"
	GasGiantColor = "#66cc00"
)

// Button colors
const (
	ButtonActiveColor   = "#666666"
	ButtonInactiveColor = "#444444"
	ButtonTextColor     = "#ffffff"
	BackgroundColor     = "#000000"
	PreviewVectorColor  = "#ffffff"
)

// Button zone: releases inside this screen rectangle never spawn
const (
	ButtonZoneWidth  = 100.0
	ButtonZoneHeight = 260.0
)

// Distribs layout
const (
	DistribsBackground = "#111111"
	DistribsText       = "#ffffff"
	DistribsBar        = "#3355ff"
	DistribsRunning    = "#00aa00"
	DistribsPaused     = "#cc0000"
)
