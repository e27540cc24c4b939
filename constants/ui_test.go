package constants

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TestColorsParse verifies every palette entry is a valid hex color
func TestColorsParse(t *testing.T) {
	colors := map[string]string{
		"SunColor":            SunColor,
		"MeteorColor":         MeteorColor,
		"PlanetColor":         PlanetColor,
		"GasGiantColor":       GasGiantColor,
		"ButtonActiveColor":   ButtonActiveColor,
		"ButtonInactiveColor": ButtonInactiveColor,
		"ButtonTextColor":     ButtonTextColor,
		"BackgroundColor":     BackgroundColor,
		"PreviewVectorColor":  PreviewVectorColor,
		"DistribsBackground":  DistribsBackground,
		"DistribsText":        DistribsText,
		"DistribsBar":         DistribsBar,
		"DistribsRunning":     DistribsRunning,
		"DistribsPaused":      DistribsPaused,
	}

	for name, hex := range colors {
		t.Run(name, func(t *testing.T) {
			if c := tcell.GetColor(hex); !c.Valid() || c == tcell.ColorDefault {
				t.Errorf("%s: %q does not parse", name, hex)
			}
		})
	}
}

// TestZoomBounds verifies wheel steps can reach both clamps
func TestZoomBounds(t *testing.T) {
	if MinZoom <= 0 || MinZoom >= InitialZoom || InitialZoom >= MaxZoom {
		t.Errorf("Expected 0 < MinZoom < InitialZoom < MaxZoom, got %v %v %v", MinZoom, InitialZoom, MaxZoom)
	}
	if ZoomWheelIn <= 1 || ZoomWheelOut >= 1 {
		t.Errorf("Expected wheel in > 1 and wheel out < 1, got %v %v", ZoomWheelIn, ZoomWheelOut)
	}
}

// TestTimingConstants verifies the loop rates
func TestTimingConstants(t *testing.T) {
	if AstroUpdateRate != time.Second/30 {
		t.Errorf("Expected AstroUpdateRate to be 1/30s, got %v", AstroUpdateRate)
	}
	if DistribsUpdateRate != time.Second/60 {
		t.Errorf("Expected DistribsUpdateRate to be 1/60s, got %v", DistribsUpdateRate)
	}
	if clamp := float64(AstroUpdateRate) * FrameClampFactor; clamp <= float64(AstroUpdateRate) {
		t.Errorf("Expected clamp limit above the period, got %v", time.Duration(int64(clamp)))
	}
}

// TestButtonZoneCoversButtons verifies the release dead zone contains the control column
func TestButtonZoneCoversButtons(t *testing.T) {
	// Rightmost button edge is the large-size button at x=65, w=18
	if ButtonZoneWidth < 65+18/2 {
		t.Errorf("Button zone width %v does not cover the buttons", ButtonZoneWidth)
	}
	if ButtonZoneHeight < 210+40/2 {
		t.Errorf("Button zone height %v does not cover the buttons", ButtonZoneHeight)
	}
}
