package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2Ops(t *testing.T) {
	a, b := V(3, 4), V(1, -2)

	assert.Equal(t, V(4, 2), a.Add(b))
	assert.Equal(t, V(2, 6), a.Sub(b))
	assert.Equal(t, V(1.5, 2), a.Scale(0.5))
	assert.Equal(t, 5.0, a.Len())
	assert.Equal(t, math.Sqrt(40), a.Dist(b))
	assert.Equal(t, a.Dist(b), b.Dist(a))
}

func TestAngle(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		want           float64
	}{
		{"right of origin", 1, 0, 0, 0, 0},
		{"below origin", 0, 1, 0, 0, math.Pi / 2},
		{"left of origin", -1, 0, 0, 0, math.Pi},
		{"above other", 5, 2, 5, 7, -math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Angle(tt.x1, tt.y1, tt.x2, tt.y2), 1e-15)
		})
	}
}

func TestClampAndFinite(t *testing.T) {
	assert.Equal(t, 0.05, Clamp(0.01, 0.05, 12))
	assert.Equal(t, 12.0, Clamp(100, 0.05, 12))
	assert.Equal(t, 3.0, Clamp(3, 0.05, 12))

	assert.True(t, IsFinite(0))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(-1)))
	assert.False(t, V(1, math.Inf(1)).IsFinite())
	assert.True(t, V(1, 2).IsFinite())
}
