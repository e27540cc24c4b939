// Package distribs samples a uniform variable and its tangent transform
// and renders both as live histograms
package distribs

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Histogram counts samples in equal-width bins over [lo, hi)
// Samples outside the range are counted as dropped
type Histogram struct {
	edges   []float64
	centers []float64
	counts  []float64
	total   int
	dropped int
}

// NewHistogram creates a histogram with bins equal-width bins; bins < 1 is
// treated as 1
func NewHistogram(lo, hi float64, bins int) *Histogram {
	bins = max(bins, 1)

	edges := floats.Span(make([]float64, bins+1), lo, hi)
	centers := make([]float64, bins)
	for i := range centers {
		centers[i] = (edges[i] + edges[i+1]) / 2
	}

	return &Histogram{
		edges:   edges,
		centers: centers,
		counts:  make([]float64, bins),
	}
}

// Add counts v and returns its bin, or -1 when v falls outside the range
func (h *Histogram) Add(v float64) int {
	i := floats.Within(h.edges, v)
	if i < 0 {
		h.dropped++
		return -1
	}
	h.counts[i]++
	h.total++
	return i
}

// Bins returns the number of bins
func (h *Histogram) Bins() int { return len(h.counts) }

// Range returns the histogram bounds
func (h *Histogram) Range() (float64, float64) {
	return h.edges[0], h.edges[len(h.edges)-1]
}

// Count returns the count of bin i
func (h *Histogram) Count(i int) float64 { return h.counts[i] }

// Total returns the number of samples binned
func (h *Histogram) Total() int { return h.total }

// Dropped returns the number of samples outside the range
func (h *Histogram) Dropped() int { return h.dropped }

// MaxCount returns the tallest bin
func (h *Histogram) MaxCount() float64 {
	return floats.Max(h.counts)
}

// Normalized returns each bin's height relative to the tallest, all zero
// while the histogram is empty
func (h *Histogram) Normalized() []float64 {
	out := make([]float64, len(h.counts))
	m := h.MaxCount()
	if m == 0 {
		return out
	}
	floats.ScaleTo(out, 1/m, h.counts)
	return out
}

// Mean estimates the sample mean from bin centers
func (h *Histogram) Mean() float64 {
	if h.total == 0 {
		return 0
	}
	return stat.Mean(h.centers, h.counts)
}

// StdDev estimates the sample standard deviation from bin centers
func (h *Histogram) StdDev() float64 {
	if h.total < 2 {
		return 0
	}
	return stat.StdDev(h.centers, h.counts)
}

// Reset clears all counts
func (h *Histogram) Reset() {
	for i := range h.counts {
		h.counts[i] = 0
	}
	h.total = 0
	h.dropped = 0
}
