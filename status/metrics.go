// Package status exposes runtime metrics of the simulation loop
package status

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "astrobits"

// Metrics holds the collectors updated by the game loop
// Collectors are internally synchronized; the loop writes, the HTTP
// handler reads
type Metrics struct {
	Frames        prometheus.Counter
	ClampedFrames prometheus.Counter
	FrameSeconds  prometheus.Histogram
	Bodies        prometheus.Gauge
	DynamicBodies prometheus.Gauge
	PrimaryMass   prometheus.Gauge
	Absorptions   prometheus.Counter
	Spawns        prometheus.Counter
}

// NewMetrics registers the collectors with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Frames: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_total",
			Help:      "Simulation steps run.",
		}),
		ClampedFrames: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_clamped_total",
			Help:      "Steps whose elapsed time was replaced by the nominal period.",
		}),
		FrameSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "frame_seconds",
			Help:      "Elapsed time fed to each simulation step.",
			Buckets:   prometheus.ExponentialBuckets(0.004, 2, 8),
		}),
		Bodies: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "bodies",
			Help:      "Bodies in the scene, destroyed ones included.",
		}),
		DynamicBodies: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dynamic_bodies",
			Help:      "Bodies currently integrated each step.",
		}),
		PrimaryMass: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "primary_mass",
			Help:      "Mass of the absorbing body.",
		}),
		Absorptions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "absorptions_total",
			Help:      "Bodies absorbed by the primary.",
		}),
		Spawns: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "spawns_total",
			Help:      "Bodies spawned with the mouse.",
		}),
	}
}

// ObserveFrame records one step's elapsed time
func (m *Metrics) ObserveFrame(dt time.Duration, clamped bool) {
	m.Frames.Inc()
	if clamped {
		m.ClampedFrames.Inc()
	}
	m.FrameSeconds.Observe(dt.Seconds())
}

// SetScene publishes scene population
func (m *Metrics) SetScene(bodies, dynamic int, primaryMass float64) {
	m.Bodies.Set(float64(bodies))
	m.DynamicBodies.Set(float64(dynamic))
	m.PrimaryMass.Set(primaryMass)
}

// AddAbsorptions counts absorbed bodies
func (m *Metrics) AddAbsorptions(n int) {
	if n > 0 {
		m.Absorptions.Add(float64(n))
	}
}
