package environment

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// AdaptResult reports which direction the adaptive environment moved, for
// logging and tests.
type AdaptResult int

const (
	AdaptNone     AdaptResult = iota
	AdaptRestrict             // pushed back on persistent overgrowth
	AdaptAssist               // loosened conditions to aid recovery
)

// Adapt is the ecological-memory override: the world compares the current
// population against its rolling history and tightens or loosens conditions
// accordingly. No-op unless the world enables adaptive_environment.
// Resource availability and mutation rate are clamped to [0.1,2.0] and
// [0.01,0.8] on every path.
func (f *Factors) Adapt(population int, history []float64, sensitivity float64) AdaptResult {
	if !f.AdaptiveEnvironment {
		return AdaptNone
	}

	densityRatio := float64(population) / f.CarryingCapacity

	avgPast := float64(population)
	if len(history) > 0 {
		avgPast = stat.Mean(history, nil)
	}
	trend := 0.0
	if avgPast > 0 {
		trend = (float64(population) - avgPast) / avgPast * sensitivity
	}

	result := AdaptNone
	switch {
	case densityRatio > 1.2 || trend > 0.15:
		f.ResourceAvailability *= 0.9
		f.DisasterChance *= 1.2
		f.RadiationBackground *= 1.05
		f.MutationRate *= 1.1
		result = AdaptRestrict
		slog.Info("adaptive environment restricts resources",
			"trend", trend, "density_ratio", densityRatio)
	case densityRatio < 0.4 || trend < -0.15:
		f.ResourceAvailability *= 1.12
		f.DisasterChance *= 0.85
		f.MutationRate *= 1.15
		result = AdaptAssist
		slog.Info("adaptive environment assists recovery",
			"trend", trend, "density_ratio", densityRatio)
	}

	// Rapid change in either direction spikes evolutionary pressure.
	if trend > 0.25 || trend < -0.25 {
		f.MutationRate *= 1.2
		slog.Info("rapid population change raises mutation pressure", "trend", trend)
	}

	f.ResourceAvailability = clamp(f.ResourceAvailability, 0.1, 2.0)
	f.MutationRate = clamp(f.MutationRate, 0.01, 0.8)
	return result
}
