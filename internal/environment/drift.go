package environment

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Season produces the seasonal temperature offset for an epoch. The noise
// source is seeded, so the same seed always yields the same climate curve.
type Season struct {
	noise     opensimplex.Noise
	amplitude float64
}

// NewSeason builds a seasonal modulator with the given seed and amplitude
// (the world's seasonal_variation factor). Amplitude 0 disables it.
func NewSeason(seed int64, amplitude float64) *Season {
	return &Season{
		noise:     opensimplex.NewNormalized(seed),
		amplitude: amplitude,
	}
}

// Offset returns the temperature delta for the given epoch, in [-5a, +5a]
// degrees for amplitude a.
func (s *Season) Offset(epoch int) float64 {
	if s == nil || s.amplitude == 0 {
		return 0
	}
	// Normalized noise is in [0,1]; recenter to [-1,1].
	n := s.noise.Eval2(float64(epoch)*0.1, 0)*2 - 1
	return n * s.amplitude * 5.0
}

// Drift moves the baseline factors along their slow time-indexed paths:
// resources degrade toward scarcity, temperature oscillates around 25°C,
// pollution accumulates, and event/interaction/mutation pressure creeps up.
// Independent of population; runs once per epoch.
func (f *Factors) Drift(epoch, totalEpochs int, season *Season) {
	progress := float64(epoch) / float64(totalEpochs)

	f.ResourceAvailability = max(0.1, 1.0-progress*0.5)
	f.Temperature = 25.0 + 10.0*(progress-0.5) + season.Offset(epoch)
	f.Pollution = min(0.8, progress*0.3)
	f.EventChance = min(0.1, f.EventChance+0.001)
	f.InteractionStrength = min(1.0, f.InteractionStrength+0.001)
	f.MutationRate = min(0.3, f.MutationRate+0.0005)
}
