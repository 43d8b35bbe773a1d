package sim

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// adaptEntities is the phenotypic-plasticity pass: each live entity records
// the epoch's resource condition in its environmental memory and shifts its
// survival/growth traits toward whichever regime the remembered average
// indicates. Rarely, an evolutionary leap rescales the traits outright and
// wipes the memory.
func (s *Simulation) adaptEntities() {
	condition := s.Factors.ResourceAvailability - 0.5 // positive when abundant

	for _, e := range s.Entities {
		if !e.Alive() {
			continue
		}

		e.Remember(condition)
		avg := stat.Mean(e.Memory, nil)

		switch {
		case avg < -0.1:
			// Scarcity favors survival traits.
			e.Params.Resilience *= 1.02
			e.Params.MetabolismRate *= 0.97
			e.Params.ReproductionChance *= 0.93
		case avg > 0.1:
			// Abundance favors growth traits.
			e.Params.Resilience *= 0.97
			e.Params.MetabolismRate *= 1.03
			e.Params.ReproductionChance *= 1.07
		}

		// Small random drift, biased by the per-run drift multiplier.
		drift := s.uniform(0.98, 1.02) * s.drift
		e.Params.Resilience *= drift
		e.Params.MetabolismRate *= drift
		e.Params.ReproductionChance *= drift

		// Evolutionary leap: big rescale, memory reset.
		if s.rng.Float64() < s.Factors.MutationRate*0.1 {
			leap := s.uniform(0.8, 1.2)
			e.Params.Resilience *= leap
			e.Params.MetabolismRate *= leap
			e.Params.ReproductionChance *= leap
			e.ForgetAll()
			slog.Debug("evolutionary leap", "epoch", s.CurrentEpoch, "entity", e.ID, "factor", leap)
		}

		e.Params.Resilience = clampTrait(e.Params.Resilience, 0.1, 5.0)
		e.Params.MetabolismRate = clampTrait(e.Params.MetabolismRate, 0.1, 5.0)
		e.Params.ReproductionChance = clampTrait(e.Params.ReproductionChance, 0.001, 2.0)
	}
}

func clampTrait(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
