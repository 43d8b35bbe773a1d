package sim

import (
	"log/slog"
	"math"

	"github.com/talgya/lifeform/internal/entity"
)

// Baby-boom regulation limits.
const (
	maxBoomsPerRun   = 7
	boomCooldown     = 10 // epochs between booms
	boomWarmup       = 16 // epochs before the first boom is possible
	boomChance       = 0.2
	boomSpawnCap     = 150
	boomSpawnPerHead = 0.3
)

// efficiencyModifier scales growth_rate for prosperity and population
// density: crossing the prosperity threshold multiplies in the boost, and a
// Gaussian bonus peaks when the population sits at optimal_density.
func (s *Simulation) efficiencyModifier(aliveCount int) {
	if float64(aliveCount) > s.Factors.ProsperityThreshold {
		s.Factors.GrowthRate *= s.Factors.ProsperityBoost
	}

	distance := float64(aliveCount) - s.Factors.OptimalDensity
	efficiency := 1 + s.Factors.DensityEfficiency*math.Exp(-(distance*distance)/50000)
	s.Factors.GrowthRate *= efficiency
}

// overPopulation applies the overcrowding penalty bundle once the
// population reaches carrying capacity.
func (s *Simulation) overPopulation() {
	slog.Info("population pushing sustainable limits", "epoch", s.CurrentEpoch)

	s.Factors.GrowthRate *= 0.85
	s.Factors.MutationRate *= 1.1      // evolution speeds up under stress
	s.Factors.InteractionStrength *= 1.1
	s.Factors.ResourceAvailability *= 0.8
	s.Factors.Pollution = min(1.0, s.Factors.Pollution+0.1)
	s.Factors.Temperature += 1.0
}

// maybeBabyBoom checks the boom gates: low density, past the warmup, under
// the per-run boom budget, past the cooldown, and a final stochastic draw.
func (s *Simulation) maybeBabyBoom(aliveCount int) {
	if float64(aliveCount) >= s.Factors.OptimalDensity {
		return
	}
	if s.epochsRun <= boomWarmup {
		return
	}
	if s.rng.Float64() >= boomChance {
		return
	}
	if s.boomCount >= maxBoomsPerRun {
		slog.Debug("maximum number of baby booms reached")
		return
	}
	if s.CurrentEpoch-s.lastBoomEpoch <= boomCooldown {
		slog.Debug("baby boom skipped, last boom too recent")
		return
	}

	s.babyBoom(aliveCount)
	s.boomCount++
	s.lastBoomEpoch = s.CurrentEpoch
}

// babyBoom bulk-spawns offspring cloned from random non-struggling parents
// and shifts the environment into expansion mode.
func (s *Simulation) babyBoom(aliveCount int) {
	numBabies := int(float64(aliveCount)*boomSpawnPerHead) + 3
	if numBabies > boomSpawnCap {
		numBabies = boomSpawnCap
	}

	var parents []*entity.Entity
	for _, e := range s.Entities {
		if e.Alive() && e.Status != entity.StatusStruggling {
			parents = append(parents, e)
		}
	}

	born := 0
	if len(parents) > 0 {
		for i := 0; i < numBabies; i++ {
			parent := parents[s.rng.Intn(len(parents))]
			child, err := s.spawn(parent.Params, s.uniform(80, 100), s.uniform(80, 100))
			if err != nil {
				slog.Error("boom offspring rejected", "parent", parent.ID, "error", err)
				continue
			}
			s.Entities = append(s.Entities, child)
			s.TotalCreated++
			born++
			s.emit(Event{
				Kind:       EventBirth,
				EntityID:   child.ID,
				EntityName: child.Name,
				ParentID:   parent.ID,
			})
		}
	} else {
		slog.Info("no eligible parents available for baby boom")
	}

	// Expansion bundle: faster growth and evolution, softer competition,
	// richer and warmer (and dirtier) world.
	s.Factors.GrowthRate *= 1.18
	s.Factors.MutationRate *= 1.12
	s.Factors.InteractionStrength *= 0.9
	s.Factors.ResourceAvailability = min(1.0, s.Factors.ResourceAvailability+0.15)
	s.Factors.Temperature = max(6.0, s.Factors.Temperature+3.0)
	s.Factors.Pollution = max(0.0, s.Factors.Pollution+0.1)

	s.emit(Event{Kind: EventBoom, Count: born})
	slog.Info("baby boom", "epoch", s.CurrentEpoch, "born", born)
}
