package sim

import (
	"log/slog"
)

// handleInteractions runs the pairwise competition pass. Each live entity
// samples up to 3 distinct others and both sides take aggression-scaled
// damage, so the work stays O(n·3) rather than quadratic. A density and
// scarcity modifier intensifies competition in crowded, resource-poor
// epochs.
func (s *Simulation) handleInteractions() {
	live := s.alive()
	numAlive := len(live)
	if numAlive < 2 {
		slog.Debug("no entities to interact with")
		return
	}

	modifier := (1.0 - s.Factors.ResourceAvailability) + float64(numAlive)/100.0
	if modifier < 0.1 {
		modifier = 0.1
	} else if modifier > 1.0 {
		modifier = 1.0
	}

	for _, a := range live {
		if !a.Alive() {
			continue
		}

		numInteractions := numAlive - 1
		if numInteractions > 3 {
			numInteractions = 3
		}

		targets := make([]int, 0, numInteractions)
		for _, idx := range s.rng.Perm(numAlive) {
			if live[idx] != a {
				targets = append(targets, idx)
			}
			if len(targets) == numInteractions {
				break
			}
		}

		for _, idx := range targets {
			b := live[idx]
			if !a.Alive() || !b.Alive() {
				continue
			}

			// A strikes B; the small 0.1 offset softens the health hit.
			damageToB := a.Params.Aggression * s.Factors.InteractionStrength * modifier
			b.Health = max(0.0, b.Health-damageToB+0.1)
			b.Energy = max(0.0, b.Energy-damageToB/2)

			// B strikes back; here the offset favors A's energy instead.
			damageToA := b.Params.Aggression * s.Factors.InteractionStrength * modifier
			a.Health = max(0.0, a.Health-damageToA)
			a.Energy = max(0.0, a.Energy-damageToA/2+0.1)

			slog.Debug("interaction",
				"epoch", s.CurrentEpoch,
				"a", a.ID, "b", b.ID,
				"a_health", a.Health, "b_health", b.Health,
			)
		}
	}
}
