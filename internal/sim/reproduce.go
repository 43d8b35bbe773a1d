package sim

import (
	"log/slog"
	"math"

	"github.com/talgya/lifeform/internal/entity"
)

// reproductionCost is the flat health price a parent pays per offspring.
const reproductionCost = 3.0

// handleReproduction evaluates every live entity against the reproduction
// gates and appends the resulting offspring after the full pass, so no
// entity born this epoch reproduces within it.
func (s *Simulation) handleReproduction() {
	var offspring []*entity.Entity

	for _, parent := range s.Entities {
		if !parent.Alive() || parent.Status == entity.StatusStruggling {
			continue
		}
		if parent.Age < parent.Params.MinReproductionAge {
			continue
		}
		if s.rng.Float64() >= parent.Params.ReproductionChance {
			continue
		}

		params := s.mutateParams(parent.Params)
		child, err := s.spawn(params, s.uniform(80, 100), s.uniform(80, 100))
		if err != nil {
			// Mutation clamps keep params valid; a failure here means the
			// parent itself carried a bad record.
			slog.Error("offspring rejected", "parent", parent.ID, "error", err)
			continue
		}

		parent.Health -= reproductionCost

		offspring = append(offspring, child)
		s.emit(Event{
			Kind:       EventBirth,
			EntityID:   child.ID,
			EntityName: child.Name,
			ParentID:   parent.ID,
		})
		slog.Debug("entity reproduced",
			"epoch", s.CurrentEpoch, "parent", parent.ID, "child", child.ID)
	}

	for _, child := range offspring {
		// Params were validated at spawn; admission cannot fail here.
		s.Entities = append(s.Entities, child)
		s.TotalCreated++
	}
}

// mutateParams passes a copied parameter set through the mutation table:
// each mutable trait independently mutates with probability mutation_rate,
// shifting by a uniform fraction of its value up to mutation_strength and
// clamping into its declared bounds. Integer traits round.
func (s *Simulation) mutateParams(params entity.Params) entity.Params {
	rate := s.Factors.MutationRate
	strength := s.Factors.MutationStrength

	for _, trait := range entity.MutableTraits {
		if s.rng.Float64() >= rate {
			continue
		}

		original := params.Trait(trait.Name)
		change := original * s.uniform(-strength, strength)
		value := original + change
		if trait.Kind == entity.TraitInt {
			value = math.Round(value)
		}
		if value < trait.Min {
			value = trait.Min
		} else if value > trait.Max {
			value = trait.Max
		}
		params.SetTrait(trait.Name, value)

		s.emit(Event{
			Kind:     EventMutation,
			Trait:    trait.Name,
			OldValue: original,
			NewValue: value,
		})
		slog.Debug("trait mutated", "trait", trait.Name, "old", original, "new", value)
	}

	return params
}
