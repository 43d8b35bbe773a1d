package sim

import (
	"log/slog"

	"github.com/talgya/lifeform/internal/entity"
)

// Severity scaling for the two bulk-cull events.
const (
	predatorSeverity = 0.3
	disasterSeverity = 0.25
)

// wildcardKinds are the eight wildcard event types, chosen uniformly once
// the event gate passes.
var wildcardKinds = []string{
	"resource_spike",
	"resource_crash",
	"disease_outbreak",
	"heatwave",
	"radiation_burst",
	"cold_snap",
	"meteor_strike",
	"mutagenic_wave",
}

// predatorTypes pairs a predator label with its damage multiplier. The type
// is drawn uniformly; the multiplier scales the cull size.
var predatorTypes = []struct {
	Label  string
	Damage float64
}{
	{"Nuclear War", 0.8},
	{"Dimensional Rift", 0.75},
	{"Asteroid Impact", 0.7},
	{"Environmental Collapse", 0.65},
	{"Supervolcano", 0.6},
	{"Genetic Experiment Gone Wrong", 0.6},
	{"Ancient Beast", 0.55},
	{"Supernatural Entities", 0.5},
	{"Cybernetic Organisms", 0.5},
	{"Mutant Swarm", 0.45},
	{"Alien Invasion", 0.4},
	{"Sentient AI", 0.4},
	{"Robot Uprising", 0.35},
	{"Godzilla", 0.33},
	{"Apex Predator", 0.31},
	{"Space Pirates", 0.3},
	{"Time Travelers", 0.25},
	{"Human Sacrifice", 0.225},
	{"Zombie Outbreak", 0.2},
	{"Plague", 0.15},
	{"Mutant Wolf Pack", 0.1},
}

// sampleLive draws up to n distinct live entities without replacement.
// Returns nil when there is nothing to sample; callers treat that as a
// normal skipped step.
func (s *Simulation) sampleLive(n int) []*entity.Entity {
	live := s.alive()
	if len(live) == 0 || n <= 0 {
		return nil
	}
	if n > len(live) {
		n = len(live)
	}
	picked := make([]*entity.Entity, 0, n)
	for _, idx := range s.rng.Perm(len(live))[:n] {
		picked = append(picked, live[idx])
	}
	return picked
}

// triggerWildcard runs the wildcard event check: one gating draw against
// event_chance, then one of the eight event kinds chosen uniformly. Every
// effect is bounded and clamps its target.
func (s *Simulation) triggerWildcard() {
	if s.rng.Float64() >= s.Factors.EventChance {
		return
	}

	kind := wildcardKinds[s.rng.Intn(len(wildcardKinds))]
	slog.Info("wildcard event", "epoch", s.CurrentEpoch, "kind", kind)

	switch kind {
	case "resource_spike":
		s.Factors.ResourceAvailability = min(1.0, s.Factors.ResourceAvailability+0.2)

	case "resource_crash":
		s.Factors.ResourceAvailability = max(0.0, s.Factors.ResourceAvailability-0.3)
		s.Factors.Temperature = max(0.0, s.Factors.Temperature-s.uniform(5, 15))

	case "disease_outbreak":
		for _, e := range s.sampleLive(10) {
			e.Health = max(0, e.Health-s.uniform(10, 30))
			e.Reclassify()
		}

	case "heatwave":
		s.Factors.Temperature = min(45.0, s.Factors.Temperature+s.uniform(5, 10))

	case "radiation_burst":
		for _, e := range s.sampleLive(5) {
			e.Health = max(0, e.Health-s.uniform(20, 40))
			e.Reclassify()
		}

	case "cold_snap":
		s.Factors.Temperature = max(-10.0, s.Factors.Temperature-s.uniform(5, 15))

	case "meteor_strike":
		victims := s.sampleLive(3)
		for _, e := range victims {
			e.Kill()
		}
		if len(victims) > 0 {
			s.emit(Event{Kind: EventDisaster, Label: "Meteor Strike", Removed: len(victims)})
		}

	case "mutagenic_wave":
		for _, e := range s.sampleLive(5) {
			e.Params.Resilience *= s.uniform(1.1, 1.5)
			e.Params.ForagingEfficiency *= s.uniform(0.9, 1.3)
		}
	}
}

// triggerPredator runs the predator cull: gated on the population exceeding
// predator_threshold and a draw landing above predator_chance. Struggling
// entities are culled first when there are enough of them.
func (s *Simulation) triggerPredator(severity float64) {
	aliveCount := s.AliveCount()
	if aliveCount <= s.Factors.PredatorThreshold {
		return
	}
	if s.rng.Float64() <= s.Factors.PredatorChance {
		return
	}

	ptype := predatorTypes[s.rng.Intn(len(predatorTypes))]
	numToRemove := int(float64(aliveCount) * s.Factors.PredatorImpactPercentage * ptype.Damage * severity)
	if numToRemove < 1 {
		numToRemove = 1
	}

	var targets []*entity.Entity
	struggling := make([]*entity.Entity, 0)
	for _, e := range s.alive() {
		if e.Status == entity.StatusStruggling {
			struggling = append(struggling, e)
		}
	}
	if len(struggling) >= numToRemove {
		targets = make([]*entity.Entity, 0, numToRemove)
		for _, idx := range s.rng.Perm(len(struggling))[:numToRemove] {
			targets = append(targets, struggling[idx])
		}
	} else {
		targets = s.sampleLive(numToRemove)
	}

	for _, e := range targets {
		e.Kill()
	}

	s.emit(Event{Kind: EventDisaster, Label: ptype.Label, Removed: len(targets)})
	slog.Warn("predator event", "epoch", s.CurrentEpoch, "type", ptype.Label, "removed", len(targets))
}

// triggerDisaster runs the natural-disaster cull: only possible when the
// environment is hostile (pollution above 0.5 or temperature above 35°C)
// and a draw lands under disaster_chance. Removes at least one entity.
func (s *Simulation) triggerDisaster(severity float64) {
	hostile := s.Factors.Pollution > 0.5 || s.Factors.Temperature > 35.0
	if !hostile {
		return
	}
	if s.rng.Float64() >= s.Factors.DisasterChance {
		return
	}

	aliveCount := s.AliveCount()
	if aliveCount == 0 {
		return
	}

	numToRemove := int(float64(aliveCount) * s.Factors.DisasterImpact * severity)
	if numToRemove < 1 {
		numToRemove = 1
	}

	targets := s.sampleLive(numToRemove)
	for _, e := range targets {
		e.Kill()
	}

	s.emit(Event{Kind: EventDisaster, Label: "Natural Disaster", Removed: len(targets)})
	slog.Warn("natural disaster", "epoch", s.CurrentEpoch, "removed", len(targets))
}

// uniform draws from [lo, hi).
func (s *Simulation) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
