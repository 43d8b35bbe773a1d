package sim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/talgya/lifeform/internal/environment"
	"github.com/talgya/lifeform/internal/worlds"
)

// quietWorld is a stable test world with every stochastic event disabled:
// wildcards never fire, predators are gated by an unreachable threshold, and
// the environment is not hostile enough for natural disasters.
func quietWorld() *worlds.World {
	return &worlds.World{
		Key: "quiet",
		Factors: environment.Factors{
			Name:                 "Quiet World",
			ResourceAvailability: 1.0,
			Temperature:          22.5,
			Pollution:            0.05,
			EventChance:          0.0,
			InteractionStrength:  0.5,
			MutationRate:         0.05,
			MutationStrength:     0.01,
			PredatorChance:       0.1,
			PredatorThreshold:    1 << 30,
			RadiationBackground:  0.0,
			DisasterChance:       0.1,
			DisasterImpact:       0.1,
			GrowthRate:           1.0,
			DeathRate:            0.2,
			CarryingCapacity:     10000,
			ProsperityThreshold:  1 << 20,
			ProsperityBoost:      1.0,
			OptimalDensity:       1000,
			DensityEfficiency:    0.2,
			MemoryWindow:         50,
			MemorySensitivity:    1.0,
		},
	}
}

func newTestSim(t *testing.T, entities int, seed int64, mod func(*environment.Factors)) *Simulation {
	t.Helper()
	world := quietWorld()
	if mod != nil {
		mod(&world.Factors)
	}
	s, err := New(Config{
		World:           world,
		InitialEntities: entities,
		Epochs:          100,
		Seed:            seed,
	})
	require.NoError(t, err)
	return s
}

// recordingSink captures the full event stream and epoch snapshots.
type recordingSink struct {
	events []Event
	snaps  []EpochSnapshot
}

func (r *recordingSink) Record(ev Event)             { r.events = append(r.events, ev) }
func (r *recordingSink) RecordEpoch(s EpochSnapshot) { r.snaps = append(r.snaps, s) }

func (r *recordingSink) count(kind EventKind) int {
	n := 0
	for _, ev := range r.events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}
