package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talgya/lifeform/internal/environment"
)

func TestAdaptEntities(t *testing.T) {
	t.Run("memory stays bounded by the span", func(t *testing.T) {
		s := newTestSim(t, 5, 13, func(f *environment.Factors) {
			f.MutationRate = 0 // no leaps, memory only grows
		})
		for i := 0; i < 100; i++ {
			s.adaptEntities()
		}
		for _, e := range s.Entities {
			assert.Len(t, e.Memory, e.MemorySpan)
		}
	})

	t.Run("scarcity suppresses reproduction", func(t *testing.T) {
		s := newTestSim(t, 5, 13, func(f *environment.Factors) {
			f.ResourceAvailability = 0.2 // remembered condition is negative
			f.MutationRate = 0
		})
		s.drift = 1.0 // isolate the directional shift from the run bias

		before := s.Entities[0].Params.ReproductionChance
		s.adaptEntities()
		for _, e := range s.Entities {
			assert.Less(t, e.Params.ReproductionChance, before)
		}
	})

	t.Run("abundance promotes reproduction", func(t *testing.T) {
		s := newTestSim(t, 5, 13, func(f *environment.Factors) {
			f.ResourceAvailability = 1.5
			f.MutationRate = 0
		})
		s.drift = 1.0

		before := s.Entities[0].Params.ReproductionChance
		s.adaptEntities()
		for _, e := range s.Entities {
			assert.Greater(t, e.Params.ReproductionChance, before)
		}
	})

	t.Run("evolutionary leaps wipe the memory", func(t *testing.T) {
		s := newTestSim(t, 5, 13, func(f *environment.Factors) {
			f.MutationRate = 10 // leap check always passes
		})
		s.adaptEntities()
		for _, e := range s.Entities {
			assert.Empty(t, e.Memory)
		}
	})

	t.Run("adapted traits clamp to their ranges", func(t *testing.T) {
		s := newTestSim(t, 5, 13, func(f *environment.Factors) {
			f.ResourceAvailability = 1.5
			f.MutationRate = 10 // constant leaping stresses the clamps
		})
		for i := 0; i < 300; i++ {
			s.adaptEntities()
		}
		for _, e := range s.Entities {
			assert.GreaterOrEqual(t, e.Params.Resilience, 0.1)
			assert.LessOrEqual(t, e.Params.Resilience, 5.0)
			assert.GreaterOrEqual(t, e.Params.MetabolismRate, 0.1)
			assert.LessOrEqual(t, e.Params.MetabolismRate, 5.0)
			assert.GreaterOrEqual(t, e.Params.ReproductionChance, 0.001)
			assert.LessOrEqual(t, e.Params.ReproductionChance, 2.0)
		}
	})

	t.Run("the dead neither remember nor adapt", func(t *testing.T) {
		s := newTestSim(t, 3, 13, nil)
		for _, e := range s.Entities {
			e.Kill()
		}
		s.adaptEntities()
		for _, e := range s.Entities {
			assert.Empty(t, e.Memory)
		}
	})
}
