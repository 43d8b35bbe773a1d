package worlds

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListIncludesCatalogAndMutants(t *testing.T) {
	keys := List()
	assert.GreaterOrEqual(t, len(keys), 18)
	assert.True(t, sort.StringsAreSorted(keys))

	for _, want := range []string{
		"default", "default_adaptive", "harsh_world", "garden_world",
		"chaotic_world", "golden_world", "entropy_world",
		"mutant_garden_world", "mutant_chaotic_world",
	} {
		assert.Contains(t, keys, want)
	}
}

func TestEveryPresetValidates(t *testing.T) {
	for _, key := range List() {
		key := key
		t.Run(key, func(t *testing.T) {
			w, err := Load(key)
			require.NoError(t, err)
			assert.Equal(t, key, w.Key)
			assert.NotEmpty(t, w.Factors.Name)
			assert.Greater(t, w.Factors.CarryingCapacity, 0.0)
			assert.Greater(t, w.Factors.MemoryWindow, 0)
			assert.NotZero(t, w.Factors.MemorySensitivity)
		})
	}
}

func TestLoadDefault(t *testing.T) {
	w, err := Load("default")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, w.Factors.ResourceAvailability, 1e-9)
	assert.InDelta(t, 25.0, w.Factors.Temperature, 1e-9)
	assert.InDelta(t, 2500.0, w.Factors.CarryingCapacity, 1e-9)
	assert.False(t, w.Factors.AdaptiveEnvironment)
}

func TestLoadUnknownFallsBackToDefault(t *testing.T) {
	w, err := Load("no_such_world")
	require.NoError(t, err)
	assert.Equal(t, "default", w.Key)
}

func TestMutantOverlayKeepsBaseFields(t *testing.T) {
	base, err := Load("garden_world")
	require.NoError(t, err)
	mutant, err := Load("mutant_garden_world")
	require.NoError(t, err)

	assert.InDelta(t, 0.5, mutant.Factors.MutationRate, 1e-9)
	assert.NotEqual(t, base.Factors.MutationRate, mutant.Factors.MutationRate)
	// Untouched fields carry over from the base preset.
	assert.Equal(t, base.Factors.Temperature, mutant.Factors.Temperature)
	assert.Equal(t, base.Factors.PredatorThreshold, mutant.Factors.PredatorThreshold)
}

func TestAdaptiveDefaults(t *testing.T) {
	w, err := Load("default_adaptive")
	require.NoError(t, err)
	assert.True(t, w.Factors.AdaptiveEnvironment)
	assert.Equal(t, 50, w.Factors.MemoryWindow)
}

func TestLoadFile(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := writeWorldFile(t, validWorldYAML)
		got, err := LoadFile(path)
		require.NoError(t, err)
		assert.InDelta(t, 0.9, got.Factors.ResourceAvailability, 1e-9)
		assert.Equal(t, "Test World", got.Factors.Name)
	})

	t.Run("missing required key", func(t *testing.T) {
		path := writeWorldFile(t, missingKeyYAML)
		_, err := LoadFile(path)
		require.Error(t, err)
		var invalid *InvalidWorldConfigError
		require.ErrorAs(t, err, &invalid)
		assert.Contains(t, invalid.Reason, "carrying_capacity")
	})

	t.Run("unknown extra key", func(t *testing.T) {
		path := writeWorldFile(t, validWorldYAML+"\nno_such_factor: 1.0\n")
		_, err := LoadFile(path)
		var invalid *InvalidWorldConfigError
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("not yaml", func(t *testing.T) {
		path := writeWorldFile(t, "{{{{")
		_, err := LoadFile(path)
		var invalid *InvalidWorldConfigError
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}

func writeWorldFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "world.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validWorldYAML = `name: Test World
description: A minimal valid world for loader tests.
resource_availability: 0.9
temperature: 21.0
pollution: 0.05
event_chance: 0.01
interaction_strength: 0.4
mutation_rate: 0.05
mutation_strength: 0.02
predator_chance: 0.9
predator_threshold: 30
predator_impact_percentage: 0.1
resource_regeneration_rate: 0.5
seasonal_variation: 0.1
catastrophe_threshold: 0.9
radiation_background: 0.01
disaster_chance: 0.01
disaster_impact: 0.2
growth_rate: 1.0
death_rate: 0.2
competition_intensity: 0.5
carrying_capacity: 1000
prosperity_threshold: 0.7
prosperity_boost: 1.1
optimal_density: 100
density_efficiency: 0.5
`

const missingKeyYAML = `name: Broken World
description: Missing its carrying capacity.
resource_availability: 0.9
temperature: 21.0
pollution: 0.05
event_chance: 0.01
interaction_strength: 0.4
mutation_rate: 0.05
mutation_strength: 0.02
predator_chance: 0.9
predator_threshold: 30
predator_impact_percentage: 0.1
resource_regeneration_rate: 0.5
seasonal_variation: 0.1
catastrophe_threshold: 0.9
radiation_background: 0.01
disaster_chance: 0.01
disaster_impact: 0.2
growth_rate: 1.0
death_rate: 0.2
competition_intensity: 0.5
prosperity_threshold: 0.7
prosperity_boost: 1.1
optimal_density: 100
density_efficiency: 0.5
`
