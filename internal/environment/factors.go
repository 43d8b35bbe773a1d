// Package environment provides the shared world-state factors and the
// per-epoch drift, feedback, and adaptive-memory loops that mutate them.
package environment

// Factors holds the named scalar parameters describing the shared world
// state. One Simulation instance exclusively owns its copy; every mutation
// clamps back into the factor's soft range rather than erroring.
type Factors struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon,omitempty"`

	ResourceAvailability float64 `yaml:"resource_availability"` // 0.0 (scarce) to ~2.0 (abundant)
	Temperature          float64 `yaml:"temperature"`           // degrees Celsius
	Pollution            float64 `yaml:"pollution"`             // 0.0 (clean) to 1.0 (toxic)
	EventChance          float64 `yaml:"event_chance"`          // wildcard event probability per epoch
	InteractionStrength  float64 `yaml:"interaction_strength"`  // base competition damage scale
	MutationRate         float64 `yaml:"mutation_rate"`         // per-trait mutation probability
	MutationStrength     float64 `yaml:"mutation_strength"`     // relative mutation magnitude

	PredatorChance           float64 `yaml:"predator_chance"`
	PredatorThreshold        int     `yaml:"predator_threshold"` // population gate for predator events
	PredatorImpactPercentage float64 `yaml:"predator_impact_percentage"`

	ResourceRegenerationRate float64 `yaml:"resource_regeneration_rate"`
	SeasonalVariation        float64 `yaml:"seasonal_variation"` // amplitude of seasonal temperature swing
	CatastropheThreshold     float64 `yaml:"catastrophe_threshold"`
	RadiationBackground      float64 `yaml:"radiation_background"`
	DisasterChance           float64 `yaml:"disaster_chance"`
	DisasterImpact           float64 `yaml:"disaster_impact"`

	GrowthRate           float64 `yaml:"growth_rate"`
	DeathRate            float64 `yaml:"death_rate"` // exponent of the age-decay term
	CompetitionIntensity float64 `yaml:"competition_intensity"`

	CarryingCapacity    float64 `yaml:"carrying_capacity"` // soft population ceiling
	ProsperityThreshold float64 `yaml:"prosperity_threshold"`
	ProsperityBoost     float64 `yaml:"prosperity_boost"`
	OptimalDensity      float64 `yaml:"optimal_density"`
	DensityEfficiency   float64 `yaml:"density_efficiency"`

	// Adaptive environment: the world reacts to population trends using a
	// rolling memory of past populations.
	AdaptiveEnvironment bool    `yaml:"adaptive_environment"`
	MemoryWindow        int     `yaml:"memory_window"`
	MemorySensitivity   float64 `yaml:"memory_sensitivity"`
}

// DefaultMemoryWindow bounds the population-history buffer when a world
// does not declare its own.
const DefaultMemoryWindow = 50

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
