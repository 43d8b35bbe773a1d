package entity

import (
	"fmt"
	"strings"
)

// Params is the trait parameter set of a single entity. Offspring copy the
// parent's params; the mutation and adaptation engines then adjust
// individual fields within declared bounds.
type Params struct {
	MaxAge int

	MetabolismRate     float64
	HealthRecoveryRate float64
	HealthDecayRate    float64
	Resilience         float64
	ForagingEfficiency float64

	ThrivingThresholdHealth   float64
	ThrivingThresholdEnergy   float64
	StrugglingThresholdHealth float64
	StrugglingThresholdEnergy float64

	ReproductionChance float64
	MinReproductionAge int

	Aggression  float64
	Cooperation float64
}

// DefaultParams returns the baseline trait set every seeded entity starts
// from.
func DefaultParams() Params {
	return Params{
		MaxAge:                    99,
		MetabolismRate:            0.3,
		HealthRecoveryRate:        1.15,
		HealthDecayRate:           1.35,
		Resilience:                0.18,
		ForagingEfficiency:        0.35,
		ThrivingThresholdHealth:   65.0,
		ThrivingThresholdEnergy:   60.0,
		StrugglingThresholdHealth: 33.0,
		StrugglingThresholdEnergy: 22.0,
		ReproductionChance:        1.3,
		MinReproductionAge:        13,
		Aggression:                0.3,
		Cooperation:               0.1,
	}
}

// MissingParameterError reports required trait parameters that are absent
// (zero-valued) from a Params record. Entities carrying such a record are
// rejected before admission to a population.
type MissingParameterError struct {
	Keys []string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing entity parameters: %s", strings.Join(e.Keys, ", "))
}

// Validate checks that every required trait is set. Aggression and
// cooperation may legitimately be zero and are not required.
func (p Params) Validate() error {
	var missing []string
	check := func(name string, v float64) {
		if v == 0 {
			missing = append(missing, name)
		}
	}

	check("max_age", float64(p.MaxAge))
	check("metabolism_rate", p.MetabolismRate)
	check("health_recovery_rate", p.HealthRecoveryRate)
	check("health_decay_rate", p.HealthDecayRate)
	check("resilience", p.Resilience)
	check("foraging_efficiency", p.ForagingEfficiency)
	check("thriving_threshold_health", p.ThrivingThresholdHealth)
	check("thriving_threshold_energy", p.ThrivingThresholdEnergy)
	check("struggling_threshold_health", p.StrugglingThresholdHealth)
	check("struggling_threshold_energy", p.StrugglingThresholdEnergy)
	check("reproduction_chance", p.ReproductionChance)

	if len(missing) > 0 {
		return &MissingParameterError{Keys: missing}
	}
	return nil
}

// TraitKind distinguishes integer-valued traits, which round after
// mutation.
type TraitKind uint8

const (
	TraitFloat TraitKind = iota
	TraitInt
)

// TraitBound declares the mutation range of one mutable trait. The mutation
// engine is generic over this table; the table is data, not code.
type TraitBound struct {
	Name string
	Min  float64
	Max  float64
	Kind TraitKind
}

// MutableTraits is the fixed, ordered table of traits the reproduction
// mutation engine may perturb. Order matters for run reproducibility.
var MutableTraits = []TraitBound{
	{Name: "max_age", Min: 50, Max: 99, Kind: TraitInt},
	{Name: "metabolism_rate", Min: 0.2, Max: 0.9, Kind: TraitFloat},
	{Name: "resilience", Min: 0.2, Max: 0.8, Kind: TraitFloat},
	{Name: "reproduction_chance", Min: 0.01, Max: 0.15, Kind: TraitFloat},
	{Name: "aggression", Min: 0.0, Max: 0.9, Kind: TraitFloat},
}

// Trait returns the current value of a mutable trait by name.
func (p *Params) Trait(name string) float64 {
	switch name {
	case "max_age":
		return float64(p.MaxAge)
	case "metabolism_rate":
		return p.MetabolismRate
	case "resilience":
		return p.Resilience
	case "reproduction_chance":
		return p.ReproductionChance
	case "aggression":
		return p.Aggression
	}
	return 0
}

// SetTrait stores a mutated trait value by name. Values are assumed to be
// clamped by the caller; integer traits are rounded by the caller.
func (p *Params) SetTrait(name string, v float64) {
	switch name {
	case "max_age":
		p.MaxAge = int(v)
	case "metabolism_rate":
		p.MetabolismRate = v
	case "resilience":
		p.Resilience = v
	case "reproduction_chance":
		p.ReproductionChance = v
	case "aggression":
		p.Aggression = v
	}
}
