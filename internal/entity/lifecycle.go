package entity

import (
	"math"

	"github.com/talgya/lifeform/internal/environment"
)

// EnergyChange computes the net energy delta for one epoch: foraging gain
// from available resources minus metabolism, a sickness penalty below 50
// health, and a starvation penalty when resources run short.
func (e *Entity) EnergyChange(f *environment.Factors) float64 {
	consumed := e.Params.MetabolismRate
	if e.Health < 50.0 {
		consumed += (50.0 - e.Health) * 0.1
	}

	gained := f.ResourceAvailability * e.Params.ForagingEfficiency * 1.8

	if f.ResourceAvailability < 1.0 {
		consumed += (1.0 - f.ResourceAvailability) * 5.0
	}

	return gained - consumed
}

// HealthChange computes the health delta for one epoch. Entities at or
// above 95 health only pay the base decay; otherwise energy surplus heals
// and deficit harms, with temperature, pollution, radiation, and age decay
// stacked on top.
func (e *Entity) HealthChange(f *environment.Factors) float64 {
	const baseDecay = -0.005
	change := baseDecay

	decay := e.Params.HealthDecayRate
	if f.RadiationBackground > 0.2 {
		decay += (f.RadiationBackground - 0.2) * (1.5 - e.Params.Resilience) * 0.5
	}

	if e.Health >= 95.0 {
		return baseDecay // hard ceiling, no further gain
	}

	if e.Energy > 50.0 {
		change += (e.Energy - 50.0) * e.Params.HealthRecoveryRate * 0.1
	} else {
		change -= (50.0 - e.Energy) * decay * 0.1
	}

	if f.Temperature < 10.0 || f.Temperature > 35.0 {
		change -= math.Abs(f.Temperature-22.5) * (1.0 - e.Params.Resilience) * 0.1
	}

	if f.Pollution > 0.1 {
		change -= f.Pollution * (1.3 - e.Params.Resilience) * 3.0
	}

	change -= 0.5 * math.Pow(float64(e.Age), f.DeathRate)

	return change
}

// Live applies one epoch of aging to a live entity: age advances, energy
// and health move by their computed deltas and clamp to [0,100], and the
// status is reclassified. Dead entities are untouched.
func (e *Entity) Live(f *environment.Factors) {
	if !e.Alive() {
		return
	}
	e.Age++
	e.Energy = clamp(e.Energy+e.EnergyChange(f), 0, 100)
	e.Health = clamp(e.Health+e.HealthChange(f), 0, 100)
	e.Reclassify()
}
