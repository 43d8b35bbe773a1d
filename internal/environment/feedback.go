package environment

// ApplyFeedback mutates the factors based on current population pressure.
// Growing populations deplete resources and pollute; crashes let the world
// heal. Runs once per epoch while survivors remain.
func (f *Factors) ApplyFeedback(population int) {
	pressure := float64(population) / (f.CarryingCapacity + 1)

	// Resource feedback: scarcity scales with pressure.
	f.ResourceAvailability *= 1 - 0.1*pressure
	f.ResourceAvailability = max(f.ResourceAvailability, 0.05)

	// Pollution feedback: waste accumulates under pressure, clears without it.
	f.Pollution = clamp(f.Pollution+0.05*pressure-0.02*(1-pressure), 0.0, 1.0)

	// Mutation pressure: background radiation slowly raises the rate.
	f.MutationRate = min(f.MutationRate*(1+0.1*f.RadiationBackground), 1.0)

	// Carrying capacity evolves: persistent overshoot degrades the
	// ecosystem, a sustainable load expands the niche.
	if pressure > 0.8 {
		f.CarryingCapacity *= 0.995
	} else if pressure > 0.3 && pressure < 0.6 {
		f.CarryingCapacity *= 1.002
	}
	f.CarryingCapacity = clamp(f.CarryingCapacity, 50, 10000)

	// Pollution and radiation feed disaster frequency and impact.
	f.DisasterChance = min(f.DisasterChance+0.01*f.Pollution, 1.0)
	f.DisasterImpact = min(f.DisasterImpact+0.01*f.RadiationBackground, 1.0)
}
