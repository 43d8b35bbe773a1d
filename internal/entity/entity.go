// Package entity provides the agent data model, trait parameters, and the
// per-epoch state update rules.
package entity

import (
	"fmt"
)

// Status is the derived classification of an entity. It is recomputed from
// (health, energy, age, params) after every mutation and never stored as
// independent truth.
type Status uint8

const (
	StatusAlive Status = iota
	StatusThriving
	StatusStruggling
	StatusDormant   // reserved, no behavior attached
	StatusExploring // reserved, no behavior attached
	StatusDead
)

func (s Status) String() string {
	switch s {
	case StatusAlive:
		return "alive"
	case StatusThriving:
		return "thriving"
	case StatusStruggling:
		return "struggling"
	case StatusDormant:
		return "dormant"
	case StatusExploring:
		return "exploring"
	case StatusDead:
		return "dead"
	}
	return "unknown"
}

// DefaultMemorySpan bounds how many resource-condition samples an entity
// remembers.
const DefaultMemorySpan = 20

// Entity is an autonomous agent in the simulation.
type Entity struct {
	ID   string
	Name string

	Age    int
	Health float64 // 0–100
	Energy float64 // 0–100
	Status Status

	Params Params

	// Rolling record of recent resource conditions, oldest first.
	Memory     []float64
	MemorySpan int
}

// New creates an entity with the given identity, starting pools, and trait
// parameters. The parameters are validated before the entity can be
// admitted to a population.
func New(id, name string, health, energy float64, params Params) (*Entity, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	e := &Entity{
		ID:         id,
		Name:       name,
		Health:     clamp(health, 0, 100),
		Energy:     clamp(energy, 0, 100),
		Params:     params,
		MemorySpan: DefaultMemorySpan,
	}
	e.Reclassify()
	return e, nil
}

// Alive reports whether the entity is still part of the living population.
func (e *Entity) Alive() bool {
	return e.Status != StatusDead
}

// Reclassify recomputes Status. Precedence is strict top to bottom; death is
// terminal and forces both pools to zero.
func (e *Entity) Reclassify() {
	switch {
	case e.Health <= 0 || e.Age >= e.Params.MaxAge:
		e.Status = StatusDead
		e.Health = 0
		e.Energy = 0
	case e.Health >= e.Params.ThrivingThresholdHealth && e.Energy >= e.Params.ThrivingThresholdEnergy:
		e.Status = StatusThriving
	case e.Health <= e.Params.StrugglingThresholdHealth || e.Energy <= e.Params.StrugglingThresholdEnergy:
		e.Status = StatusStruggling
	default:
		e.Status = StatusAlive
	}
}

// Kill zeroes the entity's health and reclassifies it, used by bulk-cull
// events.
func (e *Entity) Kill() {
	e.Health = 0
	e.Reclassify()
}

// Remember appends a resource-condition sample to the environmental memory,
// evicting the oldest sample beyond the span.
func (e *Entity) Remember(condition float64) {
	e.Memory = append(e.Memory, condition)
	if len(e.Memory) > e.MemorySpan {
		e.Memory = e.Memory[1:]
	}
}

// ForgetAll clears the environmental memory (evolutionary leaps discard old
// pressures).
func (e *Entity) ForgetAll() {
	e.Memory = e.Memory[:0]
}

func (e *Entity) String() string {
	return fmt.Sprintf("Entity(%s: %s Age:%d, Health:%.1f, Energy:%.1f, Status:%q)",
		e.ID, e.Name, e.Age, e.Health, e.Energy, e.Status)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
