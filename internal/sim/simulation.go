// Package sim ties together the entity lifecycle, event engine,
// reproduction, adaptation, and population-regulation systems and runs them
// each epoch.
package sim

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"github.com/talgya/lifeform/internal/entity"
	"github.com/talgya/lifeform/internal/environment"
	"github.com/talgya/lifeform/internal/namegen"
	"github.com/talgya/lifeform/internal/worlds"
)

// Config holds the run parameters for one simulation.
type Config struct {
	World           *worlds.World
	InitialEntities int
	Epochs          int
	Seed            int64
	Sink            Sink // optional event-stream consumer
}

// Simulation owns the entity collection and the environment factors for the
// lifetime of one run. Single-threaded; every stochastic draw flows from
// the one seeded generator, so identical seeds reproduce identical runs.
type Simulation struct {
	Factors  environment.Factors
	Entities []*entity.Entity

	WorldKey     string
	Epochs       int // configured epoch budget
	CurrentEpoch int
	TotalCreated int
	MaxAlive     int

	boomCount     int
	lastBoomEpoch int
	epochsRun     int

	// Rolling population history feeding the adaptive environment.
	history []float64

	// Per-run drift bias applied to the adaptation engine's random drift.
	drift float64

	rng    *rand.Rand
	season *environment.Season
	names  *namegen.Generator
	sink   Sink
}

// New seeds a simulation from a validated world and run parameters.
func New(cfg Config) (*Simulation, error) {
	if cfg.World == nil {
		return nil, fmt.Errorf("simulation requires a world")
	}
	if cfg.Epochs <= 0 {
		return nil, fmt.Errorf("simulation requires a positive epoch count, got %d", cfg.Epochs)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	s := &Simulation{
		Factors:       cfg.World.Factors,
		WorldKey:      cfg.World.Key,
		Epochs:        cfg.Epochs,
		lastBoomEpoch: -20, // first boom is allowed once the cooldown logic permits
		drift:         0.95 + rng.Float64()*0.10,
		rng:           rng,
		season:        environment.NewSeason(cfg.Seed, cfg.World.Factors.SeasonalVariation),
		names:         namegen.New(rng),
		sink:          cfg.Sink,
	}

	for i := 0; i < cfg.InitialEntities; i++ {
		e, err := s.spawn(entity.DefaultParams(), 50+rng.Float64()*50, 50+rng.Float64()*50)
		if err != nil {
			return nil, err
		}
		if err := s.AddEntity(e); err != nil {
			return nil, err
		}
	}

	slog.Info("simulation initialized",
		"world", s.WorldKey, "entities", len(s.Entities), "epochs", s.Epochs, "seed", cfg.Seed)
	return s, nil
}

// spawn creates a named entity without admitting it to the population.
func (s *Simulation) spawn(params entity.Params, health, energy float64) (*entity.Entity, error) {
	id := uuid.NewString()[:8]
	return entity.New(id, s.names.Name(), health, energy, params)
}

// AddEntity validates and admits an entity to the population. Invalid trait
// parameters reject the entity before it is ever processed.
func (s *Simulation) AddEntity(e *entity.Entity) error {
	if err := e.Params.Validate(); err != nil {
		return fmt.Errorf("admit entity %s: %w", e.ID, err)
	}
	s.Entities = append(s.Entities, e)
	s.TotalCreated++
	slog.Debug("added entity", "id", e.ID, "name", e.Name)
	return nil
}

// AliveCount returns the number of live entities.
func (s *Simulation) AliveCount() int {
	n := 0
	for _, e := range s.Entities {
		if e.Alive() {
			n++
		}
	}
	return n
}

func (s *Simulation) alive() []*entity.Entity {
	live := make([]*entity.Entity, 0, len(s.Entities))
	for _, e := range s.Entities {
		if e.Alive() {
			live = append(live, e)
		}
	}
	return live
}

// Result summarizes the engine-owned counters at the end of a run. Event
// totals (births, deaths, disasters, mutations) belong to the stream
// consumer.
type Result struct {
	WorldKey     string
	WorldName    string
	EpochsRun    int
	TotalCreated int
	MaxAlive     int
	Alive        int
	Struggling   int
	Thriving     int
}

// Run executes the configured number of epochs, ending early (not an error)
// if the population dies out. Returns the engine-side result counters.
func (s *Simulation) Run() Result {
	slog.Info("run started", "world", s.Factors.Name, "description", s.Factors.Description)

	for t := 0; t < s.Epochs; t++ {
		s.CurrentEpoch = t
		s.epochsRun++

		if !s.runEpoch(t) {
			slog.Info("all entities have died, ending early", "epoch", t)
			break
		}
	}

	res := s.result()
	slog.Info("run finished",
		"world", s.WorldKey,
		"epochs_run", res.EpochsRun,
		"alive", res.Alive,
		"thriving", res.Thriving,
		"struggling", res.Struggling,
		"total_created", res.TotalCreated,
		"max_alive", res.MaxAlive,
	)
	return res
}

// runEpoch advances the simulation one epoch. The stage order is fixed:
// events, lifecycle, interactions, reproduction, adaptation, cull,
// regulation, environment update. Later stages read state the earlier ones
// mutated. Reports false once no live entities remain.
func (s *Simulation) runEpoch(t int) bool {
	// Stochastic events fire against the pre-update population.
	s.triggerWildcard()
	s.triggerPredator(predatorSeverity)
	s.triggerDisaster(disasterSeverity)

	slog.Debug("environment",
		"epoch", t,
		"resources", s.Factors.ResourceAvailability,
		"temperature", s.Factors.Temperature,
		"pollution", s.Factors.Pollution,
	)

	// Per-entity lifecycle: age, energy, health, status.
	for _, e := range s.Entities {
		e.Live(&s.Factors)
	}

	s.handleInteractions()
	s.handleReproduction()
	s.adaptEntities()

	// Reclassify everything, emit deaths, and drop the dead.
	survivors := s.Entities[:0]
	for _, e := range s.Entities {
		e.Reclassify()
		if e.Alive() {
			survivors = append(survivors, e)
		} else {
			s.emit(Event{Kind: EventDeath, EntityID: e.ID, EntityName: e.Name, Age: e.Age})
			slog.Debug("entity died", "id", e.ID, "name", e.Name, "age", e.Age)
		}
	}
	s.Entities = survivors

	aliveCount := len(s.Entities)
	s.history = append(s.history, float64(aliveCount))
	if len(s.history) > s.Factors.MemoryWindow {
		s.history = s.history[1:]
	}

	if aliveCount == 0 {
		return false
	}

	s.efficiencyModifier(aliveCount)

	if aliveCount > s.MaxAlive {
		s.MaxAlive = aliveCount
	}

	if float64(aliveCount) >= s.Factors.CarryingCapacity {
		s.overPopulation()
	}

	s.maybeBabyBoom(aliveCount)

	// Environment for the next epoch: baseline drift, population feedback,
	// then the adaptive override if the world supports it.
	s.Factors.Drift(t, s.Epochs, s.season)
	s.Factors.ApplyFeedback(aliveCount)
	s.Factors.Adapt(aliveCount, s.history, s.Factors.MemorySensitivity)

	thriving, struggling := s.countStatuses()
	s.emitSnapshot(aliveCount, thriving, struggling)
	slog.Info("epoch complete",
		"epoch", t, "alive", aliveCount, "thriving", thriving, "struggling", struggling)
	return true
}

func (s *Simulation) countStatuses() (thriving, struggling int) {
	for _, e := range s.Entities {
		switch e.Status {
		case entity.StatusThriving:
			thriving++
		case entity.StatusStruggling:
			struggling++
		}
	}
	return
}

// PopulationHistory exposes a copy of the rolling population history.
func (s *Simulation) PopulationHistory() []float64 {
	out := make([]float64, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Simulation) result() Result {
	thriving, struggling := s.countStatuses()
	return Result{
		WorldKey:     s.WorldKey,
		WorldName:    s.Factors.Name,
		EpochsRun:    s.epochsRun,
		TotalCreated: s.TotalCreated,
		MaxAlive:     s.MaxAlive,
		Alive:        s.AliveCount(),
		Struggling:   struggling,
		Thriving:     thriving,
	}
}
