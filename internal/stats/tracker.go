// Package stats consumes the engine's event stream: running totals,
// per-epoch telemetry history, and the run summary record.
package stats

import (
	"log/slog"

	"github.com/talgya/lifeform/internal/sim"
)

// Tracker tallies events from one run and collects the per-epoch history.
// It implements sim.Sink and sim.EpochSink.
type Tracker struct {
	Deaths    int
	Births    int
	Disasters int
	Mutations int
	Booms     int

	History []EpochRecord
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Record consumes one engine event, updating the matching total.
func (t *Tracker) Record(ev sim.Event) {
	switch ev.Kind {
	case sim.EventDeath:
		t.Deaths++
		slog.Info("entity death",
			"epoch", ev.Epoch, "id", ev.EntityID, "name", ev.EntityName, "age", ev.Age)
	case sim.EventBirth:
		t.Births++
		slog.Debug("entity birth",
			"epoch", ev.Epoch, "id", ev.EntityID, "name", ev.EntityName, "parent", ev.ParentID)
	case sim.EventDisaster:
		t.Disasters++
		slog.Warn("disaster",
			"epoch", ev.Epoch, "label", ev.Label, "removed", ev.Removed)
	case sim.EventMutation:
		t.Mutations++
		slog.Debug("mutation",
			"trait", ev.Trait, "old", ev.OldValue, "new", ev.NewValue)
	case sim.EventBoom:
		t.Booms++
		slog.Info("baby boom", "epoch", ev.Epoch, "born", ev.Count)
	default:
		slog.Warn("unknown event kind", "kind", ev.Kind)
	}
}

// RecordEpoch appends one end-of-epoch snapshot to the history.
func (t *Tracker) RecordEpoch(snap sim.EpochSnapshot) {
	t.History = append(t.History, EpochRecord{
		Epoch:      snap.Epoch,
		Alive:      snap.Alive,
		Thriving:   snap.Thriving,
		Struggling: snap.Struggling,
		Resources:  snap.ResourceAvailability,
		Temp:       snap.Temperature,
		Pollution:  snap.Pollution,
		Mutation:   snap.MutationRate,
	})
}

// Summarize builds the per-run summary record from the engine result and
// this tracker's totals. The caller assigns RunID before persisting.
func (t *Tracker) Summarize(res sim.Result) Summary {
	return Summary{
		WorldName:     res.WorldName,
		Epochs:        res.EpochsRun,
		TotalEntities: res.TotalCreated,
		AliveAtEnd:    res.Alive,
		Struggling:    res.Struggling,
		Thriving:      res.Thriving,
		Deaths:        t.Deaths,
		Births:        t.Births,
		Disasters:     t.Disasters,
		Mutations:     t.Mutations,
		MaxEntities:   res.MaxAlive,
	}
}

// Summary is the per-run totals record appended to the run store.
type Summary struct {
	ID            int64  `db:"id"`
	WorldName     string `db:"world_name"`
	RunID         string `db:"run_id"`
	Epochs        int    `db:"epochs"`
	TotalEntities int    `db:"total_entities"`
	AliveAtEnd    int    `db:"total_alive_at_conclusion"`
	Struggling    int    `db:"total_struggling"`
	Thriving      int    `db:"total_thriving"`
	Deaths        int    `db:"total_deaths"`
	Births        int    `db:"total_births"`
	Disasters     int    `db:"total_disasters"`
	Mutations     int    `db:"total_mutations"`
	MaxEntities   int    `db:"max_entities"`
}
