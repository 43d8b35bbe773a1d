package sim

// EventKind classifies entries in the typed event stream the engine emits.
type EventKind uint8

const (
	EventBirth EventKind = iota
	EventDeath
	EventDisaster
	EventMutation
	EventBoom
)

func (k EventKind) String() string {
	switch k {
	case EventBirth:
		return "birth"
	case EventDeath:
		return "death"
	case EventDisaster:
		return "disaster"
	case EventMutation:
		return "mutation"
	case EventBoom:
		return "boom"
	}
	return "unknown"
}

// Event is one entry in the engine's event stream. Only the fields relevant
// to the Kind are populated; the contract is the kind and payload, not any
// textual rendering.
type Event struct {
	Epoch int
	Kind  EventKind

	// Birth / death payload.
	EntityID   string
	EntityName string
	ParentID   string
	Age        int

	// Disaster payload.
	Label   string // e.g. predator type or "Natural Disaster"
	Removed int

	// Mutation payload.
	Trait    string
	OldValue float64
	NewValue float64

	// Boom payload.
	Count int
}

// Sink consumes the event stream. Implementations must not retain the
// Simulation; they only see events.
type Sink interface {
	Record(Event)
}

// EpochSnapshot captures the end-of-epoch population and headline
// environment state for telemetry consumers.
type EpochSnapshot struct {
	Epoch      int
	Alive      int
	Thriving   int
	Struggling int

	ResourceAvailability float64
	Temperature          float64
	Pollution            float64
	MutationRate         float64
}

// EpochSink is an optional extension of Sink for consumers that want the
// per-epoch snapshot in addition to discrete events.
type EpochSink interface {
	RecordEpoch(EpochSnapshot)
}

func (s *Simulation) emit(ev Event) {
	ev.Epoch = s.CurrentEpoch
	if s.sink != nil {
		s.sink.Record(ev)
	}
}

func (s *Simulation) emitSnapshot(alive, thriving, struggling int) {
	es, ok := s.sink.(EpochSink)
	if !ok {
		return
	}
	es.RecordEpoch(EpochSnapshot{
		Epoch:                s.CurrentEpoch,
		Alive:                alive,
		Thriving:             thriving,
		Struggling:           struggling,
		ResourceAvailability: s.Factors.ResourceAvailability,
		Temperature:          s.Factors.Temperature,
		Pollution:            s.Factors.Pollution,
		MutationRate:         s.Factors.MutationRate,
	})
}
