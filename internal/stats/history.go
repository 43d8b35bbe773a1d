package stats

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"
)

// EpochRecord is one row of the per-epoch telemetry history.
type EpochRecord struct {
	Epoch      int     `csv:"epoch"`
	Alive      int     `csv:"alive"`
	Thriving   int     `csv:"thriving"`
	Struggling int     `csv:"struggling"`
	Resources  float64 `csv:"resource_availability"`
	Temp       float64 `csv:"temperature"`
	Pollution  float64 `csv:"pollution"`
	Mutation   float64 `csv:"mutation_rate"`
}

// WriteHistoryCSV writes the collected epoch history to a CSV file.
func (t *Tracker) WriteHistoryCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create history file: %w", err)
	}
	defer f.Close()

	if err := gocsv.Marshal(t.History, f); err != nil {
		return fmt.Errorf("write history csv: %w", err)
	}
	return nil
}

// MeanAlive returns the average live population across the recorded
// history, 0 if no epochs were recorded.
func (t *Tracker) MeanAlive() float64 {
	if len(t.History) == 0 {
		return 0
	}
	alive := make([]float64, len(t.History))
	for i, r := range t.History {
		alive[i] = float64(r.Alive)
	}
	return stat.Mean(alive, nil)
}

// MeanAliveAtEnd averages the alive-at-conclusion totals of a set of run
// summaries, used by the cross-run report.
func MeanAliveAtEnd(runs []Summary) float64 {
	if len(runs) == 0 {
		return 0
	}
	vals := make([]float64, len(runs))
	for i, r := range runs {
		vals[i] = float64(r.AliveAtEnd)
	}
	return stat.Mean(vals, nil)
}
