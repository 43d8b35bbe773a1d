// Command lifeform runs the Terminal Lifeform population simulation.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/talgya/lifeform/internal/persistence"
	"github.com/talgya/lifeform/internal/sim"
	"github.com/talgya/lifeform/internal/stats"
	"github.com/talgya/lifeform/internal/worlds"
)

func main() {
	root := &cobra.Command{
		Use:           "lifeform",
		Short:         "Population simulation of autonomous entities in a feedback-coupled world",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	}

	root.AddCommand(runCmd(), worldsCmd(), runsCmd())

	if err := root.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	var (
		worldName string
		worldFile string
		entities  int
		epochs    int
		seed      int64
		dbPath    string
		csvPath   string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one simulation and append its summary to the run store",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				world *worlds.World
				err   error
			)
			if worldFile != "" {
				world, err = worlds.LoadFile(worldFile)
			} else {
				world, err = worlds.Load(worldName)
			}
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}

			tracker := stats.NewTracker()
			simulation, err := sim.New(sim.Config{
				World:           world,
				InitialEntities: entities,
				Epochs:          epochs,
				Seed:            seed,
				Sink:            tracker,
			})
			if err != nil {
				return err
			}

			result := simulation.Run()

			summary := tracker.Summarize(result)
			summary.RunID = time.Now().Format(time.RFC3339)

			fmt.Printf("--- %s finished after %d epochs ---\n", result.WorldName, result.EpochsRun)
			fmt.Printf("created %d entities (max alive %d, mean alive %.1f)\n",
				summary.TotalEntities, summary.MaxEntities, tracker.MeanAlive())
			fmt.Printf("births %d, deaths %d, disasters %d, mutations %d\n",
				summary.Births, summary.Deaths, summary.Disasters, summary.Mutations)
			fmt.Printf("at conclusion: alive %d, thriving %d, struggling %d\n",
				summary.AliveAtEnd, summary.Thriving, summary.Struggling)

			if csvPath != "" {
				if err := tracker.WriteHistoryCSV(csvPath); err != nil {
					return err
				}
				slog.Info("epoch history written", "path", csvPath)
			}

			db, err := openStore(dbPath)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := db.AppendRun(summary); err != nil {
				return err
			}
			slog.Info("run summary appended", "path", dbPath, "run_id", summary.RunID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&worldName, "world", "w", "default", "world preset to run")
	cmd.Flags().StringVar(&worldFile, "world-file", "", "YAML world config file (overrides --world)")
	cmd.Flags().IntVarP(&entities, "entities", "n", 120, "initial entity count")
	cmd.Flags().IntVarP(&epochs, "epochs", "e", 200, "number of epochs to simulate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: current time)")
	cmd.Flags().StringVar(&dbPath, "db", "data/lifeform.db", "run store path")
	cmd.Flags().StringVar(&csvPath, "history-csv", "", "write per-epoch history to this CSV file")
	return cmd
}

func worldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "worlds",
		Short: "List the available world presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, key := range worlds.List() {
				name, description, err := worlds.Describe(key)
				if err != nil {
					return err
				}
				fmt.Printf("%-26s %s - %s\n", key, name, description)
			}
			return nil
		},
	}
}

func runsCmd() *cobra.Command {
	var (
		last   int
		dbPath string
	)

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Show the most recent persisted run summaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openStore(dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			runs, err := db.LastRuns(last)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Println("no simulation history found")
				return nil
			}

			fmt.Printf("last %d simulation runs:\n", len(runs))
			for _, r := range runs {
				fmt.Printf("%-20s alive_end=%-6d births=%-6d deaths=%-6d max=%d\n",
					r.WorldName, r.AliveAtEnd, r.Births, r.Deaths, r.MaxEntities)
			}
			fmt.Printf("average alive at conclusion: %.2f\n", stats.MeanAliveAtEnd(runs))
			return nil
		},
	}

	cmd.Flags().IntVar(&last, "last", 5, "number of recent runs to show")
	cmd.Flags().StringVar(&dbPath, "db", "data/lifeform.db", "run store path")
	return cmd
}

func openStore(path string) (*persistence.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	return persistence.Open(path)
}
