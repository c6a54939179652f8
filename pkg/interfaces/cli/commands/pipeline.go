package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/vsinha/stockpile/pkg/application/dto"
	"github.com/vsinha/stockpile/pkg/application/services/report"
	"github.com/vsinha/stockpile/pkg/config"
	"github.com/vsinha/stockpile/pkg/infrastructure/events"
	"github.com/vsinha/stockpile/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/stockpile/pkg/infrastructure/repositories/tsv"
)

// buildReport loads every input and builds the requirement report. Any
// missing input aborts before a report is built.
func buildReport(ctx context.Context, cfg Config, eventStore events.EventStore) (*dto.RequirementReport, error) {
	paths, err := cfg.app().ResolvePaths()
	if err != nil {
		return nil, err
	}

	runID := report.NewRunID()
	progress := cfg.stderr()

	if cfg.Verbose {
		printHeader(progress, runID, paths)
		fmt.Fprintln(progress, "📂 Loading data from TSV files...")
	}

	loader := tsv.NewLoader()

	stockpiles, err := loader.LoadStockpiles(paths.StockpilesFile)
	if err != nil {
		return nil, fmt.Errorf("error loading stockpiles: %w", err)
	}

	requirements, err := loader.LoadRequirements(paths.RequirementsFile)
	if err != nil {
		return nil, fmt.Errorf("error loading base requirements: %w", err)
	}

	snapshot, err := tsv.LatestSnapshot(paths.StockDir)
	if err != nil {
		return nil, fmt.Errorf("error selecting stock snapshot: %w", err)
	}
	if err := eventStore.AppendEvent(runID, events.NewSnapshotSelectedEvent(runID, snapshot)); err != nil {
		return nil, err
	}

	levels, err := loader.LoadStockLevels(snapshot.Path)
	if err != nil {
		return nil, fmt.Errorf("error loading current stock: %w", err)
	}
	if err := eventStore.AppendEvent(runID, events.NewInputsLoadedEvent(runID, len(stockpiles), len(requirements), len(levels))); err != nil {
		return nil, err
	}

	stockpileRepo := memory.NewStockpileRepository(len(stockpiles))
	if err := stockpileRepo.LoadStockpiles(stockpiles); err != nil {
		return nil, fmt.Errorf("failed to load stockpiles into repository: %w", err)
	}

	requirementRepo := memory.NewRequirementRepository(len(requirements))
	if err := requirementRepo.LoadRequirements(requirements); err != nil {
		return nil, fmt.Errorf("failed to load requirements into repository: %w", err)
	}

	stockRepo := memory.NewStockRepository(snapshot)
	if err := stockRepo.LoadStockLevels(levels); err != nil {
		return nil, fmt.Errorf("failed to load stock levels into repository: %w", err)
	}

	if cfg.Verbose {
		fmt.Fprintln(progress, "🔄 Building requirement report...")
	}

	result, err := report.NewService(eventStore).Build(ctx, runID, stockpileRepo, requirementRepo, stockRepo)
	if err != nil {
		return nil, fmt.Errorf("error building report: %w", err)
	}

	return result, nil
}

// newEventStore creates the run's event store; in verbose mode every event is echoed
func newEventStore(cfg Config) (*events.InMemoryEventStore, error) {
	store := events.NewInMemoryEventStore()
	if !cfg.Verbose {
		return store, nil
	}

	progress := cfg.stderr()
	err := store.Subscribe(events.AllEventTypes, events.HandlerFunc(func(e events.Event) error {
		return printEvent(progress, e)
	}))
	if err != nil {
		return nil, err
	}
	return store, nil
}

func printEvent(w io.Writer, e events.Event) error {
	var err error
	switch data := e.Data().(type) {
	case events.SnapshotSelected:
		_, err = fmt.Fprintf(w, "🗂  Using snapshot %s (modified %s)\n",
			data.Snapshot.Path, data.Snapshot.ModifiedAt.Format("2006-01-02 15:04:05"))
	case events.InputsLoaded:
		_, err = fmt.Fprintf(w, "✅ Data loaded successfully:\n  Stockpiles: %d\n  Requirements: %d\n  Stock rows: %d\n",
			data.Stockpiles, data.Requirements, data.StockLevels)
	case events.ReportBuilt:
		_, err = fmt.Fprintf(w, "✅ Report built: %d rows, %d deficits, %d surpluses\n",
			data.Rows, data.Deficits, data.Surpluses)
	case events.TripsPlanned:
		_, err = fmt.Fprintf(w, "✅ Trips planned in %v: %d candidates, %d trips\n",
			data.Duration, data.Candidates, data.Trips)
	default:
		_, err = fmt.Fprintf(w, "• %s\n", e.Type())
	}
	return err
}

func printHeader(w io.Writer, runID string, paths config.Paths) {
	fmt.Fprintf(w, "🚀 Stockpile planner (run %s)\n", runID)
	fmt.Fprintf(w, "Input files:\n")
	fmt.Fprintf(w, "  Stockpiles: %s\n", paths.StockpilesFile)
	fmt.Fprintf(w, "  Requirements: %s\n", paths.RequirementsFile)
	fmt.Fprintf(w, "  Current stock: %s\n", paths.StockDir)
	fmt.Fprintln(w)
}
