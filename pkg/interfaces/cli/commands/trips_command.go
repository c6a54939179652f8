package commands

import (
	"context"
	"fmt"

	"github.com/vsinha/stockpile/pkg/application/services/trips"
	"github.com/vsinha/stockpile/pkg/interfaces/cli/output"
)

// TripsCommand builds the report and prints ranked transfer trip suggestions
type TripsCommand struct {
	config Config
}

// NewTripsCommand creates a new trips command with the given configuration
func NewTripsCommand(config Config) *TripsCommand {
	return &TripsCommand{
		config: config,
	}
}

// Execute runs the trips command
func (c *TripsCommand) Execute(ctx context.Context) error {
	eventStore, err := newEventStore(c.config)
	if err != nil {
		return err
	}

	report, err := buildReport(ctx, c.config, eventStore)
	if err != nil {
		return err
	}

	if c.config.Verbose {
		fmt.Fprintln(c.config.stderr(), "🚚 Planning transfer trips...")
	}

	plan, err := trips.NewPlanner(eventStore).PlanReport(ctx, report)
	if err != nil {
		return fmt.Errorf("error planning trips: %w", err)
	}

	if c.config.XLSXFile != "" {
		wb, err := output.NewExporter().ExportTrips(plan)
		if err != nil {
			return fmt.Errorf("error building trips workbook: %w", err)
		}
		if err := output.SaveWorkbook(wb, c.config.XLSXFile); err != nil {
			return err
		}
		if c.config.Verbose {
			fmt.Fprintf(c.config.stderr(), "💾 Workbook saved to: %s\n", c.config.XLSXFile)
		}
	}

	err = output.GenerateTrips(plan, output.Config{
		Format:   c.config.Format,
		Writer:   c.config.stdout(),
		Limit:    c.config.Limit,
		TopItems: c.config.TopItems,
		AllItems: c.config.AllItems,
	})
	if err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	return nil
}
