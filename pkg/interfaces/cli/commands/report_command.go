package commands

import (
	"context"
	"fmt"

	"github.com/vsinha/stockpile/pkg/interfaces/cli/output"
)

// ReportCommand builds and prints the deficit/surplus report
type ReportCommand struct {
	config Config
}

// NewReportCommand creates a new report command with the given configuration
func NewReportCommand(config Config) *ReportCommand {
	return &ReportCommand{
		config: config,
	}
}

// Execute runs the report command
func (c *ReportCommand) Execute(ctx context.Context) error {
	eventStore, err := newEventStore(c.config)
	if err != nil {
		return err
	}

	report, err := buildReport(ctx, c.config, eventStore)
	if err != nil {
		return err
	}

	if c.config.OutputFile != "" {
		if err := output.WriteReportTSV(c.config.OutputFile, report.Rows); err != nil {
			return fmt.Errorf("error writing report TSV: %w", err)
		}
		if c.config.Verbose {
			fmt.Fprintf(c.config.stderr(), "💾 Report saved to: %s\n", c.config.OutputFile)
		}
	}

	if c.config.XLSXFile != "" {
		wb, err := output.NewExporter().ExportReport(report)
		if err != nil {
			return fmt.Errorf("error building report workbook: %w", err)
		}
		if err := output.SaveWorkbook(wb, c.config.XLSXFile); err != nil {
			return err
		}
		if c.config.Verbose {
			fmt.Fprintf(c.config.stderr(), "💾 Workbook saved to: %s\n", c.config.XLSXFile)
		}
	}

	err = output.GenerateReport(report, output.Config{
		Format: c.config.Format,
		Writer: c.config.stdout(),
	})
	if err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	return nil
}
