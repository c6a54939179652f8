package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/vsinha/stockpile/pkg/application/dto"
)

// Config holds configuration for output generation
type Config struct {
	Format string
	Writer io.Writer

	// Trip presentation
	Limit    int
	TopItems int
	AllItems bool
}

func (c Config) writer() io.Writer {
	if c.Writer == nil {
		return os.Stdout
	}
	return c.Writer
}

// GenerateReport prints a requirement report in the configured format
func GenerateReport(report *dto.RequirementReport, config Config) error {
	switch config.Format {
	case "", "text":
		return writeReportText(config.writer(), report)
	case "json":
		return writeJSON(config.writer(), report)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// GenerateTrips prints a trip plan in the configured format
func GenerateTrips(plan *dto.TripPlan, config Config) error {
	switch config.Format {
	case "", "text":
		return writeTripsText(config.writer(), plan, config)
	case "json":
		limited := *plan
		limited.Trips = limitTrips(plan, config.Limit)
		return writeJSON(config.writer(), &limited)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

func writeJSON(w io.Writer, v any) error {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}
