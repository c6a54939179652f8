package dto

import (
	"time"

	"github.com/vsinha/stockpile/pkg/domain/entities"
)

// RequirementReport contains the complete output of a report run
type RequirementReport struct {
	RunID       string                     `json:"run_id"`
	GeneratedAt time.Time                  `json:"generated_at"`
	Snapshot    entities.Snapshot          `json:"snapshot"`
	Rows        []entities.ReportRow       `json:"rows"`
	Summary     []entities.LocationSummary `json:"summary"`
}

// TripPlan contains the ranked transfer suggestions derived from a report
type TripPlan struct {
	RunID      string                    `json:"run_id"`
	Candidates int                       `json:"candidates"`
	Trips      []entities.AggregatedTrip `json:"trips"`
}
