package events

import (
	"time"

	"github.com/vsinha/stockpile/pkg/domain/entities"
)

const (
	SnapshotSelectedEvent = "snapshot.selected"
	InputsLoadedEvent     = "inputs.loaded"
	ReportBuiltEvent      = "report.built"
	TripsPlannedEvent     = "trips.planned"
)

// AllEventTypes lists every event a run can publish
var AllEventTypes = []string{
	SnapshotSelectedEvent,
	InputsLoadedEvent,
	ReportBuiltEvent,
	TripsPlannedEvent,
}

type SnapshotSelected struct {
	Snapshot entities.Snapshot `json:"snapshot"`
}

type InputsLoaded struct {
	Stockpiles   int `json:"stockpiles"`
	Requirements int `json:"requirements"`
	StockLevels  int `json:"stock_levels"`
}

type ReportBuilt struct {
	Rows      int `json:"rows"`
	Deficits  int `json:"deficits"`
	Surpluses int `json:"surpluses"`
}

type TripsPlanned struct {
	Candidates int           `json:"candidates"`
	Trips      int           `json:"trips"`
	Duration   time.Duration `json:"duration"`
}

func NewSnapshotSelectedEvent(runID string, snapshot entities.Snapshot) Event {
	return NewEvent(SnapshotSelectedEvent, runID, SnapshotSelected{Snapshot: snapshot})
}

func NewInputsLoadedEvent(runID string, stockpiles, requirements, stockLevels int) Event {
	return NewEvent(InputsLoadedEvent, runID, InputsLoaded{
		Stockpiles:   stockpiles,
		Requirements: requirements,
		StockLevels:  stockLevels,
	})
}

func NewReportBuiltEvent(runID string, rows, deficits, surpluses int) Event {
	return NewEvent(ReportBuiltEvent, runID, ReportBuilt{
		Rows:      rows,
		Deficits:  deficits,
		Surpluses: surpluses,
	})
}

func NewTripsPlannedEvent(runID string, candidates, trips int, duration time.Duration) Event {
	return NewEvent(TripsPlannedEvent, runID, TripsPlanned{
		Candidates: candidates,
		Trips:      trips,
		Duration:   duration,
	})
}
