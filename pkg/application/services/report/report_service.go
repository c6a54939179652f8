// Package report joins the stockpile, requirement and stock tables into a
// deficit/surplus report with one row per (stockpile, item) pair.
package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/vsinha/stockpile/pkg/application/dto"
	"github.com/vsinha/stockpile/pkg/domain/entities"
	"github.com/vsinha/stockpile/pkg/domain/repositories"
	"github.com/vsinha/stockpile/pkg/infrastructure/events"
)

// Service builds requirement reports
type Service struct {
	eventStore events.EventStore
	now        func() time.Time
}

// NewService creates a report service. eventStore may be nil.
func NewService(eventStore events.EventStore) *Service {
	return &Service{
		eventStore: eventStore,
		now:        time.Now,
	}
}

// NewRunID returns a fresh identifier for one report-and-plan invocation
func NewRunID() string {
	return uuid.NewString()
}

// Build produces the full cross product of stockpiles and requirements.
// Rows are sorted by stockpile name then code name; a pair with no observed
// stock gets Current 0.
func (s *Service) Build(
	ctx context.Context,
	runID string,
	stockpileRepo repositories.StockpileRepository,
	requirementRepo repositories.RequirementRepository,
	stockRepo repositories.StockRepository,
) (*dto.RequirementReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if runID == "" {
		runID = NewRunID()
	}

	stockpiles, err := stockpileRepo.GetAllStockpiles()
	if err != nil {
		return nil, fmt.Errorf("failed to read stockpiles: %w", err)
	}
	requirements, err := requirementRepo.GetAllRequirements()
	if err != nil {
		return nil, fmt.Errorf("failed to read requirements: %w", err)
	}

	sortedStockpiles := make([]*entities.Stockpile, len(stockpiles))
	copy(sortedStockpiles, stockpiles)
	sort.SliceStable(sortedStockpiles, func(i, j int) bool {
		return sortedStockpiles[i].Name < sortedStockpiles[j].Name
	})

	sortedRequirements := make([]*entities.BaseRequirement, len(requirements))
	copy(sortedRequirements, requirements)
	sort.SliceStable(sortedRequirements, func(i, j int) bool {
		return sortedRequirements[i].CodeName < sortedRequirements[j].CodeName
	})

	rows := make([]entities.ReportRow, 0, len(sortedStockpiles)*len(sortedRequirements))
	deficits, surpluses := 0, 0
	for _, stockpile := range sortedStockpiles {
		for _, req := range sortedRequirements {
			current := stockRepo.GetQuantity(stockpile.Name, req.CodeName)
			row := entities.NewReportRow(*stockpile, *req, current)
			switch {
			case row.IsDeficit():
				deficits++
			case row.IsSurplus():
				surpluses++
			}
			rows = append(rows, row)
		}
	}

	result := &dto.RequirementReport{
		RunID:       runID,
		GeneratedAt: s.now(),
		Snapshot:    stockRepo.Snapshot(),
		Rows:        rows,
		Summary:     Summarize(rows),
	}

	if s.eventStore != nil {
		event := events.NewReportBuiltEvent(runID, len(rows), deficits, surpluses)
		if err := s.eventStore.AppendEvent(runID, event); err != nil {
			return nil, fmt.Errorf("failed to publish report event: %w", err)
		}
	}

	return result, nil
}

// Summarize totals rows per stockpile, ordered by total difference descending.
// Stockpiles with equal totals keep the order they first appear in rows.
func Summarize(rows []entities.ReportRow) []entities.LocationSummary {
	index := make(map[string]int)
	summaries := []entities.LocationSummary{}

	for _, row := range rows {
		i, exists := index[row.Stockpile]
		if !exists {
			i = len(summaries)
			index[row.Stockpile] = i
			summaries = append(summaries, entities.LocationSummary{Stockpile: row.Stockpile})
		}
		summaries[i].Target += row.Target
		summaries[i].Current += row.Current
		summaries[i].Difference += row.Difference
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Difference > summaries[j].Difference
	})

	return summaries
}
