// Package trips suggests bulk transfers from stockpiles holding a surplus of
// an item to stockpiles short of it.
//
// The suggestions are advisory: every surplus is offered in full to every
// stockpile short of the same item, without depleting it across
// destinations. An operator picks which trips to run.
package trips

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/vsinha/stockpile/pkg/application/dto"
	"github.com/vsinha/stockpile/pkg/domain/entities"
	"github.com/vsinha/stockpile/pkg/infrastructure/events"
)

// Planner ranks transfer trips for a report
type Planner struct {
	eventStore events.EventStore
}

// NewPlanner creates a trip planner. eventStore may be nil.
func NewPlanner(eventStore events.EventStore) *Planner {
	return &Planner{eventStore: eventStore}
}

// PlanReport plans trips for a built report and publishes a planning event
func (p *Planner) PlanReport(ctx context.Context, report *dto.RequirementReport) (*dto.TripPlan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	candidates := Candidates(report.Rows)
	trips := Aggregate(candidates)

	if p.eventStore != nil {
		event := events.NewTripsPlannedEvent(report.RunID, len(candidates), len(trips), time.Since(start))
		if err := p.eventStore.AppendEvent(report.RunID, event); err != nil {
			return nil, fmt.Errorf("failed to publish trips event: %w", err)
		}
	}

	return &dto.TripPlan{
		RunID:      report.RunID,
		Candidates: len(candidates),
		Trips:      trips,
	}, nil
}

// Plan returns the aggregated trips for rows, best first
func (p *Planner) Plan(rows []entities.ReportRow) []entities.AggregatedTrip {
	return Aggregate(Candidates(rows))
}

// Candidates cross-joins surplus and deficit rows on code name. Candidates
// come out in join order: surplus rows in row order, and for each of them the
// matching deficit rows in row order.
func Candidates(rows []entities.ReportRow) []entities.TripCandidate {
	deficitsByCode := make(map[entities.CodeName][]entities.ReportRow)
	for _, row := range rows {
		if row.IsDeficit() {
			deficitsByCode[row.CodeName] = append(deficitsByCode[row.CodeName], row)
		}
	}

	candidates := []entities.TripCandidate{}
	for _, surplus := range rows {
		if !surplus.IsSurplus() {
			continue
		}
		available := surplus.Difference.Abs()
		for _, deficit := range deficitsByCode[surplus.CodeName] {
			if deficit.Stockpile == surplus.Stockpile {
				continue
			}
			qty := min(available, deficit.Difference)
			if qty <= 0 {
				continue
			}
			candidates = append(candidates, entities.TripCandidate{
				Source:      surplus.Stockpile,
				Destination: deficit.Stockpile,
				CodeName:    surplus.CodeName,
				Quantity:    qty,
			})
		}
	}

	return candidates
}

type route struct {
	source      string
	destination string
}

// Aggregate groups candidates by (source, destination). Groups are ordered by
// route, then stably by TotalPotential descending. Each trip's items are
// ordered by quantity descending, ties keeping candidate order.
func Aggregate(candidates []entities.TripCandidate) []entities.AggregatedTrip {
	index := make(map[route]int)
	trips := []entities.AggregatedTrip{}
	seen := make(map[route]map[entities.CodeName]struct{})

	for _, c := range candidates {
		key := route{source: c.Source, destination: c.Destination}
		i, exists := index[key]
		if !exists {
			i = len(trips)
			index[key] = i
			seen[key] = make(map[entities.CodeName]struct{})
			trips = append(trips, entities.AggregatedTrip{
				Source:      c.Source,
				Destination: c.Destination,
			})
		}

		trip := &trips[i]
		trip.TotalPotential += c.Quantity
		trip.Items = append(trip.Items, entities.TripItem{CodeName: c.CodeName, Quantity: c.Quantity})
		if _, dup := seen[key][c.CodeName]; !dup {
			seen[key][c.CodeName] = struct{}{}
			trip.DistinctItems++
		}
	}

	for i := range trips {
		items := trips[i].Items
		sort.SliceStable(items, func(a, b int) bool {
			return items[a].Quantity > items[b].Quantity
		})
	}

	sort.SliceStable(trips, func(i, j int) bool {
		if trips[i].Source != trips[j].Source {
			return trips[i].Source < trips[j].Source
		}
		return trips[i].Destination < trips[j].Destination
	})
	sort.SliceStable(trips, func(i, j int) bool {
		return trips[i].TotalPotential > trips[j].TotalPotential
	})

	return trips
}
