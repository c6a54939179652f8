package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/vsinha/stockpile/pkg/application/dto"
	"github.com/vsinha/stockpile/pkg/domain/entities"
)

const minNameWidth = 13

// writeReportText prints the per-item table, largest imbalance first, then per-stockpile totals
func writeReportText(w io.Writer, report *dto.RequirementReport) error {
	var b strings.Builder

	rows := make([]entities.ReportRow, len(report.Rows))
	copy(rows, report.Rows)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Difference.Abs() > rows[j].Difference.Abs()
	})

	nameWidth, codeWidth := minNameWidth, len("CodeName")
	for _, row := range rows {
		nameWidth = max(nameWidth, displayWidth(row.Stockpile))
		codeWidth = max(codeWidth, displayWidth(string(row.CodeName)))
	}

	b.WriteString("\nPer-item deficit (ideal - current):\n")
	if len(rows) == 0 {
		b.WriteString("No stockpile/item pairs found.\n")
	} else {
		fmt.Fprintf(&b, "%-*s  %-*s  %13s  %15s  %13s  %15s  %14s\n",
			nameWidth, "StockpileName", codeWidth, "CodeName",
			"BasesToSupply", "QuantityPerBase", "IdealQuantity", "CurrentQuantity", "DeficitSurplus")
		for _, row := range rows {
			fmt.Fprintf(&b, "%-*s  %-*s  %13d  %15d  %13d  %15d  %14d\n",
				nameWidth, row.Stockpile, codeWidth, row.CodeName,
				row.BasesToSupply, row.QuantityPerBase, row.Target, row.Current, row.Difference)
		}
	}

	b.WriteString("\nPer-base totals:\n")
	if len(report.Summary) == 0 {
		b.WriteString("No stockpiles found.\n")
	} else {
		fmt.Fprintf(&b, "%-*s  %13s  %15s  %14s  %6s\n",
			nameWidth, "StockpileName", "IdealQuantity", "CurrentQuantity", "DeficitSurplus", "Fill%")
		for _, s := range report.Summary {
			fill := "-"
			if pct, ok := s.FillPercent(); ok {
				fill = pct.StringFixed(1)
			}
			fmt.Fprintf(&b, "%-*s  %13d  %15d  %14d  %6s\n",
				nameWidth, s.Stockpile, s.Target, s.Current, s.Difference, fill)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// writeTripsText prints the ranked trips with their item breakdowns
func writeTripsText(w io.Writer, plan *dto.TripPlan, config Config) error {
	var b strings.Builder

	trips := limitTrips(plan, config.Limit)

	b.WriteString("\nSuggested transfer trips (surplus -> deficit):\n")
	if len(trips) == 0 {
		b.WriteString("No transfer trips found.\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	topItems := config.TopItems
	if config.AllItems {
		topItems = 0
	}

	for i, trip := range trips {
		fmt.Fprintf(&b, "%3d. %s -> %s  total %d across %d item(s)\n",
			i+1, trip.Source, trip.Destination, trip.TotalPotential, trip.DistinctItems)

		shown := trip.TopItems(topItems)
		codeWidth := len("CodeName")
		for _, item := range shown {
			codeWidth = max(codeWidth, displayWidth(string(item.CodeName)))
		}
		for _, item := range shown {
			fmt.Fprintf(&b, "       %-*s  %8d\n", codeWidth, item.CodeName, item.Quantity)
		}
		if hidden := len(trip.Items) - len(shown); hidden > 0 {
			fmt.Fprintf(&b, "       +%d more\n", hidden)
		}
	}

	if len(trips) < len(plan.Trips) {
		fmt.Fprintf(&b, "\nShowing %d of %d trips.\n", len(trips), len(plan.Trips))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// displayWidth counts runes, the unit fmt pads %-*s in
func displayWidth(s string) int {
	return utf8.RuneCountInString(s)
}

func limitTrips(plan *dto.TripPlan, limit int) []entities.AggregatedTrip {
	if limit <= 0 || limit >= len(plan.Trips) {
		return plan.Trips
	}
	return plan.Trips[:limit]
}
