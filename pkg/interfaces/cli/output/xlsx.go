package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/vsinha/stockpile/pkg/application/dto"
)

const (
	reportSheet    = "Report"
	locationsSheet = "Locations"
	tripsSheet     = "Trips"
)

// Exporter builds Excel workbooks from reports and trip plans
type Exporter struct{}

// NewExporter creates an exporter
func NewExporter() *Exporter {
	return &Exporter{}
}

// ExportReport builds a workbook with the report rows and the per-stockpile totals
func (e *Exporter) ExportReport(report *dto.RequirementReport) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := newHeaderStyle(f)
	if err != nil {
		return nil, err
	}

	header := make([]interface{}, len(ReportColumns))
	for i, col := range ReportColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(reportSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write report header: %w", err)
	}
	if err := f.SetRowStyle(reportSheet, 1, 1, headerStyle); err != nil {
		return nil, err
	}

	for i, row := range report.Rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []interface{}{
			row.Stockpile,
			string(row.CodeName),
			int64(row.BasesToSupply),
			int64(row.QuantityPerBase),
			int64(row.Target),
			int64(row.Current),
			int64(row.Difference),
		}
		if err := f.SetSheetRow(reportSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write report row %d: %w", i+2, err)
		}
	}
	if err := setWidths(f, reportSheet, map[string]float64{"A:B": 25, "C:G": 16}); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(locationsSheet); err != nil {
		return nil, fmt.Errorf("failed to add locations sheet: %w", err)
	}
	locationRows := [][]interface{}{
		{"StockpileName", "IdealQuantity", "CurrentQuantity", "DeficitSurplus", "Fill%"},
	}
	for _, s := range report.Summary {
		fill := "-"
		if pct, ok := s.FillPercent(); ok {
			fill = pct.StringFixed(1)
		}
		locationRows = append(locationRows, []interface{}{
			s.Stockpile, int64(s.Target), int64(s.Current), int64(s.Difference), fill,
		})
	}
	if err := writeRows(f, locationsSheet, locationRows); err != nil {
		return nil, err
	}
	if err := f.SetRowStyle(locationsSheet, 1, 1, headerStyle); err != nil {
		return nil, err
	}
	if err := setWidths(f, locationsSheet, map[string]float64{"A:A": 25, "B:E": 16}); err != nil {
		return nil, err
	}

	err = f.SetDocProps(&excelize.DocProperties{
		Title:       "Stockpile requirement report",
		Identifier:  report.RunID,
		Description: report.Snapshot.Path,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set document properties: %w", err)
	}

	return f, nil
}

// ExportTrips builds a workbook with one row per trip item
func (e *Exporter) ExportTrips(plan *dto.TripPlan) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", tripsSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := newHeaderStyle(f)
	if err != nil {
		return nil, err
	}

	rows := [][]interface{}{
		{"Rank", "Source", "Destination", "TotalPotential", "DistinctItems", "CodeName", "Quantity"},
	}
	for i, trip := range plan.Trips {
		for _, item := range trip.Items {
			rows = append(rows, []interface{}{
				i + 1, trip.Source, trip.Destination,
				int64(trip.TotalPotential), trip.DistinctItems,
				string(item.CodeName), int64(item.Quantity),
			})
		}
	}
	if err := writeRows(f, tripsSheet, rows); err != nil {
		return nil, err
	}
	if err := f.SetRowStyle(tripsSheet, 1, 1, headerStyle); err != nil {
		return nil, err
	}
	if err := setWidths(f, tripsSheet, map[string]float64{"B:C": 25, "D:G": 16}); err != nil {
		return nil, err
	}

	err = f.SetDocProps(&excelize.DocProperties{
		Title:      "Stockpile transfer trips",
		Identifier: plan.RunID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set document properties: %w", err)
	}

	return f, nil
}

// SaveWorkbook writes f to filename, creating parent directories
func SaveWorkbook(f *excelize.File, filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", filename, err)
	}
	return f.Close()
}

func newHeaderStyle(f *excelize.File) (int, error) {
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create header style: %w", err)
	}
	return style, nil
}

// setWidths applies column widths keyed by "FROM:TO" column ranges
func setWidths(f *excelize.File, sheet string, widths map[string]float64) error {
	for cols, width := range widths {
		from, to, _ := strings.Cut(cols, ":")
		if err := f.SetColWidth(sheet, from, to, width); err != nil {
			return fmt.Errorf("failed to set %s column width: %w", sheet, err)
		}
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
