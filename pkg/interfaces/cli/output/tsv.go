package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vsinha/stockpile/pkg/domain/entities"
)

// ReportColumns is the header of the report TSV and the report sheet
var ReportColumns = []string{
	"StockpileName",
	"CodeName",
	"BasesToSupply",
	"QuantityPerBase",
	"IdealQuantity",
	"CurrentQuantity",
	"DeficitSurplus",
}

// WriteReportTSV writes every report row, in report order, as a tab-separated file.
// Missing parent directories are created.
func WriteReportTSV(filename string, rows []entities.ReportRow) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	writer.Comma = '\t'

	if err := writer.Write(ReportColumns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Stockpile,
			string(row.CodeName),
			strconv.FormatInt(int64(row.BasesToSupply), 10),
			strconv.FormatInt(int64(row.QuantityPerBase), 10),
			strconv.FormatInt(int64(row.Target), 10),
			strconv.FormatInt(int64(row.Current), 10),
			strconv.FormatInt(int64(row.Difference), 10),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", filename, err)
	}
	return file.Close()
}
