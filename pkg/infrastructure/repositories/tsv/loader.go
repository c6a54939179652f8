package tsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vsinha/stockpile/pkg/domain/entities"
)

var (
	// ErrMissingFile is returned when a required input file or directory does not exist
	ErrMissingFile = errors.New("missing input")
	// ErrMissingColumn is returned when a table header lacks a required column
	ErrMissingColumn = errors.New("missing column")
	// ErrNoSnapshots is returned when the stock directory holds no TSV exports
	ErrNoSnapshots = errors.New("no TSV files found")
)

// Column names used by the game's exports and the hand-maintained tables
const (
	ColStockpileName   = "StockpileName"
	ColBasesToSupply   = "BasesToSupply"
	ColCodeName        = "CodeName"
	ColQuantity        = "Quantity"
	ColSnapshotName    = "Stockpile Name"
	ColSnapshotTitle   = "Stockpile Title"
	ColSnapshotTotal   = "Total"
	snapshotNameSuffix = ".png"
)

// spaceSeparator splits space-aligned lines on runs of two or more spaces.
// Lines holding a tab are split on every single tab instead.
var spaceSeparator = regexp.MustCompile(`\s{2,}`)

// Table is a parsed delimited file: a trimmed header and the data rows beneath it
type Table struct {
	Header []string
	Rows   [][]string
}

// Column returns the index of a header column, or -1
func (t *Table) Column(name string) int {
	for i, col := range t.Header {
		if col == name {
			return i
		}
	}
	return -1
}

// Field returns the trimmed value of column idx in row, or "" when the row is short
func (t *Table) Field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func (t *Table) requireColumns(filename string, names ...string) ([]int, error) {
	indexes := make([]int, len(names))
	for i, name := range names {
		indexes[i] = t.Column(name)
		if indexes[i] < 0 {
			return nil, fmt.Errorf("%w %q in %s (columns: %v)", ErrMissingColumn, name, filename, t.Header)
		}
	}
	return indexes, nil
}

// Loader handles loading stockpile data from TSV files
type Loader struct{}

// NewLoader creates a new TSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadStockpiles loads the stockpile capacity table. Rows without a name are skipped.
func (l *Loader) LoadStockpiles(filename string) ([]*entities.Stockpile, error) {
	table, err := ReadSpacedTable(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read stockpiles table: %w", err)
	}

	cols, err := table.requireColumns(filename, ColStockpileName, ColBasesToSupply)
	if err != nil {
		return nil, err
	}

	var stockpiles []*entities.Stockpile
	for i, row := range table.Rows {
		name := table.Field(row, cols[0])
		if name == "" {
			continue
		}
		stockpile, err := entities.NewStockpile(name, CoerceQuantity(table.Field(row, cols[1])))
		if err != nil {
			return nil, fmt.Errorf("stockpiles row %d: %w", i+2, err)
		}
		stockpiles = append(stockpiles, stockpile)
	}

	return stockpiles, nil
}

// LoadRequirements loads a per-base requirement table
func (l *Loader) LoadRequirements(filename string) ([]*entities.BaseRequirement, error) {
	table, err := ReadSpacedTable(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read base requirements table: %w", err)
	}

	cols, err := table.requireColumns(filename, ColCodeName, ColQuantity)
	if err != nil {
		return nil, err
	}

	var requirements []*entities.BaseRequirement
	for i, row := range table.Rows {
		codeName := entities.CodeName(table.Field(row, cols[0]))
		if codeName == "" {
			continue
		}
		req, err := entities.NewBaseRequirement(codeName, CoerceQuantity(table.Field(row, cols[1])))
		if err != nil {
			return nil, fmt.Errorf("base requirements row %d: %w", i+2, err)
		}
		requirements = append(requirements, req)
	}

	return requirements, nil
}

// LoadStockLevels loads one stock export. Rows without a stockpile name or
// title, or without a code name, are skipped.
func (l *Loader) LoadStockLevels(filename string) ([]*entities.StockLevel, error) {
	table, err := ReadTabTable(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read stock export: %w", err)
	}

	cols, err := table.requireColumns(filename, ColCodeName, ColSnapshotTotal)
	if err != nil {
		return nil, err
	}
	nameCol := table.Column(ColSnapshotName)
	titleCol := table.Column(ColSnapshotTitle)
	if nameCol < 0 && titleCol < 0 {
		return nil, fmt.Errorf("%w %q or %q in %s", ErrMissingColumn, ColSnapshotName, ColSnapshotTitle, filename)
	}

	var levels []*entities.StockLevel
	for i, row := range table.Rows {
		name := NormaliseStockpileName(table.Field(row, nameCol))
		if name == "" {
			name = NormaliseStockpileName(table.Field(row, titleCol))
		}
		codeName := entities.CodeName(table.Field(row, cols[0]))
		if name == "" || codeName == "" {
			continue
		}

		level, err := entities.NewStockLevel(name, codeName, CoerceDecimal(table.Field(row, cols[1])))
		if err != nil {
			return nil, fmt.Errorf("stock export row %d: %w", i+2, err)
		}
		levels = append(levels, level)
	}

	return levels, nil
}

// ReadSpacedTable reads a file whose columns are separated by tabs or runs of spaces
func ReadSpacedTable(filename string) (*Table, error) {
	data, err := readFile(filename)
	if err != nil {
		return nil, err
	}

	table := &Table{}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := SplitSpacedLine(line)
		if table.Header == nil {
			table.Header = trimAll(fields)
			continue
		}
		table.Rows = append(table.Rows, fields)
	}

	if table.Header == nil {
		return nil, fmt.Errorf("%s has no header line", filename)
	}
	return table, nil
}

// SplitSpacedLine splits one table line into trimmed fields. A line holding a
// tab is split on each tab, so empty cells keep their position. Otherwise the
// line is split on runs of two or more spaces.
func SplitSpacedLine(line string) []string {
	var fields []string
	if strings.Contains(line, "\t") {
		fields = strings.Split(line, "\t")
	} else {
		fields = spaceSeparator.Split(strings.TrimSpace(line), -1)
	}
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}

// ReadTabTable reads a strictly tab-separated file, honouring quoted fields
func ReadTabTable(filename string) (*Table, error) {
	file, err := openFile(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	table := &Table{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
		}
		if table.Header == nil {
			table.Header = trimAll(record)
			continue
		}
		table.Rows = append(table.Rows, record)
	}

	if table.Header == nil {
		return nil, fmt.Errorf("%s has no header line", filename)
	}
	return table, nil
}

// CoerceDecimal parses a numeric field exactly. Anything that is not a number becomes 0.
func CoerceDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// CoerceQuantity parses a numeric field, truncating toward zero and
// saturating at the int64 range. Anything that is not a number becomes 0.
func CoerceQuantity(s string) entities.Quantity {
	return entities.TruncateQuantity(CoerceDecimal(s))
}

// NormaliseStockpileName trims an exported stockpile name and drops the icon suffix
func NormaliseStockpileName(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), snapshotNameSuffix, "")
}

func trimAll(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.TrimSpace(strings.TrimPrefix(f, "\ufeff"))
	}
	return out
}

func openFile(filename string) (*os.File, error) {
	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingFile, filename)
		}
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	return file, nil
}

func readFile(filename string) ([]byte, error) {
	file, err := openFile(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return data, nil
}
