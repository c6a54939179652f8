package tsv

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

// ColumnProfile counts what a column holds
type ColumnProfile struct {
	Name     string
	NonEmpty int
	Numeric  int
}

// TableProfile summarises an arbitrary delimited export
type TableProfile struct {
	Path      string
	Delimiter string
	Rows      int
	Columns   []ColumnProfile
}

// Describe reads any TSV or space-aligned table and profiles its columns.
// Files with a tab in the header line are read as strict TSV.
func (l *Loader) Describe(filename string) (*TableProfile, error) {
	data, err := readFile(filename)
	if err != nil {
		return nil, err
	}

	headerLine, _, _ := strings.Cut(string(data), "\n")

	var table *Table
	profile := &TableProfile{Path: filename}
	if strings.Contains(headerLine, "\t") {
		profile.Delimiter = "tab"
		table, err = ReadTabTable(filename)
	} else {
		profile.Delimiter = "spaces"
		table, err = ReadSpacedTable(filename)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to describe %s: %w", filename, err)
	}

	profile.Rows = len(table.Rows)
	profile.Columns = make([]ColumnProfile, len(table.Header))
	for i, name := range table.Header {
		profile.Columns[i].Name = name
	}
	for _, row := range table.Rows {
		for i := range profile.Columns {
			v := table.Field(row, i)
			if v == "" {
				continue
			}
			profile.Columns[i].NonEmpty++
			if _, err := decimal.NewFromString(v); err == nil {
				profile.Columns[i].Numeric++
			}
		}
	}

	return profile, nil
}

// IsFile reports whether path names an existing regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
