package commands

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/vsinha/stockpile/pkg/infrastructure/repositories/tsv"
)

// Describe profiles an arbitrary TSV export
func Describe(w io.Writer, filename string) error {
	profile, err := tsv.NewLoader().Describe(filename)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "File: %s\n", profile.Path)
	fmt.Fprintf(w, "Delimiter: %s\n", profile.Delimiter)
	fmt.Fprintf(w, "Rows: %d\n", profile.Rows)
	fmt.Fprintf(w, "Columns: %d\n\n", len(profile.Columns))

	nameWidth := len("Column")
	for _, col := range profile.Columns {
		nameWidth = max(nameWidth, utf8.RuneCountInString(col.Name))
	}

	fmt.Fprintf(w, "%-*s  %8s  %8s\n", nameWidth, "Column", "NonEmpty", "Numeric")
	for _, col := range profile.Columns {
		fmt.Fprintf(w, "%-*s  %8d  %8d\n", nameWidth, col.Name, col.NonEmpty, col.Numeric)
	}
	return nil
}
