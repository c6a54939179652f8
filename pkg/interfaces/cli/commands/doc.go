// Package commands defines the stockpile CLI.
//
// # Commands
//
//   - report     Print the per-item deficit/surplus table and per-base totals
//   - trips      Rank suggested transfers from surplus to deficit stockpiles
//   - describe   Profile the columns of any TSV export
//
// # Implementation
//
// The root command loads stockpile.toml before any subcommand runs. Flags that
// were set on the command line override the file. Report and trips share one
// pipeline: resolve input paths, load the three tables, pick the newest stock
// snapshot, index everything into memory repositories and build the report.
package commands
