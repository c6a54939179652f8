package commands

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vsinha/stockpile/pkg/infrastructure/repositories/tsv"
)

// writeDataRoot lays out a data directory with two snapshots; the newer one is authoritative
func writeDataRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	files := map[string]string{
		"stockpiles.tsv": "StockpileName    BasesToSupply\n" +
			"Base A           2\n" +
			"Base B           1\n",
		"base_requirements/collie.tsv": "CodeName    Quantity\n" +
			"wood        10\n",
		"current_stock/old.tsv": "Stockpile Name\tCodeName\tTotal\n" +
			"Base A\twood\t999\n",
		"current_stock/new.tsv": "Stockpile Name\tStockpile Title\tCodeName\tTotal\n" +
			"Base A.png\t\twood\t5\n" +
			"\tBase B\twood\t30\n",
	}
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	old := time.Now().Add(-time.Hour)
	if err := os.Chtimes(filepath.Join(root, "current_stock/old.tsv"), old, old); err != nil {
		t.Fatalf("Chtimes failed: %v", err)
	}
	return root
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("STOCKPILE_DATA_ROOT", "")

	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestReport_UsesNewestSnapshot(t *testing.T) {
	dataRoot := writeDataRoot(t)
	outFile := filepath.Join(t.TempDir(), "reports", "report.tsv")

	stdout, _, err := run(t, "report", "--data-root", dataRoot, "--output", outFile)
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}

	if !strings.Contains(stdout, "Per-base totals:") {
		t.Errorf("Expected report tables on stdout:\n%s", stdout)
	}
	if strings.Contains(stdout, "999") {
		t.Errorf("Expected the older snapshot to be ignored:\n%s", stdout)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("Expected TSV output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	want := []string{
		"StockpileName\tCodeName\tBasesToSupply\tQuantityPerBase\tIdealQuantity\tCurrentQuantity\tDeficitSurplus",
		"Base A\twood\t2\t10\t20\t5\t15",
		"Base B\twood\t1\t10\t10\t30\t-20",
	}
	if len(lines) != len(want) {
		t.Fatalf("Expected %d lines, got %d:\n%s", len(want), len(lines), data)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("Line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestDefaultCommandIsReport(t *testing.T) {
	dataRoot := writeDataRoot(t)

	stdout, _, err := run(t, "--data-root", dataRoot)
	if err != nil {
		t.Fatalf("default command failed: %v", err)
	}
	if !strings.Contains(stdout, "Per-item deficit (ideal - current):") {
		t.Errorf("Expected the report by default:\n%s", stdout)
	}
}

func TestTrips_WoodExample(t *testing.T) {
	dataRoot := writeDataRoot(t)

	stdout, stderr, err := run(t, "trips", "--data-root", dataRoot, "--verbose")
	if err != nil {
		t.Fatalf("trips failed: %v", err)
	}

	if !strings.Contains(stdout, "1. Base B -> Base A  total 15 across 1 item(s)") {
		t.Errorf("Expected a single Base B -> Base A trip:\n%s", stdout)
	}
	if strings.Contains(stdout, "2.") {
		t.Errorf("Expected exactly one trip:\n%s", stdout)
	}
	for _, want := range []string{"Using snapshot", "new.tsv", "Report built: 2 rows", "1 candidates, 1 trips"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("Expected verbose output to contain %q:\n%s", want, stderr)
		}
	}
}

func TestTrips_AllBalanced(t *testing.T) {
	dataRoot := writeDataRoot(t)
	balanced := "Stockpile Name\tCodeName\tTotal\nBase A\twood\t20\nBase B\twood\t10\n"
	if err := os.WriteFile(filepath.Join(dataRoot, "current_stock", "new.tsv"), []byte(balanced), 0644); err != nil {
		t.Fatalf("Failed to write snapshot: %v", err)
	}

	stdout, _, err := run(t, "trips", "--data-root", dataRoot)
	if err != nil {
		t.Fatalf("Expected no error for a balanced report, got %v", err)
	}
	if !strings.Contains(stdout, "No transfer trips found.") {
		t.Errorf("Expected none-found message:\n%s", stdout)
	}
}

func TestMissingInputsAbort(t *testing.T) {
	tests := []struct {
		name    string
		remove  string
		wantErr error
	}{
		{"stockpiles", "stockpiles.tsv", tsv.ErrMissingFile},
		{"requirements", "base_requirements", tsv.ErrMissingFile},
		{"stock directory", "current_stock", tsv.ErrMissingFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataRoot := writeDataRoot(t)
			if err := os.RemoveAll(filepath.Join(dataRoot, tt.remove)); err != nil {
				t.Fatalf("Failed to remove %s: %v", tt.remove, err)
			}

			stdout, _, err := run(t, "report", "--data-root", dataRoot)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected %v, got %v", tt.wantErr, err)
			}
			if stdout != "" {
				t.Errorf("Expected no partial report, got:\n%s", stdout)
			}
		})
	}
}

func TestNoSnapshotsAbort(t *testing.T) {
	dataRoot := writeDataRoot(t)
	for _, name := range []string{"old.tsv", "new.tsv"} {
		if err := os.Remove(filepath.Join(dataRoot, "current_stock", name)); err != nil {
			t.Fatalf("Failed to remove %s: %v", name, err)
		}
	}

	_, _, err := run(t, "trips", "--data-root", dataRoot)
	if !errors.Is(err, tsv.ErrNoSnapshots) {
		t.Errorf("Expected ErrNoSnapshots, got %v", err)
	}
}

func TestProfileFlagSelectsRequirementTable(t *testing.T) {
	dataRoot := writeDataRoot(t)
	warden := "CodeName    Quantity\nwood        1\n"
	if err := os.WriteFile(filepath.Join(dataRoot, "base_requirements", "warden.tsv"), []byte(warden), 0644); err != nil {
		t.Fatalf("Failed to write profile: %v", err)
	}

	stdout, _, err := run(t, "trips", "--data-root", dataRoot, "--profile", "warden")
	if err != nil {
		t.Fatalf("trips failed: %v", err)
	}
	// targets become A=2, B=1: both stockpiles hold a surplus
	if !strings.Contains(stdout, "No transfer trips found.") {
		t.Errorf("Expected no trips with the warden profile:\n%s", stdout)
	}
}

func TestConfigFileSuppliesDataRoot(t *testing.T) {
	dataRoot := writeDataRoot(t)
	cfgPath := filepath.Join(t.TempDir(), "stockpile.toml")
	content := "[data]\nroot = \"" + filepath.ToSlash(dataRoot) + "\"\n\n[output]\nformat = \"json\"\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	stdout, _, err := run(t, "report", "--config", cfgPath)
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if !strings.Contains(stdout, `"run_id"`) {
		t.Errorf("Expected JSON output from config format:\n%s", stdout)
	}
}

func TestDescribe(t *testing.T) {
	dataRoot := writeDataRoot(t)
	snapshot := filepath.Join(dataRoot, "current_stock", "new.tsv")

	for _, args := range [][]string{{"describe", snapshot}, {snapshot}} {
		stdout, _, err := run(t, args...)
		if err != nil {
			t.Fatalf("describe %v failed: %v", args, err)
		}
		if !strings.Contains(stdout, "Rows: 2") || !strings.Contains(stdout, "Stockpile Title") {
			t.Errorf("Unexpected describe output for %v:\n%s", args, stdout)
		}
	}
}

func TestUnknownArgument(t *testing.T) {
	_, _, err := run(t, "no-such-thing")
	if err == nil {
		t.Error("Expected an error for an unknown argument")
	}
}
