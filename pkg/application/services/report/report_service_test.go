package report

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vsinha/stockpile/pkg/domain/entities"
	"github.com/vsinha/stockpile/pkg/infrastructure/events"
	"github.com/vsinha/stockpile/pkg/infrastructure/repositories/memory"
	testhelpers "github.com/vsinha/stockpile/pkg/infrastructure/testing"
)

func buildRepos(
	stockpiles []*entities.Stockpile,
	requirements []*entities.BaseRequirement,
	levels []*entities.StockLevel,
) (*memory.StockpileRepository, *memory.RequirementRepository, *memory.StockRepository) {
	stockpileRepo := memory.NewStockpileRepository(len(stockpiles))
	_ = stockpileRepo.LoadStockpiles(stockpiles)
	requirementRepo := memory.NewRequirementRepository(len(requirements))
	_ = requirementRepo.LoadRequirements(requirements)
	stockRepo := memory.NewStockRepository(entities.Snapshot{Path: "current_stock/latest.tsv"})
	_ = stockRepo.LoadStockLevels(levels)
	return stockpileRepo, requirementRepo, stockRepo
}

func TestService_Build_WoodExample(t *testing.T) {
	stockpileRepo, requirementRepo, stockRepo := testhelpers.BuildWoodExampleData()

	report, err := NewService(nil).Build(context.Background(), "run-1", stockpileRepo, requirementRepo, stockRepo)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if report.RunID != "run-1" {
		t.Errorf("Expected run id run-1, got %s", report.RunID)
	}
	if report.Snapshot.Path != "current_stock/wood.tsv" {
		t.Errorf("Expected snapshot to be carried over, got %s", report.Snapshot.Path)
	}
	if len(report.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(report.Rows))
	}

	expected := []struct {
		stockpile  string
		target     entities.Quantity
		current    entities.Quantity
		difference entities.Quantity
	}{
		{"Base A", 20, 5, 15},
		{"Base B", 10, 30, -20},
	}
	for i, want := range expected {
		row := report.Rows[i]
		if row.Stockpile != want.stockpile {
			t.Errorf("Row %d: expected stockpile %s, got %s", i, want.stockpile, row.Stockpile)
		}
		if row.Target != want.target || row.Current != want.current || row.Difference != want.difference {
			t.Errorf("Row %d: expected %d/%d/%d, got %d/%d/%d", i,
				want.target, want.current, want.difference,
				row.Target, row.Current, row.Difference)
		}
	}
}

func TestService_Build_FullCrossProduct(t *testing.T) {
	stockpileRepo, requirementRepo, stockRepo := buildRepos(
		[]*entities.Stockpile{
			{Name: "Seaport", BasesToSupply: 3},
			{Name: "Depot", BasesToSupply: 0},
			{Name: "Relic Base", BasesToSupply: 1},
		},
		[]*entities.BaseRequirement{
			{CodeName: "wood", QuantityPerBase: 10},
			{CodeName: "cmats", QuantityPerBase: 4},
		},
		[]*entities.StockLevel{
			{Stockpile: "Seaport", CodeName: "cmats", Total: decimal.NewFromInt(2)},
			{Stockpile: "Seaport", CodeName: "steel", Total: decimal.NewFromInt(50)},
			{Stockpile: "Unknown", CodeName: "wood", Total: decimal.NewFromInt(50)},
		},
	)

	report, err := NewService(nil).Build(context.Background(), "", stockpileRepo, requirementRepo, stockRepo)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if report.RunID == "" {
		t.Error("Expected a generated run id")
	}
	if len(report.Rows) != 6 {
		t.Fatalf("Expected 3 x 2 = 6 rows, got %d", len(report.Rows))
	}

	wantOrder := []entities.StockKey{
		{Stockpile: "Depot", CodeName: "cmats"},
		{Stockpile: "Depot", CodeName: "wood"},
		{Stockpile: "Relic Base", CodeName: "cmats"},
		{Stockpile: "Relic Base", CodeName: "wood"},
		{Stockpile: "Seaport", CodeName: "cmats"},
		{Stockpile: "Seaport", CodeName: "wood"},
	}
	for i, key := range wantOrder {
		row := report.Rows[i]
		if row.Stockpile != key.Stockpile || row.CodeName != key.CodeName {
			t.Errorf("Row %d: expected %s/%s, got %s/%s", i, key.Stockpile, key.CodeName, row.Stockpile, row.CodeName)
		}
		if row.Target != row.BasesToSupply*row.QuantityPerBase {
			t.Errorf("Row %d: target %d is not capacity x per-base", i, row.Target)
		}
		if row.Difference != row.Target-row.Current {
			t.Errorf("Row %d: difference %d is not target - current", i, row.Difference)
		}
	}

	seaportWood := report.Rows[5]
	if seaportWood.Current != 0 || seaportWood.Difference != 30 {
		t.Errorf("Expected unobserved pair to have current 0 and difference 30, got %+v", seaportWood)
	}
}

func TestService_Build_PublishesEvent(t *testing.T) {
	store := events.NewInMemoryEventStore()
	stockpileRepo, requirementRepo, stockRepo := buildRepos(
		[]*entities.Stockpile{{Name: "Base A", BasesToSupply: 1}},
		[]*entities.BaseRequirement{{CodeName: "wood", QuantityPerBase: 1}},
		nil,
	)

	_, err := NewService(store).Build(context.Background(), "run-7", stockpileRepo, requirementRepo, stockRepo)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	published, _ := store.ReadEvents("run-7", 1)
	if len(published) != 1 || published[0].Type() != events.ReportBuiltEvent {
		t.Fatalf("Expected one %s event, got %v", events.ReportBuiltEvent, published)
	}
	data := published[0].Data().(events.ReportBuilt)
	if data.Rows != 1 || data.Deficits != 1 {
		t.Errorf("Unexpected event payload: %+v", data)
	}
}

func TestService_Build_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stockpileRepo, requirementRepo, stockRepo := buildRepos(nil, nil, nil)
	if _, err := NewService(nil).Build(ctx, "", stockpileRepo, requirementRepo, stockRepo); err == nil {
		t.Error("Expected error for cancelled context")
	}
}

func TestSummarize(t *testing.T) {
	rows := []entities.ReportRow{
		{Stockpile: "Base A", Target: 20, Current: 5, Difference: 15},
		{Stockpile: "Base A", Target: 10, Current: 10, Difference: 0},
		{Stockpile: "Base B", Target: 10, Current: 30, Difference: -20},
		{Stockpile: "Base C", Target: 0, Current: 0, Difference: 0},
		{Stockpile: "Base D", Target: 5, Current: 5, Difference: 0},
	}

	summaries := Summarize(rows)
	if len(summaries) != 4 {
		t.Fatalf("Expected 4 summaries, got %d", len(summaries))
	}

	wantOrder := []string{"Base A", "Base C", "Base D", "Base B"}
	for i, name := range wantOrder {
		if summaries[i].Stockpile != name {
			t.Errorf("Position %d: expected %s, got %s", i, name, summaries[i].Stockpile)
		}
	}

	if summaries[0].Target != 30 || summaries[0].Current != 15 || summaries[0].Difference != 15 {
		t.Errorf("Unexpected Base A totals: %+v", summaries[0])
	}
}

func TestService_Build_Frontline(t *testing.T) {
	stockpileRepo, requirementRepo, stockRepo := testhelpers.BuildFrontlineTestData()

	report, err := NewService(nil).Build(context.Background(), "", stockpileRepo, requirementRepo, stockRepo)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(report.Rows) != 4*4 {
		t.Fatalf("Expected 16 rows, got %d", len(report.Rows))
	}

	byKey := make(map[entities.StockKey]entities.ReportRow)
	for _, row := range report.Rows {
		byKey[entities.StockKey{Stockpile: row.Stockpile, CodeName: row.CodeName}] = row
	}

	tests := []struct {
		stockpile  string
		code       entities.CodeName
		difference entities.Quantity
	}{
		{"Seaport", "bmats", -300},
		{"Forward East", "bmats", 150},
		{"Forward West", "shells", -25},
		{"Depot", "medkits", -30},
		{"Depot", "bmats", 0},
		{"Forward West", "medkits", 5},
	}
	for _, tt := range tests {
		row := byKey[entities.StockKey{Stockpile: tt.stockpile, CodeName: tt.code}]
		if row.Difference != tt.difference {
			t.Errorf("%s/%s: expected difference %d, got %d", tt.stockpile, tt.code, tt.difference, row.Difference)
		}
	}

	if report.Summary[0].Stockpile != "Forward East" {
		t.Errorf("Expected Forward East to have the largest deficit, got %s", report.Summary[0].Stockpile)
	}
}
