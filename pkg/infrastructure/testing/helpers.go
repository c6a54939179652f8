package testing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vsinha/stockpile/pkg/domain/entities"
	"github.com/vsinha/stockpile/pkg/infrastructure/repositories/memory"
)

// BuildWoodExampleData builds the two-base wood scenario: Base A (2 bases)
// holds 5 wood, Base B (1 base) holds 30, at 10 wood per base.
func BuildWoodExampleData() (*memory.StockpileRepository, *memory.RequirementRepository, *memory.StockRepository) {
	stockpileRepo := memory.NewStockpileRepository(2)
	requirementRepo := memory.NewRequirementRepository(1)
	stockRepo := memory.NewStockRepository(entities.Snapshot{Path: "current_stock/wood.tsv"})

	stockpileRepo.AddStockpile(entities.Stockpile{Name: "Base A", BasesToSupply: 2})
	stockpileRepo.AddStockpile(entities.Stockpile{Name: "Base B", BasesToSupply: 1})

	requirementRepo.AddRequirement(entities.BaseRequirement{CodeName: "wood", QuantityPerBase: 10})

	stockRepo.AddStockLevel(entities.StockLevel{Stockpile: "Base A", CodeName: "wood", Total: decimal.NewFromInt(5)})
	stockRepo.AddStockLevel(entities.StockLevel{Stockpile: "Base B", CodeName: "wood", Total: decimal.NewFromInt(30)})

	return stockpileRepo, requirementRepo, stockRepo
}

// BuildFrontlineTestData builds a small front: a seaport holding surplus,
// two forward bases short of supplies and a depot with no bases to supply.
func BuildFrontlineTestData() (*memory.StockpileRepository, *memory.RequirementRepository, *memory.StockRepository) {
	stockpileRepo := memory.NewStockpileRepository(4)
	requirementRepo := memory.NewRequirementRepository(4)
	stockRepo := memory.NewStockRepository(entities.Snapshot{Path: "current_stock/frontline.tsv"})

	stockpiles := []entities.Stockpile{
		{Name: "Seaport", BasesToSupply: 1},
		{Name: "Forward East", BasesToSupply: 2},
		{Name: "Forward West", BasesToSupply: 1},
		{Name: "Depot", BasesToSupply: 0},
	}
	for _, s := range stockpiles {
		stockpileRepo.AddStockpile(s)
	}

	requirements := []entities.BaseRequirement{
		{CodeName: "bmats", QuantityPerBase: 100},
		{CodeName: "cmats", QuantityPerBase: 20},
		{CodeName: "shells", QuantityPerBase: 15},
		{CodeName: "medkits", QuantityPerBase: 5},
	}
	for _, r := range requirements {
		requirementRepo.AddRequirement(r)
	}

	levels := []entities.StockLevel{
		{Stockpile: "Seaport", CodeName: "bmats", Total: decimal.NewFromInt(400)},
		{Stockpile: "Seaport", CodeName: "cmats", Total: decimal.NewFromInt(60)},
		{Stockpile: "Seaport", CodeName: "shells", Total: decimal.NewFromInt(15)},
		{Stockpile: "Forward East", CodeName: "bmats", Total: decimal.NewFromInt(50)},
		{Stockpile: "Forward East", CodeName: "medkits", Total: decimal.NewFromInt(10)},
		{Stockpile: "Forward West", CodeName: "cmats", Total: decimal.NewFromInt(5)},
		{Stockpile: "Forward West", CodeName: "shells", Total: decimal.NewFromInt(40)},
		{Stockpile: "Depot", CodeName: "medkits", Total: decimal.NewFromInt(25)},
		{Stockpile: "Depot", CodeName: "medkits", Total: decimal.NewFromInt(5)},
	}
	for _, l := range levels {
		stockRepo.AddStockLevel(l)
	}

	return stockpileRepo, requirementRepo, stockRepo
}

// BuildLargeTestData builds a generated scenario of stockpiles x items for benchmarks.
// Stock alternates between under- and over-filled so every item has both surplus and deficit.
func BuildLargeTestData(stockpiles, items int) (*memory.StockpileRepository, *memory.RequirementRepository, *memory.StockRepository) {
	stockpileRepo := memory.NewStockpileRepository(stockpiles)
	requirementRepo := memory.NewRequirementRepository(items)
	stockRepo := memory.NewStockRepository(entities.Snapshot{Path: "current_stock/generated.tsv"})

	for i := 0; i < items; i++ {
		requirementRepo.AddRequirement(entities.BaseRequirement{
			CodeName:        entities.CodeName(fmt.Sprintf("ITEM_%04d", i)),
			QuantityPerBase: entities.Quantity(10 + i%7),
		})
	}

	for s := 0; s < stockpiles; s++ {
		name := fmt.Sprintf("STOCKPILE_%03d", s)
		stockpileRepo.AddStockpile(entities.Stockpile{Name: name, BasesToSupply: entities.Quantity(1 + s%4)})
		for i := 0; i < items; i++ {
			total := decimal.NewFromInt(int64((s*31 + i*17) % 90))
			stockRepo.AddStockLevel(entities.StockLevel{
				Stockpile: name,
				CodeName:  entities.CodeName(fmt.Sprintf("ITEM_%04d", i)),
				Total:     total,
			})
		}
	}

	return stockpileRepo, requirementRepo, stockRepo
}
