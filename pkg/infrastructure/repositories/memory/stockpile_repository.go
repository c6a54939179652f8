package memory

import (
	"fmt"

	"github.com/vsinha/stockpile/pkg/domain/entities"
	"github.com/vsinha/stockpile/pkg/domain/repositories"
)

// StockpileRepository provides in-memory stockpile storage in load order
type StockpileRepository struct {
	stockpiles    []entities.Stockpile
	stockpilesMap map[string]int
}

// NewStockpileRepository creates a new in-memory stockpile repository
func NewStockpileRepository(expectedStockpiles int) *StockpileRepository {
	return &StockpileRepository{
		stockpiles:    make([]entities.Stockpile, 0, expectedStockpiles),
		stockpilesMap: make(map[string]int, expectedStockpiles),
	}
}

// Verify interface compliance
var _ repositories.StockpileRepository = (*StockpileRepository)(nil)

// LoadStockpiles loads stockpiles into the repository
func (r *StockpileRepository) LoadStockpiles(stockpiles []*entities.Stockpile) error {
	for _, stockpile := range stockpiles {
		r.AddStockpile(*stockpile)
	}
	return nil
}

// AddStockpile adds a stockpile; a name that is already present keeps its first entry
func (r *StockpileRepository) AddStockpile(stockpile entities.Stockpile) bool {
	if _, exists := r.stockpilesMap[stockpile.Name]; exists {
		return false
	}
	r.stockpilesMap[stockpile.Name] = len(r.stockpiles)
	r.stockpiles = append(r.stockpiles, stockpile)
	return true
}

// GetStockpile returns the stockpile with the given name
func (r *StockpileRepository) GetStockpile(name string) (*entities.Stockpile, error) {
	index, exists := r.stockpilesMap[name]
	if !exists {
		return nil, fmt.Errorf("stockpile not found: %s", name)
	}
	return &r.stockpiles[index], nil
}

// GetAllStockpiles returns all stockpiles in load order
func (r *StockpileRepository) GetAllStockpiles() ([]*entities.Stockpile, error) {
	stockpiles := make([]*entities.Stockpile, 0, len(r.stockpiles))
	for i := range r.stockpiles {
		stockpiles = append(stockpiles, &r.stockpiles[i])
	}
	return stockpiles, nil
}
