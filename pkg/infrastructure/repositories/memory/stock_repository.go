package memory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/vsinha/stockpile/pkg/domain/entities"
	"github.com/vsinha/stockpile/pkg/domain/repositories"
)

// StockRepository provides in-memory stock levels indexed by (stockpile, code name).
// Rows sharing a key are summed exactly; the sum is truncated to a whole
// quantity only when it is read.
type StockRepository struct {
	totals   map[entities.StockKey]decimal.Decimal
	order    []entities.StockKey
	snapshot entities.Snapshot
}

// NewStockRepository creates a new in-memory stock repository for one snapshot
func NewStockRepository(snapshot entities.Snapshot) *StockRepository {
	return &StockRepository{
		totals:   make(map[entities.StockKey]decimal.Decimal),
		order:    []entities.StockKey{},
		snapshot: snapshot,
	}
}

// Verify interface compliance
var _ repositories.StockRepository = (*StockRepository)(nil)

// LoadStockLevels loads stock levels into the repository
func (r *StockRepository) LoadStockLevels(levels []*entities.StockLevel) error {
	for _, level := range levels {
		r.AddStockLevel(*level)
	}
	return nil
}

// AddStockLevel adds an observed quantity to the running total for its key
func (r *StockRepository) AddStockLevel(level entities.StockLevel) {
	key := entities.StockKey{Stockpile: level.Stockpile, CodeName: level.CodeName}
	total, exists := r.totals[key]
	if !exists {
		r.order = append(r.order, key)
	}
	r.totals[key] = total.Add(level.Total)
}

// GetQuantity returns the observed quantity for a stockpile and item, or 0.
// Fractional sums are truncated toward zero.
func (r *StockRepository) GetQuantity(stockpile string, codeName entities.CodeName) entities.Quantity {
	total, exists := r.totals[entities.StockKey{Stockpile: stockpile, CodeName: codeName}]
	if !exists {
		return 0
	}
	return entities.TruncateQuantity(total)
}

// GetAllStockLevels returns the summed stock levels sorted by stockpile then code name
func (r *StockRepository) GetAllStockLevels() ([]*entities.StockLevel, error) {
	keys := make([]entities.StockKey, len(r.order))
	copy(keys, r.order)
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Stockpile != keys[j].Stockpile {
			return keys[i].Stockpile < keys[j].Stockpile
		}
		return keys[i].CodeName < keys[j].CodeName
	})

	levels := make([]*entities.StockLevel, 0, len(keys))
	for _, key := range keys {
		levels = append(levels, &entities.StockLevel{
			Stockpile: key.Stockpile,
			CodeName:  key.CodeName,
			Total:     r.totals[key],
		})
	}
	return levels, nil
}

// Snapshot returns the snapshot file the stock levels were read from
func (r *StockRepository) Snapshot() entities.Snapshot {
	return r.snapshot
}
