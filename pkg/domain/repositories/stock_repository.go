package repositories

import "github.com/vsinha/stockpile/pkg/domain/entities"

// StockRepository provides access to observed stock levels from one snapshot
type StockRepository interface {
	// GetQuantity returns the summed observed quantity, or 0 when nothing was observed
	GetQuantity(stockpile string, codeName entities.CodeName) entities.Quantity
	GetAllStockLevels() ([]*entities.StockLevel, error)
	LoadStockLevels(levels []*entities.StockLevel) error
	Snapshot() entities.Snapshot
}
