package repositories

import "github.com/vsinha/stockpile/pkg/domain/entities"

// StockpileRepository provides access to the stockpile capacity table
type StockpileRepository interface {
	GetStockpile(name string) (*entities.Stockpile, error)
	GetAllStockpiles() ([]*entities.Stockpile, error)
	LoadStockpiles(stockpiles []*entities.Stockpile) error
}
