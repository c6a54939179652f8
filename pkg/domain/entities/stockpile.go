package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Stockpile is a named storage point and the number of bases it supplies
type Stockpile struct {
	Name          string   `json:"name"`
	BasesToSupply Quantity `json:"bases_to_supply"`
}

// NewStockpile creates a validated Stockpile
func NewStockpile(name string, basesToSupply Quantity) (*Stockpile, error) {
	if name == "" {
		return nil, fmt.Errorf("stockpile name cannot be empty")
	}

	return &Stockpile{
		Name:          name,
		BasesToSupply: basesToSupply,
	}, nil
}

// StockLevel is an observed quantity of one item at one stockpile. Exports
// may carry fractional totals; they stay exact until rows are summed.
type StockLevel struct {
	Stockpile string          `json:"stockpile"`
	CodeName  CodeName        `json:"code_name"`
	Total     decimal.Decimal `json:"total"`
}

// NewStockLevel creates a validated StockLevel
func NewStockLevel(stockpile string, codeName CodeName, total decimal.Decimal) (*StockLevel, error) {
	if stockpile == "" {
		return nil, fmt.Errorf("stockpile name cannot be empty")
	}
	if string(codeName) == "" {
		return nil, fmt.Errorf("code name cannot be empty")
	}

	return &StockLevel{
		Stockpile: stockpile,
		CodeName:  codeName,
		Total:     total,
	}, nil
}

// StockKey identifies a (stockpile, item) pair
type StockKey struct {
	Stockpile string   `json:"stockpile"`
	CodeName  CodeName `json:"code_name"`
}

// Snapshot describes the stock export a report was built from
type Snapshot struct {
	Path       string    `json:"path"`
	ModifiedAt time.Time `json:"modified_at"`
}
