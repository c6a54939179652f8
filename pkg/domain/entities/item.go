package entities

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// CodeName represents a unique item identifier as exported by the game
type CodeName string

// Quantity represents an integer quantity of crates or units
type Quantity int64

// Abs returns the magnitude of the quantity
func (q Quantity) Abs() Quantity {
	if q < 0 {
		return -q
	}
	return q
}

var (
	maxQuantity = decimal.NewFromInt(math.MaxInt64)
	minQuantity = decimal.NewFromInt(math.MinInt64)
)

// TruncateQuantity drops the fractional part of d, saturating at the int64 range
func TruncateQuantity(d decimal.Decimal) Quantity {
	switch {
	case d.GreaterThan(maxQuantity):
		return math.MaxInt64
	case d.LessThan(minQuantity):
		return math.MinInt64
	}
	return Quantity(d.Truncate(0).IntPart())
}

// BaseRequirement is the per-base quantity of one item a location should hold
type BaseRequirement struct {
	CodeName        CodeName `json:"code_name"`
	QuantityPerBase Quantity `json:"quantity_per_base"`
}

// NewBaseRequirement creates a validated BaseRequirement
func NewBaseRequirement(codeName CodeName, quantityPerBase Quantity) (*BaseRequirement, error) {
	if string(codeName) == "" {
		return nil, fmt.Errorf("code name cannot be empty")
	}

	return &BaseRequirement{
		CodeName:        codeName,
		QuantityPerBase: quantityPerBase,
	}, nil
}
