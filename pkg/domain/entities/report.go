package entities

import "github.com/shopspring/decimal"

// ReportRow combines target and observed stock for one item at one stockpile.
// Difference is Target - Current: positive is a deficit, negative a surplus.
type ReportRow struct {
	Stockpile       string   `json:"stockpile"`
	CodeName        CodeName `json:"code_name"`
	BasesToSupply   Quantity `json:"bases_to_supply"`
	QuantityPerBase Quantity `json:"quantity_per_base"`
	Target          Quantity `json:"target"`
	Current         Quantity `json:"current"`
	Difference      Quantity `json:"difference"`
}

// NewReportRow derives target and difference from capacity, requirement and stock
func NewReportRow(stockpile Stockpile, requirement BaseRequirement, current Quantity) ReportRow {
	target := stockpile.BasesToSupply * requirement.QuantityPerBase
	return ReportRow{
		Stockpile:       stockpile.Name,
		CodeName:        requirement.CodeName,
		BasesToSupply:   stockpile.BasesToSupply,
		QuantityPerBase: requirement.QuantityPerBase,
		Target:          target,
		Current:         current,
		Difference:      target - current,
	}
}

// IsDeficit reports whether the stockpile holds less than its target
func (r ReportRow) IsDeficit() bool {
	return r.Difference > 0
}

// IsSurplus reports whether the stockpile holds more than its target
func (r ReportRow) IsSurplus() bool {
	return r.Difference < 0
}

// LocationSummary totals the report rows of one stockpile
type LocationSummary struct {
	Stockpile  string   `json:"stockpile"`
	Target     Quantity `json:"target"`
	Current    Quantity `json:"current"`
	Difference Quantity `json:"difference"`
}

// FillPercent returns Current/Target as a percentage rounded to one place.
// ok is false when the stockpile has no target.
func (s LocationSummary) FillPercent() (pct decimal.Decimal, ok bool) {
	if s.Target == 0 {
		return decimal.Zero, false
	}
	current := decimal.NewFromInt(int64(s.Current))
	target := decimal.NewFromInt(int64(s.Target))
	return current.Mul(decimal.NewFromInt(100)).DivRound(target, 1), true
}
