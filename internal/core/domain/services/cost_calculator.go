package services

import (
	"github.com/shopspring/decimal"
)

// CostBreakdown holds the derived cost fields for one fulfillment row.
// These values are recomputed on every read and are never the source of
// truth; nothing here is written back to the fulfillment row.
type CostBreakdown struct {
	// FinalPackageAmount is finalOrder + bonus, in packs.
	FinalPackageAmount float64

	// FinalUnitAmount is the package amount converted with the supplier-side
	// pack-to-unit factor.
	FinalUnitAmount float64

	// BonusPercentage is bonus / finalOrder x 100, rounded to two decimal
	// places. Zero when finalOrder is not positive.
	BonusPercentage decimal.Decimal

	// TotalPrice is finalOrder x unit price. The bonus is free stock and is
	// deliberately excluded.
	TotalPrice decimal.Decimal
}

// CostCalculator derives cost figures from fulfillment input and catalog
// pricing.
type CostCalculator struct{}

// NewCostCalculator creates a new CostCalculator instance.
func NewCostCalculator() CostCalculator {
	return CostCalculator{}
}

// Calculate computes the cost breakdown for one fulfillment row.
func (CostCalculator) Calculate(
	finalOrder, bonus, unitsPerPackSupplier float64,
	unitPrice decimal.Decimal,
) CostBreakdown {
	finalPackageAmount := finalOrder + bonus

	bonusPercentage := decimal.Zero
	if finalOrder > 0 {
		bonusPercentage = decimal.NewFromFloat(bonus).
			Div(decimal.NewFromFloat(finalOrder)).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	return CostBreakdown{
		FinalPackageAmount: finalPackageAmount,
		FinalUnitAmount:    finalPackageAmount * unitsPerPackSupplier,
		BonusPercentage:    bonusPercentage,
		TotalPrice:         unitPrice.Mul(decimal.NewFromFloat(finalOrder)),
	}
}
