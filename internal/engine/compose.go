package engine

// Breakdown holds the composed price chain. Values are full precision; the
// caller rounds at the boundary.
type Breakdown struct {
	AdjustedHourlyRate       float64 `json:"adjustedHourlyRate"`
	ProjectPrice             float64 `json:"projectPrice"`
	DiscountAmount           float64 `json:"discountAmount"`
	ProjectPriceWithDiscount float64 `json:"projectPriceWithDiscount"`
	FinalSalePrice           float64 `json:"finalSalePrice"`
}

// Compose turns the minimum hourly rate and the global complexity multiplier
// into the full price chain, in this order:
//
//  1. adjusted rate   = min rate × complexity
//  2. project price   = adjusted rate × estimated hours
//  3. discount amount = project price × discount% / 100
//  4. discounted      = project price − discount amount
//  5. final sale      = discounted + variable expenses
//
// A 0-sentinel complexity propagates a 0 adjusted rate; the caller must
// treat that as "incomplete", not as a real price.
func Compose(minHourlyRate, estimatedHours, globalComplexity, variableExpensesTotal, discountPercent float64) Breakdown {
	adjusted := minHourlyRate * globalComplexity
	projectPrice := adjusted * estimatedHours
	discount := projectPrice * (discountPercent / 100)
	discounted := projectPrice - discount
	final := discounted + variableExpensesTotal

	return Breakdown{
		AdjustedHourlyRate:       adjusted,
		ProjectPrice:             projectPrice,
		DiscountAmount:           discount,
		ProjectPriceWithDiscount: discounted,
		FinalSalePrice:           final,
	}
}

// Profit estimates the margin above break-even:
// (adjusted rate − minimum rate) × hours. It is reporting-only and defined
// only when both rates and the hours are positive; ok is false otherwise.
func Profit(adjustedHourlyRate, minHourlyRate, estimatedHours float64) (float64, bool) {
	if adjustedHourlyRate <= 0 || minHourlyRate <= 0 || estimatedHours <= 0 {
		return 0, false
	}
	return (adjustedHourlyRate - minHourlyRate) * estimatedHours, true
}
