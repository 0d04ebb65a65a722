package engine

// Expense is a named non-negative monetary amount. The three expense
// categories (fixed operating, personal/essential, variable-per-project)
// all use it but are never merged.
type Expense struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// SumExpenses totals a list of expenses.
func SumExpenses(expenses []Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Value
	}
	return total
}

// RateInputs selects between the two mutually exclusive ways of obtaining
// the minimum hourly rate: a manually entered override, or derivation from
// fixed expenses, personal draw and productive hours. Only the fields of the
// active mode are read, so stale data from the other mode never leaks in.
type RateInputs struct {
	Manual          bool      `json:"manual"`
	ManualRate      float64   `json:"manualRate,omitempty"`
	FixedExpenses   []Expense `json:"fixedExpenses,omitempty"`
	PersonalDraw    float64   `json:"personalDraw,omitempty"`
	ProductiveHours float64   `json:"productiveHours,omitempty"`
}

// DeriveMinimumRate computes the break-even hourly rate:
// (Σ fixed expenses + personal draw) / productive hours. Zero productive
// hours yields the 0 sentinel, never a division error. In manual mode the
// override is returned verbatim and the derivation inputs are ignored.
func DeriveMinimumRate(in RateInputs) float64 {
	if in.Manual {
		return in.ManualRate
	}
	if in.ProductiveHours == 0 {
		return 0
	}
	return (SumExpenses(in.FixedExpenses) + in.PersonalDraw) / in.ProductiveHours
}
