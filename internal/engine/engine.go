// Package engine implements the pricing core: factor-weighted complexity
// scoring, area classification, minimum-rate derivation, price composition,
// price-per-area banding and the effort/hours forecast. Every function is a
// pure, deterministic transform over plain values; the package performs no
// I/O, never panics on degenerate input, and signals "not yet computable"
// through sentinels and tagged values instead of errors.
package engine

import (
	"bytes"
	"encoding/json"
)

// Snapshot is the immutable set of user inputs the engine computes from. It
// is what a saved budget embeds as its data blob.
type Snapshot struct {
	Factors          []Factor       `json:"factors,omitempty"`
	AreaIntervals    []AreaInterval `json:"areaIntervals,omitempty"`
	Selections       Selections     `json:"selections,omitempty"`
	Area             float64        `json:"area,omitempty"`
	Rate             RateInputs     `json:"rate"`
	VariableExpenses []Expense      `json:"variableExpenses,omitempty"`
	DiscountPercent  float64        `json:"discountPercent,omitempty"`
	EstimatedHours   float64        `json:"estimatedHours,omitempty"`
}

// Value is a tagged numeric result: either Computed with a number, or
// incomplete. It exists so a legitimate zero (zero expenses, zero discount)
// is never confused with the "complete previous step" state. It marshals to
// a JSON number, or null when incomplete.
type Value struct {
	Num      float64
	Computed bool
}

// Computed wraps a number in a computed Value.
func Computed(v float64) Value { return Value{Num: v, Computed: true} }

// Incomplete returns the not-yet-computable Value.
func Incomplete() Value { return Value{} }

var nullJSON = []byte("null")

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Computed {
		return nullJSON, nil
	}
	return json.Marshal(v.Num)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), nullJSON) {
		*v = Value{}
		return nil
	}
	var num float64
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*v = Computed(num)
	return nil
}

// Results is the externally observable output of a full computation. All
// fields are recomputable from the snapshot alone.
type Results struct {
	GlobalComplexity         Value          `json:"globalComplexity"`
	MinHourlyRate            Value          `json:"minHourlyRate"`
	AdjustedHourlyRate       Value          `json:"adjustedHourlyRate"`
	ProjectPrice             Value          `json:"projectPrice"`
	DiscountAmount           Value          `json:"discountAmount"`
	ProjectPriceWithDiscount Value          `json:"projectPriceWithDiscount"`
	FinalSalePrice           Value          `json:"finalSalePrice"`
	Profit                   Value          `json:"profit"`
	AreaLevel                int            `json:"areaLevel"`
	PricePerArea             Value          `json:"pricePerArea"`
	PricePerAreaBand         *Band          `json:"pricePerAreaBand,omitempty"`
	SuggestedHours           *HoursEstimate `json:"suggestedHours,omitempty"`
}

// ComputeAll runs every stage of the engine over a snapshot: area
// classification, complexity scoring, minimum-rate derivation, price
// composition, profit, price-per-area banding and the hours forecast.
// Monetary outputs and the complexity are rounded to 2 decimals here, at the
// boundary; the rounded complexity is what feeds the composer, matching how
// historical budgets were priced.
func ComputeAll(s Snapshot) Results {
	factors := s.Factors
	if len(factors) == 0 {
		factors = DefaultFactors()
	}
	intervals := s.AreaIntervals
	if len(intervals) == 0 {
		intervals = DefaultAreaIntervals()
	}

	// The area factor's level is derived from the measurement, never picked
	// directly. Work on a copy so the caller's selections stay untouched.
	selections := make(Selections, len(s.Selections)+1)
	for id, level := range s.Selections {
		selections[id] = level
	}
	var areaLevel int
	if s.Area > 0 {
		areaLevel = ClassifyArea(s.Area, intervals)
		for _, f := range factors {
			if f.IsArea {
				selections[f.ID] = areaLevel
			}
		}
	}

	var res Results
	res.AreaLevel = areaLevel

	complexity := ScoreComplexity(factors, selections)
	if complexity > 0 {
		complexity = Round2(complexity)
		res.GlobalComplexity = Computed(complexity)
	}

	minRate := DeriveMinimumRate(s.Rate)
	if minRate > 0 {
		res.MinHourlyRate = Computed(Round2(minRate))
	}

	if complexity > 0 && minRate > 0 {
		b := Compose(minRate, s.EstimatedHours, complexity, SumExpenses(s.VariableExpenses), s.DiscountPercent)
		res.AdjustedHourlyRate = Computed(Round2(b.AdjustedHourlyRate))
		res.ProjectPrice = Computed(Round2(b.ProjectPrice))
		res.DiscountAmount = Computed(Round2(b.DiscountAmount))
		res.ProjectPriceWithDiscount = Computed(Round2(b.ProjectPriceWithDiscount))
		res.FinalSalePrice = Computed(Round2(b.FinalSalePrice))

		if profit, ok := Profit(b.AdjustedHourlyRate, minRate, s.EstimatedHours); ok {
			res.Profit = Computed(Round2(profit))
		}

		if s.Area > 0 {
			perArea := b.FinalSalePrice / s.Area
			res.PricePerArea = Computed(Round2(perArea))
			band := DescribeBand(perArea)
			res.PricePerAreaBand = &band
		}
	}

	if s.Area > 0 {
		if est := suggestHours(s, areaLevel); est != nil {
			res.SuggestedHours = est
		}
	}

	return res
}

// suggestHours feeds the effort model when the selections it depends on are
// present. It is advisory only and independent of the pricing chain above.
func suggestHours(s Snapshot, areaLevel int) *HoursEstimate {
	stage, okStage := s.Selections[FactorStage]
	detail, okDetail := s.Selections[FactorDetail]
	technical, okTechnical := s.Selections[FactorTechnical]
	monitoring, okMonitoring := s.Selections[FactorMonitoring]
	if !okStage || !okDetail || !okTechnical || !okMonitoring {
		return nil
	}

	est := EstimateHours(HoursInput{
		Area:        s.Area,
		AreaLevel:   areaLevel,
		Stage:       stage,
		Detail:      detail,
		Technical:   technical,
		Uncertainty: s.Selections[FactorBureaucratic],
		Monitoring:  monitoring,
	})
	if est.H50 == 0 && est.H80 == 0 {
		return nil
	}
	return &est
}
