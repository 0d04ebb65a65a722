package engine

import "math"

// HoursInput carries the levels the effort model needs. Uncertainty is the
// level of the uncertainty-driving factor (bureaucratic load in the default
// catalog); when 0 the detail level stands in for it.
type HoursInput struct {
	Area        float64 `json:"area"`
	AreaLevel   int     `json:"areaLevel"`
	Stage       int     `json:"stage"`
	Detail      int     `json:"detail"`
	Technical   int     `json:"technical"`
	Uncertainty int     `json:"uncertainty,omitempty"`
	Monitoring  int     `json:"monitoring"`
}

// HoursEstimate is the advisory hours forecast: H50 is the median effort for
// the requested stage, H80 the 80th-percentile figure (always ≥ H50).
type HoursEstimate struct {
	H50 int `json:"h50"`
	H80 int `json:"h80"`
}

// hoursTable bundles the empirical lookup tables of the effort model. The
// values are domain calibration carried over from historical projects, not
// tunable defaults; changing any of them breaks parity with saved estimates.
type hoursTable struct {
	// hours per m², by area level; larger projects amortize effort
	productivity [5]float64
	// scaling by detailing level
	detailMult [5]float64
	// share of the executive-complete total per stage, stages 1-4
	stageFrac [4]float64
	// site-monitoring floor hours by monitoring level
	monitorFloor [5]float64
	// site-monitoring share of executive-stage hours by monitoring level
	monitorRate [5]float64
}

var hoursTableV1 = hoursTable{
	productivity: [5]float64{1.60, 1.10, 0.85, 0.65, 0.50},
	detailMult:   [5]float64{0.70, 0.85, 1.00, 1.25, 1.60},
	stageFrac:    [4]float64{0.0385, 0.1346, 0.3462, 0.4808},
	monitorFloor: [5]float64{0, 8, 16, 24, 40},
	monitorRate:  [5]float64{0, 0.05, 0.10, 0.18, 0.30},
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 5 {
		return 5
	}
	return level
}

// normalized maps a 1-5 level onto [0,1].
func normalized(level int) float64 {
	return float64(clampLevel(level)-1) / 4
}

// EstimateHours runs the effort model against the v1 calibration tables.
// It returns the zero estimate when area is not positive (sentinel, per the
// engine's no-error policy).
func EstimateHours(in HoursInput) HoursEstimate {
	return estimateHours(in, hoursTableV1)
}

func estimateHours(in HoursInput, t hoursTable) HoursEstimate {
	if in.Area <= 0 {
		return HoursEstimate{}
	}

	areaLevel := clampLevel(in.AreaLevel)
	stage := clampLevel(in.Stage)
	detail := clampLevel(in.Detail)

	// Median hours for a full executive project of this area and detailing.
	h50Executive := in.Area * t.productivity[areaLevel-1] * t.detailMult[detail-1]

	// Cumulative share of that total delivered up to the requested stage.
	// Stage 5 reuses the stage-4 cumulative and adds compatibilization.
	bucket := stage
	if bucket > 4 {
		bucket = 4
	}
	var cumulative float64
	for i := 0; i < bucket; i++ {
		cumulative += t.stageFrac[i]
	}
	h50Stage := h50Executive * cumulative

	executiveHours := h50Executive * t.stageFrac[3]

	if stage == 5 {
		coeff := 0.12 + 0.08*normalized(in.Technical)
		h50Stage += executiveHours * coeff
	}

	// Site monitoring applies from the executive stage on: whichever is
	// larger between the per-level floor (scaled by project size) and the
	// proportional share of the executive-stage hours.
	if stage >= 4 {
		m := clampLevel(in.Monitoring)
		floor := t.monitorFloor[m-1] * (0.8 + 0.1*float64(areaLevel))
		proportional := t.monitorRate[m-1] * executiveHours
		h50Stage += math.Max(floor, proportional)
	}

	uncertaintyLevel := in.Uncertainty
	if uncertaintyLevel == 0 {
		uncertaintyLevel = detail
	}
	uncertainty := 0.2 + 0.05*normalized(in.Technical) + 0.25*normalized(uncertaintyLevel)

	h50 := int(math.Round(h50Stage))
	h80 := int(math.Round(h50Stage * (1 + uncertainty)))
	if h80 < h50 {
		h80 = h50
	}

	return HoursEstimate{H50: h50, H80: h80}
}
