package engine

// OpenEnd marks an AreaInterval with no upper bound. Exactly one interval in
// a well-formed set uses it, and that interval must be last.
const OpenEnd float64 = -1

// AreaInterval is one band of the piecewise area classification: areas in
// [Min, Max] (both inclusive, or [Min, ∞) when Max is OpenEnd) map to Level.
type AreaInterval struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Level int     `json:"level"`
}

// Open reports whether the interval has no upper bound.
func (i AreaInterval) Open() bool { return i.Max < 0 }

// areaIntervalsV1 is the interval set that has been active since the first
// release. Budgets saved under it embed a copy, so these numbers are a
// compatibility contract, not tunable defaults.
var areaIntervalsV1 = []AreaInterval{
	{Min: 0, Max: 49, Level: 1},
	{Min: 50, Max: 149, Level: 2},
	{Min: 150, Max: 499, Level: 3},
	{Min: 500, Max: 999, Level: 4},
	{Min: 1000, Max: OpenEnd, Level: 5},
}

// DefaultAreaIntervals returns a copy of the default interval set.
func DefaultAreaIntervals() []AreaInterval {
	out := make([]AreaInterval, len(areaIntervalsV1))
	copy(out, areaIntervalsV1)
	return out
}

// ClassifyArea maps an area in m² to a level using the first matching
// interval in list order. A malformed set that matches nothing yields level 1
// so the caller always has a renderable level; that fallback is deliberate.
func ClassifyArea(area float64, intervals []AreaInterval) int {
	for _, iv := range intervals {
		if iv.Open() {
			if area >= iv.Min {
				return iv.Level
			}
			continue
		}
		if area >= iv.Min && area <= iv.Max {
			return iv.Level
		}
	}
	return 1
}
