package engine

// Identifiers of the six default complexity factors. Saved budgets reference
// factors by these ids, so they are a stable contract.
const (
	FactorArea         = "area"
	FactorStage        = "stage"
	FactorDetail       = "detail"
	FactorTechnical    = "technical"
	FactorBureaucratic = "bureaucratic"
	FactorMonitoring   = "monitoring"
)

// FactorOption is one selectable level of a factor.
type FactorOption struct {
	Level int    `json:"level"`
	Label string `json:"label"`
}

// Factor is a named complexity dimension with discrete levels 1-5 and a
// per-user weight. Exactly one factor (area) carries IsArea: its level comes
// from the measured area instead of a direct selection.
type Factor struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Options     []FactorOption `json:"options"`
	Weight      float64        `json:"weight"`
	IsArea      bool           `json:"isArea,omitempty"`
}

// Selections maps factor id to the chosen level (1-5). Partial selections
// are valid; unselected factors are simply excluded from the weighted mean.
type Selections map[string]int

func levelOptions(labels [5]string) []FactorOption {
	opts := make([]FactorOption, 0, 5)
	for i, label := range labels {
		opts = append(opts, FactorOption{Level: i + 1, Label: label})
	}
	return opts
}

// DefaultFactors returns the default factor catalog: six factors, all with
// weight 1.0. Weights are mutable per user; option lists are not.
func DefaultFactors() []Factor {
	return []Factor{
		{
			ID:          FactorArea,
			Name:        "Project area",
			Description: "Built area of the project, classified into a level by the area intervals",
			Options: levelOptions([5]string{
				"Up to 49 m²",
				"50 to 149 m²",
				"150 to 499 m²",
				"500 to 999 m²",
				"1000 m² or more",
			}),
			Weight: 1.0,
			IsArea: true,
		},
		{
			ID:          FactorStage,
			Name:        "Project stage",
			Description: "How far into the design process the deliverable goes",
			Options: levelOptions([5]string{
				"Briefing",
				"Preliminary study",
				"Pre-project",
				"Executive project",
				"Executive project with compatibilization",
			}),
			Weight: 1.0,
		},
		{
			ID:          FactorDetail,
			Name:        "Detailing level",
			Description: "Density of custom detailing required by the client",
			Options: levelOptions([5]string{
				"Minimal detailing",
				"Basic detailing",
				"Standard detailing",
				"High detailing",
				"Full custom detailing",
			}),
			Weight: 1.0,
		},
		{
			ID:          FactorTechnical,
			Name:        "Technical rigor",
			Description: "Structural, normative and engineering constraints on the design",
			Options: levelOptions([5]string{
				"No technical constraints",
				"Few technical constraints",
				"Moderate technical constraints",
				"Strict technical constraints",
				"Critical technical constraints",
			}),
			Weight: 1.0,
		},
		{
			ID:          FactorBureaucratic,
			Name:        "Bureaucratic load",
			Description: "Approvals, permits and documentation the project demands",
			Options: levelOptions([5]string{
				"No approvals needed",
				"Simple municipal approval",
				"Standard approvals",
				"Multiple approval bodies",
				"Heavy regulatory process",
			}),
			Weight: 1.0,
		},
		{
			ID:          FactorMonitoring,
			Name:        "Site monitoring",
			Description: "Intensity of construction-site follow-up included in the contract",
			Options: levelOptions([5]string{
				"No site visits",
				"Occasional visits",
				"Biweekly visits",
				"Weekly visits",
				"Full site management",
			}),
			Weight: 1.0,
		},
	}
}
