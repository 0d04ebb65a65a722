package engine

// BandKind classifies a price-per-area value relative to the reference bands.
type BandKind string

const (
	// BandExtreme is a value below or above every reference band.
	BandExtreme BandKind = "extreme"
	// BandUnique is a value sitting inside exactly one reference band.
	BandUnique BandKind = "unique"
	// BandTransition is a value on the border zone between two bands.
	BandTransition BandKind = "transition"
)

// Reference band names, ordered low to high.
const (
	BandLow  = "low"
	BandMid  = "mid"
	BandHigh = "high"
)

// Band describes where a price-per-area value falls. Bands holds one name
// for unique values, the two neighbouring names for transitions, and is
// empty for extremes. The classification is informational only; it never
// feeds back into the price.
type Band struct {
	Kind  BandKind `json:"kind"`
	Bands []string `json:"bands,omitempty"`
	Text  string   `json:"text"`
}

// DescribeBand partitions the real line into the fixed reference bands.
// Boundary values belong to the transition band they border (transitions are
// closed on both sides). The thresholds are a documented contract:
//
//	< 20            extreme below
//	[20, 60)        unique low
//	[60, 80]        transition low/mid
//	(80, 115)       unique mid
//	[115, 125]      transition mid/high
//	(125, 150]      unique high
//	> 150           extreme above
func DescribeBand(pricePerArea float64) Band {
	switch {
	case pricePerArea < 20:
		return Band{Kind: BandExtreme, Text: "below every reference band"}
	case pricePerArea > 150:
		return Band{Kind: BandExtreme, Text: "above every reference band"}
	case pricePerArea < 60:
		return Band{Kind: BandUnique, Bands: []string{BandLow}, Text: "within the low complexity band"}
	case pricePerArea <= 80:
		return Band{Kind: BandTransition, Bands: []string{BandLow, BandMid}, Text: "in transition between the low and mid complexity bands"}
	case pricePerArea < 115:
		return Band{Kind: BandUnique, Bands: []string{BandMid}, Text: "within the mid complexity band"}
	case pricePerArea <= 125:
		return Band{Kind: BandTransition, Bands: []string{BandMid, BandHigh}, Text: "in transition between the mid and high complexity bands"}
	default:
		return Band{Kind: BandUnique, Bands: []string{BandHigh}, Text: "within the high complexity band"}
	}
}
