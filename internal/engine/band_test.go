package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDescribeBand_Partition(t *testing.T) {
	cases := []struct {
		value float64
		kind  BandKind
		bands []string
	}{
		{-10, BandExtreme, nil},
		{0, BandExtreme, nil},
		{19.99, BandExtreme, nil},
		{20, BandUnique, []string{BandLow}},
		{45, BandUnique, []string{BandLow}},
		{59.99, BandUnique, []string{BandLow}},
		{60, BandTransition, []string{BandLow, BandMid}},
		{70, BandTransition, []string{BandLow, BandMid}},
		{80, BandTransition, []string{BandLow, BandMid}},
		{80.01, BandUnique, []string{BandMid}},
		{100, BandUnique, []string{BandMid}},
		{114, BandUnique, []string{BandMid}},
		{114.99, BandUnique, []string{BandMid}},
		{115, BandTransition, []string{BandMid, BandHigh}},
		{120, BandTransition, []string{BandMid, BandHigh}},
		{125, BandTransition, []string{BandMid, BandHigh}},
		{125.01, BandUnique, []string{BandHigh}},
		{150, BandUnique, []string{BandHigh}},
		{150.01, BandExtreme, nil},
		{1000, BandExtreme, nil},
	}
	for _, tc := range cases {
		band := DescribeBand(tc.value)
		require.Equal(t, tc.kind, band.Kind, "value %v", tc.value)
		require.Equal(t, tc.bands, band.Bands, "value %v", tc.value)
		require.NotEmpty(t, band.Text, "value %v", tc.value)
	}
}

func TestDescribeBand_ExactlyOneBandEverywhere(t *testing.T) {
	// Walk the interesting range densely: every value must land in exactly
	// one classification and the walk must never hit an undefined gap.
	for v := -5.0; v <= 200; v += 0.01 {
		band := DescribeBand(v)
		switch band.Kind {
		case BandExtreme:
			require.Empty(t, band.Bands)
		case BandUnique:
			require.Len(t, band.Bands, 1)
		case BandTransition:
			require.Len(t, band.Bands, 2)
		default:
			t.Fatalf("value %v produced unknown kind %q", v, band.Kind)
		}
	}
}
