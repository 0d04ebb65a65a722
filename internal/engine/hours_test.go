package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEstimateHours_MidStageResidential(t *testing.T) {
	// 120 m² (level 2), pre-project stage, standard detail. Below the
	// executive stage neither monitoring nor compatibilization applies.
	// h50 executive-complete = 120 × 1.10 × 1.00 = 132
	// cumulative through stage 3 = 0.0385 + 0.1346 + 0.3462 = 0.5193
	// h50 = round(132 × 0.5193) = 69
	// uncertainty = 0.2 + 0.05×0.25 + 0.25×0 = 0.2125
	// h80 = round(68.5476 × 1.2125) = 83
	est := EstimateHours(HoursInput{
		Area:        120,
		AreaLevel:   2,
		Stage:       3,
		Detail:      3,
		Technical:   2,
		Uncertainty: 1,
		Monitoring:  2,
	})
	require.Equal(t, 69, est.H50)
	require.Equal(t, 83, est.H80)
}

func TestEstimateHours_CompatibilizationAndMonitoring(t *testing.T) {
	// 300 m² (level 3), full executive with compatibilization, high detail,
	// critical technical rigor, biweekly monitoring.
	// h50 executive-complete = 300 × 0.85 × 1.25 = 318.75
	// cumulative stages 1-4 = 1.0001 → 318.781875
	// executive bucket = 318.75 × 0.4808 = 153.255
	// compatibilization = 153.255 × (0.12 + 0.08×1.0) = 30.651
	// monitoring = max(16×(0.8+0.3), 0.10×153.255) = max(17.6, 15.3255)
	// h50 = round(318.781875 + 30.651 + 17.6) = 367
	// uncertainty = 0.2 + 0.05×1.0 + 0.25×0.25 = 0.3125
	// h80 = round(367.032875 × 1.3125) = 482
	est := EstimateHours(HoursInput{
		Area:        300,
		AreaLevel:   3,
		Stage:       5,
		Detail:      4,
		Technical:   5,
		Uncertainty: 2,
		Monitoring:  3,
	})
	require.Equal(t, 367, est.H50)
	require.Equal(t, 482, est.H80)
}

func TestEstimateHours_H80NeverBelowH50(t *testing.T) {
	for stage := 1; stage <= 5; stage++ {
		for detail := 1; detail <= 5; detail++ {
			for monitoring := 1; monitoring <= 5; monitoring++ {
				est := EstimateHours(HoursInput{
					Area:       450,
					AreaLevel:  3,
					Stage:      stage,
					Detail:     detail,
					Technical:  3,
					Monitoring: monitoring,
				})
				require.GreaterOrEqual(t, est.H80, est.H50,
					"stage=%d detail=%d monitoring=%d", stage, detail, monitoring)
			}
		}
	}
}

func TestEstimateHours_StageCumulative(t *testing.T) {
	// Later stages always include the earlier buckets, so h50 must grow
	// monotonically with the stage.
	prev := 0
	for stage := 1; stage <= 5; stage++ {
		est := EstimateHours(HoursInput{
			Area:       200,
			AreaLevel:  3,
			Stage:      stage,
			Detail:     3,
			Technical:  3,
			Monitoring: 1,
		})
		require.Greater(t, est.H50, prev, "stage %d", stage)
		prev = est.H50
	}
}

func TestEstimateHours_MonitoringFloorVersusProportional(t *testing.T) {
	base := EstimateHours(HoursInput{
		Area: 100, AreaLevel: 2, Stage: 4, Detail: 3, Technical: 3, Monitoring: 1,
	})
	// Level-1 monitoring has a zero floor and a zero rate: no addend.
	heavy := EstimateHours(HoursInput{
		Area: 100, AreaLevel: 2, Stage: 4, Detail: 3, Technical: 3, Monitoring: 5,
	})
	require.Greater(t, heavy.H50, base.H50)

	// On a small project the floor dominates the proportional share:
	// floor = 40 × (0.8 + 0.2) = 40, proportional = 0.30 × (100×1.10×0.4808).
	small := EstimateHours(HoursInput{
		Area: 40, AreaLevel: 1, Stage: 4, Detail: 3, Technical: 3, Monitoring: 5,
	})
	noMon := EstimateHours(HoursInput{
		Area: 40, AreaLevel: 1, Stage: 4, Detail: 3, Technical: 3, Monitoring: 1,
	})
	floor := hoursTableV1.monitorFloor[4] * (0.8 + 0.1*1)
	require.InDelta(t, floor, float64(small.H50-noMon.H50), 1.0)
}

func TestEstimateHours_ZeroAreaSentinel(t *testing.T) {
	require.Zero(t, EstimateHours(HoursInput{Area: 0, Stage: 3, Detail: 3}))
	require.Zero(t, EstimateHours(HoursInput{Area: -10, Stage: 3, Detail: 3}))
}

func TestEstimateHours_LevelsClamped(t *testing.T) {
	wild := EstimateHours(HoursInput{
		Area: 100, AreaLevel: 99, Stage: 99, Detail: -3, Technical: 99, Monitoring: 99,
	})
	tame := EstimateHours(HoursInput{
		Area: 100, AreaLevel: 5, Stage: 5, Detail: 1, Technical: 5, Monitoring: 5,
	})
	require.Equal(t, tame, wild)
}

func TestHoursTableV1_Locked(t *testing.T) {
	// The calibration tables are a versioned contract; a changed constant
	// must be a new table version, never an edit of v1.
	require.Equal(t, [5]float64{1.60, 1.10, 0.85, 0.65, 0.50}, hoursTableV1.productivity)
	require.Equal(t, [5]float64{0.70, 0.85, 1.00, 1.25, 1.60}, hoursTableV1.detailMult)
	require.Equal(t, [4]float64{0.0385, 0.1346, 0.3462, 0.4808}, hoursTableV1.stageFrac)
	require.Equal(t, [5]float64{0, 8, 16, 24, 40}, hoursTableV1.monitorFloor)
	require.Equal(t, [5]float64{0, 0.05, 0.10, 0.18, 0.30}, hoursTableV1.monitorRate)
}
