package services

import (
	"encoding/json"
	"testing"

	"github.com/chrisshaungrayson-max/DMR-Jason-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func trendGoal(goalType models.GoalType, params interface{}) *models.Goal {
	raw, err := json.Marshal(params)
	if err != nil {
		panic(err)
	}
	return &models.Goal{
		UserID:    1,
		Type:      goalType,
		Params:    datatypes.JSON(raw),
		StartDate: day("2025-08-11"),
		EndDate:   day("2025-09-30"),
		Active:    true,
		Status:    models.GoalStatusActive,
	}
}

func sample(date string, value MeasurementValue) models.Measurement {
	raw, err := json.Marshal(value)
	if err != nil {
		panic(err)
	}
	return models.Measurement{
		GoalID: 1,
		UserID: 1,
		Date:   day(date),
		Value:  datatypes.JSON(raw),
		Source: models.MeasurementSourceManual,
	}
}

func bodyFat(date string, pct float64) models.Measurement {
	return sample(date, MeasurementValue{BodyFatPct: &pct})
}

func weightKg(date string, kg float64) models.Measurement {
	return sample(date, MeasurementValue{WeightKg: &kg})
}

func leanKg(date string, kg float64) models.Measurement {
	return sample(date, MeasurementValue{LeanMassKg: &kg})
}

// Weeks used below: 2025-08-11 and 2025-08-18 are both Mondays.

func TestTrend_SparseWeeksDropped(t *testing.T) {
	goal := trendGoal(models.GoalTypeBodyFat, BodyFatParams{TargetPct: 15})

	// One sample in each of two weeks: neither week qualifies.
	p, err := computeTrendProgress(goal, []models.Measurement{
		bodyFat("2025-08-12", 16),
		bodyFat("2025-08-19", 15),
	})
	require.NoError(t, err)
	assert.Empty(t, p.Trend)
	assert.Equal(t, 0, p.Percent)
	assert.False(t, p.Achieved)
	assert.Equal(t, "", p.Label)
}

func TestTrend_SingleWeekAtTargetNotAchieved(t *testing.T) {
	goal := trendGoal(models.GoalTypeBodyFat, BodyFatParams{TargetPct: 15})

	p, err := computeTrendProgress(goal, []models.Measurement{
		bodyFat("2025-08-11", 15.2),
		bodyFat("2025-08-14", 14.8),
	})
	require.NoError(t, err)
	require.Len(t, p.Trend, 1)
	assert.Equal(t, 15.0, p.Trend[0].Average)
	assert.Equal(t, 100, p.Percent)
	// At target after one qualifying week: full progress, but a second
	// week has to confirm the trend before it counts as achieved.
	assert.False(t, p.Achieved)
}

func TestTrend_SecondWeekConfirmsAchievement(t *testing.T) {
	goal := trendGoal(models.GoalTypeBodyFat, BodyFatParams{TargetPct: 15})

	p, err := computeTrendProgress(goal, []models.Measurement{
		bodyFat("2025-08-11", 17.1),
		bodyFat("2025-08-14", 16.9),
		bodyFat("2025-08-18", 15.1),
		bodyFat("2025-08-21", 14.9),
	})
	require.NoError(t, err)
	require.Len(t, p.Trend, 2)
	assert.Equal(t, 100, p.Percent)
	assert.True(t, p.Achieved)
}

func TestTrend_WeightDownInterpolation(t *testing.T) {
	goal := trendGoal(models.GoalTypeWeight, WeightParams{TargetWeightKg: 90, Direction: "down"})

	// start avg 95.0, current avg 92.5, target 90 → halfway.
	p, err := computeTrendProgress(goal, []models.Measurement{
		weightKg("2025-08-11", 95.5),
		weightKg("2025-08-14", 94.5),
		weightKg("2025-08-18", 93.0),
		weightKg("2025-08-21", 92.0),
	})
	require.NoError(t, err)
	assert.Equal(t, 50, p.Percent)
	assert.False(t, p.Achieved)
	assert.Equal(t, "92.5kg ↓ 90.0kg", p.Label)
}

func TestTrend_WeightUpInterpolation(t *testing.T) {
	goal := trendGoal(models.GoalTypeWeight, WeightParams{TargetWeightKg: 64, Direction: "up"})

	// start avg 60, current avg 62, target 64 → halfway.
	p, err := computeTrendProgress(goal, []models.Measurement{
		weightKg("2025-08-11", 59.5),
		weightKg("2025-08-14", 60.5),
		weightKg("2025-08-18", 61.5),
		weightKg("2025-08-21", 62.5),
	})
	require.NoError(t, err)
	assert.Equal(t, 50, p.Percent)
	assert.Contains(t, p.Label, "↑")
}

func TestTrend_WeightSingleWeekDirectional(t *testing.T) {
	goal := trendGoal(models.GoalTypeWeight, WeightParams{TargetWeightKg: 90, Direction: "down"})

	p, err := computeTrendProgress(goal, []models.Measurement{
		weightKg("2025-08-11", 89.5),
		weightKg("2025-08-14", 89.5),
	})
	require.NoError(t, err)
	assert.Equal(t, 100, p.Percent)
	assert.False(t, p.Achieved)

	p, err = computeTrendProgress(goal, []models.Measurement{
		weightKg("2025-08-11", 91.0),
		weightKg("2025-08-14", 91.0),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, p.Percent)
}

func TestTrend_LeanMassGain(t *testing.T) {
	goal := trendGoal(models.GoalTypeLeanMassGain, LeanMassGainParams{TargetKg: 3})

	// Gained 2.0kg of a 3kg target.
	p, err := computeTrendProgress(goal, []models.Measurement{
		leanKg("2025-08-11", 54.8),
		leanKg("2025-08-14", 55.2),
		leanKg("2025-08-18", 56.8),
		leanKg("2025-08-21", 57.2),
	})
	require.NoError(t, err)
	assert.Equal(t, 67, p.Percent)
	assert.Equal(t, "2.0kg", p.Label)
	assert.False(t, p.Achieved)
}

func TestTrend_LeanMassSingleWeekIsZero(t *testing.T) {
	goal := trendGoal(models.GoalTypeLeanMassGain, LeanMassGainParams{TargetKg: 3})

	// One point gives no baseline to measure gain against.
	p, err := computeTrendProgress(goal, []models.Measurement{
		leanKg("2025-08-11", 58.0),
		leanKg("2025-08-14", 58.0),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, p.Percent)
	assert.Equal(t, "0.0kg", p.Label)
}

func TestTrend_PercentClamped(t *testing.T) {
	goal := trendGoal(models.GoalTypeWeight, WeightParams{TargetWeightKg: 90, Direction: "down"})

	// Overshot the target: clamp at 100.
	p, err := computeTrendProgress(goal, []models.Measurement{
		weightKg("2025-08-11", 95.0),
		weightKg("2025-08-14", 95.0),
		weightKg("2025-08-18", 88.0),
		weightKg("2025-08-21", 88.0),
	})
	require.NoError(t, err)
	assert.Equal(t, 100, p.Percent)
	assert.True(t, p.Achieved)

	// Moving the wrong way: clamp at 0.
	p, err = computeTrendProgress(goal, []models.Measurement{
		weightKg("2025-08-11", 95.0),
		weightKg("2025-08-14", 95.0),
		weightKg("2025-08-18", 97.0),
		weightKg("2025-08-21", 97.0),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, p.Percent)
}

func TestTrend_MixedValueFieldsFilteredByType(t *testing.T) {
	goal := trendGoal(models.GoalTypeWeight, WeightParams{TargetWeightKg: 90, Direction: "down"})

	// Body-fat samples in the same week must not pollute a weight trend.
	p, err := computeTrendProgress(goal, []models.Measurement{
		weightKg("2025-08-11", 92.0),
		weightKg("2025-08-14", 92.0),
		bodyFat("2025-08-12", 18.0),
		bodyFat("2025-08-13", 18.0),
	})
	require.NoError(t, err)
	require.Len(t, p.Trend, 1)
	assert.Equal(t, 92.0, p.Trend[0].Average)
	assert.Equal(t, 2, p.Trend[0].SampleCount)
}
