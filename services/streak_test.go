package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/chrisshaungrayson-max/DMR-Jason-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func streakGoal(goalType models.GoalType, params interface{}, start, end string) *models.Goal {
	raw, err := json.Marshal(params)
	if err != nil {
		panic(err)
	}
	return &models.Goal{
		UserID:    1,
		Type:      goalType,
		Params:    datatypes.JSON(raw),
		StartDate: day(start),
		EndDate:   day(end),
		Active:    true,
		Status:    models.GoalStatusActive,
	}
}

func proteinDay(date string, grams float64) models.DailyProgress {
	return models.DailyProgress{UserID: 1, Date: day(date), Protein: grams}
}

func calorieDay(date string, cals float64) models.DailyProgress {
	return models.DailyProgress{UserID: 1, Date: day(date), Calories: cals}
}

func TestStreak_TrailingCountStopsAtBreak(t *testing.T) {
	goal := streakGoal(models.GoalTypeProteinStreak,
		ProteinStreakParams{GramsPerDay: 150, TargetDays: 4},
		"2025-08-10", "2025-08-13")

	// 10:✓ 11:✗ 12:✓ 13:✓  — trailing run is 2, the break two days back
	// must not restart the count.
	days := []models.DailyProgress{
		proteinDay("2025-08-10", 160),
		proteinDay("2025-08-11", 100),
		proteinDay("2025-08-12", 155),
		proteinDay("2025-08-13", 151),
	}

	p, err := computeStreakProgress(goal, days, day("2025-08-13"), StreakOptions{})
	require.NoError(t, err)
	require.NotNil(t, p.Streak)
	assert.Equal(t, 2, p.Streak.Current)
	assert.Equal(t, 50, p.Percent)
	assert.False(t, p.Achieved)
	assert.Len(t, p.Streak.History, 4)
	assert.Equal(t, "2/4 days", p.Label)
}

func TestStreak_CalorieRecommendedBand(t *testing.T) {
	goal := streakGoal(models.GoalTypeCalorieStreak,
		CalorieStreakParams{TargetDays: 2, Basis: "recommended"},
		"2025-08-10", "2025-08-12")

	// TDEE 2000 → band [1800, 2200] inclusive.
	days := []models.DailyProgress{
		calorieDay("2025-08-10", 1800), // lower edge, compliant
		calorieDay("2025-08-11", 2250), // above band
		calorieDay("2025-08-12", 2000),
	}

	p, err := computeStreakProgress(goal, days, day("2025-08-12"), StreakOptions{TDEE: 2000})
	require.NoError(t, err)
	assert.Equal(t, 1, p.Streak.Current)
	assert.Equal(t, 50, p.Percent)
	assert.False(t, p.Achieved)
}

func TestStreak_CalorieCustomBandInclusive(t *testing.T) {
	lo, hi := 1900.0, 2100.0
	goal := streakGoal(models.GoalTypeCalorieStreak,
		CalorieStreakParams{TargetDays: 3, Basis: "custom", MinCalories: &lo, MaxCalories: &hi},
		"2025-08-10", "2025-08-12")

	days := []models.DailyProgress{
		calorieDay("2025-08-10", 1900),
		calorieDay("2025-08-11", 2100),
		calorieDay("2025-08-12", 2000),
	}

	p, err := computeStreakProgress(goal, days, day("2025-08-12"), StreakOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, p.Streak.Current)
	assert.Equal(t, 100, p.Percent)
	assert.True(t, p.Achieved)
}

func TestStreak_MissingDayStrictMode(t *testing.T) {
	goal := streakGoal(models.GoalTypeProteinStreak,
		ProteinStreakParams{GramsPerDay: 150, TargetDays: 3},
		"2025-08-10", "2025-08-13")

	// 11th never logged: strict mode records it non-compliant, so the
	// trailing run only reaches back to the 12th.
	days := []models.DailyProgress{
		proteinDay("2025-08-10", 160),
		proteinDay("2025-08-12", 155),
		proteinDay("2025-08-13", 151),
	}

	p, err := computeStreakProgress(goal, days, day("2025-08-13"), StreakOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, p.Streak.Current)
	assert.Len(t, p.Streak.History, 4)
	assert.False(t, p.Streak.History[1].Compliant)
}

func TestStreak_MissingDaySkipMode(t *testing.T) {
	goal := streakGoal(models.GoalTypeProteinStreak,
		ProteinStreakParams{GramsPerDay: 150, TargetDays: 3},
		"2025-08-10", "2025-08-13")

	days := []models.DailyProgress{
		proteinDay("2025-08-10", 160),
		proteinDay("2025-08-12", 155),
		proteinDay("2025-08-13", 151),
	}

	// Same data, skip mode: the unlogged 11th neither breaks nor counts,
	// so the run spans all three logged days.
	p, err := computeStreakProgress(goal, days, day("2025-08-13"), StreakOptions{SkipMissingDays: true})
	require.NoError(t, err)
	assert.Equal(t, 3, p.Streak.Current)
	assert.Len(t, p.Streak.History, 3)
	assert.True(t, p.Achieved)
}

func TestStreak_PercentCapsAtTarget(t *testing.T) {
	goal := streakGoal(models.GoalTypeProteinStreak,
		ProteinStreakParams{GramsPerDay: 100, TargetDays: 2},
		"2025-08-10", "2025-08-13")

	days := []models.DailyProgress{
		proteinDay("2025-08-10", 120),
		proteinDay("2025-08-11", 120),
		proteinDay("2025-08-12", 120),
		proteinDay("2025-08-13", 120),
	}

	p, err := computeStreakProgress(goal, days, day("2025-08-13"), StreakOptions{})
	require.NoError(t, err)
	assert.Equal(t, 4, p.Streak.Current)
	assert.Equal(t, 100, p.Percent)
	assert.True(t, p.Achieved)
}

func TestStreak_FutureDaysNotCounted(t *testing.T) {
	goal := streakGoal(models.GoalTypeProteinStreak,
		ProteinStreakParams{GramsPerDay: 150, TargetDays: 2},
		"2025-08-10", "2025-09-10")

	days := []models.DailyProgress{
		proteinDay("2025-08-10", 160),
		proteinDay("2025-08-11", 155),
	}

	// End date a month out; evaluating on the 11th must not treat the
	// remaining days as non-compliant.
	p, err := computeStreakProgress(goal, days, day("2025-08-11"), StreakOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, p.Streak.Current)
	assert.True(t, p.Achieved)
}

func TestStreak_EmptyRange(t *testing.T) {
	goal := streakGoal(models.GoalTypeProteinStreak,
		ProteinStreakParams{GramsPerDay: 150, TargetDays: 2},
		"2025-08-10", "2025-08-13")

	p, err := computeStreakProgress(goal, nil, day("2025-08-13"), StreakOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, p.Streak.Current)
	assert.Equal(t, 0, p.Percent)
	assert.False(t, p.Achieved)
}
