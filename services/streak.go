package services

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/chrisshaungrayson-max/DMR-Jason-sub000/models"
)

// RecommendedCalorieTolerance sets the compliance band for the
// "recommended" calorie basis: a day counts when total calories land
// within TDEE ± 10%, inclusive at both edges.
const RecommendedCalorieTolerance = 0.10

// DefaultTDEE is assumed when the user's profile is too incomplete to
// estimate one (same fallback the nutrient safety checks use).
const DefaultTDEE = 2000

// StreakOptions tunes streak evaluation. TDEE backs the recommended
// calorie basis. SkipMissingDays switches missing-data handling: strict
// mode (default) records an unlogged day as non-compliant and breaks
// the run; skip mode leaves unlogged days out of the history entirely,
// so they neither extend nor break it.
type StreakOptions struct {
	TDEE            float64
	SkipMissingDays bool
}

// computeStreakProgress evaluates a calorie_streak or protein_streak
// goal against the user's daily aggregates. asOf caps the history at
// the current day so a goal whose end date lies in the future is not
// penalized for days that have not happened yet.
func computeStreakProgress(goal *models.Goal, days []models.DailyProgress, asOf time.Time, opts StreakOptions) (*GoalProgress, error) {
	var targetDays int
	var compliant func(models.DailyProgress) bool

	switch goal.Type {
	case models.GoalTypeProteinStreak:
		var p ProteinStreakParams
		if err := json.Unmarshal(goal.Params, &p); err != nil {
			return nil, fmt.Errorf("decode protein_streak params: %w", err)
		}
		targetDays = p.TargetDays
		compliant = func(dp models.DailyProgress) bool {
			return dp.Protein >= float64(p.GramsPerDay)
		}

	case models.GoalTypeCalorieStreak:
		var p CalorieStreakParams
		if err := json.Unmarshal(goal.Params, &p); err != nil {
			return nil, fmt.Errorf("decode calorie_streak params: %w", err)
		}
		targetDays = p.TargetDays
		lo, hi := calorieBand(p, opts.TDEE)
		compliant = func(dp models.DailyProgress) bool {
			return dp.Calories >= lo && dp.Calories <= hi
		}

	default:
		return nil, fmt.Errorf("not a streak goal type: %s", goal.Type)
	}

	history := buildComplianceHistory(goal.StartDate, goal.EndDate, days, asOf, compliant, opts.SkipMissingDays)
	current := trailingStreak(history)

	capped := current
	if capped > targetDays {
		capped = targetDays
	}
	percent := int(math.Round(float64(capped) / float64(targetDays) * 100))

	return &GoalProgress{
		Percent:  percent,
		Achieved: current >= targetDays,
		Label:    fmt.Sprintf("%d/%d days", current, targetDays),
		Streak:   &StreakProgress{Current: current, History: history},
	}, nil
}

func calorieBand(p CalorieStreakParams, tdee float64) (lo, hi float64) {
	if p.Basis == "custom" && p.MinCalories != nil && p.MaxCalories != nil {
		return *p.MinCalories, *p.MaxCalories
	}
	if tdee <= 0 {
		tdee = DefaultTDEE
	}
	return tdee * (1 - RecommendedCalorieTolerance), tdee * (1 + RecommendedCalorieTolerance)
}

// buildComplianceHistory walks every day in [start, min(end, asOf)] in
// ascending order. A day with no aggregate row is non-compliant in
// strict mode and omitted in skip mode.
func buildComplianceHistory(start, end time.Time, days []models.DailyProgress, asOf time.Time, compliant func(models.DailyProgress) bool, skipMissing bool) []ComplianceHistoryEntry {
	byDay := map[string]models.DailyProgress{}
	for _, d := range days {
		byDay[d.Date.Format("2006-01-02")] = d
	}

	from := dayStart(start)
	to := dayStart(end)
	if today := dayStart(asOf); today.Before(to) {
		to = today
	}

	var history []ComplianceHistoryEntry
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		dp, logged := byDay[key]
		if !logged {
			if skipMissing {
				continue
			}
			history = append(history, ComplianceHistoryEntry{Date: key, Compliant: false})
			continue
		}
		history = append(history, ComplianceHistoryEntry{Date: key, Compliant: compliant(dp)})
	}
	return history
}

// trailingStreak counts consecutive compliant entries from the most
// recent day backward, stopping at the first break.
func trailingStreak(history []ComplianceHistoryEntry) int {
	count := 0
	for i := len(history) - 1; i >= 0; i-- {
		if !history[i].Compliant {
			break
		}
		count++
	}
	return count
}
