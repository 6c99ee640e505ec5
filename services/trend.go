package services

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/chrisshaungrayson-max/DMR-Jason-sub000/models"
)

// MinWeekSamples is how many measurements a calendar week needs before
// its average enters the trend. Sparser weeks are dropped entirely, not
// zero-filled.
const MinWeekSamples = 2

// MinTrendWeeksForAchievement gates achievement for trend goals: a goal
// sitting at target after a single qualifying week reads 100% but stays
// unachieved until a second qualifying week confirms the trend.
const MinTrendWeeksForAchievement = 2

// MeasurementValue is the decoded payload of a Measurement row. Only
// the field matching the goal type is read.
type MeasurementValue struct {
	BodyFatPct *float64 `json:"bodyFatPct,omitempty"`
	WeightKg   *float64 `json:"weightKg,omitempty"`
	LeanMassKg *float64 `json:"leanMassKg,omitempty"`
}

// computeTrendProgress evaluates a body_fat, weight or lean_mass_gain
// goal from its measurements: bucket into Monday-aligned weeks, average
// each qualifying week, then interpolate progress between the first
// week's average and the latest one.
func computeTrendProgress(goal *models.Goal, measurements []models.Measurement) (*GoalProgress, error) {
	trend := weeklyAverages(goal.Type, measurements)

	if len(trend) == 0 {
		return &GoalProgress{Percent: 0, Achieved: false, Label: "", Trend: trend}, nil
	}

	current := trend[len(trend)-1].Average
	start := trend[0].Average

	var percent int
	var label string

	switch goal.Type {
	case models.GoalTypeBodyFat:
		var p BodyFatParams
		if err := json.Unmarshal(goal.Params, &p); err != nil {
			return nil, fmt.Errorf("decode body_fat params: %w", err)
		}
		if len(trend) == 1 {
			percent = directionalPercent(current <= p.TargetPct)
		} else {
			percent = interpolate(start-current, start-p.TargetPct)
		}
		label = fmt.Sprintf("%.1f%%", current)

	case models.GoalTypeWeight:
		var p WeightParams
		if err := json.Unmarshal(goal.Params, &p); err != nil {
			return nil, fmt.Errorf("decode weight params: %w", err)
		}
		arrow := "↓"
		if p.Direction == "up" {
			arrow = "↑"
		}
		if len(trend) == 1 {
			if p.Direction == "up" {
				percent = directionalPercent(current >= p.TargetWeightKg)
			} else {
				percent = directionalPercent(current <= p.TargetWeightKg)
			}
		} else if p.Direction == "up" {
			percent = interpolate(current-start, p.TargetWeightKg-start)
		} else {
			percent = interpolate(start-current, start-p.TargetWeightKg)
		}
		label = fmt.Sprintf("%.1fkg %s %.1fkg", current, arrow, p.TargetWeightKg)

	case models.GoalTypeLeanMassGain:
		var p LeanMassGainParams
		if err := json.Unmarshal(goal.Params, &p); err != nil {
			return nil, fmt.Errorf("decode lean_mass_gain params: %w", err)
		}
		gained := 0.0
		if len(trend) >= 2 {
			gained = current - start
			percent = interpolate(gained, p.TargetKg)
		}
		// one point: nothing gained yet, percent stays 0
		label = fmt.Sprintf("%.1fkg", gained)

	default:
		return nil, fmt.Errorf("not a trend goal type: %s", goal.Type)
	}

	return &GoalProgress{
		Percent:  percent,
		Achieved: percent >= 100 && len(trend) >= MinTrendWeeksForAchievement,
		Label:    label,
		Trend:    trend,
	}, nil
}

// weeklyAverages buckets measurements into Monday-aligned weeks and
// averages the value field matching the goal type. Weeks with fewer
// than MinWeekSamples samples are dropped.
func weeklyAverages(goalType models.GoalType, measurements []models.Measurement) []WeeklyAveragePoint {
	type bucket struct {
		sum   float64
		count int
	}
	buckets := map[string]*bucket{}

	for _, m := range measurements {
		var v MeasurementValue
		if err := json.Unmarshal(m.Value, &v); err != nil {
			continue
		}
		var val *float64
		switch goalType {
		case models.GoalTypeBodyFat:
			val = v.BodyFatPct
		case models.GoalTypeWeight:
			val = v.WeightKg
		case models.GoalTypeLeanMassGain:
			val = v.LeanMassKg
		}
		if val == nil {
			continue
		}
		key := startOfWeek(m.Date).Format("2006-01-02")
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.sum += *val
		b.count++
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	trend := make([]WeeklyAveragePoint, 0, len(keys))
	for _, k := range keys {
		b := buckets[k]
		if b.count < MinWeekSamples {
			continue
		}
		trend = append(trend, WeeklyAveragePoint{
			WeekStart:   k,
			Average:     round2(b.sum / float64(b.count)),
			SampleCount: b.count,
		})
	}
	return trend
}

// interpolate maps delta/total onto [0,100], clamping on both ends. A
// non-positive total means the goal was already at or past target when
// tracking started; any non-negative movement counts as done.
func interpolate(delta, total float64) int {
	if total <= 0 {
		if delta >= 0 {
			return 100
		}
		return 0
	}
	frac := delta / total
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return int(math.Round(frac * 100))
}

func directionalPercent(met bool) int {
	if met {
		return 100
	}
	return 0
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// startOfWeek returns the Monday of t's week at midnight.
func startOfWeek(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return dayStart(t).AddDate(0, 0, -(wd - 1))
}
