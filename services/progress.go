package services

// ComplianceHistoryEntry records one day's compliance inside a streak
// goal's date range.
type ComplianceHistoryEntry struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Compliant bool   `json:"compliant"`
}

// StreakProgress is the streak-specific slice of a GoalProgress.
type StreakProgress struct {
	Current int                      `json:"current"`
	History []ComplianceHistoryEntry `json:"history"`
}

// WeeklyAveragePoint is one qualifying week of a trend goal: the Monday
// the week starts on, the mean of that week's samples, and how many
// samples backed it.
type WeeklyAveragePoint struct {
	WeekStart   string  `json:"week_start"` // YYYY-MM-DD, Monday
	Average     float64 `json:"average"`
	SampleCount int     `json:"sample_count"`
}

// GoalProgress is computed on read and never persisted as-is. Exactly
// one of Streak/Trend is set depending on the goal type.
type GoalProgress struct {
	Percent  int                  `json:"percent"`
	Achieved bool                 `json:"achieved"`
	Label    string               `json:"label"`
	Streak   *StreakProgress      `json:"streak,omitempty"`
	Trend    []WeeklyAveragePoint `json:"trend,omitempty"`
}
