package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GoalType tags the five supported goal kinds. Unknown tags are accepted
// at the boundary (forward compatibility) but get no progress engine.
type GoalType string

const (
	GoalTypeBodyFat       GoalType = "body_fat"
	GoalTypeWeight        GoalType = "weight"
	GoalTypeLeanMassGain  GoalType = "lean_mass_gain"
	GoalTypeCalorieStreak GoalType = "calorie_streak"
	GoalTypeProteinStreak GoalType = "protein_streak"
)

type GoalStatus string

const (
	GoalStatusActive      GoalStatus = "active"
	GoalStatusAchieved    GoalStatus = "achieved"
	GoalStatusDeactivated GoalStatus = "deactivated"
)

// Goal is a user-defined fitness goal. Params holds the type-specific
// payload as JSON; it is immutable after creation, as are the dates.
// The partial unique index is the authoritative guard for the
// one-active-goal-per-(user,type) invariant; the client-side check in
// services is advisory only.
type Goal struct {
	gorm.Model
	UserID    uint           `gorm:"not null;index;uniqueIndex:idx_goals_one_active,where:active,priority:1" json:"user_id"`
	Type      GoalType       `gorm:"not null;uniqueIndex:idx_goals_one_active,where:active,priority:2" json:"type"`
	Params    datatypes.JSON `json:"params"`
	StartDate time.Time      `gorm:"not null" json:"start_date"`
	EndDate   time.Time      `gorm:"not null" json:"end_date"`
	Active    bool           `gorm:"not null;default:false" json:"active"`
	Status    GoalStatus     `gorm:"not null;default:'active'" json:"status"`
}
