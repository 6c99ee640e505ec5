package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MeasurementSource string

const (
	MeasurementSourceManual MeasurementSource = "manual"
	MeasurementSourceLog    MeasurementSource = "log"
)

// Measurement is a dated body-composition sample tied to a goal.
// Value carries whichever fields apply ({"bodyFatPct":..}, {"weightKg":..},
// {"leanMassKg":..}); several samples per day are allowed.
type Measurement struct {
	gorm.Model
	GoalID uint              `gorm:"not null;index" json:"goal_id"`
	UserID uint              `gorm:"not null;index" json:"user_id"`
	Date   time.Time         `gorm:"not null;index" json:"date"`
	Value  datatypes.JSON    `json:"value"`
	Source MeasurementSource `gorm:"not null;default:'manual'" json:"source"`
}
