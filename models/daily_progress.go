package models

import (
	"time"

	"gorm.io/gorm"
)

// DailyProgress is the per-day nutrition aggregate, one row per user per
// day (local midnight). Absence of a row means nothing was logged that
// day. The streak engine reads calories/protein; carbs and fat are kept
// for the weekly overview surface.
type DailyProgress struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Date   time.Time `gorm:"index;not null"`

	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}
