package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	FullName string

	// Profile fields feeding the TDEE estimate for the recommended
	// calorie basis. Height in cm, weight in kg.
	Birthday      time.Time
	Sex           string // "male" | "female"
	Height        float64
	Weight        float64
	ActivityLevel string // sedentary|light|moderate|active|very_active

	Onboarded bool
	Disabled  bool
}
