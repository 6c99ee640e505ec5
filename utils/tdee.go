package utils

import (
	"errors"
	"math"
	"time"
)

// ActivityMultipliers maps activity level strings to their TDEE
// multiplier. Also the source of truth for valid activity levels when
// validating profile updates.
var ActivityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// CalculateTDEE estimates total daily energy expenditure from profile
// data: BMR via Mifflin-St Jeor, scaled by the activity multiplier.
// Height in cm, weight in kg.
func CalculateTDEE(sex string, birthday time.Time, heightCm, weightKg float64, activityLevel string) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 || birthday.IsZero() {
		return 0, errors.New("incomplete profile: height, weight and birthday required")
	}

	age := CalculateAge(birthday)
	if age <= 0 || age > 130 {
		return 0, errors.New("implausible age")
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if sex == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	mult, ok := ActivityMultipliers[activityLevel]
	if !ok {
		mult = ActivityMultipliers["sedentary"]
	}

	return math.Round(bmr * mult), nil
}
