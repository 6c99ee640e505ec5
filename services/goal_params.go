package services

import (
	"encoding/json"

	"github.com/chrisshaungrayson-max/DMR-Jason-sub000/models"

	"gorm.io/datatypes"
)

// One struct per goal type. Pointer fields distinguish "absent" from
// zero so range checks can report the right failure.

type BodyFatParams struct {
	TargetPct float64 `json:"targetPct"`
}

type WeightParams struct {
	TargetWeightKg float64 `json:"targetWeightKg"`
	Direction      string  `json:"direction"` // "down" | "up"
}

type LeanMassGainParams struct {
	TargetKg float64 `json:"targetKg"`
}

type CalorieStreakParams struct {
	TargetDays  int      `json:"targetDays"`
	Basis       string   `json:"basis"` // "recommended" | "custom"
	MinCalories *float64 `json:"minCalories,omitempty"`
	MaxCalories *float64 `json:"maxCalories,omitempty"`
}

type ProteinStreakParams struct {
	GramsPerDay int `json:"gramsPerDay"`
	TargetDays  int `json:"targetDays"`
}

// ValidateGoalParams checks raw against the schema for the given goal
// type and returns the normalized JSON to persist. Unknown types are
// passed through as an open record rather than rejected, so newer
// clients can store goal kinds this backend does not compute progress
// for yet.
func ValidateGoalParams(goalType models.GoalType, raw json.RawMessage) (datatypes.JSON, error) {
	switch goalType {
	case models.GoalTypeBodyFat:
		var p BodyFatParams
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, &ValidationError{Field: "params", Message: "must be a JSON object"}
		}
		if p.TargetPct <= 0 || p.TargetPct > 100 {
			return nil, &ValidationError{Field: "targetPct", Message: "must be in (0, 100]"}
		}
		return marshalParams(p)

	case models.GoalTypeWeight:
		var p WeightParams
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, &ValidationError{Field: "params", Message: "must be a JSON object"}
		}
		if p.TargetWeightKg <= 0 {
			return nil, &ValidationError{Field: "targetWeightKg", Message: "must be positive"}
		}
		if p.Direction != "down" && p.Direction != "up" {
			return nil, &ValidationError{Field: "direction", Message: "must be 'down' or 'up'"}
		}
		return marshalParams(p)

	case models.GoalTypeLeanMassGain:
		var p LeanMassGainParams
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, &ValidationError{Field: "params", Message: "must be a JSON object"}
		}
		if p.TargetKg <= 0 {
			return nil, &ValidationError{Field: "targetKg", Message: "must be positive"}
		}
		return marshalParams(p)

	case models.GoalTypeCalorieStreak:
		var p CalorieStreakParams
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, &ValidationError{Field: "params", Message: "must be a JSON object"}
		}
		if p.TargetDays < 1 || p.TargetDays > 365 {
			return nil, &ValidationError{Field: "targetDays", Message: "must be in [1, 365]"}
		}
		switch p.Basis {
		case "recommended":
			// bounds ignored; the band comes from the profile TDEE
		case "custom":
			if p.MinCalories == nil || p.MaxCalories == nil {
				return nil, &ValidationError{Field: "minCalories", Message: "custom basis requires both minCalories and maxCalories"}
			}
			if *p.MinCalories > *p.MaxCalories {
				return nil, &ValidationError{Field: "minCalories", Message: "must not exceed maxCalories"}
			}
		default:
			return nil, &ValidationError{Field: "basis", Message: "must be 'recommended' or 'custom'"}
		}
		return marshalParams(p)

	case models.GoalTypeProteinStreak:
		var p ProteinStreakParams
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, &ValidationError{Field: "params", Message: "must be a JSON object"}
		}
		if p.GramsPerDay < 1 || p.GramsPerDay > 1000 {
			return nil, &ValidationError{Field: "gramsPerDay", Message: "must be in [1, 1000]"}
		}
		if p.TargetDays < 1 || p.TargetDays > 365 {
			return nil, &ValidationError{Field: "targetDays", Message: "must be in [1, 365]"}
		}
		return marshalParams(p)

	default:
		// Forward-compatibility escape hatch: any JSON object is kept.
		var open map[string]interface{}
		if err := json.Unmarshal(raw, &open); err != nil {
			return nil, &ValidationError{Field: "params", Message: "must be a JSON object"}
		}
		return datatypes.JSON(raw), nil
	}
}

func marshalParams(p interface{}) (datatypes.JSON, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
