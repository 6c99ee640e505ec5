package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/chrisshaungrayson-max/DMR-Jason-sub000/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MeasurementService struct{ db *gorm.DB }

func NewMeasurementService(db *gorm.DB) *MeasurementService {
	return &MeasurementService{db: db}
}

// AddMeasurement records a dated body-composition sample against one of
// the user's goals. Multiple samples per day are fine; the trend engine
// averages within the week anyway.
func (s *MeasurementService) AddMeasurement(ctx context.Context, userID, goalID uint, date time.Time, value MeasurementValue, source models.MeasurementSource) (*models.Measurement, error) {
	// Goal must exist and belong to the caller.
	if _, err := NewGoalService(s.db).GetGoal(ctx, userID, goalID); err != nil {
		return nil, err
	}

	if value.BodyFatPct == nil && value.WeightKg == nil && value.LeanMassKg == nil {
		return nil, &ValidationError{Field: "value", Message: "must carry at least one of bodyFatPct, weightKg, leanMassKg"}
	}
	if source != models.MeasurementSourceManual && source != models.MeasurementSourceLog {
		return nil, &ValidationError{Field: "source", Message: "must be 'manual' or 'log'"}
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	m := models.Measurement{
		GoalID: goalID,
		UserID: userID,
		Date:   dayStart(date),
		Value:  datatypes.JSON(payload),
		Source: source,
	}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *MeasurementService) ListMeasurements(ctx context.Context, userID, goalID uint) ([]models.Measurement, error) {
	if _, err := NewGoalService(s.db).GetGoal(ctx, userID, goalID); err != nil {
		return nil, err
	}

	var measurements []models.Measurement
	err := s.db.WithContext(ctx).
		Where("goal_id = ?", goalID).
		Order("date ASC").
		Find(&measurements).Error
	return measurements, err
}
