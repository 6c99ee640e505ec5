package services

import (
	"context"
	"time"

	"github.com/chrisshaungrayson-max/DMR-Jason-sub000/models"

	"gorm.io/gorm"
)

type DailyProgressService struct{ db *gorm.DB }

func NewDailyProgressService(db *gorm.DB) *DailyProgressService {
	return &DailyProgressService{db: db}
}

// UpsertDay writes the nutrition aggregate for one day, keyed by
// (user_id, date at local midnight).
func (s *DailyProgressService) UpsertDay(ctx context.Context, userID uint, date time.Time, calories, protein, carbs, fat float64) error {
	start := dayStart(date)

	dp := models.DailyProgress{
		UserID:   userID,
		Date:     start,
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
	}

	return s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, start).
		Assign(dp).
		FirstOrCreate(&dp).Error
}

func (s *DailyProgressService) History(ctx context.Context, userID uint) ([]models.DailyProgress, error) {
	var logs []models.DailyProgress
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&logs).Error
	return logs, err
}
