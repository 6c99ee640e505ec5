package services

import (
	"context"
	"errors"

	"github.com/chrisshaungrayson-max/DMR-Jason-sub000/models"
	"github.com/chrisshaungrayson-max/DMR-Jason-sub000/utils"

	"gorm.io/gorm"
)

type ProfileService struct{ db *gorm.DB }

func NewProfileService(db *gorm.DB) *ProfileService { return &ProfileService{db: db} }

// TDEEForUser estimates the user's daily energy expenditure from their
// profile. An incomplete profile falls back to DefaultTDEE rather than
// failing — the recommended calorie basis should degrade, not error.
func (s *ProfileService) TDEEForUser(ctx context.Context, userID uint) (float64, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DefaultTDEE, nil
		}
		return 0, err
	}

	tdee, err := utils.CalculateTDEE(user.Sex, user.Birthday, user.Height, user.Weight, user.ActivityLevel)
	if err != nil {
		return DefaultTDEE, nil
	}
	return tdee, nil
}
