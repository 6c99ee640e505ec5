package services

import (
	"errors"
	"time"

	"github.com/chrisshaungrayson-max/DMR-Jason-sub000/config"
	"github.com/chrisshaungrayson-max/DMR-Jason-sub000/models"
	"github.com/chrisshaungrayson-max/DMR-Jason-sub000/utils"
)

type ProfileInput struct {
	FullName      string  `json:"full_name"`
	Birthday      string  `json:"birthday"` // YYYY-MM-DD
	Sex           string  `json:"sex"`
	Height        float64 `json:"height"`
	Weight        float64 `json:"weight"`
	ActivityLevel string  `json:"activity_level"`
	Onboarded     bool    `json:"onboarded"`
}

func GetUserProfile(email string) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	age := 0
	if !user.Birthday.IsZero() {
		age = utils.CalculateAge(user.Birthday)
	}

	profile := map[string]interface{}{
		"id":             user.ID,
		"email":          user.Email,
		"full_name":      user.FullName,
		"birthday":       user.Birthday.Format("2006-01-02"),
		"age":            age,
		"sex":            user.Sex,
		"height":         user.Height,
		"weight":         user.Weight,
		"activity_level": user.ActivityLevel,
		"onboarded":      user.Onboarded,
	}

	if bmi, err := utils.CalculateBMI(user.Height, user.Weight); err == nil {
		profile["bmi"] = bmi
		profile["bmi_category"] = utils.BMICategory(bmi)
	}
	if tdee, err := utils.CalculateTDEE(user.Sex, user.Birthday, user.Height, user.Weight, user.ActivityLevel); err == nil {
		profile["tdee"] = tdee
	}

	return profile, nil
}

func UpdateUserProfile(email string, input ProfileInput) error {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return errors.New("user not found or disabled")
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Birthday != "" {
		if birthday, err := time.Parse("2006-01-02", input.Birthday); err == nil {
			user.Birthday = birthday
		}
	}
	if input.Sex != "" {
		user.Sex = input.Sex
	}
	if input.Height > 0 {
		user.Height = input.Height
	}
	if input.Weight > 0 {
		user.Weight = input.Weight
	}
	if input.ActivityLevel != "" {
		if _, ok := utils.ActivityMultipliers[input.ActivityLevel]; !ok {
			return errors.New("invalid activity_level")
		}
		user.ActivityLevel = input.ActivityLevel
	}
	user.Onboarded = input.Onboarded

	return config.DB.Save(&user).Error
}
