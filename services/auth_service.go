package services

import (
	"errors"

	"github.com/chrisshaungrayson-max/DMR-Jason-sub000/config"
	"github.com/chrisshaungrayson-max/DMR-Jason-sub000/models"
	"github.com/chrisshaungrayson-max/DMR-Jason-sub000/utils"
)

func RegisterUser(email, password, fullName string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
		FullName: fullName,
		Disabled: false,
	}

	return config.DB.Create(&user).Error
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return "", errors.New("user not found or disabled")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	return utils.GenerateJWT(user.Email)
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}
