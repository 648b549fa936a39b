package services

import (
	"time"

	"github.com/coredmp95/recipe-api/config"
	"github.com/coredmp95/recipe-api/models"
)

type UserProfile struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func GetUserProfile(email string) (*UserProfile, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &UserProfile{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}, nil
}

func UpdateUserProfile(email, name string) error {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return err
	}
	user.Name = name
	return config.DB.Save(&user).Error
}
