package services

import (
    "errors"

    "github.com/coredmp95/recipe-api/config"
    "github.com/coredmp95/recipe-api/models"
    "github.com/coredmp95/recipe-api/utils"
)

func RegisterUser(email, password, name string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
		Name:     name,
	}

	result := config.DB.Create(&user)
	return result.Error
}

func FindUserByEmail(email string) (models.User, error) {
    var user models.User
    result := config.DB.Where("email = ?", email).First(&user)
    if result.Error != nil {
        return user, errors.New("user not found")
    }
    return user, nil
}
