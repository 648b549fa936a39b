// services/ingredient_service.go
package services

import (
	"strings"

	"github.com/coredmp95/recipe-api/config"
	"github.com/coredmp95/recipe-api/models"
)

func ListIngredients(userID uint, assignedOnly bool) ([]models.Ingredient, error) {
	q := config.DB.Model(&models.Ingredient{}).
		Where("ingredients.user_id = ?", userID)

	if assignedOnly {
		q = q.
			Joins("JOIN recipe_ingredients ON recipe_ingredients.ingredient_id = ingredients.id").
			Joins("JOIN recipes ON recipes.id = recipe_ingredients.recipe_id AND recipes.deleted_at IS NULL").
			Distinct("ingredients.*")
	}

	var ingredients []models.Ingredient
	err := q.Order("ingredients.name DESC").Find(&ingredients).Error
	return ingredients, err
}

func CreateIngredient(userID uint, name string) (*models.Ingredient, error) {
	ingredients, err := ResolveIngredients(config.DB, userID, []NameRef{{Name: name}})
	if err != nil {
		return nil, err
	}
	return &ingredients[0], nil
}

func UpdateIngredient(userID, ingredientID uint, name string) (*models.Ingredient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	var ingredient models.Ingredient
	if err := config.DB.
		Where("id = ? AND user_id = ?", ingredientID, userID).
		First(&ingredient).Error; err != nil {
		return nil, err
	}

	ingredient.Name = name
	if err := config.DB.Save(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func DeleteIngredient(userID, ingredientID uint) error {
	var ingredient models.Ingredient
	if err := config.DB.
		Where("id = ? AND user_id = ?", ingredientID, userID).
		First(&ingredient).Error; err != nil {
		return err
	}

	if err := config.DB.Exec("DELETE FROM recipe_ingredients WHERE ingredient_id = ?", ingredient.ID).Error; err != nil {
		return err
	}
	// unscoped so the (user_id, name) unique index frees the name for reuse
	return config.DB.Unscoped().Delete(&ingredient).Error
}
