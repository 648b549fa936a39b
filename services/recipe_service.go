// services/recipe_service.go
package services

import (
	"errors"
	"strings"

	"github.com/coredmp95/recipe-api/config"
	"github.com/coredmp95/recipe-api/models"

	"gorm.io/gorm"
)

// ErrEmptyTitle is returned when an update would blank the recipe title.
var ErrEmptyTitle = errors.New("title must not be empty")

// RecipeInput is the create / full-update payload.
type RecipeInput struct {
	Title       string    `json:"title" binding:"required"`
	TimeMinutes int       `json:"time_minutes" binding:"gte=0"`
	Price       float64   `json:"price" binding:"gte=0"`
	Link        string    `json:"link"`
	Description string    `json:"description"`
	Tags        []NameRef `json:"tags"`
	Ingredients []NameRef `json:"ingredients"`
}

// RecipeUpdateInput is the PATCH payload. Nil pointer = field absent = leave
// untouched. A present Tags/Ingredients key (even an empty list) replaces the
// whole association set. There is deliberately no owner field here.
type RecipeUpdateInput struct {
	Title       *string    `json:"title" binding:"omitnil,min=1"`
	TimeMinutes *int       `json:"time_minutes" binding:"omitempty,gte=0"`
	Price       *float64   `json:"price" binding:"omitempty,gte=0"`
	Link        *string    `json:"link"`
	Description *string    `json:"description"`
	Tags        *[]NameRef `json:"tags"`
	Ingredients *[]NameRef `json:"ingredients"`
}

func CreateRecipe(userID uint, in RecipeInput) (*models.Recipe, error) {
	recipe := &models.Recipe{
		UserID:      userID,
		Title:       in.Title,
		TimeMinutes: in.TimeMinutes,
		Price:       in.Price,
		Link:        in.Link,
		Description: in.Description,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		tags, err := ResolveTags(tx, userID, in.Tags)
		if err != nil {
			return err
		}
		ingredients, err := ResolveIngredients(tx, userID, in.Ingredients)
		if err != nil {
			return err
		}
		recipe.Tags = tags
		recipe.Ingredients = ingredients
		return tx.Create(recipe).Error
	})
	if err != nil {
		return nil, err
	}

	return GetRecipe(userID, recipe.ID)
}

// GetRecipe looks up by id AND owner in one query, so a recipe belonging to
// another user is indistinguishable from a missing one (ErrRecordNotFound).
func GetRecipe(userID, recipeID uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := config.DB.
		Preload("Tags").
		Preload("Ingredients").
		Where("id = ? AND user_id = ?", recipeID, userID).
		First(&recipe).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// ListRecipes returns the user's recipes, newest first. Non-empty tagIDs /
// ingredientIDs each narrow the result to recipes carrying at least one of
// the given ids (OR within a set, AND across sets and with ownership).
func ListRecipes(userID uint, tagIDs, ingredientIDs []uint) ([]models.Recipe, error) {
	q := config.DB.Model(&models.Recipe{}).
		Where("recipes.user_id = ?", userID)

	if len(tagIDs) > 0 {
		q = q.
			Joins("JOIN recipe_tags ON recipe_tags.recipe_id = recipes.id").
			Where("recipe_tags.tag_id IN ?", tagIDs)
	}
	if len(ingredientIDs) > 0 {
		q = q.
			Joins("JOIN recipe_ingredients ON recipe_ingredients.recipe_id = recipes.id").
			Where("recipe_ingredients.ingredient_id IN ?", ingredientIDs)
	}

	var recipes []models.Recipe
	err := q.
		Distinct("recipes.*").
		Preload("Tags").
		Preload("Ingredients").
		Order("recipes.id DESC").
		Find(&recipes).Error
	return recipes, err
}

func UpdateRecipe(userID, recipeID uint, in RecipeUpdateInput) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := config.DB.
		Where("id = ? AND user_id = ?", recipeID, userID).
		First(&recipe).Error; err != nil {
		return nil, err // ErrRecordNotFound covers "not mine" too
	}

	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, ErrEmptyTitle
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if in.Title != nil {
			recipe.Title = *in.Title
		}
		if in.TimeMinutes != nil {
			recipe.TimeMinutes = *in.TimeMinutes
		}
		if in.Price != nil {
			recipe.Price = *in.Price
		}
		if in.Link != nil {
			recipe.Link = *in.Link
		}
		if in.Description != nil {
			recipe.Description = *in.Description
		}
		if err := tx.Save(&recipe).Error; err != nil {
			return err
		}

		if in.Tags != nil {
			tags, err := ResolveTags(tx, userID, *in.Tags)
			if err != nil {
				return err
			}
			if len(tags) == 0 {
				err = tx.Model(&recipe).Association("Tags").Clear()
			} else {
				err = tx.Model(&recipe).Association("Tags").Replace(&tags)
			}
			if err != nil {
				return err
			}
		}

		if in.Ingredients != nil {
			ingredients, err := ResolveIngredients(tx, userID, *in.Ingredients)
			if err != nil {
				return err
			}
			if len(ingredients) == 0 {
				err = tx.Model(&recipe).Association("Ingredients").Clear()
			} else {
				err = tx.Model(&recipe).Association("Ingredients").Replace(&ingredients)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return GetRecipe(userID, recipe.ID)
}

// DeleteRecipe drops the recipe and its association rows. The tags and
// ingredients themselves stay.
func DeleteRecipe(userID, recipeID uint) error {
	var recipe models.Recipe
	if err := config.DB.
		Where("id = ? AND user_id = ?", recipeID, userID).
		First(&recipe).Error; err != nil {
		return err
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&recipe).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&recipe).Association("Ingredients").Clear(); err != nil {
			return err
		}
		return tx.Delete(&recipe).Error
	})
}

// SaveRecipeImage records the stored image URL on the recipe.
func SaveRecipeImage(userID, recipeID uint, url string) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := config.DB.
		Where("id = ? AND user_id = ?", recipeID, userID).
		First(&recipe).Error; err != nil {
		return nil, err
	}

	recipe.ImageURL = url
	if err := config.DB.Save(&recipe).Error; err != nil {
		return nil, err
	}
	return GetRecipe(userID, recipe.ID)
}
