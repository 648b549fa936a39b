// services/resolver_service.go
package services

import (
	"errors"
	"strings"

	"github.com/coredmp95/recipe-api/models"

	"gorm.io/gorm"
)

// ErrEmptyName is returned when a tag/ingredient reference has a blank name.
var ErrEmptyName = errors.New("name must not be empty")

// NameRef is how recipe payloads reference tags and ingredients.
type NameRef struct {
	Name string `json:"name"`
}

// ResolveTags maps each referenced name to the user's existing tag, creating
// missing ones. Repeated names in the input collapse onto one tag. Must run on
// the same tx as the recipe write so a later failure rolls the inserts back.
func ResolveTags(tx *gorm.DB, userID uint, refs []NameRef) ([]models.Tag, error) {
	seen := make(map[string]bool, len(refs))
	tags := make([]models.Tag, 0, len(refs))
	for _, ref := range refs {
		name := strings.TrimSpace(ref.Name)
		if name == "" {
			return nil, ErrEmptyName
		}
		if seen[name] {
			continue
		}
		seen[name] = true

		var tag models.Tag
		err := tx.Where("user_id = ? AND name = ?", userID, name).
			FirstOrCreate(&tag, models.Tag{UserID: userID, Name: name}).Error
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// ResolveIngredients is the ingredient twin of ResolveTags.
func ResolveIngredients(tx *gorm.DB, userID uint, refs []NameRef) ([]models.Ingredient, error) {
	seen := make(map[string]bool, len(refs))
	ingredients := make([]models.Ingredient, 0, len(refs))
	for _, ref := range refs {
		name := strings.TrimSpace(ref.Name)
		if name == "" {
			return nil, ErrEmptyName
		}
		if seen[name] {
			continue
		}
		seen[name] = true

		var ingredient models.Ingredient
		err := tx.Where("user_id = ? AND name = ?", userID, name).
			FirstOrCreate(&ingredient, models.Ingredient{UserID: userID, Name: name}).Error
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ingredient)
	}
	return ingredients, nil
}
