// services/tag_service.go
package services

import (
	"strings"

	"github.com/coredmp95/recipe-api/config"
	"github.com/coredmp95/recipe-api/models"
)

// ListTags returns the user's tags in reverse-alphabetical order. With
// assignedOnly, only tags attached to at least one of the user's recipes come
// back, each once.
func ListTags(userID uint, assignedOnly bool) ([]models.Tag, error) {
	q := config.DB.Model(&models.Tag{}).
		Where("tags.user_id = ?", userID)

	if assignedOnly {
		q = q.
			Joins("JOIN recipe_tags ON recipe_tags.tag_id = tags.id").
			Joins("JOIN recipes ON recipes.id = recipe_tags.recipe_id AND recipes.deleted_at IS NULL").
			Distinct("tags.*")
	}

	var tags []models.Tag
	err := q.Order("tags.name DESC").Find(&tags).Error
	return tags, err
}

// CreateTag shares the resolver's get-or-create semantics: posting an existing
// name hands back the existing row instead of failing on the unique index.
func CreateTag(userID uint, name string) (*models.Tag, error) {
	tags, err := ResolveTags(config.DB, userID, []NameRef{{Name: name}})
	if err != nil {
		return nil, err
	}
	return &tags[0], nil
}

func UpdateTag(userID, tagID uint, name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	var tag models.Tag
	if err := config.DB.
		Where("id = ? AND user_id = ?", tagID, userID).
		First(&tag).Error; err != nil {
		return nil, err
	}

	tag.Name = name
	if err := config.DB.Save(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// DeleteTag removes the tag and detaches it from any recipes. The delete is
// unscoped: a soft-deleted row would keep holding the (user_id, name) unique
// index and block recreating the name later.
func DeleteTag(userID, tagID uint) error {
	var tag models.Tag
	if err := config.DB.
		Where("id = ? AND user_id = ?", tagID, userID).
		First(&tag).Error; err != nil {
		return err
	}

	if err := config.DB.Exec("DELETE FROM recipe_tags WHERE tag_id = ?", tag.ID).Error; err != nil {
		return err
	}
	return config.DB.Unscoped().Delete(&tag).Error
}
