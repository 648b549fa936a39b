package models

import "gorm.io/gorm"

// Ingredient follows the same per-user uniqueness rule as Tag.
type Ingredient struct {
    gorm.Model
    UserID uint   `gorm:"not null;uniqueIndex:idx_user_ingredient_name" json:"user_id"`
    Name   string `gorm:"not null;uniqueIndex:idx_user_ingredient_name" json:"name"`
}
