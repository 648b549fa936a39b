package models

import "gorm.io/gorm"

// Recipe is the aggregate root. Tags and Ingredients are many-to-many,
// owned by the same user as the recipe.
type Recipe struct {
    gorm.Model
    UserID      uint         `gorm:"index;not null" json:"user_id"` // FK → users.id, write-once
    Title       string       `gorm:"not null" json:"title"`
    TimeMinutes int          `json:"time_minutes"`
    Price       float64      `json:"price"`
    Link        string       `json:"link"`
    Description string       `json:"description"`
    ImageURL    string       `json:"image_url"`
    Tags        []Tag        `gorm:"many2many:recipe_tags" json:"tags"`
    Ingredients []Ingredient `gorm:"many2many:recipe_ingredients" json:"ingredients"`
}
