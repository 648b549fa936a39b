package models

import "gorm.io/gorm"

// Tag names are unique per user, not globally.
type Tag struct {
    gorm.Model
    UserID uint   `gorm:"not null;uniqueIndex:idx_user_tag_name" json:"user_id"`
    Name   string `gorm:"not null;uniqueIndex:idx_user_tag_name" json:"name"`
}
