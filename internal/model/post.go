package model

import (
	"time"
)

type Post struct {
	ID          uint64    `gorm:"primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	UserID      uint64    `gorm:"not null;index:idx_user_id" json:"user_id"`
	IsPrivate   bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_private"`
	Tags        []string  `gorm:"type:json;serializer:json" json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}
