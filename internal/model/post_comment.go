package model

import (
	"time"
)

type PostComment struct {
	ID        uint64    `gorm:"primaryKey"`
	PostID    uint64    `gorm:"not null;index:idx_post_id" json:"postId"`
	UserID    uint64    `gorm:"not null" json:"userId"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func (PostComment) TableName() string {
	return "post_comments"
}
