package model

import (
	"time"
)

// PostView 首次浏览标记，(post_id, user_id) 唯一，只增不改
type PostView struct {
	ID        uint64    `gorm:"primaryKey"`
	PostID    uint64    `gorm:"not null;uniqueIndex:uidx_post_user" json:"postId"`
	UserID    uint64    `gorm:"not null;uniqueIndex:uidx_post_user" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (PostView) TableName() string {
	return "post_views"
}
