package model

import (
	"time"
)

// PostLike 联合主键即 (user_id, post_id) 唯一约束，并发点赞依赖它去重
type PostLike struct {
	UserID    uint64    `gorm:"primaryKey" json:"userId"`
	PostID    uint64    `gorm:"primaryKey;index:idx_post_id" json:"postId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (PostLike) TableName() string {
	return "post_likes"
}
