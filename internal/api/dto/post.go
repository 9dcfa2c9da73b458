package dto

// PostDTO 帖子，时间为 RFC3339 字符串
type PostDTO struct {
	ID          uint64   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	UserID      uint64   `json:"user_id"`
	IsPrivate   bool     `json:"is_private"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// PostPageDTO 帖子分页结果，TotalCount 在分页前统计
type PostPageDTO struct {
	Posts      []*PostDTO `json:"posts"`
	TotalCount int64      `json:"total_count"`
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
}
