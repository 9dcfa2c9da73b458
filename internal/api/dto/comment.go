package dto

// CommentDTO 评论，创建后不可变
type CommentDTO struct {
	ID        uint64 `json:"id"`
	PostID    uint64 `json:"post_id"`
	UserID    uint64 `json:"user_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// CommentPageDTO 评论分页结果
type CommentPageDTO struct {
	Comments   []*CommentDTO `json:"comments"`
	TotalCount int64         `json:"total_count"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
}

// CommentCreateDTO 评论 - 新增
type CommentCreateDTO struct {
	Content string `json:"content" binding:"required,min=1"`
}
