package dto

// PostCreateDTO 帖子 - 新增
type PostCreateDTO struct {
	Title       string   `json:"title" binding:"required,min=1,max=255"`
	Description string   `json:"description" binding:"required"`
	IsPrivate   bool     `json:"is_private"`
	Tags        []string `json:"tags"`
}

// PostUpdateDTO 帖子 - 修改，指针字段表达"未提供"
type PostUpdateDTO struct {
	Title       *string  `json:"title" binding:"omitempty,min=1,max=255"`
	Description *string  `json:"description"`
	IsPrivate   *bool    `json:"is_private"`
	Tags        []string `json:"tags"`
}
