package dto

// PageQueryDTO 分页查询参数，缺省页码 1、页大小 10，上限在 handler 收口
type PageQueryDTO struct {
	Page    int `form:"page,default=1" binding:"omitempty,min=1"`
	PerPage int `form:"per_page,default=10" binding:"omitempty,min=1"`
}

// PostListDTO 帖子列表查询，tag 为精确匹配
type PostListDTO struct {
	PageQueryDTO
	Tag string `form:"tag"`
}
