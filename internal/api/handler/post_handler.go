package handler

import (
	"Corkboard/internal/api/dto"
	"Corkboard/internal/pkg/consts"
	"Corkboard/internal/pkg/response"
	"strconv"

	"github.com/gin-gonic/gin"

	"Corkboard/internal/rpc/postspb"
)

// PostHandler 帖子 CRUD 与列表，REST 请求翻译成对帖子服务的 gRPC 调用
type PostHandler struct {
	client postspb.PostServiceClient
}

func NewPostHandler(client postspb.PostServiceClient) *PostHandler {
	return &PostHandler{
		client: client,
	}
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.PostCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	resp, err := s.client.CreatePost(rpcCtx(c), &postspb.CreatePostRequest{
		Title:       req.Title,
		Description: req.Description,
		UserId:      int32(userID),
		IsPrivate:   req.IsPrivate,
		Tags:        req.Tags,
	})
	if err != nil {
		response.RPCError(c, err)
		return
	}
	if resp.GetError() != "" {
		response.RPCFail(c, resp.GetError())
		return
	}
	response.Success(c, toPostDTO(resp.GetPost()))
}

func (s *PostHandler) GetPost(c *gin.Context) {
	userID := c.GetUint64("user_id")

	postID, err := parsePostID(c)
	if err != nil {
		response.Fail(c, response.BadRequest, "Invalid post id")
		return
	}

	resp, err := s.client.GetPost(rpcCtx(c), &postspb.GetPostRequest{
		PostId: int32(postID),
		UserId: int32(userID),
	})
	if err != nil {
		response.RPCError(c, err)
		return
	}
	if resp.GetError() != "" {
		response.RPCFail(c, resp.GetError())
		return
	}
	response.Success(c, toPostDTO(resp.GetPost()))
}

func (s *PostHandler) UpdatePost(c *gin.Context) {
	userID := c.GetUint64("user_id")

	postID, err := parsePostID(c)
	if err != nil {
		response.Fail(c, response.BadRequest, "Invalid post id")
		return
	}

	var req dto.PostUpdateDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	resp, err := s.client.UpdatePost(rpcCtx(c), &postspb.UpdatePostRequest{
		PostId:      int32(postID),
		UserId:      int32(userID),
		Title:       req.Title,
		Description: req.Description,
		IsPrivate:   req.IsPrivate,
		Tags:        req.Tags,
	})
	if err != nil {
		response.RPCError(c, err)
		return
	}
	if resp.GetError() != "" {
		response.RPCFail(c, resp.GetError())
		return
	}
	response.Success(c, toPostDTO(resp.GetPost()))
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	userID := c.GetUint64("user_id")

	postID, err := parsePostID(c)
	if err != nil {
		response.Fail(c, response.BadRequest, "Invalid post id")
		return
	}

	resp, err := s.client.DeletePost(rpcCtx(c), &postspb.DeletePostRequest{
		PostId: int32(postID),
		UserId: int32(userID),
	})
	if err != nil {
		response.RPCError(c, err)
		return
	}
	if !resp.GetSuccess() {
		response.RPCFail(c, resp.GetMessage())
		return
	}
	response.Success(c, gin.H{"message": resp.GetMessage()})
}

func (s *PostHandler) ListPosts(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var query dto.PostListDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}
	clampPage(&query.PageQueryDTO)

	resp, err := s.client.ListPosts(rpcCtx(c), &postspb.ListPostsRequest{
		Page:    int32(query.Page),
		PerPage: int32(query.PerPage),
		UserId:  int32(userID),
		Tag:     query.Tag,
	})
	if err != nil {
		response.RPCError(c, err)
		return
	}

	posts := make([]*dto.PostDTO, 0, len(resp.GetPosts()))
	for _, post := range resp.GetPosts() {
		posts = append(posts, toPostDTO(post))
	}
	response.Success(c, &dto.PostPageDTO{
		Posts:      posts,
		TotalCount: int64(resp.GetTotalCount()),
		Page:       int(resp.GetPage()),
		TotalPages: int(resp.GetTotalPages()),
	})
}

func parsePostID(c *gin.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("post_id"), 10, 32)
}

// clampPage 网关侧收口页大小上限，下限交给绑定校验
func clampPage(q *dto.PageQueryDTO) {
	if q.Page < 1 {
		q.Page = consts.DefaultPage
	}
	if q.PerPage < 1 {
		q.PerPage = consts.DefaultPerPage
	}
	if q.PerPage > consts.MaxPerPage {
		q.PerPage = consts.MaxPerPage
	}
}

func toPostDTO(post *postspb.Post) *dto.PostDTO {
	if post == nil {
		return nil
	}
	return &dto.PostDTO{
		ID:          uint64(post.GetId()),
		Title:       post.GetTitle(),
		Description: post.GetDescription(),
		UserID:      uint64(post.GetUserId()),
		IsPrivate:   post.GetIsPrivate(),
		Tags:        post.GetTags(),
		CreatedAt:   post.GetCreatedAt(),
		UpdatedAt:   post.GetUpdatedAt(),
	}
}
