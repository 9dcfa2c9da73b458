package handler

import (
	"Corkboard/internal/api/dto"
	"Corkboard/internal/pkg/response"

	"github.com/gin-gonic/gin"

	"Corkboard/internal/rpc/postspb"
)

// PostActionHandler 浏览、点赞与评论
type PostActionHandler struct {
	client postspb.PostServiceClient
}

func NewPostActionHandler(client postspb.PostServiceClient) *PostActionHandler {
	return &PostActionHandler{
		client: client,
	}
}

func (s *PostActionHandler) ViewPost(c *gin.Context) {
	userID := c.GetUint64("user_id")

	postID, err := parsePostID(c)
	if err != nil {
		response.Fail(c, response.BadRequest, "Invalid post id")
		return
	}

	resp, err := s.client.ViewPost(rpcCtx(c), &postspb.ViewPostRequest{
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

// LikePost 开关语义，返回的 message 区分本次是点赞还是取消
func (s *PostActionHandler) LikePost(c *gin.Context) {
	userID := c.GetUint64("user_id")

	postID, err := parsePostID(c)
	if err != nil {
		response.Fail(c, response.BadRequest, "Invalid post id")
		return
	}

	resp, err := s.client.LikePost(rpcCtx(c), &postspb.LikePostRequest{
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

func (s *PostActionHandler) CreateComment(c *gin.Context) {
	userID := c.GetUint64("user_id")

	postID, err := parsePostID(c)
	if err != nil {
		response.Fail(c, response.BadRequest, "Invalid post id")
		return
	}

	var req dto.CommentCreateDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	resp, err := s.client.CreateComment(rpcCtx(c), &postspb.CreateCommentRequest{
		PostId:  int32(postID),
		UserId:  int32(userID),
		Content: req.Content,
	})
	if err != nil {
		response.RPCError(c, err)
		return
	}
	if resp.GetError() != "" {
		response.RPCFail(c, resp.GetError())
		return
	}
	response.Success(c, toCommentDTO(resp.GetComment()))
}

func (s *PostActionHandler) ListComments(c *gin.Context) {
	postID, err := parsePostID(c)
	if err != nil {
		response.Fail(c, response.BadRequest, "Invalid post id")
		return
	}

	var query dto.PageQueryDTO
	if err = c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}
	clampPage(&query)

	resp, err := s.client.ListComments(rpcCtx(c), &postspb.ListCommentsRequest{
		PostId:  int32(postID),
		Page:    int32(query.Page),
		PerPage: int32(query.PerPage),
	})
	if err != nil {
		response.RPCError(c, err)
		return
	}

	comments := make([]*dto.CommentDTO, 0, len(resp.GetComments()))
	for _, comment := range resp.GetComments() {
		comments = append(comments, toCommentDTO(comment))
	}
	response.Success(c, &dto.CommentPageDTO{
		Comments:   comments,
		TotalCount: int64(resp.GetTotalCount()),
		Page:       int(resp.GetPage()),
		TotalPages: int(resp.GetTotalPages()),
	})
}

func toCommentDTO(comment *postspb.Comment) *dto.CommentDTO {
	if comment == nil {
		return nil
	}
	return &dto.CommentDTO{
		ID:        uint64(comment.GetId()),
		PostID:    uint64(comment.GetPostId()),
		UserID:    uint64(comment.GetUserId()),
		Content:   comment.GetContent(),
		CreatedAt: comment.GetCreatedAt(),
	}
}
