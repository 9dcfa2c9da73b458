package rpc

import (
	"context"
	"errors"
	log "log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"Corkboard/internal/api/dto"
	"Corkboard/internal/rpc/postspb"
	"Corkboard/internal/service"
)

// PostServer 把 PostService 暴露为 gRPC 端点
// 业务失败走响应体内的 error/message 字段，只有基础设施故障才返回 gRPC 错误
type PostServer struct {
	postspb.UnimplementedPostServiceServer
	svc service.PostService
}

func NewPostServer(svc service.PostService) *PostServer {
	return &PostServer{svc: svc}
}

func (s *PostServer) CreatePost(ctx context.Context, req *postspb.CreatePostRequest) (*postspb.PostResponse, error) {
	post, err := s.svc.CreatePost(ctx, uint64(req.GetUserId()), &dto.PostCreateDTO{
		Title:       req.GetTitle(),
		Description: req.GetDescription(),
		IsPrivate:   req.GetIsPrivate(),
		Tags:        req.GetTags(),
	})
	if err != nil {
		if isDomainError(err) {
			return &postspb.PostResponse{Error: err.Error()}, nil
		}
		return nil, internalError(ctx, "CreatePost", err)
	}
	return &postspb.PostResponse{Post: toPbPost(post)}, nil
}

func (s *PostServer) GetPost(ctx context.Context, req *postspb.GetPostRequest) (*postspb.PostResponse, error) {
	post, err := s.svc.GetPost(ctx, uint64(req.GetUserId()), uint64(req.GetPostId()))
	if err != nil {
		if isDomainError(err) {
			return &postspb.PostResponse{Error: err.Error()}, nil
		}
		return nil, internalError(ctx, "GetPost", err)
	}
	return &postspb.PostResponse{Post: toPbPost(post)}, nil
}

func (s *PostServer) UpdatePost(ctx context.Context, req *postspb.UpdatePostRequest) (*postspb.PostResponse, error) {
	post, err := s.svc.UpdatePost(ctx, uint64(req.GetUserId()), uint64(req.GetPostId()), &dto.PostUpdateDTO{
		Title:       req.Title,
		Description: req.Description,
		IsPrivate:   req.IsPrivate,
		Tags:        req.GetTags(),
	})
	if err != nil {
		if isDomainError(err) {
			return &postspb.PostResponse{Error: err.Error()}, nil
		}
		return nil, internalError(ctx, "UpdatePost", err)
	}
	return &postspb.PostResponse{Post: toPbPost(post)}, nil
}

func (s *PostServer) DeletePost(ctx context.Context, req *postspb.DeletePostRequest) (*postspb.DeletePostResponse, error) {
	msg, err := s.svc.DeletePost(ctx, uint64(req.GetUserId()), uint64(req.GetPostId()))
	if err != nil {
		if isDomainError(err) {
			return &postspb.DeletePostResponse{Success: false, Message: err.Error()}, nil
		}
		return nil, internalError(ctx, "DeletePost", err)
	}
	return &postspb.DeletePostResponse{Success: true, Message: msg}, nil
}

func (s *PostServer) ListPosts(ctx context.Context, req *postspb.ListPostsRequest) (*postspb.ListPostsResponse, error) {
	page, err := s.svc.ListPosts(ctx, uint64(req.GetUserId()), req.GetTag(), int(req.GetPage()), int(req.GetPerPage()))
	if err != nil {
		// 列表响应没有 error 字段，业务失败只能走状态码
		if errors.Is(err, service.ErrPageInvalid) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, internalError(ctx, "ListPosts", err)
	}

	list := make([]*postspb.Post, 0, len(page.Posts))
	for _, post := range page.Posts {
		list = append(list, toPbPost(post))
	}
	return &postspb.ListPostsResponse{
		Posts:      list,
		TotalCount: int32(page.TotalCount),
		Page:       int32(page.Page),
		TotalPages: int32(page.TotalPages),
	}, nil
}

func (s *PostServer) ViewPost(ctx context.Context, req *postspb.ViewPostRequest) (*postspb.ViewPostResponse, error) {
	msg, err := s.svc.ViewPost(ctx, uint64(req.GetUserId()), uint64(req.GetPostId()))
	if err != nil {
		if isDomainError(err) {
			return &postspb.ViewPostResponse{Success: false, Message: err.Error()}, nil
		}
		return nil, internalError(ctx, "ViewPost", err)
	}
	return &postspb.ViewPostResponse{Success: true, Message: msg}, nil
}

func (s *PostServer) LikePost(ctx context.Context, req *postspb.LikePostRequest) (*postspb.LikePostResponse, error) {
	msg, err := s.svc.LikePost(ctx, uint64(req.GetUserId()), uint64(req.GetPostId()))
	if err != nil {
		if isDomainError(err) {
			return &postspb.LikePostResponse{Success: false, Message: err.Error()}, nil
		}
		return nil, internalError(ctx, "LikePost", err)
	}
	return &postspb.LikePostResponse{Success: true, Message: msg}, nil
}

func (s *PostServer) CreateComment(ctx context.Context, req *postspb.CreateCommentRequest) (*postspb.CommentResponse, error) {
	comment, err := s.svc.CreateComment(ctx, uint64(req.GetUserId()), uint64(req.GetPostId()), req.GetContent())
	if err != nil {
		if isDomainError(err) {
			return &postspb.CommentResponse{Error: err.Error()}, nil
		}
		return nil, internalError(ctx, "CreateComment", err)
	}
	return &postspb.CommentResponse{Comment: toPbComment(comment)}, nil
}

func (s *PostServer) ListComments(ctx context.Context, req *postspb.ListCommentsRequest) (*postspb.ListCommentsResponse, error) {
	page, err := s.svc.ListComments(ctx, uint64(req.GetPostId()), int(req.GetPage()), int(req.GetPerPage()))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPageInvalid):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		case errors.Is(err, service.ErrPostNotFound):
			return nil, status.Error(codes.NotFound, err.Error())
		}
		return nil, internalError(ctx, "ListComments", err)
	}

	list := make([]*postspb.Comment, 0, len(page.Comments))
	for _, comment := range page.Comments {
		list = append(list, toPbComment(comment))
	}
	return &postspb.ListCommentsResponse{
		Comments:   list,
		TotalCount: int32(page.TotalCount),
		Page:       int32(page.Page),
		TotalPages: int32(page.TotalPages),
	}, nil
}

// isDomainError 业务层主动拒绝的请求，文案随响应体原样返回
func isDomainError(err error) bool {
	return service.IsValidation(err) ||
		service.IsAccessDenied(err) ||
		errors.Is(err, service.ErrPostNotFound)
}

func internalError(ctx context.Context, op string, err error) error {
	log.ErrorContext(ctx, "rpc handler failed", "op", op, "error", err)
	return status.Error(codes.Internal, "internal server error")
}

func toPbPost(post *dto.PostDTO) *postspb.Post {
	return &postspb.Post{
		Id:          int32(post.ID),
		Title:       post.Title,
		Description: post.Description,
		UserId:      int32(post.UserID),
		IsPrivate:   post.IsPrivate,
		Tags:        post.Tags,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}
}

func toPbComment(comment *dto.CommentDTO) *postspb.Comment {
	return &postspb.Comment{
		Id:        int32(comment.ID),
		PostId:    int32(comment.PostID),
		UserId:    int32(comment.UserID),
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}
