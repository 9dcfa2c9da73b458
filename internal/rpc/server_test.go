package rpc

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"Corkboard/internal/api/dto"
	"Corkboard/internal/rpc/postspb"
	"Corkboard/internal/service"
)

// fakePostService 每个方法都返回预置结果，只为验证 facade 的映射
type fakePostService struct {
	post    *dto.PostDTO
	comment *dto.CommentDTO
	msg     string
	err     error

	gotUpdate *dto.PostUpdateDTO
}

func (f *fakePostService) CreatePost(_ context.Context, _ uint64, _ *dto.PostCreateDTO) (*dto.PostDTO, error) {
	return f.post, f.err
}

func (f *fakePostService) GetPost(_ context.Context, _, _ uint64) (*dto.PostDTO, error) {
	return f.post, f.err
}

func (f *fakePostService) UpdatePost(_ context.Context, _, _ uint64, req *dto.PostUpdateDTO) (*dto.PostDTO, error) {
	f.gotUpdate = req
	return f.post, f.err
}

func (f *fakePostService) DeletePost(_ context.Context, _, _ uint64) (string, error) {
	return f.msg, f.err
}

func (f *fakePostService) ListPosts(_ context.Context, _ uint64, _ string, page, perPage int) (*dto.PostPageDTO, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.PostPageDTO{Posts: []*dto.PostDTO{f.post}, TotalCount: 1, Page: page, TotalPages: 1}, nil
}

func (f *fakePostService) ViewPost(_ context.Context, _, _ uint64) (string, error) {
	return f.msg, f.err
}

func (f *fakePostService) LikePost(_ context.Context, _, _ uint64) (string, error) {
	return f.msg, f.err
}

func (f *fakePostService) CreateComment(_ context.Context, _, _ uint64, _ string) (*dto.CommentDTO, error) {
	return f.comment, f.err
}

func (f *fakePostService) ListComments(_ context.Context, _ uint64, page, perPage int) (*dto.CommentPageDTO, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.CommentPageDTO{Comments: []*dto.CommentDTO{f.comment}, TotalCount: 1, Page: page, TotalPages: 1}, nil
}

func samplePost() *dto.PostDTO {
	return &dto.PostDTO{
		ID:        5,
		Title:     "t",
		UserID:    7,
		Tags:      []string{"go"},
		CreatedAt: "2026-08-30T10:00:00Z",
		UpdatedAt: "2026-08-30T10:00:00Z",
	}
}

func TestGetPostSuccess(t *testing.T) {
	server := NewPostServer(&fakePostService{post: samplePost()})

	resp, err := server.GetPost(context.Background(), &postspb.GetPostRequest{PostId: 5, UserId: 7})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if resp.GetError() != "" {
		t.Fatalf("unexpected in-band error %q", resp.GetError())
	}
	if resp.GetPost().GetId() != 5 || resp.GetPost().GetUserId() != 7 {
		t.Fatalf("bad mapping %#v", resp.GetPost())
	}
}

// 业务拒绝随响应体返回，gRPC 层面是成功调用
func TestDomainErrorStaysInBand(t *testing.T) {
	server := NewPostServer(&fakePostService{err: service.ErrPostNotFound})

	resp, err := server.GetPost(context.Background(), &postspb.GetPostRequest{PostId: 99})
	if err != nil {
		t.Fatalf("domain error must not surface as gRPC error: %v", err)
	}
	if resp.GetError() != service.ErrPostNotFound.Error() {
		t.Fatalf("want sentinel text, got %q", resp.GetError())
	}

	del, err := server.DeletePost(context.Background(), &postspb.DeletePostRequest{PostId: 99})
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if del.GetSuccess() || del.GetMessage() != service.ErrPostNotFound.Error() {
		t.Fatalf("want failed delete with sentinel text, got %#v", del)
	}
}

func TestInfraErrorBecomesInternal(t *testing.T) {
	server := NewPostServer(&fakePostService{err: errors.New("connection refused")})

	_, err := server.GetPost(context.Background(), &postspb.GetPostRequest{PostId: 1})
	s, ok := status.FromError(err)
	if !ok || s.Code() != codes.Internal {
		t.Fatalf("want Internal status, got %v", err)
	}
	// 内部细节不进错误文案
	if s.Message() != "internal server error" {
		t.Fatalf("leaked internal detail: %q", s.Message())
	}
}

func TestUpdatePostOptionalFields(t *testing.T) {
	svc := &fakePostService{post: samplePost()}
	server := NewPostServer(svc)

	title := "new title"
	_, err := server.UpdatePost(context.Background(), &postspb.UpdatePostRequest{
		PostId: 5,
		UserId: 7,
		Title:  &title,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if svc.gotUpdate.Title == nil || *svc.gotUpdate.Title != "new title" {
		t.Fatalf("title not forwarded: %#v", svc.gotUpdate)
	}
	if svc.gotUpdate.Description != nil || svc.gotUpdate.IsPrivate != nil {
		t.Fatalf("absent fields must stay nil: %#v", svc.gotUpdate)
	}
}

func TestViewPostSuccessMessage(t *testing.T) {
	server := NewPostServer(&fakePostService{msg: service.MsgPostViewed})

	resp, err := server.ViewPost(context.Background(), &postspb.ViewPostRequest{PostId: 1, UserId: 2})
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if !resp.GetSuccess() || resp.GetMessage() != service.MsgPostViewed {
		t.Fatalf("bad view response %#v", resp)
	}
}

func TestListCommentsErrorCodes(t *testing.T) {
	server := NewPostServer(&fakePostService{err: service.ErrPostNotFound})
	_, err := server.ListComments(context.Background(), &postspb.ListCommentsRequest{PostId: 99, Page: 1, PerPage: 10})
	if s, ok := status.FromError(err); !ok || s.Code() != codes.NotFound {
		t.Fatalf("missing post: want NotFound, got %v", err)
	}

	server = NewPostServer(&fakePostService{err: service.ErrPageInvalid})
	_, err = server.ListPosts(context.Background(), &postspb.ListPostsRequest{Page: 0, PerPage: 10})
	if s, ok := status.FromError(err); !ok || s.Code() != codes.InvalidArgument {
		t.Fatalf("bad page: want InvalidArgument, got %v", err)
	}
}
