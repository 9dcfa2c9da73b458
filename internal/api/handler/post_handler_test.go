package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"Corkboard/internal/api/dto"
	"Corkboard/internal/rpc/postspb"
	"Corkboard/internal/service"
)

// fakeClient 预置每个 RPC 的应答，并记录网关发出的请求
type fakeClient struct {
	postResp    *postspb.PostResponse
	deleteResp  *postspb.DeletePostResponse
	listResp    *postspb.ListPostsResponse
	viewResp    *postspb.ViewPostResponse
	likeResp    *postspb.LikePostResponse
	commentResp *postspb.CommentResponse
	commentsRsp *postspb.ListCommentsResponse
	err         error

	lastList     *postspb.ListPostsRequest
	lastComments *postspb.ListCommentsRequest
}

func (f *fakeClient) CreatePost(_ context.Context, _ *postspb.CreatePostRequest, _ ...grpc.CallOption) (*postspb.PostResponse, error) {
	return f.postResp, f.err
}

func (f *fakeClient) GetPost(_ context.Context, _ *postspb.GetPostRequest, _ ...grpc.CallOption) (*postspb.PostResponse, error) {
	return f.postResp, f.err
}

func (f *fakeClient) UpdatePost(_ context.Context, _ *postspb.UpdatePostRequest, _ ...grpc.CallOption) (*postspb.PostResponse, error) {
	return f.postResp, f.err
}

func (f *fakeClient) DeletePost(_ context.Context, _ *postspb.DeletePostRequest, _ ...grpc.CallOption) (*postspb.DeletePostResponse, error) {
	return f.deleteResp, f.err
}

func (f *fakeClient) ListPosts(_ context.Context, req *postspb.ListPostsRequest, _ ...grpc.CallOption) (*postspb.ListPostsResponse, error) {
	f.lastList = req
	return f.listResp, f.err
}

func (f *fakeClient) ViewPost(_ context.Context, _ *postspb.ViewPostRequest, _ ...grpc.CallOption) (*postspb.ViewPostResponse, error) {
	return f.viewResp, f.err
}

func (f *fakeClient) LikePost(_ context.Context, _ *postspb.LikePostRequest, _ ...grpc.CallOption) (*postspb.LikePostResponse, error) {
	return f.likeResp, f.err
}

func (f *fakeClient) CreateComment(_ context.Context, _ *postspb.CreateCommentRequest, _ ...grpc.CallOption) (*postspb.CommentResponse, error) {
	return f.commentResp, f.err
}

func (f *fakeClient) ListComments(_ context.Context, req *postspb.ListCommentsRequest, _ ...grpc.CallOption) (*postspb.ListCommentsResponse, error) {
	f.lastComments = req
	return f.commentsRsp, f.err
}

// setupRouter 用固定身份替代真实鉴权，只测 handler 的翻译逻辑
func setupRouter(client *fakeClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", uint64(7))
	})

	postHandler := NewPostHandler(client)
	actionHandler := NewPostActionHandler(client)

	posts := r.Group("/api/posts")
	posts.POST("", postHandler.CreatePost)
	posts.GET("", postHandler.ListPosts)
	posts.GET("/:post_id", postHandler.GetPost)
	posts.PUT("/:post_id", postHandler.UpdatePost)
	posts.DELETE("/:post_id", postHandler.DeletePost)
	posts.POST("/:post_id/view", actionHandler.ViewPost)
	posts.POST("/:post_id/like", actionHandler.LikePost)
	posts.POST("/:post_id/comments", actionHandler.CreateComment)
	posts.GET("/:post_id/comments", actionHandler.ListComments)
	return r
}

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad envelope %q: %v", w.Body.String(), err)
	}
	return resp
}

func TestCreatePostHandler(t *testing.T) {
	client := &fakeClient{postResp: &postspb.PostResponse{Post: &postspb.Post{Id: 1, Title: "t", UserId: 7}}}
	r := setupRouter(client)

	w := perform(r, http.MethodPost, "/api/posts", `{"title":"t","description":"d"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d body=%s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if env.Code != 200 || env.Message != "success" {
		t.Fatalf("bad envelope %#v", env)
	}
}

func TestCreatePostValidation(t *testing.T) {
	r := setupRouter(&fakeClient{})

	// title 缺失，绑定层就拒绝，不经过 RPC
	if w := perform(r, http.MethodPost, "/api/posts", `{"description":"d"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("missing title: want 400, got %d", w.Code)
	}
	if w := perform(r, http.MethodPost, "/api/posts", `not json`); w.Code != http.StatusBadRequest {
		t.Fatalf("bad json: want 400, got %d", w.Code)
	}
}

func TestErrorTextMapping(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{service.ErrPostNotFound.Error(), http.StatusNotFound},
		{service.ErrPostPrivate.Error(), http.StatusForbidden},
		{service.ErrNotPostOwner.Error(), http.StatusForbidden},
		{service.ErrTitleInvalid.Error(), http.StatusBadRequest},
	}

	for _, tc := range cases {
		client := &fakeClient{postResp: &postspb.PostResponse{Error: tc.text}}
		r := setupRouter(client)
		w := perform(r, http.MethodGet, "/api/posts/5", "")
		if w.Code != tc.want {
			t.Fatalf("%q: want %d, got %d", tc.text, tc.want, w.Code)
		}
		env := decodeEnvelope(t, w)
		if env.Message != tc.text {
			t.Fatalf("error text must pass through, got %q", env.Message)
		}
	}
}

func TestTransportFailureIs500(t *testing.T) {
	client := &fakeClient{err: status.Error(codes.Unavailable, "connection refused")}
	r := setupRouter(client)

	if w := perform(r, http.MethodGet, "/api/posts/5", ""); w.Code != http.StatusInternalServerError {
		t.Fatalf("transport failure: want 500, got %d", w.Code)
	}
}

func TestInvalidPostID(t *testing.T) {
	r := setupRouter(&fakeClient{})

	if w := perform(r, http.MethodGet, "/api/posts/abc", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric id: want 400, got %d", w.Code)
	}
}

func TestListPostsClampsPerPage(t *testing.T) {
	client := &fakeClient{listResp: &postspb.ListPostsResponse{Page: 1, TotalPages: 1}}
	r := setupRouter(client)

	if w := perform(r, http.MethodGet, "/api/posts?per_page=500", ""); w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	if client.lastList.GetPerPage() != 100 {
		t.Fatalf("per_page must clamp to 100, got %d", client.lastList.GetPerPage())
	}
	if client.lastList.GetPage() != 1 {
		t.Fatalf("page must default to 1, got %d", client.lastList.GetPage())
	}

	if w := perform(r, http.MethodGet, "/api/posts?tag=go&page=2&per_page=5", ""); w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	if client.lastList.GetTag() != "go" || client.lastList.GetPage() != 2 || client.lastList.GetPerPage() != 5 {
		t.Fatalf("query not forwarded: %#v", client.lastList)
	}
	if client.lastList.GetUserId() != 7 {
		t.Fatalf("caller identity must ride the request, got %d", client.lastList.GetUserId())
	}
}

func TestViewAndLikeResponses(t *testing.T) {
	client := &fakeClient{
		viewResp: &postspb.ViewPostResponse{Success: true, Message: service.MsgPostViewed},
		likeResp: &postspb.LikePostResponse{Success: true, Message: service.MsgPostUnliked},
	}
	r := setupRouter(client)

	w := perform(r, http.MethodPost, "/api/posts/5/view", "")
	if w.Code != http.StatusOK {
		t.Fatalf("view: want 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), service.MsgPostViewed) {
		t.Fatalf("view message missing: %s", w.Body.String())
	}

	w = perform(r, http.MethodPost, "/api/posts/5/like", "")
	if !strings.Contains(w.Body.String(), service.MsgPostUnliked) {
		t.Fatalf("like message missing: %s", w.Body.String())
	}
}

func TestCommentRoutes(t *testing.T) {
	client := &fakeClient{
		commentResp: &postspb.CommentResponse{Comment: &postspb.Comment{Id: 9, PostId: 5, UserId: 7, Content: "hi"}},
		commentsRsp: &postspb.ListCommentsResponse{TotalCount: 1, Page: 1, TotalPages: 1},
	}
	r := setupRouter(client)

	w := perform(r, http.MethodPost, "/api/posts/5/comments", `{"content":"hi"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create comment: want 200, got %d body=%s", w.Code, w.Body.String())
	}

	if w = perform(r, http.MethodPost, "/api/posts/5/comments", `{}`); w.Code != http.StatusBadRequest {
		t.Fatalf("empty comment rejected at binding: want 400, got %d", w.Code)
	}

	if w = perform(r, http.MethodGet, "/api/posts/5/comments?page=3", ""); w.Code != http.StatusOK {
		t.Fatalf("list comments: want 200, got %d", w.Code)
	}
	if client.lastComments.GetPage() != 3 || client.lastComments.GetPerPage() != 10 {
		t.Fatalf("pagination not forwarded: %#v", client.lastComments)
	}
}
