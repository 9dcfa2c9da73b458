package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"

	"Corkboard/internal/api/dto"
	"Corkboard/internal/model"
)

// fakeStore 用内存结构模拟两张仓储接口，唯一键冲突返回 MySQL 1062
type fakeStore struct {
	posts    map[uint64]*model.Post
	likes    map[string]bool
	views    map[string]bool
	comments []*model.PostComment

	nextPostID    uint64
	nextCommentID uint64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		posts: make(map[uint64]*model.Post),
		likes: make(map[string]bool),
		views: make(map[string]bool),
	}
}

func pairKey(a, b uint64) string {
	return fmt.Sprintf("%d:%d", a, b)
}

func duplicateErr() error {
	return &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
}

func (f *fakeStore) CreatePost(_ context.Context, post *model.Post) error {
	f.nextPostID++
	post.ID = f.nextPostID
	stored := *post
	f.posts[post.ID] = &stored
	return nil
}

func (f *fakeStore) GetPost(_ context.Context, id uint64) (*model.Post, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, nil
	}
	copied := *post
	return &copied, nil
}

func (f *fakeStore) UpdatePost(_ context.Context, post *model.Post) error {
	stored := *post
	f.posts[post.ID] = &stored
	return nil
}

func (f *fakeStore) DeletePostCascade(_ context.Context, id uint64) error {
	delete(f.posts, id)
	remaining := f.comments[:0]
	for _, comment := range f.comments {
		if comment.PostID != id {
			remaining = append(remaining, comment)
		}
	}
	f.comments = remaining
	for key := range f.likes {
		if strings.HasSuffix(key, fmt.Sprintf(":%d", id)) {
			delete(f.likes, key)
		}
	}
	for key := range f.views {
		if strings.HasPrefix(key, fmt.Sprintf("%d:", id)) {
			delete(f.views, key)
		}
	}
	return nil
}

func (f *fakeStore) ListPosts(_ context.Context, userID uint64, tag string, limit, offset int) ([]*model.Post, int64, error) {
	var visible []*model.Post
	for _, post := range f.posts {
		if post.IsPrivate && post.UserID != userID {
			continue
		}
		if tag != "" && !hasTag(post, tag) {
			continue
		}
		copied := *post
		visible = append(visible, &copied)
	}
	sort.Slice(visible, func(i, j int) bool {
		if !visible[i].CreatedAt.Equal(visible[j].CreatedAt) {
			return visible[i].CreatedAt.After(visible[j].CreatedAt)
		}
		return visible[i].ID < visible[j].ID
	})

	total := int64(len(visible))
	if offset >= len(visible) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(visible) {
		end = len(visible)
	}
	return visible[offset:end], total, nil
}

func hasTag(post *model.Post, tag string) bool {
	for _, t := range post.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (f *fakeStore) CreateLike(_ context.Context, like *model.PostLike) error {
	key := pairKey(like.UserID, like.PostID)
	if f.likes[key] {
		return duplicateErr()
	}
	f.likes[key] = true
	return nil
}

func (f *fakeStore) DeleteLike(_ context.Context, userID, postID uint64) error {
	delete(f.likes, pairKey(userID, postID))
	return nil
}

func (f *fakeStore) CreateView(_ context.Context, view *model.PostView) error {
	key := pairKey(view.PostID, view.UserID)
	if f.views[key] {
		return duplicateErr()
	}
	f.views[key] = true
	return nil
}

func (f *fakeStore) CreateComment(_ context.Context, comment *model.PostComment) error {
	f.nextCommentID++
	comment.ID = f.nextCommentID
	stored := *comment
	f.comments = append(f.comments, &stored)
	return nil
}

func (f *fakeStore) GetCommentsByPostID(_ context.Context, postID uint64, limit, offset int) ([]*model.PostComment, error) {
	var list []*model.PostComment
	for _, comment := range f.comments {
		if comment.PostID == postID {
			copied := *comment
			list = append(list, &copied)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID < list[j].ID
	})
	if offset >= len(list) {
		return nil, nil
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end], nil
}

func (f *fakeStore) GetCommentCountByPostID(_ context.Context, postID uint64) (int64, error) {
	var count int64
	for _, comment := range f.comments {
		if comment.PostID == postID {
			count++
		}
	}
	return count, nil
}

type recordedEvent struct {
	kind      string
	userID    uint64
	postID    uint64
	commentID uint64
}

// fakePublisher 记录事件，ok=false 时模拟 Kafka 不可用
type fakePublisher struct {
	events []recordedEvent
	ok     bool
}

func (f *fakePublisher) SendViewEvent(userID, postID uint64) bool {
	f.events = append(f.events, recordedEvent{kind: "view", userID: userID, postID: postID})
	return f.ok
}

func (f *fakePublisher) SendLikeEvent(userID, postID uint64) bool {
	f.events = append(f.events, recordedEvent{kind: "like", userID: userID, postID: postID})
	return f.ok
}

func (f *fakePublisher) SendCommentEvent(userID, postID, commentID uint64) bool {
	f.events = append(f.events, recordedEvent{kind: "comment", userID: userID, postID: postID, commentID: commentID})
	return f.ok
}

func newTestService() (PostService, *fakeStore, *fakePublisher) {
	store := newFakeStore()
	publisher := &fakePublisher{ok: true}
	return NewPostService(store, store, publisher), store, publisher
}

func mustCreate(t *testing.T, svc PostService, userID uint64, title string, private bool, tags ...string) *dto.PostDTO {
	t.Helper()
	post, err := svc.CreatePost(context.Background(), userID, &dto.PostCreateDTO{
		Title:       title,
		Description: "body of " + title,
		IsPrivate:   private,
		Tags:        tags,
	})
	if err != nil {
		t.Fatalf("create post %q: %v", title, err)
	}
	return post
}

func TestCreatePost(t *testing.T) {
	svc, _, _ := newTestService()

	post := mustCreate(t, svc, 7, "hello", false)
	if post.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if post.UserID != 7 {
		t.Fatalf("expected owner 7, got %d", post.UserID)
	}
	if post.Tags == nil || len(post.Tags) != 0 {
		t.Fatalf("expected empty tag slice, got %#v", post.Tags)
	}
	if _, err := time.Parse(time.RFC3339, post.CreatedAt); err != nil {
		t.Fatalf("created_at not RFC3339: %q", post.CreatedAt)
	}
	if post.CreatedAt != post.UpdatedAt {
		t.Fatalf("fresh post should have created_at == updated_at")
	}
}

func TestCreatePostTitleValidation(t *testing.T) {
	svc, _, _ := newTestService()

	if _, err := svc.CreatePost(context.Background(), 1, &dto.PostCreateDTO{Title: ""}); !errors.Is(err, ErrTitleInvalid) {
		t.Fatalf("empty title: want ErrTitleInvalid, got %v", err)
	}

	long := strings.Repeat("x", 256)
	if _, err := svc.CreatePost(context.Background(), 1, &dto.PostCreateDTO{Title: long}); !errors.Is(err, ErrTitleInvalid) {
		t.Fatalf("256-char title: want ErrTitleInvalid, got %v", err)
	}

	// 255 个多字节字符按字符数算合法
	edge := strings.Repeat("字", 255)
	if _, err := svc.CreatePost(context.Background(), 1, &dto.PostCreateDTO{Title: edge, Description: "d"}); err != nil {
		t.Fatalf("255-rune title should pass: %v", err)
	}
}

func TestGetPostVisibility(t *testing.T) {
	svc, _, _ := newTestService()
	private := mustCreate(t, svc, 1, "secret", true)

	if _, err := svc.GetPost(context.Background(), 1, private.ID); err != nil {
		t.Fatalf("owner read: %v", err)
	}
	if _, err := svc.GetPost(context.Background(), 2, private.ID); !errors.Is(err, ErrPostPrivate) {
		t.Fatalf("stranger read: want ErrPostPrivate, got %v", err)
	}
	if _, err := svc.GetPost(context.Background(), 1, 999); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("missing post: want ErrPostNotFound, got %v", err)
	}
}

func TestUpdatePost(t *testing.T) {
	svc, _, _ := newTestService()
	post := mustCreate(t, svc, 1, "before", false, "go")

	title := "after"
	updated, err := svc.UpdatePost(context.Background(), 1, post.ID, &dto.PostUpdateDTO{Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "after" {
		t.Fatalf("title not updated: %q", updated.Title)
	}
	if updated.Description != post.Description {
		t.Fatalf("description should be unchanged")
	}
	if len(updated.Tags) != 1 || updated.Tags[0] != "go" {
		t.Fatalf("empty tags must keep old tags, got %#v", updated.Tags)
	}

	// 公开帖也不允许他人修改
	if _, err = svc.UpdatePost(context.Background(), 2, post.ID, &dto.PostUpdateDTO{Title: &title}); !errors.Is(err, ErrNotPostOwner) {
		t.Fatalf("stranger update: want ErrNotPostOwner, got %v", err)
	}

	bad := ""
	if _, err = svc.UpdatePost(context.Background(), 1, post.ID, &dto.PostUpdateDTO{Title: &bad}); !errors.Is(err, ErrTitleInvalid) {
		t.Fatalf("empty new title: want ErrTitleInvalid, got %v", err)
	}
}

func TestUpdatePostEmptyBumpsUpdatedAt(t *testing.T) {
	svc, store, _ := newTestService()
	post := mustCreate(t, svc, 1, "stale", false)

	// 回拨落库时间，空更新也要推进 updated_at
	stored := store.posts[post.ID]
	stored.UpdatedAt = stored.UpdatedAt.Add(-time.Hour)
	before := stored.UpdatedAt

	updated, err := svc.UpdatePost(context.Background(), 1, post.ID, &dto.PostUpdateDTO{})
	if err != nil {
		t.Fatalf("empty update: %v", err)
	}
	parsed, err := time.Parse(time.RFC3339, updated.UpdatedAt)
	if err != nil {
		t.Fatalf("updated_at not RFC3339: %q", updated.UpdatedAt)
	}
	if !parsed.After(before) {
		t.Fatalf("updated_at not bumped: %v <= %v", parsed, before)
	}
}

func TestUpdatedAtStrictlyLaterOnWire(t *testing.T) {
	svc, _, _ := newTestService()
	post := mustCreate(t, svc, 1, "fresh", false)

	// 不回拨时间：同一秒内的更新也必须在序列化后严格晚于 created_at
	title := "fresher"
	updated, err := svc.UpdatePost(context.Background(), 1, post.ID, &dto.PostUpdateDTO{Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	created, err := time.Parse(time.RFC3339, updated.CreatedAt)
	if err != nil {
		t.Fatalf("created_at not RFC3339: %q", updated.CreatedAt)
	}
	bumped, err := time.Parse(time.RFC3339, updated.UpdatedAt)
	if err != nil {
		t.Fatalf("updated_at not RFC3339: %q", updated.UpdatedAt)
	}
	if !bumped.After(created) {
		t.Fatalf("updated_at not strictly later on the wire: created_at=%q updated_at=%q",
			updated.CreatedAt, updated.UpdatedAt)
	}
}

func TestDeletePostCascade(t *testing.T) {
	svc, store, _ := newTestService()
	post := mustCreate(t, svc, 1, "doomed", false)

	if _, err := svc.CreateComment(context.Background(), 2, post.ID, "first"); err != nil {
		t.Fatalf("comment: %v", err)
	}
	if _, err := svc.LikePost(context.Background(), 2, post.ID); err != nil {
		t.Fatalf("like: %v", err)
	}
	if _, err := svc.ViewPost(context.Background(), 2, post.ID); err != nil {
		t.Fatalf("view: %v", err)
	}

	if _, err := svc.DeletePost(context.Background(), 2, post.ID); !errors.Is(err, ErrNotPostOwner) {
		t.Fatalf("stranger delete: want ErrNotPostOwner, got %v", err)
	}

	msg, err := svc.DeletePost(context.Background(), 1, post.ID)
	if err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if msg != MsgPostDeleted {
		t.Fatalf("unexpected message %q", msg)
	}

	if _, err = svc.GetPost(context.Background(), 1, post.ID); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("post should be gone, got %v", err)
	}
	if len(store.comments) != 0 || len(store.likes) != 0 || len(store.views) != 0 {
		t.Fatalf("cascade incomplete: %d comments, %d likes, %d views",
			len(store.comments), len(store.likes), len(store.views))
	}
}

func TestListPostsVisibility(t *testing.T) {
	svc, _, _ := newTestService()
	mustCreate(t, svc, 1, "mine public", false)
	mustCreate(t, svc, 1, "mine private", true)
	mustCreate(t, svc, 2, "theirs public", false)
	mustCreate(t, svc, 2, "theirs private", true)

	page, err := svc.ListPosts(context.Background(), 1, "", 1, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.TotalCount != 3 {
		t.Fatalf("caller 1 should see 3 posts, got %d", page.TotalCount)
	}
	for _, post := range page.Posts {
		if post.IsPrivate && post.UserID != 1 {
			t.Fatalf("leaked private post %d of user %d", post.ID, post.UserID)
		}
	}

	// 匿名只看公开
	anon, err := svc.ListPosts(context.Background(), 0, "", 1, 10)
	if err != nil {
		t.Fatalf("anonymous list: %v", err)
	}
	if anon.TotalCount != 2 {
		t.Fatalf("anonymous should see 2 posts, got %d", anon.TotalCount)
	}
}

func TestListPostsTagFilter(t *testing.T) {
	svc, _, _ := newTestService()
	mustCreate(t, svc, 1, "tagged", false, "go", "db")
	mustCreate(t, svc, 1, "other", false, "rust")

	page, err := svc.ListPosts(context.Background(), 1, "go", 1, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.TotalCount != 1 || page.Posts[0].Title != "tagged" {
		t.Fatalf("tag filter failed: total=%d", page.TotalCount)
	}
}

func TestListPostsPagination(t *testing.T) {
	svc, _, _ := newTestService()
	for i := 0; i < 25; i++ {
		mustCreate(t, svc, 1, fmt.Sprintf("post %02d", i), false)
	}

	page, err := svc.ListPosts(context.Background(), 1, "", 3, 10)
	if err != nil {
		t.Fatalf("page 3: %v", err)
	}
	if page.TotalCount != 25 || page.TotalPages != 3 || len(page.Posts) != 5 {
		t.Fatalf("page 3: total=%d pages=%d len=%d", page.TotalCount, page.TotalPages, len(page.Posts))
	}

	// 超出末页：合法请求，空结果
	beyond, err := svc.ListPosts(context.Background(), 1, "", 4, 10)
	if err != nil {
		t.Fatalf("page 4: %v", err)
	}
	if len(beyond.Posts) != 0 || beyond.TotalCount != 25 {
		t.Fatalf("page 4 should be empty with full total, got len=%d total=%d", len(beyond.Posts), beyond.TotalCount)
	}

	for _, bad := range [][2]int{{0, 10}, {1, 0}, {1, 101}, {-1, 10}} {
		if _, err = svc.ListPosts(context.Background(), 1, "", bad[0], bad[1]); !errors.Is(err, ErrPageInvalid) {
			t.Fatalf("page=%d perPage=%d: want ErrPageInvalid, got %v", bad[0], bad[1], err)
		}
	}
}

func TestViewPostIdempotent(t *testing.T) {
	svc, _, publisher := newTestService()
	post := mustCreate(t, svc, 1, "viewed", false)

	msg, err := svc.ViewPost(context.Background(), 2, post.ID)
	if err != nil || msg != MsgPostViewed {
		t.Fatalf("first view: msg=%q err=%v", msg, err)
	}
	if len(publisher.events) != 1 || publisher.events[0].kind != "view" {
		t.Fatalf("first view must publish exactly one event, got %#v", publisher.events)
	}

	msg, err = svc.ViewPost(context.Background(), 2, post.ID)
	if err != nil || msg != MsgPostViewed {
		t.Fatalf("repeat view: msg=%q err=%v", msg, err)
	}
	if len(publisher.events) != 1 {
		t.Fatalf("repeat view must not publish, got %d events", len(publisher.events))
	}

	if _, err = svc.ViewPost(context.Background(), 3, 999); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("view of missing post: want ErrPostNotFound, got %v", err)
	}
}

func TestLikePostToggle(t *testing.T) {
	svc, _, publisher := newTestService()
	post := mustCreate(t, svc, 1, "likeable", false)

	msg, err := svc.LikePost(context.Background(), 2, post.ID)
	if err != nil || msg != MsgPostLiked {
		t.Fatalf("first like: msg=%q err=%v", msg, err)
	}

	msg, err = svc.LikePost(context.Background(), 2, post.ID)
	if err != nil || msg != MsgPostUnliked {
		t.Fatalf("second like should cancel: msg=%q err=%v", msg, err)
	}

	msg, err = svc.LikePost(context.Background(), 2, post.ID)
	if err != nil || msg != MsgPostLiked {
		t.Fatalf("third like should like again: msg=%q err=%v", msg, err)
	}

	// 只有真正点赞的两次发事件，取消不发
	likeEvents := 0
	for _, ev := range publisher.events {
		if ev.kind == "like" {
			likeEvents++
		}
	}
	if likeEvents != 2 {
		t.Fatalf("expected 2 like events, got %d", likeEvents)
	}
}

func TestLikePrivatePostDenied(t *testing.T) {
	svc, _, _ := newTestService()
	post := mustCreate(t, svc, 1, "private", true)

	if _, err := svc.LikePost(context.Background(), 2, post.ID); !errors.Is(err, ErrPostPrivate) {
		t.Fatalf("want ErrPostPrivate, got %v", err)
	}
}

func TestCreateComment(t *testing.T) {
	svc, _, publisher := newTestService()
	post := mustCreate(t, svc, 1, "commented", false)

	if _, err := svc.CreateComment(context.Background(), 2, post.ID, ""); !errors.Is(err, ErrCommentInvalid) {
		t.Fatalf("empty content: want ErrCommentInvalid, got %v", err)
	}

	comment, err := svc.CreateComment(context.Background(), 2, post.ID, "nice")
	if err != nil {
		t.Fatalf("comment: %v", err)
	}
	if comment.ID == 0 || comment.PostID != post.ID || comment.UserID != 2 {
		t.Fatalf("bad comment %#v", comment)
	}

	last := publisher.events[len(publisher.events)-1]
	if last.kind != "comment" || last.commentID != comment.ID {
		t.Fatalf("comment event must carry comment id, got %#v", last)
	}
}

func TestListComments(t *testing.T) {
	svc, _, _ := newTestService()
	post := mustCreate(t, svc, 1, "private with comments", true)

	for i := 0; i < 12; i++ {
		if _, err := svc.CreateComment(context.Background(), 1, post.ID, fmt.Sprintf("c%d", i)); err != nil {
			t.Fatalf("comment %d: %v", i, err)
		}
	}

	// 评论列表不校验可见性：请求里没有调用者身份
	page, err := svc.ListComments(context.Background(), post.ID, 2, 10)
	if err != nil {
		t.Fatalf("list comments: %v", err)
	}
	if page.TotalCount != 12 || page.TotalPages != 2 || len(page.Comments) != 2 {
		t.Fatalf("page 2: total=%d pages=%d len=%d", page.TotalCount, page.TotalPages, len(page.Comments))
	}

	if _, err = svc.ListComments(context.Background(), 999, 1, 10); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("missing post: want ErrPostNotFound, got %v", err)
	}
	if _, err = svc.ListComments(context.Background(), post.ID, 0, 10); !errors.Is(err, ErrPageInvalid) {
		t.Fatalf("page 0: want ErrPageInvalid, got %v", err)
	}
}

func TestPublishFailureDoesNotFailOperation(t *testing.T) {
	svc, _, publisher := newTestService()
	publisher.ok = false
	post := mustCreate(t, svc, 1, "resilient", false)

	if msg, err := svc.ViewPost(context.Background(), 2, post.ID); err != nil || msg != MsgPostViewed {
		t.Fatalf("view with dead broker: msg=%q err=%v", msg, err)
	}
	if msg, err := svc.LikePost(context.Background(), 2, post.ID); err != nil || msg != MsgPostLiked {
		t.Fatalf("like with dead broker: msg=%q err=%v", msg, err)
	}
	if _, err := svc.CreateComment(context.Background(), 2, post.ID, "still works"); err != nil {
		t.Fatalf("comment with dead broker: %v", err)
	}
}
