package service

import (
	"Corkboard/internal/api/dto"
	"Corkboard/internal/model"
	"Corkboard/internal/pkg/consts"
	"Corkboard/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"time"
	"unicode/utf8"

	"github.com/go-sql-driver/mysql"
	"github.com/jinzhu/copier"
)

// EventPublisher 领域事件出口
// 发布只在状态变更落库之后，失败记日志，从不影响业务结果
type EventPublisher interface {
	SendViewEvent(userID, postID uint64) bool
	SendLikeEvent(userID, postID uint64) bool
	SendCommentEvent(userID, postID, commentID uint64) bool
}

type PostService interface {
	CreatePost(ctx context.Context, userID uint64, req *dto.PostCreateDTO) (*dto.PostDTO, error)
	GetPost(ctx context.Context, userID, postID uint64) (*dto.PostDTO, error)
	UpdatePost(ctx context.Context, userID, postID uint64, req *dto.PostUpdateDTO) (*dto.PostDTO, error)
	DeletePost(ctx context.Context, userID, postID uint64) (string, error)
	ListPosts(ctx context.Context, userID uint64, tag string, page, perPage int) (*dto.PostPageDTO, error)
	ViewPost(ctx context.Context, userID, postID uint64) (string, error)
	LikePost(ctx context.Context, userID, postID uint64) (string, error)
	CreateComment(ctx context.Context, userID, postID uint64, content string) (*dto.CommentDTO, error)
	ListComments(ctx context.Context, postID uint64, page, perPage int) (*dto.CommentPageDTO, error)
}

type postServiceImpl struct {
	postRepo   repository.PostRepo
	actionRepo repository.PostActionRepo
	publisher  EventPublisher
}

func NewPostService(
	postRepo repository.PostRepo,
	actionRepo repository.PostActionRepo,
	publisher EventPublisher,
) PostService {
	return &postServiceImpl{
		postRepo:   postRepo,
		actionRepo: actionRepo,
		publisher:  publisher,
	}
}

func (s *postServiceImpl) CreatePost(ctx context.Context, userID uint64, req *dto.PostCreateDTO) (*dto.PostDTO, error) {
	if req.Title == "" || utf8.RuneCountInString(req.Title) > consts.TitleMaxLen {
		return nil, ErrTitleInvalid
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now()
	post := &model.Post{
		Title:       req.Title,
		Description: req.Description,
		UserID:      userID,
		IsPrivate:   req.IsPrivate,
		Tags:        tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	return toPostDTO(post), nil
}

func (s *postServiceImpl) GetPost(ctx context.Context, userID, postID uint64) (*dto.PostDTO, error) {
	post, err := s.getReadablePost(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	return toPostDTO(post), nil
}

// UpdatePost 只有属主可改，与可见性无关；未提供的字段保持原值
func (s *postServiceImpl) UpdatePost(ctx context.Context, userID, postID uint64, req *dto.PostUpdateDTO) (*dto.PostDTO, error) {
	post, err := s.getOwnedPost(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if *req.Title == "" || utf8.RuneCountInString(*req.Title) > consts.TitleMaxLen {
			return nil, ErrTitleInvalid
		}
		post.Title = *req.Title
	}
	if req.Description != nil {
		post.Description = *req.Description
	}
	if req.IsPrivate != nil {
		post.IsPrivate = *req.IsPrivate
	}
	if len(req.Tags) > 0 {
		post.Tags = req.Tags
	}

	// 空更新也推进 updated_at
	post.UpdatedAt = time.Now()

	if err = s.postRepo.UpdatePost(ctx, post); err != nil {
		return nil, err
	}
	return toPostDTO(post), nil
}

func (s *postServiceImpl) DeletePost(ctx context.Context, userID, postID uint64) (string, error) {
	if _, err := s.getOwnedPost(ctx, userID, postID); err != nil {
		return "", err
	}
	if err := s.postRepo.DeletePostCascade(ctx, postID); err != nil {
		return "", err
	}
	return MsgPostDeleted, nil
}

// ListPosts 带调用者时返回"自己的全部 ∪ 他人的公开"，匿名只看公开
func (s *postServiceImpl) ListPosts(ctx context.Context, userID uint64, tag string, page, perPage int) (*dto.PostPageDTO, error) {
	if page < 1 || perPage < 1 || perPage > consts.MaxPerPage {
		return nil, ErrPageInvalid
	}

	posts, total, err := s.postRepo.ListPosts(ctx, userID, tag, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		list = append(list, toPostDTO(post))
	}

	return &dto.PostPageDTO{
		Posts:      list,
		TotalCount: total,
		Page:       page,
		TotalPages: totalPages(total, perPage),
	}, nil
}

// ViewPost 幂等：重复浏览不落库也不发事件，但仍返回成功
func (s *postServiceImpl) ViewPost(ctx context.Context, userID, postID uint64) (string, error) {
	if _, err := s.getReadablePost(ctx, userID, postID); err != nil {
		return "", err
	}

	err := s.actionRepo.CreateView(ctx, &model.PostView{
		PostID:    postID,
		UserID:    userID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		if isDuplicateError(err) {
			return MsgPostViewed, nil
		}
		return "", err
	}

	if !s.publisher.SendViewEvent(userID, postID) {
		log.WarnContext(ctx, "view event publish failed", "postID", postID, "userID", userID)
	}
	return MsgPostViewed, nil
}

// LikePost 开关语义：先尝试插入，唯一键冲突视为已点赞、转为取消
func (s *postServiceImpl) LikePost(ctx context.Context, userID, postID uint64) (string, error) {
	if _, err := s.getReadablePost(ctx, userID, postID); err != nil {
		return "", err
	}

	err := s.actionRepo.CreateLike(ctx, &model.PostLike{
		UserID:    userID,
		PostID:    postID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		if !isDuplicateError(err) {
			return "", err
		}
		if err = s.actionRepo.DeleteLike(ctx, userID, postID); err != nil {
			return "", err
		}
		return MsgPostUnliked, nil
	}

	if !s.publisher.SendLikeEvent(userID, postID) {
		log.WarnContext(ctx, "like event publish failed", "postID", postID, "userID", userID)
	}
	return MsgPostLiked, nil
}

func (s *postServiceImpl) CreateComment(ctx context.Context, userID, postID uint64, content string) (*dto.CommentDTO, error) {
	if content == "" {
		return nil, ErrCommentInvalid
	}
	if _, err := s.getReadablePost(ctx, userID, postID); err != nil {
		return nil, err
	}

	comment := &model.PostComment{
		PostID:    postID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.actionRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	if !s.publisher.SendCommentEvent(userID, postID, comment.ID) {
		log.WarnContext(ctx, "comment event publish failed", "postID", postID, "commentID", comment.ID)
	}
	return toCommentDTO(comment), nil
}

// ListComments 只确认帖子存在，不复查可见性：请求里没有调用者身份
func (s *postServiceImpl) ListComments(ctx context.Context, postID uint64, page, perPage int) (*dto.CommentPageDTO, error) {
	if page < 1 || perPage < 1 || perPage > consts.MaxPerPage {
		return nil, ErrPageInvalid
	}

	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	total, err := s.actionRepo.GetCommentCountByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comments, err := s.actionRepo.GetCommentsByPostID(ctx, postID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		list = append(list, toCommentDTO(comment))
	}

	return &dto.CommentPageDTO{
		Comments:   list,
		TotalCount: total,
		Page:       page,
		TotalPages: totalPages(total, perPage),
	}, nil
}

// getReadablePost 读路径检查：存在性 + 私有帖只对属主可见
func (s *postServiceImpl) getReadablePost(ctx context.Context, userID, postID uint64) (*model.Post, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.IsPrivate && post.UserID != userID {
		return nil, ErrPostPrivate
	}
	return post, nil
}

// getOwnedPost 写路径检查：存在性 + 仅属主，可见性无关
func (s *postServiceImpl) getOwnedPost(ctx context.Context, userID, postID uint64) (*model.Post, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.UserID != userID {
		return nil, ErrNotPostOwner
	}
	return post, nil
}

func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return false
}

func totalPages(total int64, perPage int) int {
	return int((total + int64(perPage) - 1) / int64(perPage))
}

func toPostDTO(post *model.Post) *dto.PostDTO {
	item := &dto.PostDTO{}
	_ = copier.Copy(item, post)
	if item.Tags == nil {
		item.Tags = []string{}
	}
	item.CreatedAt = post.CreatedAt.Format(time.RFC3339Nano)
	item.UpdatedAt = post.UpdatedAt.Format(time.RFC3339Nano)
	return item
}

func toCommentDTO(comment *model.PostComment) *dto.CommentDTO {
	item := &dto.CommentDTO{}
	_ = copier.Copy(item, comment)
	item.CreatedAt = comment.CreatedAt.Format(time.RFC3339Nano)
	return item
}
