package repository

import (
	"Corkboard/internal/model"
	"context"

	"gorm.io/gorm"
)

type PostActionRepo interface {
	CreateLike(ctx context.Context, like *model.PostLike) error
	DeleteLike(ctx context.Context, userID, postID uint64) error

	CreateView(ctx context.Context, view *model.PostView) error

	CreateComment(ctx context.Context, comment *model.PostComment) error
	GetCommentsByPostID(ctx context.Context, postID uint64, limit, offset int) ([]*model.PostComment, error)
	GetCommentCountByPostID(ctx context.Context, postID uint64) (int64, error)
}

type PostActionRepoImpl struct {
	db *gorm.DB
}

func NewPostActionRepo(db *gorm.DB) PostActionRepo {
	return &PostActionRepoImpl{db}
}

func (s *PostActionRepoImpl) CreateLike(ctx context.Context, like *model.PostLike) error {
	return s.db.WithContext(ctx).Create(like).Error
}

func (s *PostActionRepoImpl) DeleteLike(ctx context.Context, userID, postID uint64) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.PostLike{}).Error
}

func (s *PostActionRepoImpl) CreateView(ctx context.Context, view *model.PostView) error {
	return s.db.WithContext(ctx).Create(view).Error
}

func (s *PostActionRepoImpl) CreateComment(ctx context.Context, comment *model.PostComment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

// GetCommentsByPostID 分页获取帖子的评论，最新的在前
func (s *PostActionRepoImpl) GetCommentsByPostID(ctx context.Context, postID uint64, limit, offset int) ([]*model.PostComment, error) {
	var comments []*model.PostComment
	err := s.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at DESC, id ASC").
		Limit(limit).Offset(offset).
		Find(&comments).Error
	return comments, err
}

func (s *PostActionRepoImpl) GetCommentCountByPostID(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.PostComment{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}
