package repository

import (
	"Corkboard/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	UpdatePost(ctx context.Context, post *model.Post) error
	DeletePostCascade(ctx context.Context, id uint64) error
	ListPosts(ctx context.Context, userID uint64, tag string, limit, offset int) ([]*model.Post, int64, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

func (s PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

// GetPost 未命中返回 (nil, nil)，存储故障才返回 error
func (s PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Save(post).Error
}

// DeletePostCascade 单事务删除帖子及其点赞/浏览/评论，不留孤儿行
func (s PostRepoImpl) DeletePostCascade(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.PostLike{}, "post_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.PostView{}, "post_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.PostComment{}, "post_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, "id = ?", id).Error
	})
}

// ListPosts 总数先于分页统计；排序 created_at 倒序、同时间按插入顺序
func (s PostRepoImpl) ListPosts(ctx context.Context, userID uint64, tag string, limit, offset int) ([]*model.Post, int64, error) {
	q := s.db.WithContext(ctx).Model(&model.Post{})

	if tag != "" {
		q = q.Where("JSON_CONTAINS(tags, JSON_QUOTE(?))", tag)
	}

	if userID > 0 {
		q = q.Where("user_id = ? OR is_private = ?", userID, false)
	} else {
		q = q.Where("is_private = ?", false)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*model.Post
	err := q.Order("created_at DESC, id ASC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	return posts, total, err
}
