package service

import (
	"errors"
)

// 业务失败以哨兵错误表达，facade/网关用 errors.Is 或等值比较分类，
// 不做子串匹配。错误文案即 RPC error 字段内容。
var (
	ErrTitleInvalid   = errors.New("Title must be between 1 and 255 characters")
	ErrCommentInvalid = errors.New("Comment content must not be empty")
	ErrPageInvalid    = errors.New("Invalid pagination parameters")
	ErrPostNotFound   = errors.New("Post not found")
	ErrPostPrivate    = errors.New("Access denied: this post is private")
	ErrNotPostOwner   = errors.New("Access denied: you are not the owner of this post")
)

// 成功提示文案，原样进 RPC message 字段
const (
	MsgPostDeleted = "Post deleted successfully"
	MsgPostViewed  = "Post viewed successfully"
	MsgPostLiked   = "Post liked successfully"
	MsgPostUnliked = "Post unliked successfully"
)

// IsAccessDenied 归并两类拒绝原因，便于调用方统一映射 403
func IsAccessDenied(err error) bool {
	return errors.Is(err, ErrPostPrivate) || errors.Is(err, ErrNotPostOwner)
}

// IsValidation 入库前就拦下的入参错误
func IsValidation(err error) bool {
	return errors.Is(err, ErrTitleInvalid) || errors.Is(err, ErrCommentInvalid) || errors.Is(err, ErrPageInvalid)
}
