package response

import (
	"Corkboard/internal/api/dto"
	"Corkboard/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	Ok                  = 200
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

// Success 成功返回封装
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, dto.Response{
		Code:    Ok,
		Message: "success",
		Data:    data,
	})
}

// Fail 失败返回封装，业务码即 HTTP 状态码
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, dto.Response{
		Code:    code,
		Message: message,
		Data:    nil,
	})
}

// Error 处理绑定与参数错误
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, BadRequest, "Invalid request parameters")
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, BadRequest, "Malformed JSON body")
		return
	}

	log.Error("unhandled request error", "err", err)
	Fail(c, BadRequest, err.Error())
}

// RPCFail 把帖子服务随响应体返回的业务错误文案映射为 HTTP 状态
// 文案按等值比较，与服务侧哨兵错误一一对应
func RPCFail(c *gin.Context, message string) {
	switch message {
	case service.ErrPostNotFound.Error():
		Fail(c, NotFound, message)
	case service.ErrPostPrivate.Error(), service.ErrNotPostOwner.Error():
		Fail(c, Forbidden, message)
	default:
		Fail(c, BadRequest, message)
	}
}

// RPCError 处理 gRPC 传输层失败，业务失败不会走到这里
func RPCError(c *gin.Context, err error) {
	if s, ok := status.FromError(err); ok {
		switch s.Code() {
		case codes.InvalidArgument:
			Fail(c, BadRequest, s.Message())
			return
		case codes.NotFound:
			Fail(c, NotFound, s.Message())
			return
		}
	}
	log.ErrorContext(c.Request.Context(), "posts service unreachable", "err", err)
	Fail(c, InternalServerError, "Posts service temporarily unavailable")
}
