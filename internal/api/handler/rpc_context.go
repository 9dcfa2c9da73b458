package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/metadata"

	"Corkboard/internal/pkg/logger"
	"Corkboard/internal/rpc"
)

// rpcCtx 把网关的 trace_id 透传给帖子服务，日志能按请求串联
func rpcCtx(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if traceID, ok := ctx.Value(logger.TraceIDKey).(string); ok && traceID != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, rpc.TraceMetadataKey, traceID)
	}
	return ctx
}
