package rpc

import (
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"Corkboard/internal/pkg/logger"
)

// TraceMetadataKey 网关透传链路标识用的 metadata 键
const TraceMetadataKey = "x-trace-id"

// TraceUnaryInterceptor 为每个请求准备 trace_id 并记一条访问日志
// 上游带标识就沿用，保证网关和帖子服务日志能串起来
func TraceUnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		traceID := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if vals := md.Get(TraceMetadataKey); len(vals) > 0 {
				traceID = vals[0]
			}
		}
		if traceID == "" {
			traceID = uuid.New().String()
		}
		ctx = context.WithValue(ctx, logger.TraceIDKey, traceID)

		start := time.Now()
		resp, err := handler(ctx, req)

		if err != nil {
			log.ErrorContext(ctx, "GRPC_ACCESS", "method", info.FullMethod, "latency", time.Since(start).String(), "error", err)
		} else {
			log.InfoContext(ctx, "GRPC_ACCESS", "method", info.FullMethod, "latency", time.Since(start).String())
		}
		return resp, err
	}
}
