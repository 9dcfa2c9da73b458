package main

import (
	"Corkboard/internal/api/config"
	"Corkboard/internal/pkg/database"
	"Corkboard/internal/pkg/logger"
	"Corkboard/internal/wire"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
)

func main() {
	// 加载配置
	if err := config.LoadConfig(); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		panic(err)
	}
	cfg := config.Cfg

	// 初始化日志
	logger.InitLogger()

	// 数据库连接
	dbCfg := cfg.DB
	db, err := database.NewGormDB(&dbCfg)
	if err != nil {
		log.Error("Fatal error: failed to create database connection", "err", err)
		panic(err)
	}

	// 依赖注入
	app, err := wire.BuildPostsApplication(db, cfg)
	if err != nil {
		log.Error("Fatal error: failed to create application", "err", err)
		panic(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	// gRPC 服务器
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Posts.Port))
	if err != nil {
		log.Error("Fatal error: failed to listen", "port", cfg.Posts.Port, "err", err)
		panic(err)
	}
	g.Go(func() error {
		log.Info("Posts gRPC Server starting...", "port", cfg.Posts.Port)
		return app.Server.Serve(lis)
	})

	// 优雅退出
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case sig := <-quit:
			log.Info("Received signal, shutting down...", "signal", sig)
			cancel()
		}

		app.Server.GracefulStop()
		app.Producer.Close()
		return nil
	})

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("App exited with error", "err", err)
	}
	log.Info("App exited successfully.")
}
