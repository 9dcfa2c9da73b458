package wire

import (
	"Corkboard/internal/api"
	"Corkboard/internal/api/config"
	"Corkboard/internal/api/handler"
	"Corkboard/internal/pkg/kafka"
	"Corkboard/internal/repository"
	"Corkboard/internal/rpc"
	"Corkboard/internal/rpc/postspb"
	"Corkboard/internal/service"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc"
	"gorm.io/gorm"
)

// PostsContainer 帖子服务运行所需的所有顶级组件
type PostsContainer struct {
	Server   *grpc.Server
	Producer *kafka.EventProducer
	DB       *gorm.DB
}

// GatewayContainer 网关运行所需的所有顶级组件
type GatewayContainer struct {
	Router *gin.Engine
}

// BuildPostsApplication 组装帖子 gRPC 服务
func BuildPostsApplication(db *gorm.DB, cfg *config.Config) (*PostsContainer, error) {
	postRepo := repository.NewPostRepository(db)
	actionRepo := repository.NewPostActionRepo(db)

	producer := kafka.NewEventProducer(cfg.Kafka)

	postService := service.NewPostService(postRepo, actionRepo, producer)

	server := grpc.NewServer(
		grpc.UnaryInterceptor(rpc.TraceUnaryInterceptor()),
	)
	postspb.RegisterPostServiceServer(server, rpc.NewPostServer(postService))

	return &PostsContainer{
		Server:   server,
		Producer: producer,
		DB:       db,
	}, nil
}

// BuildGatewayApplication 组装网关，client 指向帖子服务
func BuildGatewayApplication(client postspb.PostServiceClient, cfg *config.Config) (*GatewayContainer, error) {
	userProxy, err := handler.NewUserProxyHandler(cfg.UserSvc.BaseURL)
	if err != nil {
		return nil, err
	}

	handlers := &api.HandlersGroup{
		PostHandler:       handler.NewPostHandler(client),
		PostActionHandler: handler.NewPostActionHandler(client),
		UserProxyHandler:  userProxy,
	}

	router := api.SetupRouter(handlers)

	return &GatewayContainer{
		Router: router,
	}, nil
}
