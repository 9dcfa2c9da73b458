package api

import (
	"Corkboard/internal/api/middleware"
	"Corkboard/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		postGroup := apiGroup.Group("/posts")
		postGroup.Use(middleware.AuthMiddleware())
		{
			postGroup.POST("", group.PostHandler.CreatePost)
			postGroup.GET("", group.PostHandler.ListPosts)
			postGroup.GET("/:post_id", group.PostHandler.GetPost)
			postGroup.PUT("/:post_id", group.PostHandler.UpdatePost)
			postGroup.DELETE("/:post_id", group.PostHandler.DeletePost)

			postGroup.POST("/:post_id/view", group.PostActionHandler.ViewPost)
			postGroup.POST("/:post_id/like", group.PostActionHandler.LikePost)
			postGroup.POST("/:post_id/comments", group.PostActionHandler.CreateComment)
			postGroup.GET("/:post_id/comments", group.PostActionHandler.ListComments)
		}
	}

	// 其余一切路由透传给用户服务
	r.NoRoute(group.UserProxyHandler.Handle)

	return r
}
