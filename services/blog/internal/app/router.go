package internal

import (
	"net/http"

	"blog-service/pkg/config"
	"blog-service/pkg/metrics"
	"blog-service/pkg/middleware"
	blogHTTP "blog-service/services/blog/internal/controller/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "blog-service/services/blog/docs" // Swagger docs
)

// NewRouter registers the blog routes plus health, metrics and swagger.
func NewRouter(cfg *config.Config, blogHandler *blogHTTP.BlogHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(metrics.Middleware())
	r.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	blog := r.Group("/blog")
	{
		blog.POST("/post", blogHandler.AddPost)
		blog.GET("/post/:postID", blogHandler.GetPost)
		blog.GET("/posts", blogHandler.GetPosts)
		blog.PUT("/edit", blogHandler.EditPost)
		blog.DELETE("/delete", blogHandler.DeletePost)
	}

	return r
}

// corsConfig allows any origin when the list is empty or just "*"; credentials
// are only allowed for an explicit list.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * 3600,
	}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}

	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
