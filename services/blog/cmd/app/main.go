package main

import (
	"os"

	"blog-service/pkg/config"
	"blog-service/pkg/logger"
	app "blog-service/services/blog/internal/app"

	"github.com/gin-gonic/gin"
)

// @title           Blog Service API
// @version         1.0
// @description     CRUD service for blog posts

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.GinMode)
	}

	log := logger.NewWithOptions(os.Stdout, cfg.LogLevel, cfg.GinMode == gin.ReleaseMode)

	application, err := app.NewApp(cfg, log)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}
