package internal

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blog-service/pkg/config"
	"blog-service/pkg/database"
	"blog-service/pkg/logger"
	blogHTTP "blog-service/services/blog/internal/controller/http"
	"blog-service/services/blog/internal/repo/persistent"
	"blog-service/services/blog/internal/usecase"
)

type App struct {
	cfg        *config.Config
	log        *logger.Logger
	postRepo   persistent.PostRepository
	closeStore func() error
	httpServer *http.Server
}

// NewApp opens the post store selected by cfg.DBDriver. The handle is shared
// by every request and closed in Shutdown.
func NewApp(cfg *config.Config, log *logger.Logger) (*App, error) {
	postRepo, closeStore, err := OpenPostStore(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	return &App{
		cfg:        cfg,
		log:        log,
		postRepo:   postRepo,
		closeStore: closeStore,
	}, nil
}

// OpenPostStore returns the repository for cfg.DBDriver and the function that
// releases its connection pool.
func OpenPostStore(cfg *config.Config) (persistent.PostRepository, func() error, error) {
	switch cfg.DBDriver {
	case config.DriverSQLite:
		db, err := database.NewSQLiteDB(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return persistent.NewSQLitePostRepository(db), db.Close, nil
	case config.DriverPostgres:
		db, err := database.NewPostgresDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		return persistent.NewPostRepository(db), sqlDB.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}

// Handler builds the HTTP handler tree over the app's store.
func (a *App) Handler() http.Handler {
	blogUseCase := usecase.NewBlogUseCase(a.postRepo, a.log)
	blogHandler := blogHTTP.NewBlogHandler(blogUseCase, a.log)
	return NewRouter(a.cfg, blogHandler)
}

func (a *App) Run() error {
	a.httpServer = &http.Server{
		Addr:              ":" + a.cfg.ServerPort,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("Blog service starting on port %s (store: %s)", a.cfg.ServerPort, a.cfg.DBDriver)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down blog service...")
}

func (a *App) Shutdown() error {
	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var shutdownErr error
	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			a.log.Error("Server forced to shutdown: %v", err)
			shutdownErr = err
		}
	}

	// Close database connection after in-flight requests have drained
	if a.closeStore != nil {
		if err := a.closeStore(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	a.log.Info("Blog service exited")
	return shutdownErr
}
