package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"blog-service/pkg/config"
	"blog-service/pkg/logger"
	app "blog-service/services/blog/internal/app"
	"blog-service/services/blog/internal/entity"
	"blog-service/services/blog/internal/usecase"
)

var samplePosts = []entity.PostInput{
	{
		Title:       "Hello, world",
		Description: "The first post on the blog",
		Body:        "Welcome! This blog runs on a tiny CRUD service.",
		Author:      "alice",
		DatePosted:  "2024-01-01",
	},
	{
		Title:       "Notes on document stores",
		Description: "Why flat records are enough here",
		Body:        "Every post is independent; there are no relationships to maintain.",
		Author:      "bob",
		DatePosted:  "2024-01-15",
	},
	{
		Title:       "Editing replaces everything",
		Description: "How the edit endpoint behaves",
		Body:        "An edit overwrites all five fields, so send the full post.",
		Author:      "charlie",
		DatePosted:  "2024-02-03",
	},
}

func main() {
	timeout := flag.Duration("timeout", 30*time.Second, "overall seeding timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	postRepo, closeStore, err := app.OpenPostStore(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}
	defer closeStore()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := seedDatabase(ctx, usecase.NewBlogUseCase(postRepo, log), log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

// seedDatabase inserts every sample post whose title is not already present.
func seedDatabase(ctx context.Context, blog usecase.BlogUseCase, log *logger.Logger) error {
	existing, err := blog.GetPosts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list existing posts: %w", err)
	}

	titles := make(map[string]bool, len(existing))
	for _, p := range existing {
		titles[p.Title] = true
	}

	for _, in := range samplePosts {
		if titles[in.Title] {
			log.Info("Post %q already exists, skipping", in.Title)
			continue
		}

		post, err := blog.AddPost(ctx, in)
		if err != nil {
			return err
		}
		log.Info("Created post: %s (%s)", post.Title, post.ID)
	}
	return nil
}
