package main

import (
	"context"
	"io"
	"testing"

	"blog-service/pkg/database"
	"blog-service/pkg/logger"
	"blog-service/services/blog/internal/repo/persistent"
	"blog-service/services/blog/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDatabase_IsRepeatable(t *testing.T) {
	db, err := database.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	defer db.Close()

	log := logger.NewWithOptions(io.Discard, "info", false)
	blog := usecase.NewBlogUseCase(persistent.NewSQLitePostRepository(db), log)
	ctx := context.Background()

	require.NoError(t, seedDatabase(ctx, blog, log))
	require.NoError(t, seedDatabase(ctx, blog, log))

	posts, err := blog.GetPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, len(samplePosts))
}
