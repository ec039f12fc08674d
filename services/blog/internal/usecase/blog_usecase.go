package usecase

import (
	"context"
	"fmt"

	"blog-service/pkg/logger"
	"blog-service/services/blog/internal/entity"
	"blog-service/services/blog/internal/repo/persistent"

	"github.com/google/uuid"
)

// BlogUseCase is the post store service. Lookups by id return
// entity.ErrPostNotFound when nothing matches and entity.ErrInvalidPostID
// when the id is not a UUID; the store is not queried in that case.
type BlogUseCase interface {
	AddPost(ctx context.Context, in entity.PostInput) (*entity.Post, error)
	GetPost(ctx context.Context, postID string) (*entity.Post, error)
	GetPosts(ctx context.Context) ([]*entity.Post, error)
	EditPost(ctx context.Context, postID string, in entity.PostInput) (*entity.Post, error)
	DeletePost(ctx context.Context, postID string) (*entity.Post, error)
}

type blogUseCase struct {
	postRepo persistent.PostRepository
	logger   *logger.Logger
}

func NewBlogUseCase(postRepo persistent.PostRepository, logger *logger.Logger) BlogUseCase {
	return &blogUseCase{
		postRepo: postRepo,
		logger:   logger,
	}
}

func (uc *blogUseCase) AddPost(ctx context.Context, in entity.PostInput) (*entity.Post, error) {
	post := &entity.Post{}
	post.Apply(in)

	if err := uc.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	uc.logger.Debug("Post created: id=%s", post.ID)
	return post, nil
}

func (uc *blogUseCase) GetPost(ctx context.Context, postID string) (*entity.Post, error) {
	id, err := normalizePostID(postID)
	if err != nil {
		return nil, err
	}
	return uc.postRepo.GetByID(ctx, id)
}

func (uc *blogUseCase) GetPosts(ctx context.Context) ([]*entity.Post, error) {
	posts, err := uc.postRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	if posts == nil {
		posts = []*entity.Post{}
	}
	return posts, nil
}

func (uc *blogUseCase) EditPost(ctx context.Context, postID string, in entity.PostInput) (*entity.Post, error) {
	id, err := normalizePostID(postID)
	if err != nil {
		return nil, err
	}

	post, err := uc.postRepo.Replace(ctx, id, in)
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("Post updated: id=%s", post.ID)
	return post, nil
}

func (uc *blogUseCase) DeletePost(ctx context.Context, postID string) (*entity.Post, error) {
	id, err := normalizePostID(postID)
	if err != nil {
		return nil, err
	}

	post, err := uc.postRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("Post deleted: id=%s", post.ID)
	return post, nil
}

// normalizePostID accepts any form uuid.Parse does and returns the canonical
// lower-case hyphenated form the store keys on.
func normalizePostID(postID string) (string, error) {
	id, err := uuid.Parse(postID)
	if err != nil {
		return "", fmt.Errorf("%w: %q", entity.ErrInvalidPostID, postID)
	}
	return id.String(), nil
}
