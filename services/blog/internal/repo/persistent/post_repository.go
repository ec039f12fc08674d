package persistent

import (
	"context"
	"errors"
	"fmt"

	"blog-service/services/blog/internal/entity"
	"blog-service/services/blog/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepository is the post store. Every method is a single statement; a
// missing row is reported as entity.ErrPostNotFound.
type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	List(ctx context.Context) ([]*entity.Post, error)
	Replace(ctx context.Context, id string, in entity.PostInput) (*entity.Post, error)
	Delete(ctx context.Context, id string) (*entity.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postModel := ToPostModel(post)
	if err := r.db.WithContext(ctx).Create(postModel).Error; err != nil {
		return fmt.Errorf("insert post: %w", err)
	}

	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	var postModel model.PostModel
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&postModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entity.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post %s: %w", id, err)
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) List(ctx context.Context) ([]*entity.Post, error) {
	var postModels []model.PostModel
	if err := r.db.WithContext(ctx).Find(&postModels).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

// Replace overwrites the editable columns and reads the row back through
// RETURNING in the same statement.
func (r *postRepository) Replace(ctx context.Context, id string, in entity.PostInput) (*entity.Post, error) {
	var postModel model.PostModel
	result := r.db.WithContext(ctx).
		Model(&postModel).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(toUpdateColumns(in))
	if result.Error != nil {
		return nil, fmt.Errorf("update post %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, entity.ErrPostNotFound
	}
	return ToPostEntity(&postModel), nil
}

// Delete removes the row and returns what was removed.
func (r *postRepository) Delete(ctx context.Context, id string) (*entity.Post, error) {
	var postModel model.PostModel
	result := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Delete(&postModel)
	if result.Error != nil {
		return nil, fmt.Errorf("delete post %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, entity.ErrPostNotFound
	}
	return ToPostEntity(&postModel), nil
}
