package persistent

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"blog-service/services/blog/internal/entity"

	"github.com/google/uuid"
)

const postColumns = `id, title, description, body, author, date_posted`

type sqlitePostRepository struct {
	db *sql.DB
}

// NewSQLitePostRepository backs PostRepository with a database/sql handle on
// modernc.org/sqlite. The posts table must already exist
// (see database.NewSQLiteDB).
func NewSQLitePostRepository(db *sql.DB) PostRepository {
	return &sqlitePostRepository{db: db}
}

func (r *sqlitePostRepository) Create(ctx context.Context, post *entity.Post) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO posts (`+postColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		post.ID,
		post.Title,
		post.Description,
		post.Body,
		post.Author,
		post.DatePosted,
	)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (r *sqlitePostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM posts WHERE id = ?`, id)
	post, err := scanPost(row)
	if err != nil {
		return nil, fmt.Errorf("get post %s: %w", id, err)
	}
	return post, nil
}

func (r *sqlitePostRepository) List(ctx context.Context) ([]*entity.Post, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+postColumns+` FROM posts`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := []*entity.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}

func (r *sqlitePostRepository) Replace(ctx context.Context, id string, in entity.PostInput) (*entity.Post, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE posts
		SET title = ?, description = ?, body = ?, author = ?, date_posted = ?
		WHERE id = ?
		RETURNING `+postColumns,
		in.Title,
		in.Description,
		in.Body,
		in.Author,
		in.DatePosted,
		id,
	)
	post, err := scanPost(row)
	if err != nil {
		return nil, fmt.Errorf("update post %s: %w", id, err)
	}
	return post, nil
}

func (r *sqlitePostRepository) Delete(ctx context.Context, id string) (*entity.Post, error) {
	row := r.db.QueryRowContext(ctx, `DELETE FROM posts WHERE id = ? RETURNING `+postColumns, id)
	post, err := scanPost(row)
	if err != nil {
		return nil, fmt.Errorf("delete post %s: %w", id, err)
	}
	return post, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanPost maps sql.ErrNoRows to entity.ErrPostNotFound.
func scanPost(row rowScanner) (*entity.Post, error) {
	var p entity.Post
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Body,
		&p.Author,
		&p.DatePosted,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
