package persistent

import (
	"blog-service/services/blog/internal/entity"
	"blog-service/services/blog/internal/model"
)

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	return &entity.Post{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Body:        m.Body,
		Author:      m.Author,
		DatePosted:  m.DatePosted,
	}
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Body:        e.Body,
		Author:      e.Author,
		DatePosted:  e.DatePosted,
	}
}

// toUpdateColumns lists every editable column so that empty strings are
// written too; gorm skips zero values when updating from a struct.
func toUpdateColumns(in entity.PostInput) map[string]interface{} {
	return map[string]interface{}{
		"title":       in.Title,
		"description": in.Description,
		"body":        in.Body,
		"author":      in.Author,
		"date_posted": in.DatePosted,
	}
}
