package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostModel is the posts row. There is no DeletedAt: deletes are permanent.
type PostModel struct {
	ID          string `gorm:"type:uuid;primary_key" json:"id"`
	Title       string `gorm:"type:text" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Body        string `gorm:"type:text" json:"body"`
	Author      string `gorm:"type:text" json:"author"`
	DatePosted  string `gorm:"column:date_posted;type:text" json:"date_posted"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
