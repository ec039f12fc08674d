package entity

import "errors"

var (
	ErrPostNotFound  = errors.New("post does not exist")
	ErrInvalidPostID = errors.New("invalid post id")
)

type Post struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Body        string `json:"body"`
	Author      string `json:"author"`
	DatePosted  string `json:"date_posted"`
}

// PostInput carries the editable fields of a post. Create and edit both take
// it whole; edit replaces every field, empty strings included.
type PostInput struct {
	Title       string
	Description string
	Body        string
	Author      string
	DatePosted  string
}

// Apply overwrites the editable fields of p with in.
func (p *Post) Apply(in PostInput) {
	p.Title = in.Title
	p.Description = in.Description
	p.Body = in.Body
	p.Author = in.Author
	p.DatePosted = in.DatePosted
}
