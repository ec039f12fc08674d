package http

import (
	"errors"
	"net/http"

	"blog-service/pkg/logger"
	"blog-service/pkg/middleware"
	"blog-service/services/blog/internal/entity"
	"blog-service/services/blog/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	MessagePostCreated  = "Post has been submitted successfully!"
	MessagePostUpdated  = "Post has been successfully updated"
	MessagePostDeleted  = "Post has been deleted!"
	MessagePostNotFound = "Post does not exist!"
	MessageInvalidID    = "Invalid post ID"
	MessageInvalidBody  = "Invalid request body"
	MessageInternal     = "Internal server error"
)

type BlogHandler struct {
	blogUseCase usecase.BlogUseCase
	logger      *logger.Logger
}

func NewBlogHandler(blogUseCase usecase.BlogUseCase, logger *logger.Logger) *BlogHandler {
	return &BlogHandler{
		blogUseCase: blogUseCase,
		logger:      logger,
	}
}

// CreatePostRequest is the create/edit payload. Every field is optional; a
// field of the wrong JSON type fails binding.
type CreatePostRequest struct {
	Title       string `json:"title" example:"A"`
	Description string `json:"description" example:"d"`
	Body        string `json:"body" example:"b"`
	Author      string `json:"author" example:"x"`
	DatePosted  string `json:"date_posted" example:"2024-01-01"`
}

func (r CreatePostRequest) toInput() entity.PostInput {
	return entity.PostInput{
		Title:       r.Title,
		Description: r.Description,
		Body:        r.Body,
		Author:      r.Author,
		DatePosted:  r.DatePosted,
	}
}

// PostEnvelope wraps the post returned by create, edit and delete.
type PostEnvelope struct {
	Message string       `json:"message"`
	Post    *entity.Post `json:"post"`
}

type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}

// AddPost godoc
// @Summary      Create a post
// @Description  Create a blog post. All fields are optional strings.
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        request body CreatePostRequest true "Post data"
// @Success      200  {object}  PostEnvelope
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /blog/post [post]
func (h *BlogHandler) AddPost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, MessageInvalidBody)
		return
	}

	post, err := h.blogUseCase.AddPost(c.Request.Context(), req.toInput())
	if err != nil {
		h.handleError(c, "create post", err)
		return
	}

	c.JSON(http.StatusOK, PostEnvelope{Message: MessagePostCreated, Post: post})
}

// GetPost godoc
// @Summary      Get post by ID
// @Tags         blog
// @Produce      json
// @Param        postID path string true "Post ID"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /blog/post/{postID} [get]
func (h *BlogHandler) GetPost(c *gin.Context) {
	post, err := h.blogUseCase.GetPost(c.Request.Context(), c.Param("postID"))
	if err != nil {
		h.handleError(c, "get post", err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// GetPosts godoc
// @Summary      List posts
// @Description  Return every post in storage order. No pagination.
// @Tags         blog
// @Produce      json
// @Success      200  {array}   entity.Post
// @Failure      500  {object}  ErrorResponse
// @Router       /blog/posts [get]
func (h *BlogHandler) GetPosts(c *gin.Context) {
	posts, err := h.blogUseCase.GetPosts(c.Request.Context())
	if err != nil {
		h.handleError(c, "list posts", err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// EditPost godoc
// @Summary      Edit post
// @Description  Replace every editable field of a post. Omitted fields are cleared.
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        postID query string true "Post ID"
// @Param        request body CreatePostRequest true "Post data"
// @Success      200  {object}  PostEnvelope
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /blog/edit [put]
func (h *BlogHandler) EditPost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, MessageInvalidBody)
		return
	}

	post, err := h.blogUseCase.EditPost(c.Request.Context(), c.Query("postID"), req.toInput())
	if err != nil {
		h.handleError(c, "update post", err)
		return
	}

	c.JSON(http.StatusOK, PostEnvelope{Message: MessagePostUpdated, Post: post})
}

// DeletePost godoc
// @Summary      Delete post
// @Description  Permanently delete a post. The removed post is returned.
// @Tags         blog
// @Produce      json
// @Param        postID query string true "Post ID"
// @Success      200  {object}  PostEnvelope
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /blog/delete [delete]
func (h *BlogHandler) DeletePost(c *gin.Context) {
	post, err := h.blogUseCase.DeletePost(c.Request.Context(), c.Query("postID"))
	if err != nil {
		h.handleError(c, "delete post", err)
		return
	}

	c.JSON(http.StatusOK, PostEnvelope{Message: MessagePostDeleted, Post: post})
}

func (h *BlogHandler) handleError(c *gin.Context, action string, err error) {
	switch {
	case errors.Is(err, entity.ErrPostNotFound):
		respondError(c, http.StatusNotFound, MessagePostNotFound)
	case errors.Is(err, entity.ErrInvalidPostID):
		respondError(c, http.StatusBadRequest, MessageInvalidID)
	default:
		h.logger.
			WithField(middleware.RequestIDKey, c.GetString(middleware.RequestIDKey)).
			Error("Failed to %s: %v", action, err)
		respondError(c, http.StatusInternalServerError, MessageInternal)
	}
}

func respondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		StatusCode: status,
		Message:    message,
		Error:      http.StatusText(status),
	})
}
