package api

import (
	"net/http"

	"github.com/discussion-board-api/internal/models"
	"github.com/discussion-board-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// GetComments handles GET /api/articles/:article_id/comments?sort_by=...
func (h *CommentHandler) GetComments(c *gin.Context) {
	comments, err := h.services.Comment.ListForArticle(
		c.Request.Context(), c.Param("article_id"), c.Query("sort_by"),
	)
	if err != nil {
		renderError(c, h.log, err)
		return
	}

	// The list rides under a singular key; long-standing wire format.
	c.JSON(http.StatusOK, gin.H{"comment": comments})
}

// PostComment handles POST /api/articles/:article_id/comments
func (h *CommentHandler) PostComment(c *gin.Context) {
	var req models.NewCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		renderError(c, h.log, service.ErrBadRequest)
		return
	}

	comment, err := h.services.Comment.Create(c.Request.Context(), c.Param("article_id"), &req)
	if err != nil {
		renderError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"postedComment": comment})
}
