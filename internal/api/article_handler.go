package api

import (
	"net/http"

	"github.com/discussion-board-api/internal/models"
	"github.com/discussion-board-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// GetArticles handles GET /api/articles?sort_by=...
func (h *ArticleHandler) GetArticles(c *gin.Context) {
	articles, err := h.services.Article.List(c.Request.Context(), c.Query("sort_by"))
	if err != nil {
		renderError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// GetArticleByID handles GET /api/articles/:article_id
func (h *ArticleHandler) GetArticleByID(c *gin.Context) {
	article, err := h.services.Article.Get(c.Request.Context(), c.Param("article_id"))
	if err != nil {
		renderError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// PatchArticle handles PATCH /api/articles/:article_id
func (h *ArticleHandler) PatchArticle(c *gin.Context) {
	var req models.VoteUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		renderError(c, h.log, service.ErrBadRequest)
		return
	}

	article, err := h.services.Article.UpdateVotes(c.Request.Context(), c.Param("article_id"), &req)
	if err != nil {
		renderError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}
