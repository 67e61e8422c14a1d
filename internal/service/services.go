package service

import (
	"context"

	"github.com/discussion-board-api/internal/config"
	"github.com/discussion-board-api/internal/models"
	"github.com/discussion-board-api/internal/moderation"
	"github.com/discussion-board-api/internal/repository"
	"github.com/rs/zerolog"
)

// TopicService defines the interface for topic operations
type TopicService interface {
	List(ctx context.Context) ([]*models.Topic, error)
}

// ArticleService defines the interface for article operations
type ArticleService interface {
	List(ctx context.Context, sortBy string) ([]*models.Article, error)
	Get(ctx context.Context, idParam string) (*models.Article, error)
	UpdateVotes(ctx context.Context, idParam string, req *models.VoteUpdateRequest) (*models.Article, error)
}

// CommentService defines the interface for comment operations
type CommentService interface {
	ListForArticle(ctx context.Context, idParam, sortBy string) ([]*models.Comment, error)
	Create(ctx context.Context, idParam string, req *models.NewCommentRequest) (*models.Comment, error)
}

// Services holds all service interfaces
type Services struct {
	Topic   TopicService
	Article ArticleService
	Comment CommentService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	gate := moderation.NewGate(cfg.Moderation.BlockedTerms)

	return &Services{
		Topic:   newTopicService(repos.Topic, log),
		Article: newArticleService(repos.Article, log),
		Comment: newCommentService(repos, gate, log),
	}
}
