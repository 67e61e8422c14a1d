package service

import (
	"context"

	"github.com/discussion-board-api/internal/models"
	"github.com/discussion-board-api/internal/moderation"
	"github.com/discussion-board-api/internal/repository"
	"github.com/rs/zerolog"
)

// commentService is the concrete implementation of CommentService
type commentService struct {
	comments repository.CommentRepository
	articles repository.ArticleRepository
	users    repository.UserRepository
	gate     *moderation.Gate
	log      zerolog.Logger
}

func newCommentService(repos *repository.Repositories, gate *moderation.Gate, log zerolog.Logger) CommentService {
	return &commentService{
		comments: repos.Comment,
		articles: repos.Article,
		users:    repos.User,
		gate:     gate,
		log:      log.With().Str("service", "comment").Logger(),
	}
}

// ListForArticle returns all comments on an article, newest first. Article
// existence is checked independently of comment presence: an existing
// article with no comments yields an empty list, not an error.
func (s *commentService) ListForArticle(ctx context.Context, idParam, sortBy string) ([]*models.Comment, error) {
	id, err := parseArticleID(idParam)
	if err != nil {
		return nil, err
	}

	sortKey := defaultSortKey
	if sortBy != "" {
		if !models.CommentSortKeys[sortBy] {
			return nil, ErrInvalidCommentSort
		}
		sortKey = sortBy
	}

	exists, err := s.articles.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrArticleIDNotFound
	}

	return s.comments.ListByArticle(ctx, id, sortKey)
}

// Create validates and stores a new comment. The check order is fixed:
// article reference, then user existence, then moderation, so the most
// specific failure for a given request is deterministic. The checks and
// the insert are sequential calls, not a transaction.
func (s *commentService) Create(ctx context.Context, idParam string, req *models.NewCommentRequest) (*models.Comment, error) {
	id, err := parseArticleID(idParam)
	if err != nil {
		return nil, err
	}

	exists, err := s.articles.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrArticleRef
	}

	userExists, err := s.users.Exists(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if !userExists {
		return nil, ErrUnknownUsername
	}

	if !s.gate.Allow(req.Body) {
		s.log.Info().Str("author", req.Username).Int("article_id", id).Msg("Comment rejected by moderation")
		return nil, ErrForbiddenComment
	}

	return s.comments.Insert(ctx, id, req.Username, req.Body)
}
