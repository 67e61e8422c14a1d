package service

import (
	"context"
	"strconv"

	"github.com/discussion-board-api/internal/models"
	"github.com/discussion-board-api/internal/repository"
	"github.com/rs/zerolog"
)

// defaultSortKey is the ordering applied when no sort_by is supplied
const defaultSortKey = "created_at"

// articleService is the concrete implementation of ArticleService
type articleService struct {
	articles repository.ArticleRepository
	log      zerolog.Logger
}

func newArticleService(articles repository.ArticleRepository, log zerolog.Logger) ArticleService {
	return &articleService{
		articles: articles,
		log:      log.With().Str("service", "article").Logger(),
	}
}

// List returns all articles ordered by created_at descending. The only
// caller-overridable sort key is created_at; anything else is rejected.
func (s *articleService) List(ctx context.Context, sortBy string) ([]*models.Article, error) {
	sortKey := defaultSortKey
	if sortBy != "" {
		if !models.ArticleSortKeys[sortBy] {
			return nil, ErrInvalidSort
		}
		sortKey = sortBy
	}
	return s.articles.List(ctx, sortKey)
}

// Get returns a single article by its path identifier, body included
func (s *articleService) Get(ctx context.Context, idParam string) (*models.Article, error) {
	id, err := parseArticleID(idParam)
	if err != nil {
		return nil, err
	}

	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// UpdateVotes adjusts an article's vote count by the increment in the
// payload and returns the updated article.
func (s *articleService) UpdateVotes(ctx context.Context, idParam string, req *models.VoteUpdateRequest) (*models.Article, error) {
	id, err := parseArticleID(idParam)
	if err != nil {
		return nil, err
	}
	if req == nil || req.IncVotes == nil {
		return nil, ErrBadRequest
	}

	article, err := s.articles.UpdateVotes(ctx, id, *req.IncVotes)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	s.log.Debug().Int("article_id", id).Int("inc_votes", *req.IncVotes).Msg("Article votes updated")
	return article, nil
}

// parseArticleID interprets a path identifier. Anything other than a
// positive integer literal is a client error, not a not-found condition.
func parseArticleID(idParam string) (int, error) {
	id, err := strconv.Atoi(idParam)
	if err != nil || id < 1 {
		return 0, ErrBadRequest
	}
	return id, nil
}
