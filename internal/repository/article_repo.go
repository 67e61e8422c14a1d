package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/discussion-board-api/internal/database"
	"github.com/discussion-board-api/internal/models"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// List retrieves all articles ordered by the given sort key descending,
// each with its derived comment count. The list view does not expose body.
func (r *articleRepo) List(ctx context.Context, sortKey string) ([]*models.Article, error) {
	// sortKey is restricted to known column names by the service layer
	// before it reaches this query.
	query := fmt.Sprintf(`
		SELECT a.article_id, a.title, a.topic, a.author, a.created_at, a.votes, a.article_img_url,
		       CAST(COUNT(c.comment_id) AS TEXT) AS comment_count
		FROM articles a
		LEFT JOIN comments c ON c.article_id = a.article_id
		GROUP BY a.article_id
		ORDER BY a.%s DESC
	`, sortKey)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*models.Article
	for rows.Next() {
		var article models.Article
		err := rows.Scan(
			&article.ArticleID, &article.Title, &article.Topic, &article.Author,
			&article.CreatedAt, &article.Votes, &article.ArticleImgURL,
			&article.CommentCount,
		)
		if err != nil {
			return nil, err
		}
		articles = append(articles, &article)
	}
	return articles, rows.Err()
}

// GetByID retrieves a single article by ID, including its body
func (r *articleRepo) GetByID(ctx context.Context, id int) (*models.Article, error) {
	query := `
		SELECT article_id, title, topic, author, body, created_at, votes, article_img_url
		FROM articles WHERE article_id = $1
	`

	var article models.Article
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&article.ArticleID, &article.Title, &article.Topic, &article.Author,
		&article.Body, &article.CreatedAt, &article.Votes, &article.ArticleImgURL,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &article, nil
}

// Exists checks if an article with the given ID exists
func (r *articleRepo) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM articles WHERE article_id = $1)", id).Scan(&exists)
	return exists, err
}

// UpdateVotes adjusts an article's vote count by incVotes (may be negative)
// and returns the updated article, or nil if no such article exists.
func (r *articleRepo) UpdateVotes(ctx context.Context, id int, incVotes int) (*models.Article, error) {
	query := `
		UPDATE articles SET votes = votes + $1
		WHERE article_id = $2
		RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url
	`

	var article models.Article
	err := r.db.QueryRowContext(ctx, query, incVotes, id).Scan(
		&article.ArticleID, &article.Title, &article.Topic, &article.Author,
		&article.Body, &article.CreatedAt, &article.Votes, &article.ArticleImgURL,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &article, nil
}
