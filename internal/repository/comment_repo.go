package repository

import (
	"context"
	"fmt"

	"github.com/discussion-board-api/internal/database"
	"github.com/discussion-board-api/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// ListByArticle retrieves all comments for an article ordered by the given
// sort key descending. An article with no comments yields an empty slice.
func (r *commentRepo) ListByArticle(ctx context.Context, articleID int, sortKey string) ([]*models.Comment, error) {
	// sortKey is restricted to known column names by the service layer
	// before it reaches this query.
	query := fmt.Sprintf(`
		SELECT comment_id, article_id, author, body, votes, created_at
		FROM comments WHERE article_id = $1
		ORDER BY %s DESC
	`, sortKey)

	rows, err := r.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]*models.Comment, 0)
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(
			&comment.CommentID, &comment.ArticleID, &comment.Author,
			&comment.Body, &comment.Votes, &comment.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, &comment)
	}
	return comments, rows.Err()
}

// Insert stores a new comment and returns it with the server-assigned
// comment_id, default votes, and insertion timestamp.
func (r *commentRepo) Insert(ctx context.Context, articleID int, author, body string) (*models.Comment, error) {
	query := `
		INSERT INTO comments (article_id, author, body)
		VALUES ($1, $2, $3)
		RETURNING comment_id, article_id, author, body, votes, created_at
	`

	var comment models.Comment
	err := r.db.QueryRowContext(ctx, query, articleID, author, body).Scan(
		&comment.CommentID, &comment.ArticleID, &comment.Author,
		&comment.Body, &comment.Votes, &comment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &comment, nil
}
