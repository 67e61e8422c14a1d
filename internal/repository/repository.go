package repository

import (
	"context"

	"github.com/discussion-board-api/internal/database"
	"github.com/discussion-board-api/internal/models"
)

// TopicRepository defines the interface for topic data operations
type TopicRepository interface {
	List(ctx context.Context) ([]*models.Topic, error)
}

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	List(ctx context.Context, sortKey string) ([]*models.Article, error)
	GetByID(ctx context.Context, id int) (*models.Article, error)
	Exists(ctx context.Context, id int) (bool, error)
	UpdateVotes(ctx context.Context, id int, incVotes int) (*models.Article, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	ListByArticle(ctx context.Context, articleID int, sortKey string) ([]*models.Comment, error)
	Insert(ctx context.Context, articleID int, author, body string) (*models.Comment, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Exists(ctx context.Context, username string) (bool, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Topic   TopicRepository
	Article ArticleRepository
	Comment CommentRepository
	User    UserRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Topic:   NewTopicRepo(db),
		Article: NewArticleRepo(db),
		Comment: NewCommentRepo(db),
		User:    NewUserRepo(db),
	}
}
