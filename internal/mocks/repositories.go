package mocks

import (
	"context"
	"sort"
	"time"

	"github.com/discussion-board-api/internal/models"
	"github.com/discussion-board-api/internal/repository"
)

// MockTopicRepository is a mock implementation of TopicRepository
type MockTopicRepository struct {
	Topics  []*models.Topic
	ListErr error
}

// Verify interface compliance
var _ repository.TopicRepository = (*MockTopicRepository)(nil)

func NewMockTopicRepository() *MockTopicRepository {
	return &MockTopicRepository{}
}

func (m *MockTopicRepository) List(ctx context.Context) ([]*models.Topic, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Topics, nil
}

// MockArticleRepository is a mock implementation of ArticleRepository.
// List and GetByID mirror the real queries' view shaping: the list view
// strips Body, the single view strips CommentCount.
type MockArticleRepository struct {
	Articles  map[int]*models.Article
	ListErr   error
	GetErr    error
	ExistsErr error
	UpdateErr error
}

// Verify interface compliance
var _ repository.ArticleRepository = (*MockArticleRepository)(nil)

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Articles: make(map[int]*models.Article),
	}
}

func (m *MockArticleRepository) List(ctx context.Context, sortKey string) ([]*models.Article, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	articles := make([]*models.Article, 0, len(m.Articles))
	for _, a := range m.Articles {
		listView := *a
		listView.Body = ""
		articles = append(articles, &listView)
	}
	sort.Slice(articles, func(i, j int) bool {
		return articles[i].CreatedAt.After(articles[j].CreatedAt)
	})
	return articles, nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id int) (*models.Article, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	a, ok := m.Articles[id]
	if !ok {
		return nil, nil
	}
	singleView := *a
	singleView.CommentCount = ""
	return &singleView, nil
}

func (m *MockArticleRepository) Exists(ctx context.Context, id int) (bool, error) {
	if m.ExistsErr != nil {
		return false, m.ExistsErr
	}
	_, ok := m.Articles[id]
	return ok, nil
}

func (m *MockArticleRepository) UpdateVotes(ctx context.Context, id int, incVotes int) (*models.Article, error) {
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	a, ok := m.Articles[id]
	if !ok {
		return nil, nil
	}
	a.Votes += incVotes
	updated := *a
	updated.CommentCount = ""
	return &updated, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	CommentsByArticle map[int][]*models.Comment
	ListErr           error
	InsertErr         error
	NextCommentID     int
}

// Verify interface compliance
var _ repository.CommentRepository = (*MockCommentRepository)(nil)

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		CommentsByArticle: make(map[int][]*models.Comment),
		NextCommentID:     1,
	}
}

func (m *MockCommentRepository) ListByArticle(ctx context.Context, articleID int, sortKey string) ([]*models.Comment, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	comments := make([]*models.Comment, 0, len(m.CommentsByArticle[articleID]))
	comments = append(comments, m.CommentsByArticle[articleID]...)
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

func (m *MockCommentRepository) Insert(ctx context.Context, articleID int, author, body string) (*models.Comment, error) {
	if m.InsertErr != nil {
		return nil, m.InsertErr
	}

	comment := &models.Comment{
		CommentID: m.NextCommentID,
		ArticleID: articleID,
		Author:    author,
		Body:      body,
		Votes:     0,
		CreatedAt: time.Now(),
	}
	m.NextCommentID++
	m.CommentsByArticle[articleID] = append(m.CommentsByArticle[articleID], comment)
	return comment, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Usernames map[string]bool
	ExistsErr error
}

// Verify interface compliance
var _ repository.UserRepository = (*MockUserRepository)(nil)

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Usernames: make(map[string]bool),
	}
}

func (m *MockUserRepository) Exists(ctx context.Context, username string) (bool, error) {
	if m.ExistsErr != nil {
		return false, m.ExistsErr
	}
	return m.Usernames[username], nil
}

// NewRepositories bundles fresh mocks into a repository.Repositories for
// wiring real services in tests
func NewRepositories() (*repository.Repositories, *MockTopicRepository, *MockArticleRepository, *MockCommentRepository, *MockUserRepository) {
	topics := NewMockTopicRepository()
	articles := NewMockArticleRepository()
	comments := NewMockCommentRepository()
	users := NewMockUserRepository()

	repos := &repository.Repositories{
		Topic:   topics,
		Article: articles,
		Comment: comments,
		User:    users,
	}
	return repos, topics, articles, comments, users
}
