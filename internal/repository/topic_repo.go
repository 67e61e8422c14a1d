package repository

import (
	"context"

	"github.com/discussion-board-api/internal/database"
	"github.com/discussion-board-api/internal/models"
)

// topicRepo is the concrete implementation of TopicRepository
type topicRepo struct {
	db *database.DB
}

// NewTopicRepo creates a new topic repository
func NewTopicRepo(db *database.DB) TopicRepository {
	return &topicRepo{db: db}
}

// List retrieves all topics
func (r *topicRepo) List(ctx context.Context) ([]*models.Topic, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT slug, description, img_url FROM topics")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var topics []*models.Topic
	for rows.Next() {
		var topic models.Topic
		if err := rows.Scan(&topic.Slug, &topic.Description, &topic.ImgURL); err != nil {
			return nil, err
		}
		topics = append(topics, &topic)
	}
	return topics, rows.Err()
}
