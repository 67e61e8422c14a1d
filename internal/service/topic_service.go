package service

import (
	"context"

	"github.com/discussion-board-api/internal/models"
	"github.com/discussion-board-api/internal/repository"
	"github.com/rs/zerolog"
)

// topicService is the concrete implementation of TopicService
type topicService struct {
	topics repository.TopicRepository
	log    zerolog.Logger
}

func newTopicService(topics repository.TopicRepository, log zerolog.Logger) TopicService {
	return &topicService{
		topics: topics,
		log:    log.With().Str("service", "topic").Logger(),
	}
}

// List returns all topics
func (s *topicService) List(ctx context.Context) ([]*models.Topic, error) {
	return s.topics.List(ctx)
}
