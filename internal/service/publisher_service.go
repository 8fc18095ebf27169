package service

import (
	"context"
	"fmt"

	"github.com/newsroom-api/internal/models"
	"github.com/newsroom-api/internal/repository"
)

// publisherService is the concrete implementation of PublisherService.
// Publishers are readable by every authenticated role, so there is no
// policy gate here.
type publisherService struct {
	publishers repository.PublisherRepository
}

// newPublisherService creates a new PublisherService
func newPublisherService(publishers repository.PublisherRepository) PublisherService {
	return &publisherService{publishers: publishers}
}

// List returns all publishers ordered by name
func (s *publisherService) List(ctx context.Context) ([]*models.Publisher, error) {
	return s.publishers.List(ctx)
}

// Get returns a single publisher with its staffing lists
func (s *publisherService) Get(ctx context.Context, id string) (*models.Publisher, error) {
	publisher, err := s.publishers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load publisher: %w", err)
	}
	if publisher == nil {
		return nil, ErrNotFound
	}
	return publisher, nil
}
