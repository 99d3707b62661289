package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/news-service/internal/domain"
	"github.com/spec-kit/news-service/internal/events"
	"github.com/spec-kit/news-service/internal/repository"
)

// SourceService manages news sources: flat entities keyed by their own
// id, with a creator-scoped secondary lookup.
type SourceService struct {
	sources    repository.NewsSourceRepository
	dispatcher events.Dispatcher
}

// NewSourceService constructs the service.
func NewSourceService(sources repository.NewsSourceRepository, dispatcher events.Dispatcher) *SourceService {
	return &SourceService{sources: sources, dispatcher: dispatcher}
}

// Create stores a new source. The creation date is always set here,
// never taken from the caller.
func (s *SourceService) Create(ctx context.Context, source domain.NewsSource) (*domain.NewsSource, error) {
	source.CreatedAt = time.Now()

	if err := s.sources.Insert(ctx, &source); err != nil {
		return nil, fmt.Errorf("news source %d: %w", source.ID, err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventSourceCreated,
			UserID:    source.CreatedBy,
			Timestamp: time.Now(),
			Payload:   events.SourceCreatedPayload{SourceID: source.ID, Name: source.Name},
		})
	}
	return &source, nil
}

// GetByID returns the source with the given id.
func (s *SourceService) GetByID(ctx context.Context, id int) (*domain.NewsSource, error) {
	source, err := s.sources.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("news source %d: %w", id, err)
	}
	return source, nil
}

// Update replaces the mutable fields of an existing source. The creation
// date is preserved.
func (s *SourceService) Update(ctx context.Context, id int, update domain.NewsSource) (*domain.NewsSource, error) {
	source, err := s.sources.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("news source %d: %w", id, err)
	}

	source.Name = update.Name
	source.Description = update.Description
	source.CreatedBy = update.CreatedBy

	if err := s.sources.Save(ctx, source); err != nil {
		return nil, err
	}
	return source, nil
}

// Delete removes the source with the given id.
func (s *SourceService) Delete(ctx context.Context, id int) error {
	if err := s.sources.Delete(ctx, id); err != nil {
		return fmt.Errorf("news source %d: %w", id, err)
	}
	return nil
}

// ListByCreator returns all sources created by the given user. No match
// yields an empty slice, never an error.
func (s *SourceService) ListByCreator(ctx context.Context, createdBy string) ([]domain.NewsSource, error) {
	return s.sources.FindByCreator(ctx, createdBy)
}
