package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/news-service/internal/domain"
	"github.com/spec-kit/news-service/internal/events"
	"github.com/spec-kit/news-service/internal/repository"
)

// NewsService manages the per-user news aggregates. Each mutation is a
// load-mutate-save of the whole aggregate, so mutations are serialized
// per user id to rule out lost updates between concurrent requests.
type NewsService struct {
	news       repository.UserNewsRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// NewNewsService constructs the service.
func NewNewsService(news repository.UserNewsRepository, dispatcher events.Dispatcher, logger *zap.Logger) *NewsService {
	return &NewsService{
		news:       news,
		dispatcher: dispatcher,
		logger:     logger,
		locks:      make(map[string]*sync.Mutex),
	}
}

// ownerLock returns the mutex serializing mutations for one user.
// Entries are not evicted; the lock table stays small at this scale.
func (s *NewsService) ownerLock(userID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}

// AddNews appends a news item to the user's aggregate, creating the
// aggregate on the first insert. A duplicate news id within the same
// user's list is a conflict; a second insert for an existing user is not.
func (s *NewsService) AddNews(ctx context.Context, userID string, item domain.News) (*domain.News, error) {
	if item.Author == "" {
		item.Author = userID
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	applyReminderDefaults(item.Reminder)

	lock := s.ownerLock(userID)
	lock.Lock()
	defer lock.Unlock()

	aggregate, err := s.news.GetByUserID(ctx, userID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		aggregate = &domain.UserNews{UserID: userID, NewsList: []domain.News{item}}
		if err := s.news.Insert(ctx, aggregate); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		if aggregate.FindNews(item.ID) >= 0 {
			return nil, fmt.Errorf("news %d for user %q: %w", item.ID, userID, domain.ErrConflict)
		}
		aggregate.NewsList = append(aggregate.NewsList, item)
		if err := s.news.Save(ctx, aggregate); err != nil {
			return nil, err
		}
	}

	s.publish(ctx, events.EventNewsAdded, userID, events.NewsAddedPayload{
		NewsID:   item.ID,
		Title:    item.Title,
		Reminder: item.Reminder,
	})

	added := copyNews(item)
	return &added, nil
}

// GetNews returns a single news item of the user.
func (s *NewsService) GetNews(ctx context.Context, userID string, newsID int) (*domain.News, error) {
	aggregate, err := s.news.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	idx := aggregate.FindNews(newsID)
	if idx < 0 {
		return nil, fmt.Errorf("news %d for user %q: %w", newsID, userID, domain.ErrNotFound)
	}
	item := copyNews(aggregate.NewsList[idx])
	return &item, nil
}

// ListNews returns the user's news items in insertion order.
func (s *NewsService) ListNews(ctx context.Context, userID string) ([]domain.News, error) {
	aggregate, err := s.news.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	items := make([]domain.News, 0, len(aggregate.NewsList))
	for _, item := range aggregate.NewsList {
		items = append(items, copyNews(item))
	}
	return items, nil
}

// UpdateNews replaces the mutable fields of an existing item in place.
// The list length and the item's position never change on update.
func (s *NewsService) UpdateNews(ctx context.Context, userID string, newsID int, update domain.News) (*domain.News, error) {
	lock := s.ownerLock(userID)
	lock.Lock()
	defer lock.Unlock()

	aggregate, err := s.news.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	idx := aggregate.FindNews(newsID)
	if idx < 0 {
		return nil, fmt.Errorf("news %d for user %q: %w", newsID, userID, domain.ErrNotFound)
	}

	applyReminderDefaults(update.Reminder)

	current := &aggregate.NewsList[idx]
	current.Author = update.Author
	current.Title = update.Title
	current.Content = update.Content
	current.URL = update.URL
	current.ImageURL = update.ImageURL
	current.Description = update.Description
	current.Reminder = update.Reminder

	if err := s.news.Save(ctx, aggregate); err != nil {
		return nil, err
	}
	item := copyNews(*current)
	return &item, nil
}

// DeleteNews removes exactly the matching item; siblings are retained.
// An aggregate emptied by deleting its last item is kept until
// DeleteAllNews is called for the user.
func (s *NewsService) DeleteNews(ctx context.Context, userID string, newsID int) error {
	lock := s.ownerLock(userID)
	lock.Lock()
	defer lock.Unlock()

	aggregate, err := s.news.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	idx := aggregate.FindNews(newsID)
	if idx < 0 {
		return fmt.Errorf("news %d for user %q: %w", newsID, userID, domain.ErrNotFound)
	}

	aggregate.NewsList = append(aggregate.NewsList[:idx], aggregate.NewsList[idx+1:]...)
	if err := s.news.Save(ctx, aggregate); err != nil {
		return err
	}

	s.publish(ctx, events.EventNewsDeleted, userID, events.NewsDeletedPayload{NewsID: newsID})
	return nil
}

// DeleteAllNews drops the user's whole aggregate.
func (s *NewsService) DeleteAllNews(ctx context.Context, userID string) error {
	lock := s.ownerLock(userID)
	lock.Lock()
	defer lock.Unlock()

	return s.news.Delete(ctx, userID)
}

func (s *NewsService) publish(ctx context.Context, eventType events.EventType, userID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

// applyReminderDefaults fills in a reminder's id and schedule. A reminder
// is never stored without both.
func applyReminderDefaults(reminder *domain.Reminder) {
	if reminder == nil {
		return
	}
	if reminder.ID == "" {
		reminder.ID = uuid.NewString()
	}
	if reminder.Schedule.IsZero() {
		reminder.Schedule = time.Now()
	}
}

// copyNews returns a copy sharing no pointers with the original.
func copyNews(item domain.News) domain.News {
	out := item
	if item.Reminder != nil {
		reminder := *item.Reminder
		out.Reminder = &reminder
	}
	return out
}
