package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/news-service/internal/events"
)

// ReminderService reacts to domain events and surfaces upcoming
// reminder schedules. Delivery is log-based for now.
type ReminderService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewReminderService creates the service.
func NewReminderService(dispatcher events.Dispatcher, logger *zap.Logger) *ReminderService {
	return &ReminderService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (r *ReminderService) RegisterHandlers() {
	if r.dispatcher == nil {
		return
	}
	r.dispatcher.Subscribe(events.EventNewsAdded, r.handleNewsAdded)
	r.dispatcher.Subscribe(events.EventNewsDeleted, r.handleNewsDeleted)
	r.dispatcher.Subscribe(events.EventSourceCreated, r.handleSourceCreated)
}

func (r *ReminderService) handleNewsAdded(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.NewsAddedPayload)
	if !ok {
		return nil
	}
	if payload.Reminder == nil {
		r.logger.Debug("NewsAdded without reminder",
			zap.String("user_id", event.UserID),
			zap.Int("news_id", payload.NewsID))
		return nil
	}
	r.logger.Info("reminder scheduled",
		zap.String("user_id", event.UserID),
		zap.Int("news_id", payload.NewsID),
		zap.String("reminder_id", payload.Reminder.ID),
		zap.Time("schedule", payload.Reminder.Schedule))
	return nil
}

func (r *ReminderService) handleNewsDeleted(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.NewsDeletedPayload)
	if !ok {
		return nil
	}
	r.logger.Info("NewsDeleted",
		zap.String("user_id", event.UserID),
		zap.Int("news_id", payload.NewsID))
	return nil
}

func (r *ReminderService) handleSourceCreated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.SourceCreatedPayload)
	if !ok {
		return nil
	}
	r.logger.Info("SourceCreated",
		zap.String("user_id", event.UserID),
		zap.Int("source_id", payload.SourceID),
		zap.String("name", payload.Name))
	return nil
}
