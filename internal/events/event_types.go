package events

import (
	"time"

	"github.com/spec-kit/news-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventNewsAdded     EventType = "news_added"
	EventNewsDeleted   EventType = "news_deleted"
	EventSourceCreated EventType = "source_created"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// NewsAddedPayload payload.
type NewsAddedPayload struct {
	NewsID   int              `json:"news_id"`
	Title    string           `json:"title"`
	Reminder *domain.Reminder `json:"reminder,omitempty"`
}

// NewsDeletedPayload payload.
type NewsDeletedPayload struct {
	NewsID int `json:"news_id"`
}

// SourceCreatedPayload payload.
type SourceCreatedPayload struct {
	SourceID int    `json:"source_id"`
	Name     string `json:"name"`
}
