package dto

import "time"

// ReminderPayload is the optional reminder attached to a news item.
type ReminderPayload struct {
	ID       string     `json:"reminderId,omitempty"`
	Schedule *time.Time `json:"schedule,omitempty"`
}

// NewsRequest payload for creating or updating a news item.
type NewsRequest struct {
	ID          int              `json:"newsId"`
	Author      string           `json:"author"`
	Title       string           `json:"title"`
	Content     string           `json:"content"`
	URL         string           `json:"url"`
	ImageURL    string           `json:"urlToImage"`
	Description string           `json:"description"`
	Reminder    *ReminderPayload `json:"reminder,omitempty"`
}
