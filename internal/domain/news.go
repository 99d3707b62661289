package domain

import "time"

// Reminder optionally schedules a follow-up for a news item.
type Reminder struct {
	ID       string    `json:"reminderId"`
	Schedule time.Time `json:"schedule"`
}

// News is a single news item owned by a user.
type News struct {
	ID          int       `json:"newsId"`
	Author      string    `json:"author"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"urlToImage"`
	Description string    `json:"description"`
	Reminder    *Reminder `json:"reminder,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// UserNews is the aggregate persisted per user: one document embedding
// the user's news items in insertion order. News ids are unique within
// one aggregate only.
type UserNews struct {
	UserID   string `json:"userId"`
	NewsList []News `json:"newslist"`
}

// FindNews returns the index of the news item with the given id, or -1.
func (u *UserNews) FindNews(newsID int) int {
	for i, n := range u.NewsList {
		if n.ID == newsID {
			return i
		}
	}
	return -1
}
