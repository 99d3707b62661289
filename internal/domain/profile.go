package domain

import "time"

// UserProfile carries the public details of a registered user.
type UserProfile struct {
	UserID    string    `json:"userId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Contact   string    `json:"contact"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
