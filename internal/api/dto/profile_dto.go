package dto

// ProfileRequest payload for creating or updating a user profile.
type ProfileRequest struct {
	UserID    string `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Contact   string `json:"contact"`
	Email     string `json:"email"`
}
