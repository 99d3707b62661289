package domain

import "time"

// NewsSource is a flat entity keyed by its own id. CreatedBy is a
// non-unique attribute used for creator-scoped listings.
type NewsSource struct {
	ID          int       `json:"newsSourceId"`
	Name        string    `json:"newsSourceName"`
	Description string    `json:"newsSourceDesc"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"creationDate"`
}
