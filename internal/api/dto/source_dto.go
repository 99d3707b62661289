package dto

// SourceRequest payload for creating or updating a news source. The
// creation date is never accepted from the caller.
type SourceRequest struct {
	ID          int    `json:"newsSourceId"`
	Name        string `json:"newsSourceName"`
	Description string `json:"newsSourceDesc"`
	CreatedBy   string `json:"createdBy"`
}
