package domain

import "time"

// Status values for the dashboard connection indicator.
const (
	StatusConnected = "connected"
	StatusDemo      = "demo"
	StatusError     = "error"
)

// APIStatus tells the frontend whether it is looking at live data, demo
// data, or an error panel.
type APIStatus struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	LastUpdate string `json:"last_update"`
}

// NewAPIStatus builds an APIStatus stamped with the given time.
func NewAPIStatus(status, message string, now time.Time) APIStatus {
	return APIStatus{
		Status:     status,
		Message:    message,
		LastUpdate: now.Format(time.RFC3339),
	}
}
