// Package bindings implements the named input/output value exchange the
// frontend speaks over the WebSocket channel: the frontend writes input
// bindings (filters, date range, demo mode), the server pushes output
// bindings (KPI strings, column-major chart and table data, API status).
package bindings

import "encoding/json"

// Message types on the wire.
const (
	TypeInput  = "input"  // client -> server
	TypeUpdate = "update" // server -> client
	TypeToast  = "toast"  // server -> client
)

// Toast levels.
const (
	ToastInfo  = "info"
	ToastError = "error"
)

// ClientMessage is a frame sent by the frontend.
type ClientMessage struct {
	Type  string          `json:"type"`
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

// Update pushes one named output value to the frontend.
type Update struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// Toast pushes a notification to the frontend toast layer.
type Toast struct {
	Type    string `json:"type"`
	Level   string `json:"level"`
	Message string `json:"message"`
}

// NewUpdate builds an update frame.
func NewUpdate(name string, value any) Update {
	return Update{Type: TypeUpdate, Name: name, Value: value}
}

// NewToast builds a toast frame.
func NewToast(level, message string) Toast {
	return Toast{Type: TypeToast, Level: level, Message: message}
}
