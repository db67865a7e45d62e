package entities

import "time"

// ServiceSelection records that a visitor picked a service on the selection
// page. It is an append-only log entry.
type ServiceSelection struct {
	ID         string    `json:"_id"`
	Service    string    `json:"service"`
	SelectedAt time.Time `json:"selectedAt"`
	CreatedAt  time.Time `json:"createdAt"`
}
