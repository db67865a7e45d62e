package request

import "time"

// SelectServiceRequest is sent when a visitor picks a service. Timestamp is
// the client clock (RFC 3339) and is optional.
type SelectServiceRequest struct {
	Service   string     `json:"service" example:"auto-expert"`
	Timestamp *time.Time `json:"timestamp"`
}
