package response

import "motorcar_consultancy/internal/domain/entities"

type ServiceSelectionResponse struct {
	Success bool                      `json:"success"`
	Message string                    `json:"message"`
	ID      string                    `json:"id"`
	Data    entities.ServiceSelection `json:"data"`
}

type ContactResponse struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	ID      string                  `json:"id"`
	Data    entities.ContactMessage `json:"data"`
}

// ListResponse wraps every admin listing.
type ListResponse[T any] struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    []T  `json:"data"`
}

// ItemResponse wraps every get-by-id result.
type ItemResponse[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

func NewList[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Success: true, Count: len(items), Data: items}
}
