package interfaces

import (
	"context"
	"motorcar_consultancy/internal/domain/entities"
)

// IOrderRepository abstracts persistence of consultation requests.
//
// Create assigns the identifier. GetByID returns a zero Order (empty ID) and
// no error when nothing matches.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
}
