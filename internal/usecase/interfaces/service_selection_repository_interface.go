package interfaces

import (
	"context"
	"motorcar_consultancy/internal/domain/entities"
)

// IServiceSelectionRepository abstracts persistence of service selection events.

type IServiceSelectionRepository interface {
	Create(ctx context.Context, s entities.ServiceSelection) (entities.ServiceSelection, error)
	GetByID(ctx context.Context, id string) (entities.ServiceSelection, error)
	List(ctx context.Context) ([]entities.ServiceSelection, error)
}
