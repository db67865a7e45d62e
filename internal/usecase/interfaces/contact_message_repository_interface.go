package interfaces

import (
	"context"
	"motorcar_consultancy/internal/domain/entities"
)

// IContactMessageRepository abstracts persistence of contact form submissions.

type IContactMessageRepository interface {
	Create(ctx context.Context, msg entities.ContactMessage) (entities.ContactMessage, error)
	GetByID(ctx context.Context, id string) (entities.ContactMessage, error)
	List(ctx context.Context) ([]entities.ContactMessage, error)
}
