package repository

import (
	"context"
	"time"

	"motorcar_consultancy/internal/domain/entities"
	"motorcar_consultancy/internal/usecase/interfaces"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type serviceSelectionDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Service    string             `bson:"service"`
	SelectedAt time.Time          `bson:"selectedAt"`
	CreatedAt  time.Time          `bson:"createdAt"`
}

type ServiceSelectionMongoRepository struct {
	coll *mongo.Collection
}

var _ interfaces.IServiceSelectionRepository = (*ServiceSelectionMongoRepository)(nil)

func NewServiceSelectionMongoRepository(db *mongo.Database, collection string) *ServiceSelectionMongoRepository {
	return &ServiceSelectionMongoRepository{coll: db.Collection(collection)}
}

func (r *ServiceSelectionMongoRepository) Create(ctx context.Context, s entities.ServiceSelection) (entities.ServiceSelection, error) {
	id, err := insertDoc(ctx, r.coll, serviceSelectionDoc{
		Service:    s.Service,
		SelectedAt: s.SelectedAt.UTC(),
		CreatedAt:  s.CreatedAt.UTC(),
	})
	if err != nil {
		return entities.ServiceSelection{}, err
	}
	s.ID = id
	return s, nil
}

func (r *ServiceSelectionMongoRepository) GetByID(ctx context.Context, id string) (entities.ServiceSelection, error) {
	var doc serviceSelectionDoc
	found, err := findDocByID(ctx, r.coll, id, &doc)
	if err != nil || !found {
		return entities.ServiceSelection{}, err
	}
	return fromServiceSelectionDoc(doc), nil
}

func (r *ServiceSelectionMongoRepository) List(ctx context.Context) ([]entities.ServiceSelection, error) {
	docs, err := findAllNewestFirst[serviceSelectionDoc](ctx, r.coll)
	if err != nil {
		return nil, err
	}
	out := make([]entities.ServiceSelection, 0, len(docs))
	for _, d := range docs {
		out = append(out, fromServiceSelectionDoc(d))
	}
	return out, nil
}

func fromServiceSelectionDoc(doc serviceSelectionDoc) entities.ServiceSelection {
	return entities.ServiceSelection{
		ID:         doc.ID.Hex(),
		Service:    doc.Service,
		SelectedAt: doc.SelectedAt,
		CreatedAt:  doc.CreatedAt,
	}
}
