package repository

import (
	"context"
	"time"

	"motorcar_consultancy/internal/domain/entities"
	"motorcar_consultancy/internal/usecase/interfaces"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type contactMessageDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Phone     *string            `bson:"phone"`
	Subject   string             `bson:"subject"`
	Message   string             `bson:"message"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"createdAt"`
}

type ContactMessageMongoRepository struct {
	coll *mongo.Collection
}

var _ interfaces.IContactMessageRepository = (*ContactMessageMongoRepository)(nil)

func NewContactMessageMongoRepository(db *mongo.Database, collection string) *ContactMessageMongoRepository {
	return &ContactMessageMongoRepository{coll: db.Collection(collection)}
}

func (r *ContactMessageMongoRepository) Create(ctx context.Context, m entities.ContactMessage) (entities.ContactMessage, error) {
	id, err := insertDoc(ctx, r.coll, contactMessageDoc{
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Subject:   m.Subject,
		Message:   m.Message,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt.UTC(),
	})
	if err != nil {
		return entities.ContactMessage{}, err
	}
	m.ID = id
	return m, nil
}

func (r *ContactMessageMongoRepository) GetByID(ctx context.Context, id string) (entities.ContactMessage, error) {
	var doc contactMessageDoc
	found, err := findDocByID(ctx, r.coll, id, &doc)
	if err != nil || !found {
		return entities.ContactMessage{}, err
	}
	return fromContactMessageDoc(doc), nil
}

func (r *ContactMessageMongoRepository) List(ctx context.Context) ([]entities.ContactMessage, error) {
	docs, err := findAllNewestFirst[contactMessageDoc](ctx, r.coll)
	if err != nil {
		return nil, err
	}
	out := make([]entities.ContactMessage, 0, len(docs))
	for _, d := range docs {
		out = append(out, fromContactMessageDoc(d))
	}
	return out, nil
}

func fromContactMessageDoc(doc contactMessageDoc) entities.ContactMessage {
	return entities.ContactMessage{
		ID:        doc.ID.Hex(),
		Name:      doc.Name,
		Email:     doc.Email,
		Phone:     doc.Phone,
		Subject:   doc.Subject,
		Message:   doc.Message,
		Status:    entities.ContactStatus(doc.Status),
		CreatedAt: doc.CreatedAt,
	}
}
