package repository

import (
	"context"

	"motorcar_consultancy/internal/domain/entities"
	"motorcar_consultancy/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type contactMessageItem struct {
	ID        string  `dynamodbav:"id"`
	Name      string  `dynamodbav:"name"`
	Email     string  `dynamodbav:"email"`
	Phone     *string `dynamodbav:"phone,omitempty"`
	Subject   string  `dynamodbav:"subject"`
	Message   string  `dynamodbav:"message"`
	Status    string  `dynamodbav:"status"`
	CreatedAt string  `dynamodbav:"created_at"`
}

// ContactMessageDynamoRepository persists contact form submissions in DynamoDB.

type ContactMessageDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IContactMessageRepository = (*ContactMessageDynamoRepository)(nil)

func NewContactMessageDynamoRepository(ddb DynamoAPI, tableName string) *ContactMessageDynamoRepository {
	return &ContactMessageDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ContactMessageDynamoRepository) Create(ctx context.Context, m entities.ContactMessage) (entities.ContactMessage, error) {
	m.ID = uuid.NewString()
	it := contactMessageItem{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Subject:   m.Subject,
		Message:   m.Message,
		Status:    string(m.Status),
		CreatedAt: formatTime(m.CreatedAt),
	}
	if err := putNew(ctx, r.ddb, r.tableName, it); err != nil {
		return entities.ContactMessage{}, err
	}
	return m, nil
}

func (r *ContactMessageDynamoRepository) GetByID(ctx context.Context, id string) (entities.ContactMessage, error) {
	var it contactMessageItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.ContactMessage{}, err
	}
	return fromContactMessageItem(it), nil
}

func (r *ContactMessageDynamoRepository) List(ctx context.Context) ([]entities.ContactMessage, error) {
	items, err := scanAll[contactMessageItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.ContactMessage, 0, len(items))
	for _, it := range items {
		out = append(out, fromContactMessageItem(it))
	}
	return out, nil
}

func fromContactMessageItem(it contactMessageItem) entities.ContactMessage {
	return entities.ContactMessage{
		ID:        it.ID,
		Name:      it.Name,
		Email:     it.Email,
		Phone:     it.Phone,
		Subject:   it.Subject,
		Message:   it.Message,
		Status:    entities.ContactStatus(it.Status),
		CreatedAt: parseTime(it.CreatedAt),
	}
}
