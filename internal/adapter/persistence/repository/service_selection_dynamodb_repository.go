package repository

import (
	"context"

	"motorcar_consultancy/internal/domain/entities"
	"motorcar_consultancy/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type serviceSelectionItem struct {
	ID         string `dynamodbav:"id"`
	Service    string `dynamodbav:"service"`
	SelectedAt string `dynamodbav:"selected_at"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// ServiceSelectionDynamoRepository persists service selection events in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ServiceSelectionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IServiceSelectionRepository = (*ServiceSelectionDynamoRepository)(nil)

func NewServiceSelectionDynamoRepository(ddb DynamoAPI, tableName string) *ServiceSelectionDynamoRepository {
	return &ServiceSelectionDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ServiceSelectionDynamoRepository) Create(ctx context.Context, s entities.ServiceSelection) (entities.ServiceSelection, error) {
	s.ID = uuid.NewString()
	it := serviceSelectionItem{
		ID:         s.ID,
		Service:    s.Service,
		SelectedAt: formatTime(s.SelectedAt),
		CreatedAt:  formatTime(s.CreatedAt),
	}
	if err := putNew(ctx, r.ddb, r.tableName, it); err != nil {
		return entities.ServiceSelection{}, err
	}
	return s, nil
}

func (r *ServiceSelectionDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceSelection, error) {
	var it serviceSelectionItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.ServiceSelection{}, err
	}
	return fromServiceSelectionItem(it), nil
}

func (r *ServiceSelectionDynamoRepository) List(ctx context.Context) ([]entities.ServiceSelection, error) {
	items, err := scanAll[serviceSelectionItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.ServiceSelection, 0, len(items))
	for _, it := range items {
		out = append(out, fromServiceSelectionItem(it))
	}
	return out, nil
}

func fromServiceSelectionItem(it serviceSelectionItem) entities.ServiceSelection {
	return entities.ServiceSelection{
		ID:         it.ID,
		Service:    it.Service,
		SelectedAt: parseTime(it.SelectedAt),
		CreatedAt:  parseTime(it.CreatedAt),
	}
}
