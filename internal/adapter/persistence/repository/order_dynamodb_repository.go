package repository

import (
	"context"

	"motorcar_consultancy/internal/domain/entities"
	"motorcar_consultancy/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type customerInfoItem struct {
	FullName string  `dynamodbav:"full_name"`
	Email    string  `dynamodbav:"email"`
	Whatsapp string  `dynamodbav:"whatsapp"`
	Pincode  *string `dynamodbav:"pincode,omitempty"`
}

type carDetailsItem struct {
	Budget   string `dynamodbav:"budget,omitempty"`
	CarType  string `dynamodbav:"car_type,omitempty"`
	FuelType string `dynamodbav:"fuel_type,omitempty"`
}

type orderItem struct {
	ID             string           `dynamodbav:"id"`
	CustomerInfo   customerInfoItem `dynamodbav:"customer_info"`
	Service        string           `dynamodbav:"service"`
	TotalAmount    string           `dynamodbav:"total_amount"`
	CarDetails     *carDetailsItem  `dynamodbav:"car_details,omitempty"`
	AdditionalInfo *string          `dynamodbav:"additional_info,omitempty"`
	Status         string           `dynamodbav:"status"`
	CreatedAt      string           `dynamodbav:"created_at"`
	UpdatedAt      string           `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists consultation requests in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The total amount is stored as its decimal string so it reads back exactly.

type OrderDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoAPI, tableName string) *OrderDynamoRepository {
	return &OrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	o.ID = uuid.NewString()
	if err := putNew(ctx, r.ddb, r.tableName, toOrderItem(o)); err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	var it orderItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	items, err := scanAll[orderItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Order, 0, len(items))
	for _, it := range items {
		out = append(out, fromOrderItem(it))
	}
	return out, nil
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID: o.ID,
		CustomerInfo: customerInfoItem{
			FullName: o.CustomerInfo.FullName,
			Email:    o.CustomerInfo.Email,
			Whatsapp: o.CustomerInfo.Whatsapp,
			Pincode:  o.CustomerInfo.Pincode,
		},
		Service:        o.ServiceDetails.Service,
		TotalAmount:    o.ServiceDetails.TotalAmount.String(),
		AdditionalInfo: o.AdditionalInfo,
		Status:         string(o.Status),
		CreatedAt:      formatTime(o.CreatedAt),
		UpdatedAt:      formatTime(o.UpdatedAt),
	}
	if o.CarDetails != nil {
		it.CarDetails = &carDetailsItem{
			Budget:   o.CarDetails.Budget,
			CarType:  o.CarDetails.CarType,
			FuelType: o.CarDetails.FuelType,
		}
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	amount, _ := decimal.NewFromString(it.TotalAmount)
	o := entities.Order{
		ID: it.ID,
		CustomerInfo: entities.CustomerInfo{
			FullName: it.CustomerInfo.FullName,
			Email:    it.CustomerInfo.Email,
			Whatsapp: it.CustomerInfo.Whatsapp,
			Pincode:  it.CustomerInfo.Pincode,
		},
		ServiceDetails: entities.ServiceDetails{
			Service:     it.Service,
			TotalAmount: amount,
		},
		AdditionalInfo: it.AdditionalInfo,
		Status:         entities.OrderStatus(it.Status),
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
	if it.CarDetails != nil {
		o.CarDetails = &entities.CarDetails{
			Budget:   it.CarDetails.Budget,
			CarType:  it.CarDetails.CarType,
			FuelType: it.CarDetails.FuelType,
		}
	}
	return o
}
