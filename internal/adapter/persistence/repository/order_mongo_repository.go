package repository

import (
	"context"
	"time"

	"motorcar_consultancy/internal/domain/entities"
	"motorcar_consultancy/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type customerInfoDoc struct {
	FullName string  `bson:"fullName"`
	Email    string  `bson:"email"`
	Whatsapp string  `bson:"whatsapp"`
	Pincode  *string `bson:"pincode"`
}

type serviceDetailsDoc struct {
	Service     string               `bson:"service"`
	TotalAmount primitive.Decimal128 `bson:"totalAmount"`
}

type carDetailsDoc struct {
	Budget   string `bson:"budget,omitempty"`
	CarType  string `bson:"carType,omitempty"`
	FuelType string `bson:"fuelType,omitempty"`
}

type orderDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	CustomerInfo   customerInfoDoc    `bson:"customerInfo"`
	ServiceDetails serviceDetailsDoc  `bson:"serviceDetails"`
	CarDetails     *carDetailsDoc     `bson:"carDetails"`
	AdditionalInfo *string            `bson:"additionalInfo"`
	Status         string             `bson:"status"`
	CreatedAt      time.Time          `bson:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"`
}

// OrderMongoRepository persists consultation requests in a MongoDB collection.
// Amounts are stored as Decimal128.

type OrderMongoRepository struct {
	coll *mongo.Collection
}

var _ interfaces.IOrderRepository = (*OrderMongoRepository)(nil)

func NewOrderMongoRepository(db *mongo.Database, collection string) *OrderMongoRepository {
	return &OrderMongoRepository{coll: db.Collection(collection)}
}

func (r *OrderMongoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	doc, err := toOrderDoc(o)
	if err != nil {
		return entities.Order{}, err
	}
	id, err := insertDoc(ctx, r.coll, doc)
	if err != nil {
		return entities.Order{}, err
	}
	o.ID = id
	return o, nil
}

func (r *OrderMongoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	var doc orderDoc
	found, err := findDocByID(ctx, r.coll, id, &doc)
	if err != nil || !found {
		return entities.Order{}, err
	}
	return fromOrderDoc(doc), nil
}

func (r *OrderMongoRepository) List(ctx context.Context) ([]entities.Order, error) {
	docs, err := findAllNewestFirst[orderDoc](ctx, r.coll)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Order, 0, len(docs))
	for _, d := range docs {
		out = append(out, fromOrderDoc(d))
	}
	return out, nil
}

func toOrderDoc(o entities.Order) (orderDoc, error) {
	amount, err := primitive.ParseDecimal128(o.ServiceDetails.TotalAmount.String())
	if err != nil {
		return orderDoc{}, err
	}
	doc := orderDoc{
		CustomerInfo: customerInfoDoc{
			FullName: o.CustomerInfo.FullName,
			Email:    o.CustomerInfo.Email,
			Whatsapp: o.CustomerInfo.Whatsapp,
			Pincode:  o.CustomerInfo.Pincode,
		},
		ServiceDetails: serviceDetailsDoc{
			Service:     o.ServiceDetails.Service,
			TotalAmount: amount,
		},
		AdditionalInfo: o.AdditionalInfo,
		Status:         string(o.Status),
		CreatedAt:      o.CreatedAt.UTC(),
		UpdatedAt:      o.UpdatedAt.UTC(),
	}
	if o.CarDetails != nil {
		doc.CarDetails = &carDetailsDoc{
			Budget:   o.CarDetails.Budget,
			CarType:  o.CarDetails.CarType,
			FuelType: o.CarDetails.FuelType,
		}
	}
	return doc, nil
}

func fromOrderDoc(doc orderDoc) entities.Order {
	amount, _ := decimal.NewFromString(doc.ServiceDetails.TotalAmount.String())
	o := entities.Order{
		ID: doc.ID.Hex(),
		CustomerInfo: entities.CustomerInfo{
			FullName: doc.CustomerInfo.FullName,
			Email:    doc.CustomerInfo.Email,
			Whatsapp: doc.CustomerInfo.Whatsapp,
			Pincode:  doc.CustomerInfo.Pincode,
		},
		ServiceDetails: entities.ServiceDetails{
			Service:     doc.ServiceDetails.Service,
			TotalAmount: amount,
		},
		AdditionalInfo: doc.AdditionalInfo,
		Status:         entities.OrderStatus(doc.Status),
		CreatedAt:      doc.CreatedAt,
		UpdatedAt:      doc.UpdatedAt,
	}
	if doc.CarDetails != nil {
		o.CarDetails = &entities.CarDetails{
			Budget:   doc.CarDetails.Budget,
			CarType:  doc.CarDetails.CarType,
			FuelType: doc.CarDetails.FuelType,
		}
	}
	return o
}
