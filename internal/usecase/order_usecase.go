package usecase

import (
	"context"
	"log"
	"motorcar_consultancy/internal/domain/entities"
	"motorcar_consultancy/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SubmitOrderInput is the checkout form as received from the client.
type SubmitOrderInput struct {
	FullName       string
	Email          string
	Whatsapp       string
	Pincode        string
	Service        string
	TotalAmount    decimal.Decimal
	CarDetails     *entities.CarDetails
	AdditionalInfo string
}

// IOrderUseCase exposes consultation request (checkout) operations.

type IOrderUseCase interface {
	Submit(ctx context.Context, in SubmitOrderInput) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
}

type OrderUseCase struct {
	repo interfaces.IOrderRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

func (u *OrderUseCase) Submit(ctx context.Context, in SubmitOrderInput) (entities.Order, error) {
	if err := requireFields(
		[2]string{"fullName", in.FullName},
		[2]string{"email", in.Email},
		[2]string{"whatsapp", in.Whatsapp},
		[2]string{"service", in.Service},
	); err != nil {
		log.Printf("[order][usecase] rejected submission err=%v", err)
		return entities.Order{}, err
	}

	now := time.Now().UTC()
	o := entities.Order{
		CustomerInfo: entities.CustomerInfo{
			FullName: strings.TrimSpace(in.FullName),
			Email:    strings.TrimSpace(in.Email),
			Whatsapp: strings.TrimSpace(in.Whatsapp),
			Pincode:  optionalString(in.Pincode),
		},
		ServiceDetails: entities.ServiceDetails{
			Service:     strings.TrimSpace(in.Service),
			TotalAmount: in.TotalAmount,
		},
		CarDetails:     in.CarDetails,
		AdditionalInfo: optionalString(in.AdditionalInfo),
		Status:         entities.OrderStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		log.Printf("[order][usecase] create failed service=%s err=%v", o.ServiceDetails.Service, err)
		return entities.Order{}, storageErr("create order", err)
	}
	log.Printf("[order][usecase] created order_id=%s service=%s total=%s", created.ID, created.ServiceDetails.Service, created.ServiceDetails.TotalAmount)
	return created, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, storageErr("get order", err)
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) List(ctx context.Context) ([]entities.Order, error) {
	orders, err := u.repo.List(ctx)
	if err != nil {
		return nil, storageErr("list orders", err)
	}
	sortNewestFirst(orders, func(o entities.Order) time.Time { return o.CreatedAt })
	return orders, nil
}
