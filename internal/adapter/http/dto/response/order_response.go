package response

import (
	"motorcar_consultancy/internal/domain/entities"
	"time"
)

type ServiceDetailsResponse struct {
	Service     string  `json:"service"`
	TotalAmount float64 `json:"totalAmount"`
}

type OrderResponse struct {
	ID             string                 `json:"_id"`
	CustomerInfo   entities.CustomerInfo  `json:"customerInfo"`
	ServiceDetails ServiceDetailsResponse `json:"serviceDetails"`
	CarDetails     *entities.CarDetails   `json:"carDetails"`
	AdditionalInfo *string                `json:"additionalInfo"`
	Status         string                 `json:"status"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

type CheckoutResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	OrderID string        `json:"orderId"`
	Data    OrderResponse `json:"data"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:           o.ID,
		CustomerInfo: o.CustomerInfo,
		ServiceDetails: ServiceDetailsResponse{
			Service:     o.ServiceDetails.Service,
			TotalAmount: o.ServiceDetails.TotalAmount.InexactFloat64(),
		},
		CarDetails:     o.CarDetails,
		AdditionalInfo: o.AdditionalInfo,
		Status:         string(o.Status),
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
