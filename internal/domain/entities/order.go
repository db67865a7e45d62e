package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle of a consultation request.
//
// Only "pending" is ever written by this service; the other values are set
// by whoever follows up on the request.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// CustomerInfo identifies who booked the consultation.
type CustomerInfo struct {
	FullName string  `json:"fullName"`
	Email    string  `json:"email"`
	Whatsapp string  `json:"whatsapp"`
	Pincode  *string `json:"pincode"`
}

// ServiceDetails is the selected service and the amount shown at checkout.
type ServiceDetails struct {
	Service     string          `json:"service"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// CarDetails is the optional car the customer needs advice on.
type CarDetails struct {
	Budget   string `json:"budget,omitempty"`
	CarType  string `json:"carType,omitempty"`
	FuelType string `json:"fuelType,omitempty"`
}

// Order is a consultation request (checkout submission).
//
// Storage model:
//   - collection/table: consultation_requests
//   - id assigned by the store at insert time
//
// Orders are immutable once stored.
type Order struct {
	ID             string         `json:"_id"`
	CustomerInfo   CustomerInfo   `json:"customerInfo"`
	ServiceDetails ServiceDetails `json:"serviceDetails"`
	CarDetails     *CarDetails    `json:"carDetails"`
	AdditionalInfo *string        `json:"additionalInfo"`
	Status         OrderStatus    `json:"status"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}
