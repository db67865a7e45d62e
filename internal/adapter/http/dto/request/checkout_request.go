package request

import (
	"bytes"
	"encoding/json"
	"motorcar_consultancy/internal/domain/entities"
	"motorcar_consultancy/internal/usecase"
	"strings"

	"github.com/shopspring/decimal"
)

type CarDetailsRequest struct {
	Budget   string `json:"budget" example:"10-15 lakh"`
	CarType  string `json:"carType" example:"suv"`
	FuelType string `json:"fuelType" example:"diesel"`
}

// CheckoutRequest is the payload posted by the checkout page.
// Required fields are validated by the use case so the error can name them.
type CheckoutRequest struct {
	FullName       string             `json:"fullName" example:"Asha Rao"`
	Email          string             `json:"email" example:"asha@example.com"`
	Whatsapp       string             `json:"whatsapp" example:"+91 98765 43210"`
	Pincode        string             `json:"pincode" example:"560001"`
	Service        string             `json:"service" example:"auto-expert"`
	TotalAmount    decimal.Decimal    `json:"totalAmount" swaggertype:"number" example:"3695"`
	CarDetails     *CarDetailsRequest `json:"carDetails"`
	AdditionalInfo string             `json:"additionalInfo"`
}

// UnmarshalJSON reads totalAmount leniently: absent, null, false and ""
// all mean zero. Anything else must be a number or a numeric string.
func (r *CheckoutRequest) UnmarshalJSON(data []byte) error {
	type alias CheckoutRequest
	aux := struct {
		*alias
		TotalAmount json.RawMessage `json:"totalAmount"`
	}{alias: (*alias)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	r.TotalAmount = decimal.Zero
	switch string(bytes.TrimSpace(aux.TotalAmount)) {
	case "", "null", "false", `""`:
		return nil
	}
	return r.TotalAmount.UnmarshalJSON(aux.TotalAmount)
}

func (r CheckoutRequest) ToInput() usecase.SubmitOrderInput {
	in := usecase.SubmitOrderInput{
		FullName:       r.FullName,
		Email:          r.Email,
		Whatsapp:       r.Whatsapp,
		Pincode:        r.Pincode,
		Service:        r.Service,
		TotalAmount:    r.TotalAmount,
		AdditionalInfo: r.AdditionalInfo,
	}
	if r.CarDetails != nil {
		in.CarDetails = &entities.CarDetails{
			Budget:   strings.TrimSpace(r.CarDetails.Budget),
			CarType:  strings.TrimSpace(r.CarDetails.CarType),
			FuelType: strings.TrimSpace(r.CarDetails.FuelType),
		}
	}
	return in
}
