package client

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync/atomic"

	request "motorcar_consultancy/internal/adapter/http/dto/request"
	response "motorcar_consultancy/internal/adapter/http/dto/response"
	"motorcar_consultancy/internal/domain/checkout"
)

var (
	ErrTermsNotAccepted   = errors.New("terms and conditions must be accepted")
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
)

// CheckoutForm is what the customer fills in on the checkout page.
type CheckoutForm struct {
	FullName       string
	Email          string
	Whatsapp       string
	Pincode        string
	Budget         string
	CarType        string
	FuelType       string
	AdditionalInfo string
	TermsAccepted  bool
}

// CheckoutFlow drives one checkout session: it composes the order locally,
// then submits it at most once at a time. Submissions are never retried.
type CheckoutFlow struct {
	api      IConsultancyAPI
	composer *checkout.Composer
	inFlight atomic.Bool
}

func NewCheckoutFlow(api IConsultancyAPI) *CheckoutFlow {
	f := &CheckoutFlow{api: api, composer: checkout.NewComposer()}
	f.composer.SelectService(checkout.DefaultServiceKey)
	return f
}

// SelectService composes the line items for key and records the selection.
// A failure to record is logged; the composition still applies.
func (f *CheckoutFlow) SelectService(ctx context.Context, key string) []checkout.LineItem {
	items := f.Compose(key)
	if _, err := f.api.SelectService(ctx, f.composer.Service()); err != nil {
		log.Printf("[checkout][client] record selection failed service=%s err=%v", f.composer.Service(), err)
	}
	return items
}

// Compose switches the order to key without telling the API.
func (f *CheckoutFlow) Compose(key string) []checkout.LineItem {
	return f.composer.SelectService(key)
}

func (f *CheckoutFlow) ChangeQuantity(itemKey string, delta int) (int, error) {
	return f.composer.ChangeQuantity(itemKey, delta)
}

func (f *CheckoutFlow) Items() []checkout.LineItem { return f.composer.Items() }

func (f *CheckoutFlow) Totals() checkout.Totals { return f.composer.RecomputeTotals() }

// BuildPayload assembles the order from the form and the current totals.
func (f *CheckoutFlow) BuildPayload(form CheckoutForm) (request.CheckoutRequest, error) {
	if !form.TermsAccepted {
		return request.CheckoutRequest{}, ErrTermsNotAccepted
	}
	return request.CheckoutRequest{
		FullName:    strings.TrimSpace(form.FullName),
		Email:       strings.TrimSpace(form.Email),
		Whatsapp:    strings.TrimSpace(form.Whatsapp),
		Pincode:     strings.TrimSpace(form.Pincode),
		Service:     f.composer.Service(),
		TotalAmount: f.composer.RecomputeTotals().Total,
		CarDetails: &request.CarDetailsRequest{
			Budget:   form.Budget,
			CarType:  form.CarType,
			FuelType: form.FuelType,
		},
		AdditionalInfo: form.AdditionalInfo,
	}, nil
}

// Submit posts the order. Calls made while another submission is pending
// return ErrSubmissionInFlight without contacting the API.
func (f *CheckoutFlow) Submit(ctx context.Context, form CheckoutForm) (response.CheckoutResponse, error) {
	payload, err := f.BuildPayload(form)
	if err != nil {
		return response.CheckoutResponse{}, err
	}
	if !f.inFlight.CompareAndSwap(false, true) {
		return response.CheckoutResponse{}, ErrSubmissionInFlight
	}
	defer f.inFlight.Store(false)

	out, err := f.api.Checkout(ctx, payload)
	if err != nil {
		log.Printf("[checkout][client] submit failed service=%s err=%v", payload.Service, err)
		return response.CheckoutResponse{}, err
	}
	log.Printf("[checkout][client] submitted order_id=%s", out.OrderID)
	return out, nil
}
