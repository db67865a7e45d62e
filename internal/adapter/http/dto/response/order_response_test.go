package response

import (
	"encoding/json"
	"testing"
	"time"

	"motorcar_consultancy/internal/domain/checkout"
	"motorcar_consultancy/internal/domain/entities"
	"motorcar_consultancy/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromOrder(t *testing.T) {
	now := time.Now().UTC()
	o := entities.Order{
		ID:             "ord-1",
		CustomerInfo:   entities.CustomerInfo{FullName: "Asha", Email: "a@x.com", Whatsapp: "99"},
		ServiceDetails: entities.ServiceDetails{Service: "express", TotalAmount: decimal.RequireFromString("500.50")},
		Status:         entities.OrderStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	res := FromOrder(o)
	if res.ID != "ord-1" || res.ServiceDetails.TotalAmount != 500.5 || res.Status != "pending" {
		t.Fatalf("unexpected mapping: %+v", res)
	}

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(raw, &body)
	if body["carDetails"] != nil || body["additionalInfo"] != nil {
		t.Fatalf("expected explicit nulls: %s", raw)
	}
	customer := body["customerInfo"].(map[string]any)
	if _, ok := customer["pincode"]; !ok {
		t.Fatalf("expected pincode key: %s", raw)
	}
}

func TestNewListNeverNull(t *testing.T) {
	res := NewList[OrderResponse](nil)
	raw, _ := json.Marshal(res)
	if string(raw) != `{"success":true,"count":0,"data":[]}` {
		t.Fatalf("unexpected body: %s", raw)
	}
}

func TestFromQuote(t *testing.T) {
	c := checkout.NewComposer()
	c.SelectService("2-calls")
	res := FromQuote(usecase.Quote{Service: c.Service(), Items: c.Items(), Totals: c.RecomputeTotals()})
	if len(res.Items) != 4 || res.Items[1].LineTotal != 998 {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	if res.Total != 4694 || res.Subtotal != res.Total {
		t.Fatalf("unexpected totals: %v/%v", res.Subtotal, res.Total)
	}
}
