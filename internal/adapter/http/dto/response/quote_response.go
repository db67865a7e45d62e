package response

import (
	"motorcar_consultancy/internal/domain/checkout"
	"motorcar_consultancy/internal/usecase"
	"time"
)

type CatalogEntryResponse struct {
	Key         string  `json:"key"`
	DisplayName string  `json:"displayName"`
	UnitPrice   float64 `json:"unitPrice"`
}

type LineItemResponse struct {
	ItemKey     string  `json:"itemKey"`
	DisplayName string  `json:"displayName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	LineTotal   float64 `json:"lineTotal"`
}

type QuoteResponse struct {
	Success  bool               `json:"success"`
	Service  string             `json:"service"`
	Items    []LineItemResponse `json:"items"`
	Subtotal float64            `json:"subtotal"`
	Total    float64            `json:"total"`
}

type HealthResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Storage   string    `json:"storage"`
	Driver    string    `json:"driver,omitempty"`
}

func FromCatalog(entries []checkout.CatalogEntry) []CatalogEntryResponse {
	out := make([]CatalogEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, CatalogEntryResponse{
			Key:         e.Key,
			DisplayName: e.DisplayName,
			UnitPrice:   e.UnitPrice.InexactFloat64(),
		})
	}
	return out
}

func FromQuote(q usecase.Quote) QuoteResponse {
	items := make([]LineItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, LineItemResponse{
			ItemKey:     it.ItemKey,
			DisplayName: it.DisplayName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice.InexactFloat64(),
			LineTotal:   it.LineTotal().InexactFloat64(),
		})
	}
	return QuoteResponse{
		Success:  true,
		Service:  q.Service,
		Items:    items,
		Subtotal: q.Totals.Subtotal.InexactFloat64(),
		Total:    q.Totals.Total.InexactFloat64(),
	}
}
