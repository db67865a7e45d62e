package request

import "motorcar_consultancy/internal/usecase"

// QuoteRequest asks for the checkout summary of a service, with optional
// target quantities keyed by line item.
type QuoteRequest struct {
	Service    string         `json:"service" example:"auto-expert"`
	Quantities map[string]int `json:"quantities"`
}

func (r QuoteRequest) ToInput() usecase.QuoteInput {
	return usecase.QuoteInput{Service: r.Service, Quantities: r.Quantities}
}
