package usecase

import (
	"errors"
	"fmt"
	"motorcar_consultancy/internal/domain/checkout"
	"sort"
)

var ErrUnknownLineItem = errors.New("unknown line item")

type QuoteInput struct {
	Service    string
	Quantities map[string]int
}

// Quote is the checkout summary for a service and a set of quantities.
type Quote struct {
	Service string
	Items   []checkout.LineItem
	Totals  checkout.Totals
}

// IQuoteUseCase exposes the order composer to HTTP clients.

type IQuoteUseCase interface {
	Catalog() []checkout.CatalogEntry
	Quote(in QuoteInput) (Quote, error)
}

type QuoteUseCase struct{}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase() *QuoteUseCase {
	return &QuoteUseCase{}
}

func (u *QuoteUseCase) Catalog() []checkout.CatalogEntry {
	return checkout.Catalog()
}

// Quote composes the selected service and moves every requested item to its
// requested quantity through the composer, so the quantity floor applies.
func (u *QuoteUseCase) Quote(in QuoteInput) (Quote, error) {
	c := checkout.NewComposer()
	items := c.SelectService(in.Service)

	current := make(map[string]int, len(items))
	for _, it := range items {
		current[it.ItemKey] = it.Quantity
	}

	keys := make([]string, 0, len(in.Quantities))
	for k := range in.Quantities {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		qty, ok := current[key]
		if !ok {
			return Quote{}, fmt.Errorf("%w: %s", ErrUnknownLineItem, key)
		}
		if _, err := c.ChangeQuantity(key, in.Quantities[key]-qty); err != nil {
			return Quote{}, fmt.Errorf("%w: %s", ErrUnknownLineItem, key)
		}
	}

	return Quote{
		Service: c.Service(),
		Items:   c.Items(),
		Totals:  c.RecomputeTotals(),
	}, nil
}
