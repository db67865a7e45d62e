package checkout

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrLineItemNotFound = errors.New("line item not found")

// LineItem is one row of the checkout summary.
type LineItem struct {
	ItemKey     string          `json:"itemKey"`
	DisplayName string          `json:"displayName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// LineTotal is quantity times unit price.
func (l LineItem) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Totals are the checkout summary figures. There is no tax or discount
// stage, so Subtotal and Total are always equal.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Total    decimal.Decimal `json:"total"`
}

// Composer derives the line items and totals of a checkout from a selected
// service and the quantity adjustments made afterwards.
//
// A Composer belongs to a single checkout session and is not safe for
// concurrent use.
type Composer struct {
	service string
	items   []LineItem
}

func NewComposer() *Composer {
	return &Composer{}
}

// SelectService replaces the current line items with the fixed composition
// for key. Unknown keys are treated as DefaultServiceKey.
func (c *Composer) SelectService(key string) []LineItem {
	entry, ok := LookupService(key)
	if !ok {
		key = DefaultServiceKey
		entry, _ = LookupService(key)
	}

	c.service = key
	if rows, ok := bundles[key]; ok {
		c.items = make([]LineItem, 0, len(rows))
		for _, r := range rows {
			c.items = append(c.items, LineItem{
				ItemKey:     r.ItemKey,
				DisplayName: r.DisplayName,
				Quantity:    r.DefaultQuantity,
				UnitPrice:   r.UnitPrice,
			})
		}
	} else {
		c.items = []LineItem{{
			ItemKey:     entry.Key,
			DisplayName: entry.DisplayName,
			Quantity:    1,
			UnitPrice:   entry.UnitPrice,
		}}
	}
	return c.Items()
}

// ChangeQuantity adds delta to the quantity of the displayed item and
// returns the new quantity. The quantity never drops below 1.
func (c *Composer) ChangeQuantity(itemKey string, delta int) (int, error) {
	for i := range c.items {
		if c.items[i].ItemKey != itemKey {
			continue
		}
		qty := c.items[i].Quantity + delta
		if qty < 1 {
			qty = 1
		}
		c.items[i].Quantity = qty
		c.items[i].UnitPrice = unitPriceFor(itemKey)
		return qty, nil
	}
	return 0, ErrLineItemNotFound
}

// RecomputeTotals sums the line totals of every displayed item.
func (c *Composer) RecomputeTotals() Totals {
	sum := decimal.Zero
	for _, it := range c.items {
		sum = sum.Add(it.LineTotal())
	}
	sum = sum.Round(2)
	return Totals{Subtotal: sum, Total: sum}
}

// Service returns the effective service key of the last selection.
func (c *Composer) Service() string {
	return c.service
}

func (c *Composer) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}
