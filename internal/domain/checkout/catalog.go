package checkout

import "github.com/shopspring/decimal"

// DefaultServiceKey is used whenever a selection names a service that is not
// in the catalog.
const DefaultServiceKey = "auto-expert"

// fallbackUnitPrice prices an item key that no table knows about.
var fallbackUnitPrice = decimal.NewFromInt(200)

// CatalogEntry is a consultancy service offered on the selection page.
type CatalogEntry struct {
	Key         string          `json:"key"`
	DisplayName string          `json:"displayName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// bundleItem is one row of a fixed marketing package.
type bundleItem struct {
	ItemKey         string
	DisplayName     string
	DefaultQuantity int
	UnitPrice       decimal.Decimal
}

var catalog = []CatalogEntry{
	{Key: "whatsapp", DisplayName: "WhatsApp Consultation", UnitPrice: decimal.NewFromInt(100)},
	{Key: "auto-expert", DisplayName: "Call with an Auto-Expert", UnitPrice: decimal.NewFromInt(200)},
	{Key: "2-calls", DisplayName: "2 Phone Calls", UnitPrice: decimal.NewFromInt(300)},
	{Key: "4-calls", DisplayName: "4 Phone Calls with Auto Expert", UnitPrice: decimal.NewFromInt(400)},
	{Key: "express", DisplayName: "Express Call", UnitPrice: decimal.NewFromInt(500)},
	{Key: "senior", DisplayName: "Senior Consultant", UnitPrice: decimal.NewFromInt(600)},
}

// bundles lists, per bundle key, the exact line items the checkout shows.
// Prices here are package prices and intentionally differ from the catalog.
var bundles = map[string][]bundleItem{
	"auto-expert": {
		{ItemKey: "4calls", DisplayName: "4 Phone Calls with Auto Expert", DefaultQuantity: 1, UnitPrice: decimal.NewFromInt(1299)},
		{ItemKey: "whatsapp-multi", DisplayName: "WhatsApp Consultation", DefaultQuantity: 2, UnitPrice: decimal.NewFromInt(499)},
		{ItemKey: "autoexpert-multi", DisplayName: "Call with an Auto-Expert", DefaultQuantity: 2, UnitPrice: decimal.NewFromInt(699)},
	},
	"2-calls": {
		{ItemKey: "4calls-bundle", DisplayName: "4 Phone Calls with Auto Expert", DefaultQuantity: 1, UnitPrice: decimal.NewFromInt(1299)},
		{ItemKey: "whatsapp-bundle", DisplayName: "WhatsApp Consultation", DefaultQuantity: 2, UnitPrice: decimal.NewFromInt(499)},
		{ItemKey: "autoexpert-bundle", DisplayName: "Call with an Auto-Expert", DefaultQuantity: 2, UnitPrice: decimal.NewFromInt(699)},
		{ItemKey: "2calls-bundle", DisplayName: "2 Phone Calls", DefaultQuantity: 1, UnitPrice: decimal.NewFromInt(999)},
	},
	"4-calls": {
		{ItemKey: "4calls-premium", DisplayName: "4 Phone Calls with Auto Expert", DefaultQuantity: 2, UnitPrice: decimal.NewFromInt(1299)},
		{ItemKey: "whatsapp-premium", DisplayName: "WhatsApp Consultation", DefaultQuantity: 2, UnitPrice: decimal.NewFromInt(499)},
		{ItemKey: "autoexpert-premium", DisplayName: "Call with an Auto-Expert", DefaultQuantity: 2, UnitPrice: decimal.NewFromInt(699)},
		{ItemKey: "2calls-premium", DisplayName: "2 Phone Calls", DefaultQuantity: 1, UnitPrice: decimal.NewFromInt(999)},
	},
	"senior": {
		{ItemKey: "senior", DisplayName: "Senior Consultant", DefaultQuantity: 1, UnitPrice: decimal.NewFromInt(600)},
		{ItemKey: "whatsapp-single", DisplayName: "WhatsApp Consultation", DefaultQuantity: 1, UnitPrice: decimal.NewFromInt(100)},
	},
}

// itemPrices indexes every priced item key: bundle rows first, then the
// catalog keys used by single-item selections.
var itemPrices = buildItemPrices()

func buildItemPrices() map[string]decimal.Decimal {
	prices := make(map[string]decimal.Decimal)
	for _, items := range bundles {
		for _, it := range items {
			prices[it.ItemKey] = it.UnitPrice
		}
	}
	for _, e := range catalog {
		if _, ok := prices[e.Key]; !ok {
			prices[e.Key] = e.UnitPrice
		}
	}
	return prices
}

// Catalog returns a copy of the service catalog in display order.
func Catalog() []CatalogEntry {
	out := make([]CatalogEntry, len(catalog))
	copy(out, catalog)
	return out
}

// LookupService finds a catalog entry by key.
func LookupService(key string) (CatalogEntry, bool) {
	for _, e := range catalog {
		if e.Key == key {
			return e, true
		}
	}
	return CatalogEntry{}, false
}

// IsBundle reports whether key expands into a multi-item package.
func IsBundle(key string) bool {
	_, ok := bundles[key]
	return ok
}

func unitPriceFor(itemKey string) decimal.Decimal {
	if p, ok := itemPrices[itemKey]; ok {
		return p
	}
	return fallbackUnitPrice
}
