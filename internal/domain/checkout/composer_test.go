package checkout

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestComposer_SelectServiceEveryCatalogKey(t *testing.T) {
	for _, entry := range Catalog() {
		t.Run(entry.Key, func(t *testing.T) {
			c := NewComposer()
			items := c.SelectService(entry.Key)
			if len(items) == 0 {
				t.Fatalf("expected line items for %s", entry.Key)
			}
			if c.Service() != entry.Key {
				t.Fatalf("expected service %s, got %s", entry.Key, c.Service())
			}
			for _, it := range items {
				if it.Quantity < 1 {
					t.Fatalf("item %s has quantity %d", it.ItemKey, it.Quantity)
				}
				if !it.UnitPrice.Equal(unitPriceFor(it.ItemKey)) {
					t.Fatalf("item %s priced %s, table says %s", it.ItemKey, it.UnitPrice, unitPriceFor(it.ItemKey))
				}
			}
			if !IsBundle(entry.Key) {
				if len(items) != 1 || !items[0].UnitPrice.Equal(entry.UnitPrice) || items[0].Quantity != 1 {
					t.Fatalf("expected single catalog item, got %+v", items)
				}
			}
		})
	}
}

func TestComposer_BundlesMatchTable(t *testing.T) {
	for key, rows := range bundles {
		c := NewComposer()
		items := c.SelectService(key)
		if len(items) != len(rows) {
			t.Fatalf("%s: expected %d items, got %d", key, len(rows), len(items))
		}
		for i, r := range rows {
			if items[i].ItemKey != r.ItemKey || items[i].Quantity != r.DefaultQuantity || !items[i].UnitPrice.Equal(r.UnitPrice) {
				t.Fatalf("%s: row %d mismatch: %+v vs %+v", key, i, items[i], r)
			}
		}
	}
}

func TestComposer_UnknownServiceFallsBackToDefault(t *testing.T) {
	c := NewComposer()
	items := c.SelectService("does-not-exist")
	if c.Service() != DefaultServiceKey {
		t.Fatalf("expected %s, got %s", DefaultServiceKey, c.Service())
	}
	if len(items) != len(bundles[DefaultServiceKey]) {
		t.Fatalf("expected default bundle, got %+v", items)
	}
}

func TestComposer_AutoExpertScenario(t *testing.T) {
	c := NewComposer()
	items := c.SelectService("auto-expert")
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	want := []struct {
		key string
		qty int
	}{{"4calls", 1}, {"whatsapp-multi", 2}, {"autoexpert-multi", 2}}
	for i, w := range want {
		if items[i].ItemKey != w.key || items[i].Quantity != w.qty {
			t.Fatalf("item %d: expected %s x%d, got %+v", i, w.key, w.qty, items[i])
		}
	}

	before := c.RecomputeTotals()
	if !before.Total.Equal(decimal.NewFromInt(3695)) {
		t.Fatalf("expected 3695, got %s", before.Total)
	}
	lineBefore := c.Items()[0].LineTotal()

	qty, err := c.ChangeQuantity("4calls", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if qty != 2 {
		t.Fatalf("expected quantity 2, got %d", qty)
	}
	lineAfter := c.Items()[0].LineTotal()
	if !lineAfter.Equal(lineBefore.Mul(decimal.NewFromInt(2))) {
		t.Fatalf("expected line total to double, %s -> %s", lineBefore, lineAfter)
	}

	after := c.RecomputeTotals()
	if !after.Total.Equal(decimal.NewFromInt(4994)) {
		t.Fatalf("expected 4994, got %s", after.Total)
	}
	if !after.Subtotal.Equal(after.Total) {
		t.Fatalf("subtotal %s != total %s", after.Subtotal, after.Total)
	}
}

func TestComposer_QuantityFloor(t *testing.T) {
	c := NewComposer()
	c.SelectService("express")
	for i := 0; i < 5; i++ {
		qty, err := c.ChangeQuantity("express", -1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if qty != 1 {
			t.Fatalf("expected floor 1, got %d", qty)
		}
	}
	qty, _ := c.ChangeQuantity("express", -40)
	if qty != 1 {
		t.Fatalf("expected floor 1 on large decrement, got %d", qty)
	}
	qty, _ = c.ChangeQuantity("express", 3)
	if qty != 4 {
		t.Fatalf("expected 4, got %d", qty)
	}
}

func TestComposer_ChangeQuantityUnknownItem(t *testing.T) {
	c := NewComposer()
	c.SelectService("auto-expert")
	before := c.Items()

	if _, err := c.ChangeQuantity("4calls-premium", 1); !errors.Is(err, ErrLineItemNotFound) {
		t.Fatalf("expected ErrLineItemNotFound, got %v", err)
	}
	after := c.Items()
	for i := range before {
		if before[i].Quantity != after[i].Quantity {
			t.Fatalf("items mutated on unknown key")
		}
	}
}

func TestComposer_TotalsMatchItemsAfterAnyHistory(t *testing.T) {
	c := NewComposer()
	steps := []func(){
		func() { c.SelectService("2-calls") },
		func() { _, _ = c.ChangeQuantity("whatsapp-bundle", 3) },
		func() { _, _ = c.ChangeQuantity("2calls-bundle", -9) },
		func() { c.SelectService("4-calls") },
		func() { _, _ = c.ChangeQuantity("4calls-premium", -1) },
		func() { _, _ = c.ChangeQuantity("2calls-premium", 2) },
		func() { c.SelectService("whatsapp") },
		func() { _, _ = c.ChangeQuantity("whatsapp", 1) },
	}
	for i, step := range steps {
		step()
		sum := decimal.Zero
		for _, it := range c.Items() {
			sum = sum.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
		got := c.RecomputeTotals()
		if !got.Total.Equal(sum) || !got.Subtotal.Equal(sum) {
			t.Fatalf("step %d: totals %s/%s, items sum %s", i, got.Subtotal, got.Total, sum)
		}
	}
	// whatsapp single item is priced from the catalog, not the fallback.
	if got := c.RecomputeTotals().Total; !got.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("expected 200, got %s", got)
	}
}

func TestComposer_SeniorBundle(t *testing.T) {
	c := NewComposer()
	items := c.SelectService("senior")
	if len(items) != 2 || items[0].ItemKey != "senior" || items[1].ItemKey != "whatsapp-single" {
		t.Fatalf("unexpected senior composition: %+v", items)
	}
	if got := c.RecomputeTotals().Total; !got.Equal(decimal.NewFromInt(700)) {
		t.Fatalf("expected 700, got %s", got)
	}
}

func TestUnitPriceFor_Fallback(t *testing.T) {
	if got := unitPriceFor("no-such-item"); !got.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("expected fallback 200, got %s", got)
	}
	if got := unitPriceFor("whatsapp"); !got.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected catalog price 100, got %s", got)
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	c := NewComposer()
	items := c.SelectService("express")
	items[0].Quantity = 99
	if c.Items()[0].Quantity != 1 {
		t.Fatalf("composer state leaked through Items")
	}
}
