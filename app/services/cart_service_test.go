package services

import (
	"testing"

	"RestoPos/app/models"
)

func TestAddToCartResolvesUnitPrice(t *testing.T) {
	env := newTestEnv(t)
	burger := env.menuItem(t, "item1") // 12.50

	items := env.cart.AddToCart(burger, cheddarSelection(), nil, 1)
	if len(items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(items))
	}
	if !almostEqual(items[0].UnitPrice, 13.50) {
		t.Fatalf("expected unit price 13.50, got %.2f", items[0].UnitPrice)
	}
	if items[0].Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", items[0].Quantity)
	}
}

func TestAddToCartMergesIdenticalLines(t *testing.T) {
	env := newTestEnv(t)
	burger := env.menuItem(t, "item1")

	env.cart.AddToCart(burger, cheddarSelection(), nil, 1)
	items := env.cart.AddToCart(burger, cheddarSelection(), nil, 1)

	if len(items) != 1 {
		t.Fatalf("expected identical additions to merge into 1 line, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected merged quantity 2, got %d", items[0].Quantity)
	}
}

func TestAddToCartSignatureIgnoresOrdering(t *testing.T) {
	env := newTestEnv(t)
	burger := env.menuItem(t, "item1")

	first := map[string]models.Selection{
		"cust1": {Multi: []models.CustomizationOption{
			{ID: "opt1", Name: "Cheddar", PriceModifier: 1.00},
			{ID: "opt2", Name: "Swiss", PriceModifier: 1.50},
		}},
	}
	// same selections, reversed insertion order, reversed removed ingredients
	second := map[string]models.Selection{
		"cust1": {Multi: []models.CustomizationOption{
			{ID: "opt2", Name: "Swiss", PriceModifier: 1.50},
			{ID: "opt1", Name: "Cheddar", PriceModifier: 1.00},
		}},
	}

	env.cart.AddToCart(burger, first, []string{"Onion", "Tomato"}, 1)
	items := env.cart.AddToCart(burger, second, []string{"Tomato", "Onion"}, 1)

	if len(items) != 1 {
		t.Fatalf("expected order-independent merge, got %d lines", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", items[0].Quantity)
	}
}

func TestAddToCartDifferentSelectionsStaySeparate(t *testing.T) {
	env := newTestEnv(t)
	burger := env.menuItem(t, "item1")

	env.cart.AddToCart(burger, cheddarSelection(), nil, 1)
	items := env.cart.AddToCart(burger, map[string]models.Selection{
		"cust2": {Single: &models.CustomizationOption{ID: "opt4", Name: "Medium"}},
	}, nil, 1)

	if len(items) != 2 {
		t.Fatalf("expected different selections to produce separate lines, got %d", len(items))
	}
}

func TestAddToCartRemovedIngredientSplitsLine(t *testing.T) {
	env := newTestEnv(t)
	burger := env.menuItem(t, "item1")

	env.cart.AddToCart(burger, nil, nil, 1)
	items := env.cart.AddToCart(burger, nil, []string{"Onion"}, 1)

	if len(items) != 2 {
		t.Fatalf("expected removed ingredient to split the line, got %d lines", len(items))
	}
}

func TestUpdateQuantityBelowOneRemovesLine(t *testing.T) {
	env := newTestEnv(t)
	burger := env.menuItem(t, "item1")

	items := env.cart.AddToCart(burger, nil, nil, 1)
	items = env.cart.UpdateQuantity(items[0].ID, 0)

	if len(items) != 0 {
		t.Fatalf("expected quantity 0 to remove the line, got %d lines", len(items))
	}
}

func TestUpdateDiscountClamps(t *testing.T) {
	env := newTestEnv(t)
	burger := env.menuItem(t, "item1")

	items := env.cart.AddToCart(burger, nil, nil, 1)
	lineID := items[0].ID

	items = env.cart.UpdateDiscount(lineID, 150)
	if items[0].Discount != 100 {
		t.Fatalf("expected discount clamped to 100, got %.0f", items[0].Discount)
	}
	items = env.cart.UpdateDiscount(lineID, -10)
	if items[0].Discount != 0 {
		t.Fatalf("expected discount clamped to 0, got %.0f", items[0].Discount)
	}
}

func TestComputeTotals(t *testing.T) {
	items := []models.OrderItem{
		{ID: "a", UnitPrice: 10, Quantity: 2},                // 20.00
		{ID: "b", UnitPrice: 8, Quantity: 1, Discount: 25},  // 6.00
	}

	totals := ComputeTotals(items, 0.10)

	if !almostEqual(totals.Subtotal, 26.00) {
		t.Fatalf("expected subtotal 26.00, got %.2f", totals.Subtotal)
	}
	if !almostEqual(totals.Tax, 2.60) {
		t.Fatalf("expected tax 2.60, got %.2f", totals.Tax)
	}
	if !almostEqual(totals.Total, 28.60) {
		t.Fatalf("expected total 28.60, got %.2f", totals.Total)
	}
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	totals := ComputeTotals(nil, 0.15)
	if totals.Subtotal != 0 || totals.Tax != 0 || totals.Total != 0 {
		t.Fatalf("expected zero totals for empty cart, got %+v", totals)
	}
}
