package services

import (
	"errors"
	"testing"

	"RestoPos/app/models"
)

func TestSubmitCreatesOrderAndDecrementsStock(t *testing.T) {
	env := newTestEnv(t)
	burger := env.menuItem(t, "item1") // stock inv1, consumption 1
	stockBefore := env.stockQuantity(t, "inv1")

	env.cart.AddToCart(burger, cheddarSelection(), nil, 1)
	env.cart.AddToCart(burger, cheddarSelection(), nil, 1) // merges to qty 2
	env.orders.SelectTable(5, "Bar")

	order, err := env.orders.Submit("w1")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if order.Status != models.OrderStatusPending {
		t.Fatalf("expected pending order, got %s", order.Status)
	}
	if order.TableNumber != 5 || order.Area != "Bar" {
		t.Fatalf("expected table 5/Bar, got %d/%s", order.TableNumber, order.Area)
	}
	if !almostEqual(order.Subtotal, 27.00) {
		t.Fatalf("expected subtotal 27.00, got %.2f", order.Subtotal)
	}
	if !almostEqual(order.Tax, 27.00*testTaxRate) {
		t.Fatalf("expected tax %.4f, got %.4f", 27.00*testTaxRate, order.Tax)
	}
	if !almostEqual(order.Total, order.Subtotal+order.Tax) {
		t.Fatalf("expected total = subtotal + tax, got %.4f", order.Total)
	}

	if got := env.stockQuantity(t, "inv1"); !almostEqual(got, stockBefore-2) {
		t.Fatalf("expected stock %.1f after sale, got %.1f", stockBefore-2, got)
	}
	if !env.cart.Empty() {
		t.Fatal("expected cart cleared after submit")
	}
	if len(env.store.Orders.Get()) != 1 {
		t.Fatalf("expected 1 persisted order, got %d", len(env.store.Orders.Get()))
	}
}

func TestSubmitEmptyCartRefused(t *testing.T) {
	env := newTestEnv(t)
	env.orders.SelectTable(1, "Bar")

	if _, err := env.orders.Submit("w1"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestSubmitWithoutTableRefused(t *testing.T) {
	env := newTestEnv(t)
	env.cart.AddToCart(env.menuItem(t, "item2"), nil, nil, 1)

	if _, err := env.orders.Submit("w1"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(env.store.Orders.Get()) != 0 {
		t.Fatal("refused submit must not persist an order")
	}
}

func TestSubmitUnknownStockItemIsNoop(t *testing.T) {
	env := newTestEnv(t)
	item := env.menuItem(t, "item2")
	item.StockItemID = "missing"

	env.cart.AddToCart(item, nil, nil, 1)
	env.orders.SelectTable(2, "Bar")

	if _, err := env.orders.Submit("w1"); err != nil {
		t.Fatalf("submit with unknown stock id should succeed: %v", err)
	}
}

func TestEditDoesNotRedecrementOriginalItems(t *testing.T) {
	env := newTestEnv(t)
	burger := env.menuItem(t, "item1")
	stockBefore := env.stockQuantity(t, "inv1")

	env.cart.AddToCart(burger, nil, nil, 1)
	env.orders.SelectTable(3, "Bar")
	order, err := env.orders.Submit("w1")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	afterFirst := env.stockQuantity(t, "inv1")
	if !almostEqual(afterFirst, stockBefore-1) {
		t.Fatalf("expected stock %.1f, got %.1f", stockBefore-1, afterFirst)
	}

	if err := env.orders.EditExisting(order.ID); err != nil {
		t.Fatalf("edit existing: %v", err)
	}
	env.cart.AddToCart(burger, nil, nil, 1) // a genuinely new line

	updated, err := env.orders.Submit("w1")
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if updated.ID != order.ID {
		t.Fatalf("expected edit to keep order id %d, got %d", order.ID, updated.ID)
	}
	if len(updated.Items) != 2 {
		t.Fatalf("expected 2 items after edit, got %d", len(updated.Items))
	}

	// only the new line consumed stock
	if got := env.stockQuantity(t, "inv1"); !almostEqual(got, stockBefore-2) {
		t.Fatalf("expected stock %.1f after edit, got %.1f", stockBefore-2, got)
	}
	if len(env.store.Orders.Get()) != 1 {
		t.Fatalf("edit must not create a second order, got %d", len(env.store.Orders.Get()))
	}
}

func TestHoldAndResume(t *testing.T) {
	env := newTestEnv(t)
	pizza := env.menuItem(t, "item2")
	stockBefore := env.stockQuantity(t, "inv2")

	env.orders.SelectTable(4, "VIP")
	env.cart.AddToCart(pizza, nil, nil, 2)
	env.cart.SetNotes("no rush")

	held, err := env.orders.Hold("w1")
	if err != nil {
		t.Fatalf("hold: %v", err)
	}
	if !env.cart.Empty() {
		t.Fatal("expected cart cleared after hold")
	}
	if got := env.stockQuantity(t, "inv2"); !almostEqual(got, stockBefore) {
		t.Fatal("hold must not touch inventory")
	}

	// selecting the table again surfaces the held order
	surfaced := env.orders.SelectTable(4, "VIP")
	if surfaced == nil || surfaced.ID != held.ID {
		t.Fatalf("expected held order surfaced on table selection, got %+v", surfaced)
	}

	if err := env.orders.ResumeHeld(held.ID); err != nil {
		t.Fatalf("resume: %v", err)
	}
	if len(env.store.HeldOrders.Get()) != 0 {
		t.Fatal("expected held order removed after resume")
	}
	if len(env.cart.Items()) != 1 || env.cart.Items()[0].Quantity != 2 {
		t.Fatalf("expected resumed cart contents, got %+v", env.cart.Items())
	}
	if env.cart.Notes() != "no rush" {
		t.Fatalf("expected resumed notes, got %q", env.cart.Notes())
	}
	if table := env.cart.Table(); table == nil || table.Number != 4 || table.Area != "VIP" {
		t.Fatalf("expected cart bound to table 4/VIP, got %+v", table)
	}
}

func TestHoldRefusedForDuplicateTable(t *testing.T) {
	env := newTestEnv(t)
	pizza := env.menuItem(t, "item2")

	env.orders.SelectTable(1, "Bar")
	env.cart.AddToCart(pizza, nil, nil, 1)
	if _, err := env.orders.Hold("w1"); err != nil {
		t.Fatalf("first hold: %v", err)
	}

	env.cart.BindTable(1, "Bar")
	env.cart.AddToCart(pizza, nil, nil, 1)
	if _, err := env.orders.Hold("w1"); !errors.Is(err, ErrPrecondition) {
		t.Fatalf("expected ErrPrecondition for second hold on same table, got %v", err)
	}
}

func TestDiscardHeldRequiresConfirmation(t *testing.T) {
	env := newTestEnv(t)
	pizza := env.menuItem(t, "item2")

	env.orders.SelectTable(2, "VIP")
	env.cart.AddToCart(pizza, nil, nil, 1)
	held, err := env.orders.Hold("w1")
	if err != nil {
		t.Fatalf("hold: %v", err)
	}

	if err := env.orders.DiscardHeld(held.ID, false); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation without confirmation, got %v", err)
	}
	if len(env.store.HeldOrders.Get()) != 1 {
		t.Fatal("unconfirmed discard must not remove the held order")
	}

	if err := env.orders.DiscardHeld(held.ID, true); err != nil {
		t.Fatalf("confirmed discard: %v", err)
	}
	if len(env.store.HeldOrders.Get()) != 0 {
		t.Fatal("expected held order removed")
	}
	if table := env.cart.Table(); table == nil || table.Number != 2 || table.Area != "VIP" {
		t.Fatalf("expected cart bound to the freed table, got %+v", table)
	}
}

func TestCancelClearsCartWithoutSideEffects(t *testing.T) {
	env := newTestEnv(t)
	burger := env.menuItem(t, "item1")
	stockBefore := env.stockQuantity(t, "inv1")

	env.orders.SelectTable(1, "Bar")
	env.cart.AddToCart(burger, nil, nil, 3)
	env.orders.Cancel()

	if !env.cart.Empty() {
		t.Fatal("expected cart cleared")
	}
	if got := env.stockQuantity(t, "inv1"); !almostEqual(got, stockBefore) {
		t.Fatal("cancel must not touch inventory")
	}
	if len(env.store.Orders.Get()) != 0 {
		t.Fatal("cancel must not persist an order")
	}
}

func TestUpdateStatus(t *testing.T) {
	env := newTestEnv(t)
	env.cart.AddToCart(env.menuItem(t, "item2"), nil, nil, 1)
	env.orders.SelectTable(1, "Bar")
	order, err := env.orders.Submit("w1")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	updated, err := env.orders.UpdateStatus(order.ID, models.OrderStatusPreparing)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != models.OrderStatusPreparing {
		t.Fatalf("expected preparing, got %s", updated.Status)
	}

	if _, err := env.orders.UpdateStatus(999, models.OrderStatusReady); !errors.Is(err, ErrReference) {
		t.Fatalf("expected ErrReference for unknown order, got %v", err)
	}
}

func TestNegativeInventoryAllowed(t *testing.T) {
	env := newTestEnv(t)

	next, err := env.inventory.Decrement("inv4", 50) // seeded at 10
	if err != nil {
		t.Fatalf("decrement: %v", err)
	}
	for _, item := range next {
		if item.ID == "inv4" {
			if !almostEqual(item.Quantity, -40) {
				t.Fatalf("expected quantity -40, got %.1f", item.Quantity)
			}
			if !item.LowStock() {
				t.Fatal("expected over-sold item to report low stock")
			}
			return
		}
	}
	t.Fatal("inv4 missing from inventory")
}

func TestDecrementUnknownIDIsNoop(t *testing.T) {
	env := newTestEnv(t)
	before := env.store.Inventory.Get()

	next, err := env.inventory.Decrement("nope", 5)
	if err != nil {
		t.Fatalf("decrement: %v", err)
	}
	if len(next) != len(before) {
		t.Fatal("unknown id must not change the collection size")
	}
}
