package store

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shopstream/storefront/internal/core/domain"
	"github.com/shopstream/storefront/internal/core/ports"
	"github.com/shopstream/storefront/internal/infrastructure/storage"
)

func testProduct(id string, price float64, stock int) domain.Product {
	return domain.Product{
		ID:    id,
		Title: "Product " + id,
		Price: price,
		Stock: stock,
	}
}

func newTestCart(t *testing.T) (*Cart, *storage.Memory) {
	t.Helper()
	st := storage.NewMemory()
	return NewCart(st, zerolog.Nop()), st
}

func TestCart_Add_New(t *testing.T) {
	cart, _ := newTestCart(t)

	if err := cart.Add(testProduct("p1", 10, 5), 2); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	items := cart.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", items[0].Quantity)
	}
}

func TestCart_Add_MergesExistingLine(t *testing.T) {
	cart, _ := newTestCart(t)
	p := testProduct("p1", 10, 5)

	if err := cart.Add(p, 2); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := cart.Add(p, 1); err != nil {
		t.Fatalf("second add: %v", err)
	}

	items := cart.Items()
	if len(items) != 1 {
		t.Fatalf("expected one merged line, got %d", len(items))
	}
	if items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", items[0].Quantity)
	}
}

func TestCart_Add_StockViolation(t *testing.T) {
	cart, _ := newTestCart(t)
	p := testProduct("p1", 10, 3)

	if err := cart.Add(p, 2); err != nil {
		t.Fatalf("add within stock: %v", err)
	}

	err := cart.Add(p, 2)
	var stockErr *domain.InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if stockErr.Available != 3 {
		t.Fatalf("expected available=3, got %d", stockErr.Available)
	}

	// failure leaves the cart unchanged
	items := cart.Items()
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Fatalf("cart mutated on failure: %+v", items)
	}
}

func TestCart_Add_InvalidQuantity(t *testing.T) {
	cart, _ := newTestCart(t)

	if err := cart.Add(testProduct("p1", 10, 5), 0); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if len(cart.Items()) != 0 {
		t.Fatalf("cart mutated on invalid quantity")
	}
}

func TestCart_UpdateQuantity(t *testing.T) {
	cart, _ := newTestCart(t)
	p := testProduct("p1", 10, 5)
	_ = cart.Add(p, 1)

	if err := cart.UpdateQuantity("p1", 4); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := cart.Items()[0].Quantity; got != 4 {
		t.Fatalf("expected quantity 4, got %d", got)
	}
}

func TestCart_UpdateQuantity_StockViolation(t *testing.T) {
	cart, _ := newTestCart(t)
	_ = cart.Add(testProduct("p1", 10, 5), 2)

	err := cart.UpdateQuantity("p1", 6)
	var stockErr *domain.InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if stockErr.Available != 5 {
		t.Fatalf("expected available=5, got %d", stockErr.Available)
	}
	if got := cart.Items()[0].Quantity; got != 2 {
		t.Fatalf("quantity changed on failure: %d", got)
	}
}

func TestCart_UpdateQuantity_ZeroRemovesLine(t *testing.T) {
	cart, _ := newTestCart(t)
	_ = cart.Add(testProduct("p1", 10, 5), 2)
	_ = cart.Add(testProduct("p2", 5, 5), 1)

	if err := cart.UpdateQuantity("p1", 0); err != nil {
		t.Fatalf("update to zero: %v", err)
	}

	items := cart.Items()
	if len(items) != 1 || items[0].Product.ID != "p2" {
		t.Fatalf("expected only p2 to remain, got %+v", items)
	}
}

func TestCart_UpdateQuantity_UnknownProductIsNoop(t *testing.T) {
	cart, _ := newTestCart(t)
	_ = cart.Add(testProduct("p1", 10, 5), 2)

	if err := cart.UpdateQuantity("ghost", 3); err != nil {
		t.Fatalf("unknown id should be a no-op, got %v", err)
	}
	if got := cart.Items()[0].Quantity; got != 2 {
		t.Fatalf("cart changed: quantity %d", got)
	}
}

func TestCart_Totals(t *testing.T) {
	cart, _ := newTestCart(t)
	_ = cart.Add(testProduct("p1", 10.5, 10), 2)
	_ = cart.Add(testProduct("p2", 3.25, 10), 3)

	want := 10.5*2 + 3.25*3
	if got := cart.TotalPrice(); got != want {
		t.Fatalf("expected total price %v, got %v", want, got)
	}
	if got := cart.TotalItems(); got != 5 {
		t.Fatalf("expected 5 items, got %d", got)
	}

	// idempotent without mutation
	if cart.TotalPrice() != want || cart.TotalItems() != 5 {
		t.Fatalf("totals changed between calls")
	}
}

func TestCart_Clear(t *testing.T) {
	cart, st := newTestCart(t)
	_ = cart.Add(testProduct("p1", 10, 5), 2)

	cart.Clear()

	if len(cart.Items()) != 0 {
		t.Fatalf("expected empty cart")
	}

	raw, err := st.Get(ports.KeyCart)
	if err != nil {
		t.Fatalf("cart key missing after clear: %v", err)
	}
	var items []domain.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		t.Fatalf("stored cart not parseable: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("stored cart not empty: %+v", items)
	}
}

func TestCart_PersistenceRoundTrip(t *testing.T) {
	st := storage.NewMemory()
	cart := NewCart(st, zerolog.Nop())
	_ = cart.Add(testProduct("p1", 10, 5), 2)
	_ = cart.Add(testProduct("p2", 3, 5), 1)

	rehydrated := NewCart(st, zerolog.Nop())

	items := rehydrated.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 lines after rehydration, got %d", len(items))
	}
	if items[0].Product.ID != "p1" || items[1].Product.ID != "p2" {
		t.Fatalf("insertion order lost: %+v", items)
	}
	if items[0].Quantity != 2 || items[1].Quantity != 1 {
		t.Fatalf("quantities lost: %+v", items)
	}
}

func TestCart_CorruptPayloadStartsEmpty(t *testing.T) {
	st := storage.NewMemory()
	if err := st.Set(ports.KeyCart, []byte("{not json")); err != nil {
		t.Fatalf("seed: %v", err)
	}

	cart := NewCart(st, zerolog.Nop())
	if len(cart.Items()) != 0 {
		t.Fatalf("expected empty cart on corrupt payload")
	}
}

// The scenario from the product brief: stock=3, add 2, add 2 fails,
// set 3, set 0 empties the cart.
func TestCart_StockScenario(t *testing.T) {
	cart, _ := newTestCart(t)
	p := testProduct("p1", 20, 3)

	if err := cart.Add(p, 2); err != nil {
		t.Fatalf("step 1: %v", err)
	}
	if got := cart.Items()[0].Quantity; got != 2 {
		t.Fatalf("step 1: quantity %d", got)
	}

	var stockErr *domain.InsufficientStockError
	if err := cart.Add(p, 2); !errors.As(err, &stockErr) {
		t.Fatalf("step 2: expected stock violation, got %v", err)
	}
	if got := cart.Items()[0].Quantity; got != 2 {
		t.Fatalf("step 2: cart changed, quantity %d", got)
	}

	if err := cart.UpdateQuantity("p1", 3); err != nil {
		t.Fatalf("step 3: %v", err)
	}
	if got := cart.Items()[0].Quantity; got != 3 {
		t.Fatalf("step 3: quantity %d", got)
	}

	if err := cart.UpdateQuantity("p1", 0); err != nil {
		t.Fatalf("step 4: %v", err)
	}
	if len(cart.Items()) != 0 {
		t.Fatalf("step 4: cart not empty")
	}
}
