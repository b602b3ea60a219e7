package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shopstream/storefront/internal/core/domain"
	"github.com/shopstream/storefront/internal/core/ports"
	"github.com/shopstream/storefront/internal/core/store"
	"github.com/shopstream/storefront/internal/infrastructure/storage"
)

type stubBackend struct {
	loginFn         func(creds ports.Credentials) (*ports.AuthResult, error)
	listOrdersFn    func(token string) ([]domain.Order, error)
	createOrderFn   func(token string, input ports.CreateOrderInput) (*domain.Order, error)
	markDeliveredFn func(token, orderID string) error
}

func (s *stubBackend) Login(_ context.Context, creds ports.Credentials) (*ports.AuthResult, error) {
	return s.loginFn(creds)
}

func (s *stubBackend) Signup(context.Context, ports.SignupInput) (*ports.AuthResult, error) {
	return nil, errors.New("not implemented")
}

func (s *stubBackend) ListProducts(context.Context) ([]domain.Product, error) {
	return nil, errors.New("not implemented")
}

func (s *stubBackend) GetProduct(context.Context, string) (*domain.Product, error) {
	return nil, errors.New("not implemented")
}

func (s *stubBackend) ListOrders(_ context.Context, token string) ([]domain.Order, error) {
	return s.listOrdersFn(token)
}

func (s *stubBackend) CreateOrder(_ context.Context, token string, input ports.CreateOrderInput) (*domain.Order, error) {
	return s.createOrderFn(token, input)
}

func (s *stubBackend) MarkDelivered(_ context.Context, token, orderID string) error {
	return s.markDeliveredFn(token, orderID)
}

func loggedInSession(t *testing.T, backend *stubBackend, admin bool) *store.Session {
	t.Helper()

	backend.loginFn = func(ports.Credentials) (*ports.AuthResult, error) {
		return &ports.AuthResult{UserID: "u1", Token: "tok", Admin: admin}, nil
	}

	session := store.NewSession(storage.NewMemory(), backend, zerolog.Nop())
	if err := session.Login(context.Background(), "u@example.com", "pass"); err != nil {
		t.Fatalf("login: %v", err)
	}
	return session
}

func cartWith(t *testing.T, items ...domain.CartItem) *store.Cart {
	t.Helper()
	cart := store.NewCart(storage.NewMemory(), zerolog.Nop())
	for _, item := range items {
		if err := cart.Add(item.Product, item.Quantity); err != nil {
			t.Fatalf("seed cart: %v", err)
		}
	}
	return cart
}

func TestCheckout_PlaceOrder(t *testing.T) {
	backend := &stubBackend{}
	backend.createOrderFn = func(token string, input ports.CreateOrderInput) (*domain.Order, error) {
		if token != "tok" {
			t.Fatalf("bearer token not forwarded: %q", token)
		}
		if len(input.Products) != 2 {
			t.Fatalf("expected 2 order lines, got %d", len(input.Products))
		}
		if input.Products[0].ProductID != "p1" || input.Products[0].Quantity != 2 {
			t.Fatalf("unexpected first line: %+v", input.Products[0])
		}
		if input.Price != 10*2+4*1 {
			t.Fatalf("unexpected price: %v", input.Price)
		}
		return &domain.Order{ID: "o1", Address: input.Address, Price: input.Price}, nil
	}

	session := loggedInSession(t, backend, false)
	cart := cartWith(t,
		domain.CartItem{Product: domain.Product{ID: "p1", Price: 10, Stock: 9}, Quantity: 2},
		domain.CartItem{Product: domain.Product{ID: "p2", Price: 4, Stock: 9}, Quantity: 1},
	)

	checkout := NewCheckout(session, cart, backend, zerolog.Nop())
	order, err := checkout.PlaceOrder(context.Background(), "  12 Main Street  ")
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if order.ID != "o1" {
		t.Fatalf("unexpected order: %+v", order)
	}
	if order.Address != "12 Main Street" {
		t.Fatalf("address not trimmed: %q", order.Address)
	}
	if len(cart.Items()) != 0 {
		t.Fatalf("cart not cleared after checkout")
	}
}

func TestCheckout_RequiresAuth(t *testing.T) {
	backend := &stubBackend{}
	session := store.NewSession(storage.NewMemory(), backend, zerolog.Nop())
	cart := cartWith(t, domain.CartItem{Product: domain.Product{ID: "p1", Price: 10, Stock: 9}, Quantity: 1})

	checkout := NewCheckout(session, cart, backend, zerolog.Nop())
	if _, err := checkout.PlaceOrder(context.Background(), "addr"); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	backend := &stubBackend{}
	session := loggedInSession(t, backend, false)
	cart := cartWith(t)

	checkout := NewCheckout(session, cart, backend, zerolog.Nop())
	if _, err := checkout.PlaceOrder(context.Background(), "addr"); !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestCheckout_BlankAddress(t *testing.T) {
	backend := &stubBackend{}
	session := loggedInSession(t, backend, false)
	cart := cartWith(t, domain.CartItem{Product: domain.Product{ID: "p1", Price: 10, Stock: 9}, Quantity: 1})

	checkout := NewCheckout(session, cart, backend, zerolog.Nop())
	if _, err := checkout.PlaceOrder(context.Background(), "   "); err == nil {
		t.Fatalf("expected validation error for blank address")
	}
	if len(cart.Items()) != 1 {
		t.Fatalf("cart mutated on validation failure")
	}
}

func TestCheckout_BackendFailureKeepsCart(t *testing.T) {
	backend := &stubBackend{
		createOrderFn: func(string, ports.CreateOrderInput) (*domain.Order, error) {
			return nil, errors.New("status 500")
		},
	}
	session := loggedInSession(t, backend, false)
	cart := cartWith(t, domain.CartItem{Product: domain.Product{ID: "p1", Price: 10, Stock: 9}, Quantity: 1})

	checkout := NewCheckout(session, cart, backend, zerolog.Nop())
	if _, err := checkout.PlaceOrder(context.Background(), "addr"); err == nil {
		t.Fatalf("expected backend error")
	}
	if len(cart.Items()) != 1 {
		t.Fatalf("cart cleared despite failed order")
	}
}
