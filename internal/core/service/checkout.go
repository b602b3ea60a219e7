package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/shopstream/storefront/internal/core/domain"
	"github.com/shopstream/storefront/internal/core/ports"
	"github.com/shopstream/storefront/internal/core/store"
	"github.com/shopstream/storefront/internal/metrics"
)

// Checkout turns the current cart into an order. There is no payment
// step: confirming an order only posts the order record.
type Checkout struct {
	session  *store.Session
	cart     *store.Cart
	backend  ports.Backend
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewCheckout(session *store.Session, cart *store.Cart, backend ports.Backend, logger zerolog.Logger) *Checkout {
	return &Checkout{
		session:  session,
		cart:     cart,
		backend:  backend,
		validate: validator.New(),
		logger:   logger,
	}
}

// placeOrderInput exists to run the address through the validator the
// same way request schemas are validated elsewhere.
type placeOrderInput struct {
	Address string `validate:"required,min=1"`
}

// PlaceOrder posts the cart as an order with the session's bearer token
// and clears the cart on success. It fails with ErrNotAuthenticated
// without a session, ErrEmptyCart for an empty cart, and a validation
// error for a blank address; the cart is untouched on any failure.
func (s *Checkout) PlaceOrder(ctx context.Context, address string) (*domain.Order, error) {
	address = strings.TrimSpace(address)

	token := s.session.Token()
	if token == "" {
		return nil, domain.ErrNotAuthenticated
	}

	items := s.cart.Items()
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	if err := s.validate.Struct(placeOrderInput{Address: address}); err != nil {
		return nil, fmt.Errorf("delivery address is required: %w", err)
	}

	lines := make([]domain.OrderLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, domain.OrderLine{ProductID: item.Product.ID, Quantity: item.Quantity})
	}

	order, err := s.backend.CreateOrder(ctx, token, ports.CreateOrderInput{
		Products: lines,
		Address:  address,
		Price:    s.cart.TotalPrice(),
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("checkout: order creation failed")
		return nil, err
	}

	s.cart.Clear()
	metrics.OrdersPlacedTotal.Inc()
	s.logger.Info().Str("order_id", order.ID).Float64("price", order.Price).Msg("checkout: order placed")
	return order, nil
}
