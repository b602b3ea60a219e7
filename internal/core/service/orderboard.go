package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/shopstream/storefront/internal/core/domain"
	"github.com/shopstream/storefront/internal/core/ports"
	"github.com/shopstream/storefront/internal/core/store"
)

// OrderBoard backs the admin order view: it caches the fetched order
// list, supports cosmetic local reordering and applies the delivered
// transition. Reordering is never sent to the backend.
type OrderBoard struct {
	mu      sync.Mutex
	orders  []domain.Order
	session *store.Session
	backend ports.Backend
	logger  zerolog.Logger
}

func NewOrderBoard(session *store.Session, backend ports.Backend, logger zerolog.Logger) *OrderBoard {
	return &OrderBoard{session: session, backend: backend, logger: logger}
}

// guard returns the bearer token after checking the admin requirement.
func (b *OrderBoard) guard() (string, error) {
	user := b.session.User()
	if user == nil {
		return "", domain.ErrNotAuthenticated
	}
	if !user.Admin {
		return "", domain.ErrForbidden
	}
	return b.session.Token(), nil
}

// Refresh reloads the order list from the backend, replacing any local
// ordering. Failures surface as the generic load error; the previous
// list is kept so the caller can retry.
func (b *OrderBoard) Refresh(ctx context.Context) error {
	token, err := b.guard()
	if err != nil {
		return err
	}

	orders, err := b.backend.ListOrders(ctx, token)
	if err != nil {
		b.logger.Error().Err(err).Msg("orderboard: refresh failed")
		return fmt.Errorf("%w: %v", domain.ErrLoadFailed, err)
	}

	b.mu.Lock()
	b.orders = orders
	b.mu.Unlock()
	return nil
}

// Orders returns a copy of the board in its current (possibly locally
// reordered) display order.
func (b *OrderBoard) Orders() []domain.Order {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]domain.Order, len(b.orders))
	copy(out, b.orders)
	return out
}

// Move reorders the board locally by moving the order at index from to
// index to. This mirrors the drag-and-drop in the admin view and is
// deliberately local-only. Out-of-range indices are a no-op.
func (b *OrderBoard) Move(from, to int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if from < 0 || from >= len(b.orders) || to < 0 || to >= len(b.orders) || from == to {
		return
	}

	moved := b.orders[from]
	b.orders = append(b.orders[:from], b.orders[from+1:]...)
	b.orders = append(b.orders[:to], append([]domain.Order{moved}, b.orders[to:]...)...)
}

// MarkDelivered applies the delivered transition on the backend and, on
// success, flips the local flag. Orders are never deleted and delivered
// is their only mutation.
func (b *OrderBoard) MarkDelivered(ctx context.Context, orderID string) error {
	token, err := b.guard()
	if err != nil {
		return err
	}

	if err := b.backend.MarkDelivered(ctx, token, orderID); err != nil {
		b.logger.Error().Err(err).Str("order_id", orderID).Msg("orderboard: mark delivered failed")
		return err
	}

	b.mu.Lock()
	for i := range b.orders {
		if b.orders[i].ID == orderID {
			b.orders[i].Delivered = true
		}
	}
	b.mu.Unlock()

	b.logger.Info().Str("order_id", orderID).Msg("orderboard: order delivered")
	return nil
}
