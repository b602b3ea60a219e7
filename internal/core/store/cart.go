package store

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/shopstream/storefront/internal/core/domain"
	"github.com/shopstream/storefront/internal/core/ports"
	"github.com/shopstream/storefront/internal/metrics"
)

// Cart holds the ordered list of (product, quantity) selections and
// enforces the stock invariants on every mutation: a line's quantity
// never exceeds its product's stock, a quantity of zero or less removes
// the line, and there is at most one line per product id. Insertion
// order is display order.
//
// Every successful mutation re-serializes the cart to the "cart" storage
// key before returning (write-through). A storage write failure is
// logged, not returned: durable state eventually reflects the last
// committed cart, and nothing in this client is fatal.
type Cart struct {
	mu      sync.Mutex
	items   []domain.CartItem
	storage ports.Storage
	logger  zerolog.Logger
}

// NewCart builds the cart store and rehydrates it from storage. A
// missing or corrupt payload leaves the cart empty; corruption is logged
// and never propagated.
func NewCart(storage ports.Storage, logger zerolog.Logger) *Cart {
	c := &Cart{storage: storage, logger: logger}

	raw, err := storage.Get(ports.KeyCart)
	if err != nil {
		if !errors.Is(err, ports.ErrKeyNotFound) {
			logger.Warn().Err(err).Msg("cart: read failed, starting empty")
		}
		return c
	}
	if err := json.Unmarshal(raw, &c.items); err != nil {
		logger.Warn().Err(err).Msg("cart: stored payload corrupt, starting empty")
		c.items = nil
	}
	return c
}

// Add puts quantity units of product into the cart, merging with an
// existing line for the same product id. It fails with
// *domain.InsufficientStockError when the combined quantity would exceed
// the product's stock, leaving the cart unchanged.
func (c *Cart) Add(product domain.Product, quantity int) error {
	if quantity < 1 {
		return domain.ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(product.ID)
	existing := 0
	if idx >= 0 {
		existing = c.items[idx].Quantity
	}

	if existing+quantity > product.Stock {
		metrics.CartStockViolationsTotal.Inc()
		return &domain.InsufficientStockError{ProductID: product.ID, Available: product.Stock}
	}

	if idx >= 0 {
		c.items[idx].Quantity += quantity
	} else {
		c.items = append(c.items, domain.CartItem{Product: product, Quantity: quantity})
	}

	metrics.CartMutationsTotal.WithLabelValues("add").Inc()
	c.persist()
	return nil
}

// UpdateQuantity replaces a line's quantity. A quantity of zero or less
// removes the line entirely (a valid, non-error path). The stock check
// runs against the product recorded on the existing line; it is not
// re-fetched. An unknown product id is a no-op.
func (c *Cart) UpdateQuantity(productID string, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(productID)
	if idx < 0 {
		return nil
	}

	if quantity > c.items[idx].Product.Stock {
		metrics.CartStockViolationsTotal.Inc()
		return &domain.InsufficientStockError{ProductID: productID, Available: c.items[idx].Product.Stock}
	}

	if quantity <= 0 {
		c.items = append(c.items[:idx], c.items[idx+1:]...)
		metrics.CartMutationsTotal.WithLabelValues("remove").Inc()
	} else {
		c.items[idx].Quantity = quantity
		metrics.CartMutationsTotal.WithLabelValues("update").Inc()
	}

	c.persist()
	return nil
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	metrics.CartMutationsTotal.WithLabelValues("clear").Inc()
	c.persist()
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []domain.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// TotalPrice sums price*quantity over all lines. No rounding is applied;
// display formatting is the caller's concern.
func (c *Cart) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0.0
	for _, item := range c.items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// TotalItems sums the quantities over all lines.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// indexOf returns the line index for a product id, -1 when absent.
// Callers hold the mutex.
func (c *Cart) indexOf(productID string) int {
	for i, item := range c.items {
		if item.Product.ID == productID {
			return i
		}
	}
	return -1
}

// persist serializes the whole cart to storage. Callers hold the mutex.
func (c *Cart) persist() {
	raw, err := json.Marshal(c.items)
	if err != nil {
		c.logger.Error().Err(err).Msg("cart: serialize failed")
		return
	}
	if err := c.storage.Set(ports.KeyCart, raw); err != nil {
		c.logger.Error().Err(err).Msg("cart: write-through failed")
	}
}
