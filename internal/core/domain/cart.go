package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidQuantity rejects cart additions with a quantity below one.
// A quantity of zero or less is only meaningful to UpdateQuantity, where
// it removes the line.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// InsufficientStockError is raised by cart mutations that would push a
// line's quantity past the product's available stock. It is always
// recoverable: the caller can retry with a smaller quantity.
type InsufficientStockError struct {
	ProductID string
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: %d available", e.Available)
}

// CartItem associates a product with the quantity selected. Invariants,
// enforced by the cart store: quantity > 0, quantity <= product stock,
// at most one item per product id.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}
