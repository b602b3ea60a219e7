package domain

import "errors"

var (
	ErrOrderNotFound = errors.New("order not found")

	// ErrEmptyCart rejects checkout when there is nothing to order.
	ErrEmptyCart = errors.New("cart is empty")
)

// OrderLine references a product by id with the quantity ordered.
type OrderLine struct {
	ProductID string `json:"product"`
	Quantity  int    `json:"quantity"`
}

// Order is created by checkout and mutated only by the delivered
// transition (an admin action). Orders are never deleted.
type Order struct {
	ID        string      `json:"_id"`
	Products  []OrderLine `json:"products"`
	Address   string      `json:"address"`
	Price     float64     `json:"price"`
	Delivered bool        `json:"delivered"`
	Owner     User        `json:"owner"`
}
