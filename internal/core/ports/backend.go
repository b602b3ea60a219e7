package ports

import (
	"context"

	"github.com/shopstream/storefront/internal/core/domain"
)

// Credentials are exchanged for a bearer token via POST /user/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupInput carries the registration fields for POST /user/signup.
type SignupInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is the normalized outcome of a credential exchange. The
// backend returns {_id, token, admin} on login and {_id, token} on
// signup; Admin is false for signups.
type AuthResult struct {
	UserID string
	Token  string
	Admin  bool
}

// CreateOrderInput is the payload for POST /orders.
type CreateOrderInput struct {
	Products []domain.OrderLine `json:"products"`
	Address  string             `json:"address"`
	Price    float64            `json:"price"`
}

// Backend is the REST port onto the storefront backend, which this
// client consumes as-is. Calls taking a token attach it as a bearer
// Authorization header.
type Backend interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)

	Login(ctx context.Context, creds Credentials) (*AuthResult, error)
	Signup(ctx context.Context, input SignupInput) (*AuthResult, error)

	ListOrders(ctx context.Context, token string) ([]domain.Order, error)
	CreateOrder(ctx context.Context, token string, input CreateOrderInput) (*domain.Order, error)
	MarkDelivered(ctx context.Context, token string, orderID string) error
}
