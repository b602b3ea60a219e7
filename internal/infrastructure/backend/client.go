// Package backend implements the REST port onto the storefront backend
// over plain HTTP. The backend is an external collaborator; its contract
// is consumed as-is.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopstream/storefront/internal/core/domain"
	"github.com/shopstream/storefront/internal/core/ports"
	"github.com/shopstream/storefront/internal/metrics"
)

// StatusError reports a non-2xx backend response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned status %d", e.Code)
}

// Client is the HTTP implementation of ports.Backend. The embedded
// http.Client carries a timeout so a hung backend produces a failure
// instead of leaving callers in a loading state forever.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

var _ ports.Backend = (*Client)(nil)

const defaultTimeout = 15 * time.Second

func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.do(ctx, "list_products", http.MethodGet, "/products", "", nil, &products); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLoadFailed, err)
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	err := c.do(ctx, "get_product", http.MethodGet, "/products/"+id, "", nil, &product)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Code == http.StatusNotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrLoadFailed, err)
	}
	return &product, nil
}

type loginResponse struct {
	ID    string `json:"_id"`
	Token string `json:"token"`
	Admin bool   `json:"admin"`
}

func (c *Client) Login(ctx context.Context, creds ports.Credentials) (*ports.AuthResult, error) {
	var resp loginResponse
	if err := c.do(ctx, "login", http.MethodPost, "/user/login", "", creds, &resp); err != nil {
		return nil, err
	}
	return &ports.AuthResult{UserID: resp.ID, Token: resp.Token, Admin: resp.Admin}, nil
}

type signupResponse struct {
	ID    string `json:"_id"`
	Token string `json:"token"`
}

func (c *Client) Signup(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
	var resp signupResponse
	if err := c.do(ctx, "signup", http.MethodPost, "/user/signup", "", input, &resp); err != nil {
		return nil, err
	}
	return &ports.AuthResult{UserID: resp.ID, Token: resp.Token, Admin: false}, nil
}

func (c *Client) ListOrders(ctx context.Context, token string) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.do(ctx, "list_orders", http.MethodGet, "/orders", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) CreateOrder(ctx context.Context, token string, input ports.CreateOrderInput) (*domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, "create_order", http.MethodPost, "/orders", token, input, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) MarkDelivered(ctx context.Context, token string, orderID string) error {
	// 2xx is the whole contract here; the response body is ignored.
	return c.do(ctx, "mark_delivered", http.MethodPut, "/orders/mark-delivered/"+orderID, token, nil, nil)
}

// do performs one backend round trip: optional JSON body in, optional
// JSON body out, bearer token when provided. Outcomes are recorded in
// the request metrics under the logical endpoint name.
func (c *Client) do(ctx context.Context, endpoint, method, path, token string, in, out any) error {
	start := time.Now()
	err := c.roundTrip(ctx, method, path, token, in, out)
	metrics.BackendRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	outcome := "ok"
	if err != nil {
		outcome = "error"
		c.logger.Debug().Err(err).Str("endpoint", endpoint).Msg("backend request failed")
	}
	metrics.BackendRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	return err
}

func (c *Client) roundTrip(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
