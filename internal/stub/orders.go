package stub

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/shopstream/storefront/internal/core/domain"
)

type orderRepo struct {
	mu     sync.Mutex
	orders []domain.Order
}

func newOrderRepo() *orderRepo {
	return &orderRepo{}
}

func (r *orderRepo) insert(order domain.Order) domain.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, order)
	return order
}

// listFor returns all orders to admins and only the caller's own orders
// otherwise.
func (r *orderRepo) listFor(userID string, admin bool) []domain.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if admin || o.Owner.ID == userID {
			out = append(out, o)
		}
	}
	return out
}

func (r *orderRepo) markDelivered(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Delivered = true
			return nil
		}
	}
	return errOrderNotFound
}

type orderHandler struct {
	orders *orderRepo
}

func newOrderHandler(orders *orderRepo) *orderHandler {
	return &orderHandler{orders: orders}
}

type orderLineRequest struct {
	Product  string `json:"product"  validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

type createOrderRequest struct {
	Products []orderLineRequest `json:"products" validate:"required,min=1,dive"`
	Address  string             `json:"address"  validate:"required"`
	Price    float64            `json:"price"    validate:"required,gt=0"`
}

func (h *orderHandler) list(c echo.Context) error {
	userID, _ := c.Get("user_id").(string)
	admin, _ := c.Get("admin").(bool)
	return c.JSON(http.StatusOK, h.orders.listFor(userID, admin))
}

func (h *orderHandler) create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	userID, _ := c.Get("user_id").(string)
	admin, _ := c.Get("admin").(bool)

	lines := make([]domain.OrderLine, 0, len(req.Products))
	for _, p := range req.Products {
		lines = append(lines, domain.OrderLine{ProductID: p.Product, Quantity: p.Quantity})
	}

	order := h.orders.insert(domain.Order{
		ID:       uuid.NewString(),
		Products: lines,
		Address:  req.Address,
		Price:    req.Price,
		Owner:    domain.User{ID: userID, Admin: admin},
	})

	return c.JSON(http.StatusCreated, order)
}

func (h *orderHandler) markDelivered(c echo.Context) error {
	if err := h.orders.markDelivered(c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "delivered"})
}
