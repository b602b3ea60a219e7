package stub

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopstream/storefront/internal/core/domain"
)

type catalogHandler struct {
	products []domain.Product
}

func newCatalogHandler(products []domain.Product) *catalogHandler {
	return &catalogHandler{products: products}
}

func (h *catalogHandler) list(c echo.Context) error {
	return c.JSON(http.StatusOK, h.products)
}

func (h *catalogHandler) get(c echo.Context) error {
	id := c.Param("id")
	for i := range h.products {
		if h.products[i].ID == id {
			return c.JSON(http.StatusOK, h.products[i])
		}
	}
	return echo.NewHTTPError(http.StatusNotFound, "product not found")
}

// seedCatalog returns the fixed demo catalog. Stock levels are kept low
// on purpose so the cart's stock checks are easy to trip locally.
func seedCatalog() []domain.Product {
	return []domain.Product{
		{
			ID:                  "p-espresso-01",
			Title:               "Espresso Machine Piccola",
			Description:         "Compact 15-bar espresso machine with a steam wand.",
			Category:            "kitchen",
			Price:               249.90,
			Rating:              4.6,
			Stock:               12,
			Tags:                []string{"coffee", "kitchen"},
			Brand:               "Brewista",
			Weight:              5.2,
			Dimensions:          domain.Dimensions{Width: 21, Height: 31, Depth: 33},
			WarrantyInformation: "2 year warranty",
			ShippingInformation: "Ships in 3-5 business days",
			AvailabilityStatus:  "In Stock",
			ReturnPolicy:        "30 days return policy",
			Images:              []string{"https://cdn.storefront.dev/p-espresso-01.jpg"},
		},
		{
			ID:                  "p-grinder-02",
			Title:               "Burr Grinder 40mm",
			Description:         "Stepless conical burr grinder with 40 grind settings.",
			Category:            "kitchen",
			Price:               89.00,
			Rating:              4.3,
			Stock:               3,
			Tags:                []string{"coffee", "grinder"},
			Brand:               "Brewista",
			Weight:              1.8,
			Dimensions:          domain.Dimensions{Width: 13, Height: 27, Depth: 13},
			WarrantyInformation: "1 year warranty",
			ShippingInformation: "Ships in 2 business days",
			AvailabilityStatus:  "Low Stock",
			ReturnPolicy:        "30 days return policy",
			Images:              []string{"https://cdn.storefront.dev/p-grinder-02.jpg"},
		},
		{
			ID:                  "p-kettle-03",
			Title:               "Gooseneck Kettle 0.9L",
			Description:         "Temperature-controlled pour-over kettle.",
			Category:            "kitchen",
			Price:               59.50,
			Rating:              4.8,
			Stock:               25,
			Tags:                []string{"coffee", "kettle"},
			Brand:               "Cascara",
			Weight:              1.1,
			Dimensions:          domain.Dimensions{Width: 29, Height: 20, Depth: 15},
			WarrantyInformation: "1 year warranty",
			ShippingInformation: "Ships in 2 business days",
			AvailabilityStatus:  "In Stock",
			ReturnPolicy:        "60 days return policy",
			Images:              []string{"https://cdn.storefront.dev/p-kettle-03.jpg"},
		},
		{
			ID:                  "p-scale-04",
			Title:               "Brew Scale 0.1g",
			Description:         "Rechargeable brewing scale with timer.",
			Category:            "accessories",
			Price:               32.00,
			Rating:              4.1,
			Stock:               1,
			Tags:                []string{"coffee", "scale"},
			Brand:               "Cascara",
			Weight:              0.4,
			Dimensions:          domain.Dimensions{Width: 13, Height: 3, Depth: 13},
			WarrantyInformation: "6 month warranty",
			ShippingInformation: "Ships in 2 business days",
			AvailabilityStatus:  "Low Stock",
			ReturnPolicy:        "14 days return policy",
			Images:              []string{"https://cdn.storefront.dev/p-scale-04.jpg"},
		},
	}
}
