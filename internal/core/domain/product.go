package domain

import (
	"errors"
	"time"
)

var (
	ErrProductNotFound = errors.New("product not found")

	// ErrLoadFailed is the generic "could not load" state surfaced when a
	// product or order listing cannot be fetched or parsed. Callers retry.
	ErrLoadFailed = errors.New("could not load")
)

// Dimensions is the physical size of a product.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// Review is a single customer review attached to a product.
type Review struct {
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	Date          time.Time `json:"date"`
	ReviewerName  string    `json:"reviewerName"`
	ReviewerEmail string    `json:"reviewerEmail"`
}

// Product is read-only from the client's perspective: it is sourced from
// the backend catalog and never mutated locally. JSON field names follow
// the backend contract.
type Product struct {
	ID                  string     `json:"_id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Category            string     `json:"category"`
	Price               float64    `json:"price"`
	Rating              float64    `json:"rating"`
	Stock               int        `json:"stock"`
	Tags                []string   `json:"tags"`
	Brand               string     `json:"brand"`
	Weight              float64    `json:"weight"`
	Dimensions          Dimensions `json:"dimensions"`
	WarrantyInformation string     `json:"warrantyInformation"`
	ShippingInformation string     `json:"shippingInformation"`
	AvailabilityStatus  string     `json:"availabilityStatus"`
	Reviews             []Review   `json:"reviews"`
	ReturnPolicy        string     `json:"returnPolicy"`
	Images              []string   `json:"images"`
}
