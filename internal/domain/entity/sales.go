// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents an item offered for sale. Media is an opaque
// base64-encoded image supplied by the caller.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Media       string          `json:"media,omitempty"`
}

// NewProduct creates a new Product entity with a fresh identifier.
func NewProduct(name, description string, price decimal.Decimal, media string) *Product {
	return &Product{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Price:       price,
		Media:       media,
	}
}

// RecordID returns the product identifier.
func (p Product) RecordID() uuid.UUID { return p.ID }

// Sale represents a completed sale. ProductID and ProductName are a
// snapshot taken at sale time, not a live foreign key: deleting the
// product later does not touch existing sales.
type Sale struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Date        time.Time       `json:"date"`
}

// NewSale creates a new Sale entity snapshotting the product's identity.
func NewSale(product *Product, quantity int, totalAmount decimal.Decimal, date time.Time) *Sale {
	return &Sale{
		ID:          uuid.New(),
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    quantity,
		TotalAmount: totalAmount,
		Date:        date,
	}
}

// RecordID returns the sale identifier.
func (s Sale) RecordID() uuid.UUID { return s.ID }

// SalesScript represents a saved sales pitch for a product. Like Sale it
// keeps a product snapshot rather than a live reference.
type SalesScript struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	Script      string    `json:"script"`
}

// NewSalesScript creates a new SalesScript entity snapshotting the product.
func NewSalesScript(product *Product, script string) *SalesScript {
	return &SalesScript{
		ID:          uuid.New(),
		ProductID:   product.ID,
		ProductName: product.Name,
		Script:      script,
	}
}

// RecordID returns the script identifier.
func (s SalesScript) RecordID() uuid.UUID { return s.ID }
