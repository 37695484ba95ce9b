package dto

import (
	"github.com/shopspring/decimal"

	"github.com/personal-dashboard/backend/internal/domain/entity"
)

// CreateProductRequest represents the request body for registering a
// product. Media is an optional base64-encoded image.
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Media       string          `json:"media"`
}

// CreateSaleRequest represents the request body for recording a sale.
// Date is AAAA-MM-DD.
type CreateSaleRequest struct {
	ProductID string `json:"productId" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required"`
	Date      string `json:"date" binding:"required"`
}

// SaveScriptRequest represents the request body for saving a sales script.
type SaveScriptRequest struct {
	ProductID string `json:"productId" binding:"required,uuid"`
	Script    string `json:"script" binding:"required"`
}

// ProductListResponse represents the response for listing products.
type ProductListResponse struct {
	Products []entity.Product `json:"products"`
}

// SaleListResponse represents the response for listing sales.
type SaleListResponse struct {
	Sales []entity.Sale `json:"sales"`
}

// ScriptListResponse represents the response for listing sales scripts.
type ScriptListResponse struct {
	Scripts []entity.SalesScript `json:"scripts"`
}

// GeneratedScriptResponse represents a freshly generated, unsaved script.
type GeneratedScriptResponse struct {
	Script string `json:"script"`
}
