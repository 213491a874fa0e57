package request

import "github.com/shopspring/decimal"

// CreateProductRequest alta de producto en el inventario
type CreateProductRequest struct {
	Name          string          `json:"name" binding:"required"`
	Price         decimal.Decimal `json:"price" binding:"required"`
	CostPrice     decimal.Decimal `json:"cost_price" binding:"required"`
	StockQuantity int             `json:"stock_quantity"`
	Barcode       string          `json:"barcode,omitempty"`
	ImageURL      string          `json:"image_url,omitempty"`
}

// UpdateProductRequest edición de producto existente
type UpdateProductRequest struct {
	Name          string          `json:"name" binding:"required"`
	Price         decimal.Decimal `json:"price" binding:"required"`
	CostPrice     decimal.Decimal `json:"cost_price" binding:"required"`
	StockQuantity int             `json:"stock_quantity"`
	Barcode       string          `json:"barcode,omitempty"`
	ImageURL      string          `json:"image_url,omitempty"`
}
