package entity

import "errors"

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrNameRequired      = errors.New("name is required")
	ErrInvalidPrice      = errors.New("price must be greater than or equal to 0")
	ErrInvalidCostPrice  = errors.New("cost_price must be greater than or equal to 0")
	ErrInvalidStock      = errors.New("stock_quantity must be greater than or equal to 0")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrBarcodeNotFound   = errors.New("no product matches the barcode")
)
