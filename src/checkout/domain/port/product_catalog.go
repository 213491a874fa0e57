package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductSnapshot copia mínima del producto al momento del add-to-cart
type ProductSnapshot struct {
	ID            uuid.UUID
	Name          string
	Price         decimal.Decimal
	StockQuantity int
}

// ProductCatalog lectura del catálogo de productos desde el checkout
type ProductCatalog interface {
	FindByID(ctx context.Context, productID uuid.UUID) (*ProductSnapshot, error)
}
