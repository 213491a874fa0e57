package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"smartpos/src/checkout/domain/port"

	"github.com/google/uuid"
)

// ErrProductNotFound producto inexistente en el catálogo
var ErrProductNotFound = errors.New("product not found")

// ProductCatalogPostgres lectura directa del catálogo para el add-to-cart
type ProductCatalogPostgres struct {
	db *sql.DB
}

// NewProductCatalogPostgres crea una nueva instancia
func NewProductCatalogPostgres(db *sql.DB) port.ProductCatalog {
	return &ProductCatalogPostgres{db: db}
}

// FindByID retorna el snapshot del producto (nombre, precio, stock)
func (c *ProductCatalogPostgres) FindByID(ctx context.Context, productID uuid.UUID) (*port.ProductSnapshot, error) {
	query := `
		SELECT id, name, price, stock_quantity
		FROM products
		WHERE id = $1
	`

	snap := &port.ProductSnapshot{}
	err := c.db.QueryRowContext(ctx, query, productID).Scan(
		&snap.ID,
		&snap.Name,
		&snap.Price,
		&snap.StockQuantity,
	)
	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying product: %w", err)
	}

	return snap, nil
}
