package persistence

import (
	"context"
	"database/sql"
	"fmt"

	checkoutPort "smartpos/src/checkout/domain/port"
	"smartpos/src/inventory/domain/entity"

	"github.com/google/uuid"
)

// StockPostgresGateway implementa el descuento atómico de stock
// La atomicidad es por fila: el UPDATE condicional rechaza la operación si
// dejaría el stock en negativo, en vez de recortarla
type StockPostgresGateway struct {
	db *sql.DB
}

// NewStockPostgresGateway crea una nueva instancia del gateway
func NewStockPostgresGateway(db *sql.DB) checkoutPort.StockGateway {
	return &StockPostgresGateway{db: db}
}

// Decrement descuenta qty unidades del producto
// Cero filas afectadas significa producto inexistente o stock insuficiente
func (g *StockPostgresGateway) Decrement(ctx context.Context, productID uuid.UUID, qty int) error {
	if qty <= 0 {
		return entity.ErrInvalidStock
	}

	query := `
		UPDATE products
		SET stock_quantity = stock_quantity - $2
		WHERE id = $1 AND stock_quantity >= $2
	`

	result, err := g.db.ExecContext(ctx, query, productID, qty)
	if err != nil {
		return fmt.Errorf("error decrementing stock: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking decremented rows: %w", err)
	}
	if affected == 0 {
		return entity.ErrInsufficientStock
	}
	return nil
}

// Restock repone qty unidades (compensación de un checkout fallido)
func (g *StockPostgresGateway) Restock(ctx context.Context, productID uuid.UUID, qty int) error {
	if qty <= 0 {
		return entity.ErrInvalidStock
	}

	query := `
		UPDATE products
		SET stock_quantity = stock_quantity + $2
		WHERE id = $1
	`

	result, err := g.db.ExecContext(ctx, query, productID, qty)
	if err != nil {
		return fmt.Errorf("error restocking: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking restocked rows: %w", err)
	}
	if affected == 0 {
		return entity.ErrProductNotFound
	}
	return nil
}
