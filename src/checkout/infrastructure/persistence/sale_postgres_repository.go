package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"smartpos/src/checkout/domain/entity"
	"smartpos/src/checkout/domain/port"

	"github.com/google/uuid"
)

// SalePostgresRepository implementa SaleRepository usando PostgreSQL
// Sin lógica de negocio, solo insert, delete y select
type SalePostgresRepository struct {
	db *sql.DB
}

// NewSalePostgresRepository crea una nueva instancia del repositorio
func NewSalePostgresRepository(db *sql.DB) port.SaleRepository {
	return &SalePostgresRepository{
		db: db,
	}
}

// Create persiste el encabezado de venta con sus items en una transacción
func (r *SalePostgresRepository) Create(ctx context.Context, sale *entity.Sale) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	// 1. Insertar sale (aggregate root)
	querySale := `
		INSERT INTO sales (id, total_amount, created_at)
		VALUES ($1, $2, $3)
	`

	_, err = tx.ExecContext(ctx, querySale,
		sale.ID,
		sale.TotalAmount,
		sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error creating sale: %w", err)
	}

	// 2. Insertar sale_items
	queryItem := `
		INSERT INTO sale_items (id, sale_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, item := range sale.Items {
		_, err = tx.ExecContext(ctx, queryItem,
			item.ID,
			item.SaleID,
			item.ProductID,
			item.Quantity,
			item.UnitPrice,
		)
		if err != nil {
			return fmt.Errorf("error creating sale_item for product %s: %w", item.ProductID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// Delete borra la venta y sus items (solo usado para compensación)
func (r *SalePostgresRepository) Delete(ctx context.Context, saleID uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM sale_items WHERE sale_id = $1`, saleID); err != nil {
		return fmt.Errorf("error deleting sale_items: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM sales WHERE id = $1`, saleID); err != nil {
		return fmt.Errorf("error deleting sale: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// ListRecent retorna las últimas ventas CON sus items
func (r *SalePostgresRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Sale, error) {
	querySales := `
		SELECT id, total_amount, created_at
		FROM sales
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, querySales, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale

	for rows.Next() {
		sale := &entity.Sale{}
		if err := rows.Scan(&sale.ID, &sale.TotalAmount, &sale.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning sale: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales: %w", err)
	}

	// Items por venta (N+1 aceptable para el tamaño de la lista)
	queryItems := `
		SELECT id, sale_id, product_id, quantity, unit_price
		FROM sale_items
		WHERE sale_id = $1
	`

	for _, sale := range sales {
		itemRows, err := r.db.QueryContext(ctx, queryItems, sale.ID)
		if err != nil {
			return nil, fmt.Errorf("error querying sale_items: %w", err)
		}

		var items []entity.SaleItem
		for itemRows.Next() {
			item := entity.SaleItem{}
			if err := itemRows.Scan(&item.ID, &item.SaleID, &item.ProductID, &item.Quantity, &item.UnitPrice); err != nil {
				itemRows.Close()
				return nil, fmt.Errorf("error scanning sale_item: %w", err)
			}
			items = append(items, item)
		}
		itemRows.Close()

		if err = itemRows.Err(); err != nil {
			return nil, fmt.Errorf("error iterating sale_items: %w", err)
		}

		sale.Items = items
	}

	return sales, nil
}
