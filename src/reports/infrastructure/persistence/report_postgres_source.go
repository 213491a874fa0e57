package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"smartpos/src/reports/domain/port"
)

// ReportPostgresSource implementa ReportSource leyendo las tres tablas fuente
// Solo selects completos; la agregación vive en el caso de uso
type ReportPostgresSource struct {
	db *sql.DB
}

// NewReportPostgresSource crea una nueva instancia
func NewReportPostgresSource(db *sql.DB) port.ReportSource {
	return &ReportPostgresSource{db: db}
}

// ListSales retorna todos los encabezados de venta
func (s *ReportPostgresSource) ListSales(ctx context.Context) ([]port.SaleRow, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, created_at FROM sales`)
	if err != nil {
		return nil, fmt.Errorf("error querying sales: %w", err)
	}
	defer rows.Close()

	var sales []port.SaleRow
	for rows.Next() {
		var r port.SaleRow
		if err := rows.Scan(&r.ID, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning sale: %w", err)
		}
		sales = append(sales, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales: %w", err)
	}
	return sales, nil
}

// ListSaleItems retorna todos los items de venta históricos
func (s *ReportPostgresSource) ListSaleItems(ctx context.Context) ([]port.SaleItemRow, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT sale_id, product_id, quantity, unit_price FROM sale_items`)
	if err != nil {
		return nil, fmt.Errorf("error querying sale_items: %w", err)
	}
	defer rows.Close()

	var items []port.SaleItemRow
	for rows.Next() {
		var r port.SaleItemRow
		if err := rows.Scan(&r.SaleID, &r.ProductID, &r.Quantity, &r.UnitPrice); err != nil {
			return nil, fmt.Errorf("error scanning sale_item: %w", err)
		}
		items = append(items, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale_items: %w", err)
	}
	return items, nil
}

// ListProducts retorna el catálogo vigente (los borrados ya no aparecen)
func (s *ReportPostgresSource) ListProducts(ctx context.Context) ([]port.ProductRow, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, cost_price FROM products`)
	if err != nil {
		return nil, fmt.Errorf("error querying products: %w", err)
	}
	defer rows.Close()

	var products []port.ProductRow
	for rows.Next() {
		var r port.ProductRow
		if err := rows.Scan(&r.ID, &r.Name, &r.CostPrice); err != nil {
			return nil, fmt.Errorf("error scanning product: %w", err)
		}
		products = append(products, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}
	return products, nil
}
