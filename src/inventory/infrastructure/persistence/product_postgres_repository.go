package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"smartpos/src/inventory/domain/entity"
	"smartpos/src/inventory/domain/port"

	"github.com/google/uuid"
)

// ProductPostgresRepository implementa ProductRepository usando PostgreSQL
type ProductPostgresRepository struct {
	db *sql.DB
}

// NewProductPostgresRepository crea una nueva instancia del repositorio
func NewProductPostgresRepository(db *sql.DB) port.ProductRepository {
	return &ProductPostgresRepository{db: db}
}

const productColumns = `id, name, price, cost_price, stock_quantity, COALESCE(barcode, ''), COALESCE(image_url, ''), created_at`

// Create inserta un producto nuevo
func (r *ProductPostgresRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, price, cost_price, stock_quantity, barcode, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.Name,
		product.Price,
		product.CostPrice,
		product.StockQuantity,
		product.Barcode,
		product.ImageURL,
		product.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error creating product: %w", err)
	}
	return nil
}

// Update reemplaza los campos editables del producto
func (r *ProductPostgresRepository) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, price = $3, cost_price = $4, stock_quantity = $5,
			barcode = NULLIF($6, ''), image_url = NULLIF($7, '')
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.Name,
		product.Price,
		product.CostPrice,
		product.StockQuantity,
		product.Barcode,
		product.ImageURL,
	)
	if err != nil {
		return fmt.Errorf("error updating product: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking updated rows: %w", err)
	}
	if affected == 0 {
		return entity.ErrProductNotFound
	}
	return nil
}

// Delete borra el producto; las ventas históricas no se tocan
func (r *ProductPostgresRepository) Delete(ctx context.Context, productID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, productID)
	if err != nil {
		return fmt.Errorf("error deleting product: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking deleted rows: %w", err)
	}
	if affected == 0 {
		return entity.ErrProductNotFound
	}
	return nil
}

// FindByID busca un producto por id
func (r *ProductPostgresRepository) FindByID(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, productID), entity.ErrProductNotFound)
}

// FindByBarcode busca un producto por código de barras exacto
func (r *ProductPostgresRepository) FindByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE barcode = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, barcode), entity.ErrBarcodeNotFound)
}

// List retorna el catálogo completo, más nuevos primero
func (r *ProductPostgresRepository) List(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		p := &entity.Product{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.CostPrice, &p.StockQuantity, &p.Barcode, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning product: %w", err)
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}
	return products, nil
}

func (r *ProductPostgresRepository) scanOne(row *sql.Row, notFound error) (*entity.Product, error) {
	p := &entity.Product{}
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.CostPrice, &p.StockQuantity, &p.Barcode, &p.ImageURL, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, notFound
	}
	if err != nil {
		return nil, fmt.Errorf("error scanning product: %w", err)
	}
	return p, nil
}
