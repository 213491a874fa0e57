package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"smartpos/src/customers/domain/entity"
	"smartpos/src/customers/domain/port"

	"github.com/google/uuid"
)

// CustomerPostgresRepository implementa CustomerRepository usando PostgreSQL
type CustomerPostgresRepository struct {
	db *sql.DB
}

// NewCustomerPostgresRepository crea una nueva instancia del repositorio
func NewCustomerPostgresRepository(db *sql.DB) port.CustomerRepository {
	return &CustomerPostgresRepository{db: db}
}

// Create inserta un cliente nuevo
func (r *CustomerPostgresRepository) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, phone, email, address, created_at)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		customer.ID,
		customer.Name,
		customer.Phone,
		customer.Email,
		customer.Address,
		customer.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error creating customer: %w", err)
	}
	return nil
}

// Delete borra un cliente
func (r *CustomerPostgresRepository) Delete(ctx context.Context, customerID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, customerID)
	if err != nil {
		return fmt.Errorf("error deleting customer: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking deleted rows: %w", err)
	}
	if affected == 0 {
		return entity.ErrCustomerNotFound
	}
	return nil
}

// List retorna todos los clientes, más nuevos primero
func (r *CustomerPostgresRepository) List(ctx context.Context) ([]*entity.Customer, error) {
	query := `
		SELECT id, name, COALESCE(phone, ''), COALESCE(email, ''), COALESCE(address, ''), created_at
		FROM customers
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying customers: %w", err)
	}
	defer rows.Close()

	var customers []*entity.Customer
	for rows.Next() {
		c := &entity.Customer{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customers: %w", err)
	}
	return customers, nil
}
