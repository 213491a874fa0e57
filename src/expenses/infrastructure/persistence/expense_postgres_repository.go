package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"smartpos/src/expenses/domain/entity"
	"smartpos/src/expenses/domain/port"

	"github.com/google/uuid"
)

// ExpensePostgresRepository implementa ExpenseRepository usando PostgreSQL
type ExpensePostgresRepository struct {
	db *sql.DB
}

// NewExpensePostgresRepository crea una nueva instancia del repositorio
func NewExpensePostgresRepository(db *sql.DB) port.ExpenseRepository {
	return &ExpensePostgresRepository{db: db}
}

// Create inserta un gasto nuevo
func (r *ExpensePostgresRepository) Create(ctx context.Context, expense *entity.Expense) error {
	query := `
		INSERT INTO expenses (id, title, amount, category, description, date)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		expense.ID,
		expense.Title,
		expense.Amount,
		expense.Category,
		expense.Description,
		expense.Date,
	)
	if err != nil {
		return fmt.Errorf("error creating expense: %w", err)
	}
	return nil
}

// Delete borra un gasto
func (r *ExpensePostgresRepository) Delete(ctx context.Context, expenseID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, expenseID)
	if err != nil {
		return fmt.Errorf("error deleting expense: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking deleted rows: %w", err)
	}
	if affected == 0 {
		return entity.ErrExpenseNotFound
	}
	return nil
}

// List retorna todos los gastos, más recientes primero
func (r *ExpensePostgresRepository) List(ctx context.Context) ([]*entity.Expense, error) {
	query := `
		SELECT id, title, amount, category, COALESCE(description, ''), date
		FROM expenses
		ORDER BY date DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*entity.Expense
	for rows.Next() {
		e := &entity.Expense{}
		if err := rows.Scan(&e.ID, &e.Title, &e.Amount, &e.Category, &e.Description, &e.Date); err != nil {
			return nil, fmt.Errorf("error scanning expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}
	return expenses, nil
}
