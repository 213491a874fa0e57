package port

import (
	"context"

	"smartpos/src/expenses/domain/entity"

	"github.com/google/uuid"
)

// ExpenseRepository define los métodos para persistir gastos
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	Delete(ctx context.Context, expenseID uuid.UUID) error
	List(ctx context.Context) ([]*entity.Expense, error)
}
