package usecase

import (
	"context"
	"fmt"

	"smartpos/src/expenses/domain/entity"
	"smartpos/src/expenses/domain/port"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateExpenseUseCase alta de gasto
type CreateExpenseUseCase struct {
	expenseRepo port.ExpenseRepository
}

// NewCreateExpenseUseCase crea una nueva instancia
func NewCreateExpenseUseCase(expenseRepo port.ExpenseRepository) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{expenseRepo: expenseRepo}
}

// Execute valida y persiste el gasto
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, title string, amount decimal.Decimal, category, description string) (*entity.Expense, error) {
	expense, err := entity.NewExpense(title, amount, category, description)
	if err != nil {
		return nil, err
	}
	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("error saving expense: %w", err)
	}
	return expense, nil
}

// ListExpensesUseCase lista de gastos con su total acumulado
type ListExpensesUseCase struct {
	expenseRepo port.ExpenseRepository
}

// NewListExpensesUseCase crea una nueva instancia
func NewListExpensesUseCase(expenseRepo port.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{expenseRepo: expenseRepo}
}

// Execute retorna los gastos (más recientes primero) y la suma total
func (uc *ListExpensesUseCase) Execute(ctx context.Context) ([]*entity.Expense, decimal.Decimal, error) {
	expenses, err := uc.expenseRepo.List(ctx)
	if err != nil {
		return nil, decimal.Zero, err
	}

	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return expenses, total, nil
}

// DeleteExpenseUseCase baja de gasto
type DeleteExpenseUseCase struct {
	expenseRepo port.ExpenseRepository
}

// NewDeleteExpenseUseCase crea una nueva instancia
func NewDeleteExpenseUseCase(expenseRepo port.ExpenseRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{expenseRepo: expenseRepo}
}

// Execute borra el gasto
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, expenseID uuid.UUID) error {
	return uc.expenseRepo.Delete(ctx, expenseID)
}
