package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrExpenseTitleRequired = errors.New("title is required")
	ErrInvalidExpenseAmount = errors.New("amount must be greater than or equal to 0")
	ErrExpenseNotFound      = errors.New("expense not found")
)

// DefaultCategory categoría por defecto de un gasto sin clasificar
const DefaultCategory = "General"

// Expense gasto operativo del negocio
type Expense struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `json:"date"`
}

// NewExpense crea un gasto validado
func NewExpense(title string, amount decimal.Decimal, category, description string) (*Expense, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrExpenseTitleRequired
	}
	if amount.LessThan(decimal.Zero) {
		return nil, ErrInvalidExpenseAmount
	}

	category = strings.TrimSpace(category)
	if category == "" {
		category = DefaultCategory
	}

	return &Expense{
		ID:          uuid.New(),
		Title:       title,
		Amount:      amount,
		Category:    category,
		Description: strings.TrimSpace(description),
		Date:        time.Now(),
	}, nil
}
