package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExpense_Valid(t *testing.T) {
	expense, err := NewExpense("Alquiler", decimal.NewFromInt(500), "Fijos", " local del frente ")

	require.NoError(t, err)
	assert.Equal(t, "Alquiler", expense.Title)
	assert.Equal(t, "Fijos", expense.Category)
	assert.Equal(t, "local del frente", expense.Description)
}

func TestNewExpense_DefaultCategory(t *testing.T) {
	expense, err := NewExpense("Bolsas", decimal.NewFromInt(20), "  ", "")

	require.NoError(t, err)
	assert.Equal(t, DefaultCategory, expense.Category)
}

func TestNewExpense_Validations(t *testing.T) {
	_, err := NewExpense("  ", decimal.NewFromInt(10), "", "")
	assert.ErrorIs(t, err, ErrExpenseTitleRequired)

	_, err = NewExpense("A", decimal.NewFromInt(-1), "", "")
	assert.ErrorIs(t, err, ErrInvalidExpenseAmount)
}
