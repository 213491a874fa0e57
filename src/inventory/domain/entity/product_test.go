package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct_Valid(t *testing.T) {
	product, err := NewProduct("  Café Molido  ", decimal.NewFromFloat(12.50), decimal.NewFromInt(8), 20, " 779123 ", "")

	require.NoError(t, err)
	assert.Equal(t, "Café Molido", product.Name)
	assert.Equal(t, "779123", product.Barcode)
	assert.Equal(t, 20, product.StockQuantity)
	assert.NotEqual(t, product.ID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestNewProduct_Validations(t *testing.T) {
	price := decimal.NewFromInt(10)
	cost := decimal.NewFromInt(5)

	_, err := NewProduct("   ", price, cost, 1, "", "")
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = NewProduct("A", decimal.NewFromInt(-1), cost, 1, "", "")
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = NewProduct("A", price, decimal.NewFromInt(-1), 1, "", "")
	assert.ErrorIs(t, err, ErrInvalidCostPrice)

	_, err = NewProduct("A", price, cost, -1, "", "")
	assert.ErrorIs(t, err, ErrInvalidStock)
}

func TestNewProduct_ZeroStockIsValid(t *testing.T) {
	product, err := NewProduct("Agotado", decimal.NewFromInt(10), decimal.NewFromInt(5), 0, "", "")

	require.NoError(t, err)
	assert.Equal(t, 0, product.StockQuantity)
}

func TestProduct_IsLowStock(t *testing.T) {
	product := &Product{StockQuantity: 5}

	assert.True(t, product.IsLowStock(5))
	assert.True(t, product.IsLowStock(10))
	assert.False(t, product.IsLowStock(4))
}
