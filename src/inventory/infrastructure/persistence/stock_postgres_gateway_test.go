package persistence

import (
	"context"
	"regexp"
	"testing"

	"smartpos/src/inventory/domain/entity"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockGateway_Decrement_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	productID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE products")).
		WithArgs(productID, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	gateway := NewStockPostgresGateway(db)
	err = gateway.Decrement(context.Background(), productID, 3)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStockGateway_Decrement_InsufficientStock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	productID := uuid.New()

	// El UPDATE condicional no toca ninguna fila: stock < qty o producto inexistente
	mock.ExpectExec(regexp.QuoteMeta("UPDATE products")).
		WithArgs(productID, 5).
		WillReturnResult(sqlmock.NewResult(0, 0))

	gateway := NewStockPostgresGateway(db)
	err = gateway.Decrement(context.Background(), productID, 5)

	assert.ErrorIs(t, err, entity.ErrInsufficientStock)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStockGateway_Decrement_RejectsNonPositiveQty(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	gateway := NewStockPostgresGateway(db)

	assert.ErrorIs(t, gateway.Decrement(context.Background(), uuid.New(), 0), entity.ErrInvalidStock)
	assert.ErrorIs(t, gateway.Decrement(context.Background(), uuid.New(), -1), entity.ErrInvalidStock)
}

func TestStockGateway_Restock_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	productID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE products")).
		WithArgs(productID, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	gateway := NewStockPostgresGateway(db)
	err = gateway.Restock(context.Background(), productID, 3)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStockGateway_Restock_ProductGone(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	productID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE products")).
		WithArgs(productID, 2).
		WillReturnResult(sqlmock.NewResult(0, 0))

	gateway := NewStockPostgresGateway(db)
	err = gateway.Restock(context.Background(), productID, 2)

	assert.ErrorIs(t, err, entity.ErrProductNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
