package persistence

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"smartpos/src/checkout/domain/entity"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSale() *entity.Sale {
	saleID := uuid.New()
	return &entity.Sale{
		ID:          saleID,
		TotalAmount: decimal.NewFromInt(850),
		CreatedAt:   time.Now(),
		Items: []entity.SaleItem{
			{ID: uuid.New(), SaleID: saleID, ProductID: uuid.New(), Quantity: 3, UnitPrice: decimal.NewFromInt(250)},
			{ID: uuid.New(), SaleID: saleID, ProductID: uuid.New(), Quantity: 1, UnitPrice: decimal.NewFromInt(100)},
		},
	}
}

func TestSaleRepository_Create_CommitsHeaderAndItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sale := sampleSale()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sales")).
		WithArgs(sale.ID, sale.TotalAmount, sale.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	for _, item := range sale.Items {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sale_items")).
			WithArgs(item.ID, item.SaleID, item.ProductID, item.Quantity, item.UnitPrice).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	repo := NewSalePostgresRepository(db)
	err = repo.Create(context.Background(), sale)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRepository_Create_ItemFailureRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sale := sampleSale()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sales")).
		WithArgs(sale.ID, sale.TotalAmount, sale.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sale_items")).
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	repo := NewSalePostgresRepository(db)
	err = repo.Create(context.Background(), sale)

	assert.Error(t, err, "el encabezado no debe quedar sin sus items")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRepository_Delete_ItemsBeforeHeader(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	saleID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sale_items WHERE sale_id = $1")).
		WithArgs(saleID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sales WHERE id = $1")).
		WithArgs(saleID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewSalePostgresRepository(db)
	err = repo.Delete(context.Background(), saleID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRepository_ListRecent_LoadsItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	saleID := uuid.New()
	productID := uuid.New()
	createdAt := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, total_amount, created_at")).
		WithArgs(20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "total_amount", "created_at"}).
			AddRow(saleID, "850", createdAt))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, sale_id, product_id, quantity, unit_price")).
		WithArgs(saleID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "sale_id", "product_id", "quantity", "unit_price"}).
			AddRow(uuid.New(), saleID, productID, 3, "250"))

	repo := NewSalePostgresRepository(db)
	sales, err := repo.ListRecent(context.Background(), 20)

	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, saleID, sales[0].ID)
	assert.True(t, sales[0].TotalAmount.Equal(decimal.NewFromInt(850)))
	require.Len(t, sales[0].Items, 1)
	assert.Equal(t, 3, sales[0].Items[0].Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}
