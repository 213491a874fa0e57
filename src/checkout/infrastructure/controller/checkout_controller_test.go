package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"smartpos/src/checkout/application/usecase"
	"smartpos/src/checkout/domain/entity"
	"smartpos/src/checkout/domain/port"
	"smartpos/src/checkout/infrastructure/cartstore"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSaleRepo struct{}

func (stubSaleRepo) Create(ctx context.Context, sale *entity.Sale) error { return nil }
func (stubSaleRepo) Delete(ctx context.Context, saleID uuid.UUID) error  { return nil }
func (stubSaleRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Sale, error) {
	return nil, nil
}

type stubStockGateway struct{}

func (stubStockGateway) Decrement(ctx context.Context, productID uuid.UUID, qty int) error {
	return nil
}
func (stubStockGateway) Restock(ctx context.Context, productID uuid.UUID, qty int) error {
	return nil
}

type stubCatalog struct{}

func (stubCatalog) FindByID(ctx context.Context, productID uuid.UUID) (*port.ProductSnapshot, error) {
	return &port.ProductSnapshot{
		ID:            productID,
		Name:          "Café",
		Price:         decimal.NewFromInt(10),
		StockQuantity: 5,
	}, nil
}

func checkoutRouter(t *testing.T) (*gin.Engine, *cartstore.CartStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	carts := cartstore.NewCartStore()
	checkoutUC := usecase.NewCheckoutUseCase(stubSaleRepo{}, stubStockGateway{}, nil, nil)

	router := gin.New()
	ctrl := NewCheckoutController(checkoutUC, usecase.NewListSalesUseCase(stubSaleRepo{}), carts, stubCatalog{})
	ctrl.RegisterRoutes(router.Group("/api/v1"))

	return router, carts
}

func TestCheckout_EmptyCartReturns400(t *testing.T) {
	router, _ := checkoutRouter(t)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pos/checkout", nil)
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCheckout_CommitInProgressReturns409(t *testing.T) {
	router, carts := checkoutRouter(t)

	// Otro handler de la misma terminal ya arrancó el commit
	cart := carts.Get("caja-1")
	require.NoError(t, cart.AddProduct(uuid.New(), "Café", decimal.NewFromInt(10), 5, 1))
	require.NoError(t, cart.BeginCommit())

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pos/checkout", nil)
	req.Header.Set("X-Terminal-ID", "caja-1")
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusConflict, recorder.Code, "un doble submit no es una falla del upstream")
}
