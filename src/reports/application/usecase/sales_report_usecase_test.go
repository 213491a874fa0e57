package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"smartpos/src/reports/domain/port"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReportSource retorna filas fijas o un error por tabla
type fakeReportSource struct {
	sales    []port.SaleRow
	items    []port.SaleItemRow
	products []port.ProductRow

	salesErr    error
	itemsErr    error
	productsErr error
}

func (f *fakeReportSource) ListSales(ctx context.Context) ([]port.SaleRow, error) {
	return f.sales, f.salesErr
}

func (f *fakeReportSource) ListSaleItems(ctx context.Context) ([]port.SaleItemRow, error) {
	return f.items, f.itemsErr
}

func (f *fakeReportSource) ListProducts(ctx context.Context) ([]port.ProductRow, error) {
	return f.products, f.productsErr
}

func reportAt(source *fakeReportSource, now time.Time) *SalesReportUseCase {
	uc := NewSalesReportUseCase(source, 0)
	uc.now = func() time.Time { return now }
	return uc
}

func TestSalesReport_RevenueAndProfit(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 30, 0, 0, time.Local)
	yesterday := now.AddDate(0, 0, -1)

	productID := uuid.New()
	saleToday := uuid.New()
	saleYesterday := uuid.New()

	source := &fakeReportSource{
		sales: []port.SaleRow{
			{ID: saleToday, CreatedAt: now.Add(-2 * time.Hour)},
			{ID: saleYesterday, CreatedAt: yesterday},
		},
		items: []port.SaleItemRow{
			{SaleID: saleToday, ProductID: productID, Quantity: 2, UnitPrice: decimal.NewFromInt(50)},
			{SaleID: saleYesterday, ProductID: productID, Quantity: 1, UnitPrice: decimal.NewFromInt(50)},
		},
		products: []port.ProductRow{
			{ID: productID, Name: "Café", CostPrice: decimal.NewFromInt(30)},
		},
	}

	report, err := reportAt(source, now).Execute(context.Background())

	require.NoError(t, err)
	// Solo la venta de hoy cuenta para revenue: 2 × 50
	assert.True(t, report.TodayRevenue.Equal(decimal.NewFromInt(100)),
		"today_revenue = %s", report.TodayRevenue)
	// Profit histórico sobre los 3 items vendidos: 3 × (50 - 30)
	assert.True(t, report.TotalProfit.Equal(decimal.NewFromInt(60)),
		"total_profit = %s", report.TotalProfit)
	assert.Equal(t, 2, report.TotalOrders)
}

func TestSalesReport_MidnightBoundaryIsLocalDay(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 10, 0, 0, time.Local)
	lateYesterday := time.Date(2026, 3, 14, 23, 50, 0, 0, time.Local)

	productID := uuid.New()
	saleID := uuid.New()

	source := &fakeReportSource{
		sales: []port.SaleRow{{ID: saleID, CreatedAt: lateYesterday}},
		items: []port.SaleItemRow{
			{SaleID: saleID, ProductID: productID, Quantity: 1, UnitPrice: decimal.NewFromInt(100)},
		},
		products: []port.ProductRow{{ID: productID, Name: "Pan", CostPrice: decimal.NewFromInt(60)}},
	}

	report, err := reportAt(source, now).Execute(context.Background())

	require.NoError(t, err)
	assert.True(t, report.TodayRevenue.IsZero(), "una venta de ayer 23:50 no es de hoy")
	assert.Equal(t, 1, report.TotalOrders, "pero sigue contando como orden histórica")
}

func TestSalesReport_DeletedProduct_FallbackCost(t *testing.T) {
	now := time.Now()
	saleID := uuid.New()

	source := &fakeReportSource{
		sales: []port.SaleRow{{ID: saleID, CreatedAt: now}},
		items: []port.SaleItemRow{
			// El producto ya no existe en el catálogo
			{SaleID: saleID, ProductID: uuid.New(), Quantity: 2, UnitPrice: decimal.NewFromInt(100)},
		},
	}

	report, err := reportAt(source, now).Execute(context.Background())

	require.NoError(t, err)
	// Costo asumido 100 × 0.8 = 80 → profit 2 × (100 - 80) = 40
	assert.True(t, report.TotalProfit.Equal(decimal.NewFromInt(40)),
		"total_profit = %s", report.TotalProfit)

	require.Len(t, report.TopProducts, 1)
	assert.Equal(t, UnknownProductName, report.TopProducts[0].Name)
	assert.Equal(t, 2, report.TopProducts[0].QuantitySold)
}

func TestSalesReport_TopProducts_BoundedAndStable(t *testing.T) {
	now := time.Now()
	saleID := uuid.New()

	names := []string{"A", "B", "C", "D", "E", "F", "G"}
	quantities := []int{7, 9, 3, 9, 1, 5, 9}

	source := &fakeReportSource{
		sales: []port.SaleRow{{ID: saleID, CreatedAt: now}},
	}
	for i, name := range names {
		productID := uuid.New()
		source.products = append(source.products, port.ProductRow{
			ID: productID, Name: name, CostPrice: decimal.NewFromInt(1),
		})
		source.items = append(source.items, port.SaleItemRow{
			SaleID: saleID, ProductID: productID, Quantity: quantities[i], UnitPrice: decimal.NewFromInt(2),
		})
	}

	report, err := reportAt(source, now).Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, report.TopProducts, 5, "el ranking se trunca a 5")

	// Empates en 9 conservan el orden de aparición: B antes que D antes que G
	got := make([]string, 0, 5)
	for _, p := range report.TopProducts {
		got = append(got, p.Name)
	}
	assert.Equal(t, []string{"B", "D", "G", "A", "F"}, got)
}

func TestSalesReport_EmptyState(t *testing.T) {
	report, err := reportAt(&fakeReportSource{}, time.Now()).Execute(context.Background())

	require.NoError(t, err)
	assert.True(t, report.TodayRevenue.IsZero())
	assert.True(t, report.TotalProfit.IsZero())
	assert.Equal(t, 0, report.TotalOrders)
	assert.Empty(t, report.TopProducts)
}

func TestSalesReport_AnySourceFailure_FailsWhole(t *testing.T) {
	dbErr := errors.New("connection refused")

	cases := []struct {
		name   string
		source *fakeReportSource
	}{
		{"sales", &fakeReportSource{salesErr: dbErr}},
		{"sale_items", &fakeReportSource{itemsErr: dbErr}},
		{"products", &fakeReportSource{productsErr: dbErr}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report, err := reportAt(tc.source, time.Now()).Execute(context.Background())
			assert.ErrorIs(t, err, dbErr)
			assert.Nil(t, report, "sin reportes parciales")
		})
	}
}
