package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"smartpos/src/reports/application/response"
	"smartpos/src/reports/domain/port"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultFallbackCostRatio costo asumido cuando el producto de un item ya no
// existe: unit_price × 0.8. Es una heurística, no una garantía; mantenerla
// visible para los stakeholders
const DefaultFallbackCostRatio = 0.8

// UnknownProductName etiqueta del ranking para items cuyo producto fue borrado
const UnknownProductName = "Unknown Product"

// topProductsLimit tamaño máximo del ranking de más vendidos
const topProductsLimit = 5

// SalesReportUseCase deriva revenue del día, profit histórico y ranking de
// productos a partir del estado persistido. Función pura del estado: sin
// caches entre invocaciones, sin reintentos
type SalesReportUseCase struct {
	source            port.ReportSource
	fallbackCostRatio decimal.Decimal
	now               func() time.Time
}

// NewSalesReportUseCase crea una nueva instancia del caso de uso
// fallbackCostRatio <= 0 usa el default
func NewSalesReportUseCase(source port.ReportSource, fallbackCostRatio float64) *SalesReportUseCase {
	if fallbackCostRatio <= 0 {
		fallbackCostRatio = DefaultFallbackCostRatio
	}
	return &SalesReportUseCase{
		source:            source,
		fallbackCostRatio: decimal.NewFromFloat(fallbackCostRatio),
		now:               time.Now,
	}
}

// Execute genera el reporte completo
// Si cualquiera de las tres lecturas fuente falla, el reporte falla entero
func (uc *SalesReportUseCase) Execute(ctx context.Context) (*response.SalesReportResponse, error) {
	// ========================================================================
	// PASO 1: LEER LAS TRES FUENTES COMPLETAS
	// ========================================================================
	sales, err := uc.source.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading sales: %w", err)
	}

	items, err := uc.source.ListSaleItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading sale_items: %w", err)
	}

	products, err := uc.source.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading products: %w", err)
	}

	// ========================================================================
	// PASO 2: ÍNDICES DE LOOKUP (un pase por fuente, O(products+sales+items))
	// La fecha se compara por día calendario LOCAL, no UTC
	// ========================================================================
	todayStr := uc.now().Format("2006-01-02")

	productsByID := make(map[uuid.UUID]port.ProductRow, len(products))
	for _, p := range products {
		productsByID[p.ID] = p
	}

	saleDayByID := make(map[uuid.UUID]string, len(sales))
	for _, s := range sales {
		saleDayByID[s.ID] = s.CreatedAt.Local().Format("2006-01-02")
	}

	// ========================================================================
	// PASO 3: UN SOLO PASE SOBRE LOS ITEMS
	// ========================================================================
	todayRevenue := decimal.Zero
	totalProfit := decimal.Zero
	qtyByName := make(map[string]int)
	nameOrder := make([]string, 0)

	for _, item := range items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		saleValue := item.UnitPrice.Mul(qty)

		// Costo efectivo: cost_price si el producto sigue existiendo,
		// si no el fallback heurístico unit_price × ratio
		product, exists := productsByID[item.ProductID]
		var effectiveCost decimal.Decimal
		name := UnknownProductName
		if exists {
			effectiveCost = product.CostPrice
			name = product.Name
		} else {
			effectiveCost = item.UnitPrice.Mul(uc.fallbackCostRatio)
		}

		totalProfit = totalProfit.Add(saleValue.Sub(effectiveCost.Mul(qty)))

		if saleDayByID[item.SaleID] == todayStr {
			todayRevenue = todayRevenue.Add(saleValue)
		}

		if _, seen := qtyByName[name]; !seen {
			nameOrder = append(nameOrder, name)
		}
		qtyByName[name] += item.Quantity
	}

	// ========================================================================
	// PASO 4: RANKING TOP 5 (desempate estable por orden de aparición)
	// ========================================================================
	topProducts := make([]response.TopProduct, 0, len(nameOrder))
	for _, name := range nameOrder {
		topProducts = append(topProducts, response.TopProduct{
			Name:         name,
			QuantitySold: qtyByName[name],
		})
	}
	sort.SliceStable(topProducts, func(i, j int) bool {
		return topProducts[i].QuantitySold > topProducts[j].QuantitySold
	})
	if len(topProducts) > topProductsLimit {
		topProducts = topProducts[:topProductsLimit]
	}

	return &response.SalesReportResponse{
		TodayRevenue: todayRevenue,
		TotalProfit:  totalProfit,
		TotalOrders:  len(sales),
		TopProducts:  topProducts,
	}, nil
}
