package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Filas mínimas que consume el agregador de reportes
// Son copias de lectura: el agregador nunca muta estado persistido

type SaleRow struct {
	ID        uuid.UUID
	CreatedAt time.Time
}

type SaleItemRow struct {
	SaleID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
}

type ProductRow struct {
	ID        uuid.UUID
	Name      string
	CostPrice decimal.Decimal
}

// ReportSource lecturas completas de las tres tablas fuente
// Si cualquiera de las tres falla, el reporte falla entero (sin parciales)
type ReportSource interface {
	ListSales(ctx context.Context) ([]SaleRow, error)
	ListSaleItems(ctx context.Context) ([]SaleItemRow, error)
	ListProducts(ctx context.Context) ([]ProductRow, error)
}
