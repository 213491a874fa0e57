package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale encabezado de una venta completada (Aggregate Root)
// Se crea exactamente una vez por checkout exitoso; nunca se muta ni borra
type Sale struct {
	ID          uuid.UUID       `json:"id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
	Items       []SaleItem      `json:"items"`
}

// SaleItem línea de una venta
// UnitPrice es el snapshot del precio capturado en el carrito, desacoplado
// intencionalmente del precio vigente del producto para que los reportes
// históricos sigan siendo exactos si el precio cambia después
type SaleItem struct {
	ID        uuid.UUID       `json:"id"`
	SaleID    uuid.UUID       `json:"sale_id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// NewSaleFromCart construye el aggregate Sale a partir de las líneas del carrito
// Invariante: TotalAmount == Σ (quantity × unit_price) de sus items
func NewSaleFromCart(lines []CartLine) (*Sale, error) {
	if len(lines) == 0 {
		return nil, ErrSaleMustHaveItems
	}

	saleID := uuid.New()
	total := decimal.Zero
	items := make([]SaleItem, 0, len(lines))

	for _, l := range lines {
		if l.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		total = total.Add(l.Subtotal())
		items = append(items, SaleItem{
			ID:        uuid.New(),
			SaleID:    saleID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}

	return &Sale{
		ID:          saleID,
		TotalAmount: total,
		CreatedAt:   time.Now(),
		Items:       items,
	}, nil
}
