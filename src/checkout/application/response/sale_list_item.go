package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleListItem fila de la lista de ventas recientes
type SaleListItem struct {
	ID          uuid.UUID       `json:"id"`
	SaleNumber  string          `json:"sale_number"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	TotalItems  int             `json:"total_items"`
	CreatedAt   time.Time       `json:"created_at"`
}
