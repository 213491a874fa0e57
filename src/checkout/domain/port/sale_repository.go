package port

import (
	"context"

	"smartpos/src/checkout/domain/entity"

	"github.com/google/uuid"
)

// SaleRepository define el contrato para persistir ventas
// Create inserta el encabezado y sus items en una sola transacción
// Delete existe únicamente para compensar un checkout fallido
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, saleID uuid.UUID) error
	ListRecent(ctx context.Context, limit int) ([]*entity.Sale, error)
}
