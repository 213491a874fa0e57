package port

import (
	"context"

	"github.com/google/uuid"
)

// StockGateway define el contrato para mutar el stock de productos
// Decrement es la única mutación atómica del sistema: descuenta sobre una sola
// fila y rechaza la operación si dejaría el stock en negativo
// Restock revierte un descuento ya aplicado (compensación)
type StockGateway interface {
	Decrement(ctx context.Context, productID uuid.UUID, qty int) error
	Restock(ctx context.Context, productID uuid.UUID, qty int) error
}
