package usecase

import (
	"context"
	"strings"

	"smartpos/src/inventory/domain/entity"
	"smartpos/src/inventory/domain/port"
)

// FindByBarcodeUseCase resolución de producto por código de barras
// Es el camino del escáner del terminal: un match agrega directo al carrito
type FindByBarcodeUseCase struct {
	productRepo port.ProductRepository
}

// NewFindByBarcodeUseCase crea una nueva instancia del caso de uso
func NewFindByBarcodeUseCase(productRepo port.ProductRepository) *FindByBarcodeUseCase {
	return &FindByBarcodeUseCase{productRepo: productRepo}
}

// Execute busca el producto cuyo barcode coincide exactamente
func (uc *FindByBarcodeUseCase) Execute(ctx context.Context, barcode string) (*entity.Product, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return nil, entity.ErrBarcodeNotFound
	}
	return uc.productRepo.FindByBarcode(ctx, barcode)
}
