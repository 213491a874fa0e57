package usecase

import (
	"context"
	"log"

	"smartpos/src/inventory/domain/port"

	"github.com/google/uuid"
)

// DeleteProductUseCase caso de uso para baja de productos
// Las ventas históricas del producto se conservan: los reportes usan un
// placeholder "Unknown Product" cuando el producto ya no existe
type DeleteProductUseCase struct {
	productRepo port.ProductRepository
}

// NewDeleteProductUseCase crea una nueva instancia del caso de uso
func NewDeleteProductUseCase(productRepo port.ProductRepository) *DeleteProductUseCase {
	return &DeleteProductUseCase{productRepo: productRepo}
}

// Execute borra el producto del catálogo
func (uc *DeleteProductUseCase) Execute(ctx context.Context, productID uuid.UUID) error {
	if err := uc.productRepo.Delete(ctx, productID); err != nil {
		return err
	}
	log.Printf("🗑️  Product deleted: ID=%s", productID)
	return nil
}
