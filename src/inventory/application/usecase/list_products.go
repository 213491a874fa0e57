package usecase

import (
	"context"

	"smartpos/src/inventory/domain/entity"
	"smartpos/src/inventory/domain/port"
)

// ListProductsUseCase caso de uso para listar el catálogo
type ListProductsUseCase struct {
	productRepo port.ProductRepository
}

// NewListProductsUseCase crea una nueva instancia del caso de uso
func NewListProductsUseCase(productRepo port.ProductRepository) *ListProductsUseCase {
	return &ListProductsUseCase{productRepo: productRepo}
}

// Execute retorna los productos, más nuevos primero
func (uc *ListProductsUseCase) Execute(ctx context.Context) ([]*entity.Product, error) {
	return uc.productRepo.List(ctx)
}
