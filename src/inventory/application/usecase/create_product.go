package usecase

import (
	"context"
	"fmt"
	"log"

	"smartpos/src/inventory/application/request"
	"smartpos/src/inventory/domain/entity"
	"smartpos/src/inventory/domain/port"
)

// CreateProductUseCase caso de uso para alta de productos
type CreateProductUseCase struct {
	productRepo port.ProductRepository
}

// NewCreateProductUseCase crea una nueva instancia del caso de uso
func NewCreateProductUseCase(productRepo port.ProductRepository) *CreateProductUseCase {
	return &CreateProductUseCase{productRepo: productRepo}
}

// Execute valida y persiste el producto nuevo
func (uc *CreateProductUseCase) Execute(ctx context.Context, req *request.CreateProductRequest) (*entity.Product, error) {
	product, err := entity.NewProduct(
		req.Name,
		req.Price,
		req.CostPrice,
		req.StockQuantity,
		req.Barcode,
		req.ImageURL,
	)
	if err != nil {
		return nil, err
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("error saving product: %w", err)
	}

	log.Printf("✅ Product created: ID=%s, Name=%s, Stock=%d", product.ID, product.Name, product.StockQuantity)
	return product, nil
}
