package usecase

import (
	"context"
	"fmt"
	"strings"

	"smartpos/src/inventory/application/request"
	"smartpos/src/inventory/domain/entity"
	"smartpos/src/inventory/domain/port"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UpdateProductUseCase caso de uso para edición de productos
type UpdateProductUseCase struct {
	productRepo port.ProductRepository
}

// NewUpdateProductUseCase crea una nueva instancia del caso de uso
func NewUpdateProductUseCase(productRepo port.ProductRepository) *UpdateProductUseCase {
	return &UpdateProductUseCase{productRepo: productRepo}
}

// Execute aplica la edición sobre el producto existente
func (uc *UpdateProductUseCase) Execute(ctx context.Context, productID uuid.UUID, req *request.UpdateProductRequest) (*entity.Product, error) {
	product, err := uc.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, entity.ErrNameRequired
	}
	if req.Price.LessThan(decimal.Zero) {
		return nil, entity.ErrInvalidPrice
	}
	if req.CostPrice.LessThan(decimal.Zero) {
		return nil, entity.ErrInvalidCostPrice
	}
	if req.StockQuantity < 0 {
		return nil, entity.ErrInvalidStock
	}

	product.Name = name
	product.Price = req.Price
	product.CostPrice = req.CostPrice
	product.StockQuantity = req.StockQuantity
	product.Barcode = strings.TrimSpace(req.Barcode)
	if req.ImageURL != "" {
		product.ImageURL = req.ImageURL
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("error updating product: %w", err)
	}

	return product, nil
}
