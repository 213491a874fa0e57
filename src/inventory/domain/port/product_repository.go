package port

import (
	"context"

	"smartpos/src/inventory/domain/entity"

	"github.com/google/uuid"
)

// ProductRepository define los métodos para persistir productos
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, productID uuid.UUID) error
	FindByID(ctx context.Context, productID uuid.UUID) (*entity.Product, error)
	FindByBarcode(ctx context.Context, barcode string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
}
