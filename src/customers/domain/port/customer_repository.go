package port

import (
	"context"

	"smartpos/src/customers/domain/entity"

	"github.com/google/uuid"
)

// CustomerRepository define los métodos para persistir clientes
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, customerID uuid.UUID) error
	List(ctx context.Context) ([]*entity.Customer, error)
}
