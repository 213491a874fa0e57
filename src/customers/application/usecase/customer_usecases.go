package usecase

import (
	"context"
	"fmt"

	"smartpos/src/customers/domain/entity"
	"smartpos/src/customers/domain/port"

	"github.com/google/uuid"
)

// CreateCustomerUseCase alta de cliente
type CreateCustomerUseCase struct {
	customerRepo port.CustomerRepository
}

// NewCreateCustomerUseCase crea una nueva instancia
func NewCreateCustomerUseCase(customerRepo port.CustomerRepository) *CreateCustomerUseCase {
	return &CreateCustomerUseCase{customerRepo: customerRepo}
}

// Execute valida y persiste el cliente
func (uc *CreateCustomerUseCase) Execute(ctx context.Context, name, phone, email, address string) (*entity.Customer, error) {
	customer, err := entity.NewCustomer(name, phone, email, address)
	if err != nil {
		return nil, err
	}
	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("error saving customer: %w", err)
	}
	return customer, nil
}

// ListCustomersUseCase lista de clientes, más nuevos primero
type ListCustomersUseCase struct {
	customerRepo port.CustomerRepository
}

// NewListCustomersUseCase crea una nueva instancia
func NewListCustomersUseCase(customerRepo port.CustomerRepository) *ListCustomersUseCase {
	return &ListCustomersUseCase{customerRepo: customerRepo}
}

// Execute retorna todos los clientes
func (uc *ListCustomersUseCase) Execute(ctx context.Context) ([]*entity.Customer, error) {
	return uc.customerRepo.List(ctx)
}

// DeleteCustomerUseCase baja de cliente
type DeleteCustomerUseCase struct {
	customerRepo port.CustomerRepository
}

// NewDeleteCustomerUseCase crea una nueva instancia
func NewDeleteCustomerUseCase(customerRepo port.CustomerRepository) *DeleteCustomerUseCase {
	return &DeleteCustomerUseCase{customerRepo: customerRepo}
}

// Execute borra el cliente
func (uc *DeleteCustomerUseCase) Execute(ctx context.Context, customerID uuid.UUID) error {
	return uc.customerRepo.Delete(ctx, customerID)
}
