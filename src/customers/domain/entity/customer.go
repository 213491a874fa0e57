package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrCustomerNameRequired = errors.New("name is required")
var ErrCustomerNotFound = errors.New("customer not found")

// Customer cliente registrado del negocio
// Teléfono, email y dirección son opcionales
type Customer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCustomer crea un cliente validado
func NewCustomer(name, phone, email, address string) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCustomerNameRequired
	}

	return &Customer{
		ID:        uuid.New(),
		Name:      name,
		Phone:     strings.TrimSpace(phone),
		Email:     strings.TrimSpace(email),
		Address:   strings.TrimSpace(address),
		CreatedAt: time.Now(),
	}, nil
}
