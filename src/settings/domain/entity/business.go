package entity

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrBusinessNameRequired = errors.New("business_name is required")

// DefaultBusinessName nombre usado mientras el dueño no configura el suyo
const DefaultBusinessName = "Smart POS"

// BusinessDetails perfil del negocio; el id es el del dueño de la cuenta
type BusinessDetails struct {
	ID           uuid.UUID `json:"id"`
	BusinessName string    `json:"business_name"`
}

// NewBusinessDetails crea un perfil validado
func NewBusinessDetails(id uuid.UUID, businessName string) (*BusinessDetails, error) {
	businessName = strings.TrimSpace(businessName)
	if businessName == "" {
		return nil, ErrBusinessNameRequired
	}
	return &BusinessDetails{
		ID:           id,
		BusinessName: businessName,
	}, nil
}
