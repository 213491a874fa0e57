package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tipos de notificación del panel de inventario
const (
	TypeNewProduct = "new_product"
	TypeLowStock   = "low_stock"
)

// Notification aviso transitorio del panel (no se persiste)
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// NewNotification crea una notificación con timestamp actual
func NewNotification(title, message, notifType string) Notification {
	return Notification{
		ID:        uuid.New(),
		Title:     title,
		Message:   message,
		Type:      notifType,
		CreatedAt: time.Now(),
	}
}
