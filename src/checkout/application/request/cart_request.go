package request

import "github.com/google/uuid"

// AddToCartRequest request para agregar un producto al carrito de un terminal
type AddToCartRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity"` // Default: 1
}
