package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product producto del inventario
// Barcode es único por convención (no lo exige la base); ImageURL apunta al
// object store externo y puede estar vacío
type Product struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	StockQuantity int             `json:"stock_quantity"`
	Barcode       string          `json:"barcode,omitempty"`
	ImageURL      string          `json:"image_url,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// NewProduct crea un producto validado
func NewProduct(name string, price, costPrice decimal.Decimal, stockQuantity int, barcode, imageURL string) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if price.LessThan(decimal.Zero) {
		return nil, ErrInvalidPrice
	}
	if costPrice.LessThan(decimal.Zero) {
		return nil, ErrInvalidCostPrice
	}
	if stockQuantity < 0 {
		return nil, ErrInvalidStock
	}

	return &Product{
		ID:            uuid.New(),
		Name:          name,
		Price:         price,
		CostPrice:     costPrice,
		StockQuantity: stockQuantity,
		Barcode:       strings.TrimSpace(barcode),
		ImageURL:      imageURL,
		CreatedAt:     time.Now(),
	}, nil
}

// IsLowStock indica si el producto está por debajo del umbral de alerta
func (p *Product) IsLowStock(threshold int) bool {
	return p.StockQuantity <= threshold
}
