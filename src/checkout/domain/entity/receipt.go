package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptLine línea imprimible del recibo
type ReceiptLine struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// Receipt value object listo para imprimir
// SaleNumber es el UUID de la venta truncado a 8 caracteres para display
type Receipt struct {
	SaleNumber   string          `json:"sale_number"`
	BusinessName string          `json:"business_name"`
	Lines        []ReceiptLine   `json:"lines"`
	Total        decimal.Decimal `json:"total"`
	IssuedAt     string          `json:"issued_at"`
}

// NewReceipt arma el recibo a partir de la venta y las líneas del carrito
func NewReceipt(sale *Sale, lines []CartLine, businessName string) *Receipt {
	receiptLines := make([]ReceiptLine, 0, len(lines))
	for _, l := range lines {
		receiptLines = append(receiptLines, ReceiptLine{
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Subtotal:    l.Subtotal(),
		})
	}

	return &Receipt{
		SaleNumber:   ShortSaleNumber(sale.ID.String()),
		BusinessName: businessName,
		Lines:        receiptLines,
		Total:        sale.TotalAmount,
		IssuedAt:     sale.CreatedAt.Format(time.DateTime),
	}
}

// ShortSaleNumber trunca el id de venta a su forma corta de display
func ShortSaleNumber(saleID string) string {
	if len(saleID) > 8 {
		return saleID[:8]
	}
	return saleID
}
