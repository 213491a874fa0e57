package port

import "smartpos/src/checkout/domain/entity"

// ReceiptPrinter colaborador externo de impresión/display del recibo
// Un fallo de impresión no invalida la venta ya persistida
type ReceiptPrinter interface {
	Print(receipt *entity.Receipt) error
}
