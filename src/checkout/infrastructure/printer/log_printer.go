package printer

import (
	"log"

	"smartpos/src/checkout/domain/entity"
	"smartpos/src/checkout/domain/port"
)

// LogReceiptPrinter implementación de ReceiptPrinter que escribe el recibo
// al log del servicio; el display real lo maneja el front del terminal
type LogReceiptPrinter struct{}

// NewLogReceiptPrinter crea una nueva instancia
func NewLogReceiptPrinter() port.ReceiptPrinter {
	return &LogReceiptPrinter{}
}

// Print registra el recibo en el log
func (p *LogReceiptPrinter) Print(receipt *entity.Receipt) error {
	log.Printf("🖨️  Receipt #%s - %s - Total: %s (%d lines)",
		receipt.SaleNumber, receipt.BusinessName, receipt.Total, len(receipt.Lines))
	return nil
}
