package usecase

import (
	"context"
	"fmt"
	"log"

	"smartpos/src/checkout/domain/entity"
	"smartpos/src/checkout/domain/port"
	"smartpos/src/checkout/infrastructure/metrics"

	"github.com/google/uuid"
)

// BusinessNameProvider entrega el nombre del negocio para el recibo
type BusinessNameProvider interface {
	BusinessName() string
}

// CheckoutUseCase convierte un carrito en memoria en una venta durable:
// encabezado + items + descuentos de stock por producto
//
// Flujo transaccional con compensación:
// 1. Validar carrito (sin llamadas de persistencia si falla)
// 2. Persistir sale + sale_items en una transacción
// 3. Descontar stock atómicamente por cada línea
// 4. Si falla un descuento → reponer los descuentos anteriores y borrar la venta
// 5. Armar recibo, imprimir, vaciar el carrito
type CheckoutUseCase struct {
	saleRepo     port.SaleRepository
	stockGateway port.StockGateway
	printer      port.ReceiptPrinter
	business     BusinessNameProvider
}

// NewCheckoutUseCase crea una nueva instancia del caso de uso
func NewCheckoutUseCase(
	saleRepo port.SaleRepository,
	stockGateway port.StockGateway,
	printer port.ReceiptPrinter,
	business BusinessNameProvider,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		saleRepo:     saleRepo,
		stockGateway: stockGateway,
		printer:      printer,
		business:     business,
	}
}

// Execute ejecuta el checkout del carrito
// En caso de error las líneas del carrito quedan intactas y no hay reintento automático
func (uc *CheckoutUseCase) Execute(ctx context.Context, cart *entity.Cart) (*entity.Receipt, error) {
	// ========================================================================
	// PASO 1: VALIDAR CARRITO (antes de cualquier persistencia)
	// ========================================================================
	if err := cart.BeginCommit(); err != nil {
		return nil, err
	}

	lines := cart.Lines()
	log.Printf("🛒 Checkout - Items: %d", len(lines))

	// ========================================================================
	// PASO 2: CREAR AGGREGATE Y PERSISTIR SALE + SALE_ITEMS
	// El total se calcula del snapshot de precios del carrito
	// ========================================================================
	sale, err := entity.NewSaleFromCart(lines)
	if err != nil {
		cart.Fail()
		return nil, err
	}

	if err := uc.saleRepo.Create(ctx, sale); err != nil {
		cart.Fail()
		return nil, fmt.Errorf("error saving sale: %w", err)
	}

	log.Printf("💾 Sale created: ID=%s, Total=%s", sale.ID, sale.TotalAmount)

	// ========================================================================
	// PASO 3: DESCONTAR STOCK POR CADA LÍNEA
	// Cada descuento es atómico a nivel de fila; si uno falla se compensa
	// todo lo anterior para no dejar la venta aplicada a medias
	// ========================================================================
	decremented := make([]entity.CartLine, 0, len(lines))
	for _, line := range lines {
		if err := uc.stockGateway.Decrement(ctx, line.ProductID, line.Quantity); err != nil {
			log.Printf("❌ Stock decrement failed for product %s: %v", line.ProductID, err)
			uc.compensate(ctx, sale.ID, decremented, "stock_decrement_failed")
			cart.Fail()
			return nil, fmt.Errorf("error decrementing stock for product %s: %w", line.ProductID, err)
		}
		decremented = append(decremented, line)
	}

	// ========================================================================
	// PASO 4: RECIBO + IMPRESIÓN
	// ========================================================================
	businessName := "Smart POS"
	if uc.business != nil {
		businessName = uc.business.BusinessName()
	}
	receipt := entity.NewReceipt(sale, lines, businessName)

	if uc.printer != nil {
		if err := uc.printer.Print(receipt); err != nil {
			// La venta ya es durable: un fallo de impresión solo se registra
			log.Printf("⚠️  Receipt print failed for sale %s: %v", receipt.SaleNumber, err)
		}
	}

	cart.Complete()
	metrics.CheckoutsCompleted.Inc()
	log.Printf("✅ Checkout completed: Sale=%s, Items=%d, Total=%s", receipt.SaleNumber, len(lines), sale.TotalAmount)

	return receipt, nil
}

// compensate revierte los descuentos de stock ya aplicados y borra la venta
// Si una reposición falla se registra para auditoría manual; la compensación
// de las demás líneas continúa
func (uc *CheckoutUseCase) compensate(ctx context.Context, saleID uuid.UUID, decremented []entity.CartLine, reason string) {
	log.Printf("🔄 Compensating %d stock decrements. Reason: %s", len(decremented), reason)
	metrics.CheckoutCompensations.Inc()

	for _, line := range decremented {
		if err := uc.stockGateway.Restock(ctx, line.ProductID, line.Quantity); err != nil {
			log.Printf("❌ CRITICAL: Failed to restock product %s qty %d: %v", line.ProductID, line.Quantity, err)
			metrics.CompensationFailures.Inc()
		} else {
			log.Printf("✅ Restocked product %s qty %d", line.ProductID, line.Quantity)
		}
	}

	if err := uc.saleRepo.Delete(ctx, saleID); err != nil {
		log.Printf("❌ CRITICAL: Failed to delete sale %s during compensation: %v", saleID, err)
		metrics.CompensationFailures.Inc()
	}
}
