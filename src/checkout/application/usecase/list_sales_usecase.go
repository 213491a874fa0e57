package usecase

import (
	"context"

	"smartpos/src/checkout/application/response"
	"smartpos/src/checkout/domain/entity"
	"smartpos/src/checkout/domain/port"
)

// ListSalesUseCase lista las ventas recientes para la vista de actividad
type ListSalesUseCase struct {
	saleRepo port.SaleRepository
}

// NewListSalesUseCase crea una nueva instancia
func NewListSalesUseCase(saleRepo port.SaleRepository) *ListSalesUseCase {
	return &ListSalesUseCase{saleRepo: saleRepo}
}

// Execute retorna las últimas ventas en orden descendente de creación
func (uc *ListSalesUseCase) Execute(ctx context.Context, limit int) ([]*response.SaleListItem, error) {
	if limit <= 0 {
		limit = 50
	}
	sales, err := uc.saleRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return toListItems(sales), nil
}

func toListItems(sales []*entity.Sale) []*response.SaleListItem {
	items := make([]*response.SaleListItem, 0, len(sales))
	for _, s := range sales {
		items = append(items, &response.SaleListItem{
			ID:          s.ID,
			SaleNumber:  entity.ShortSaleNumber(s.ID.String()),
			TotalAmount: s.TotalAmount,
			TotalItems:  len(s.Items),
			CreatedAt:   s.CreatedAt,
		})
	}
	return items
}
