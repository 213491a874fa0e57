package response

import "github.com/shopspring/decimal"

// TopProduct entrada del ranking de más vendidos
type TopProduct struct {
	Name         string `json:"name"`
	QuantitySold int    `json:"quantity_sold"`
}

// SalesReportResponse snapshot derivado de ventas históricas
// Se recalcula bajo demanda, nunca se persiste
type SalesReportResponse struct {
	TodayRevenue decimal.Decimal `json:"today_revenue"`
	TotalProfit  decimal.Decimal `json:"total_profit"`
	TotalOrders  int             `json:"total_orders"`
	TopProducts  []TopProduct    `json:"top_products"`
}
