package controller

import (
	"log"
	"net/http"

	"smartpos/src/reports/application/usecase"

	"github.com/gin-gonic/gin"
)

// ReportController maneja las peticiones HTTP para reportes
type ReportController struct {
	salesReportUC *usecase.SalesReportUseCase
}

// NewReportController crea una nueva instancia del controlador
func NewReportController(salesReportUC *usecase.SalesReportUseCase) *ReportController {
	return &ReportController{
		salesReportUC: salesReportUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *ReportController) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/reports")
	{
		reports.GET("/sales", c.SalesReport)
	}

	log.Println("Rutas Report disponibles:")
	log.Println("  GET    /api/v1/reports/sales")
}

// SalesReport genera el reporte de ventas bajo demanda
// Si alguna de las lecturas fuente falla no se muestran datos parciales
func (c *ReportController) SalesReport(ctx *gin.Context) {
	resp, err := c.salesReportUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error generating sales report: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error generating sales report",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
