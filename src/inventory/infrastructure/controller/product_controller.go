package controller

import (
	"errors"
	"log"
	"net/http"

	"smartpos/src/inventory/application/request"
	"smartpos/src/inventory/application/usecase"
	"smartpos/src/inventory/domain/entity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProductController maneja las peticiones HTTP del inventario
type ProductController struct {
	createUC  *usecase.CreateProductUseCase
	updateUC  *usecase.UpdateProductUseCase
	deleteUC  *usecase.DeleteProductUseCase
	listUC    *usecase.ListProductsUseCase
	barcodeUC *usecase.FindByBarcodeUseCase
}

// NewProductController crea una nueva instancia del controlador
func NewProductController(
	createUC *usecase.CreateProductUseCase,
	updateUC *usecase.UpdateProductUseCase,
	deleteUC *usecase.DeleteProductUseCase,
	listUC *usecase.ListProductsUseCase,
	barcodeUC *usecase.FindByBarcodeUseCase,
) *ProductController {
	return &ProductController{
		createUC:  createUC,
		updateUC:  updateUC,
		deleteUC:  deleteUC,
		listUC:    listUC,
		barcodeUC: barcodeUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *ProductController) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", c.ListProducts)
		products.POST("", c.CreateProduct)
		products.PUT("/:product_id", c.UpdateProduct)
		products.DELETE("/:product_id", c.DeleteProduct)
		products.GET("/barcode/:barcode", c.FindByBarcode)
	}

	log.Println("Rutas Inventory disponibles:")
	log.Println("  GET    /api/v1/products")
	log.Println("  POST   /api/v1/products")
	log.Println("  PUT    /api/v1/products/:product_id")
	log.Println("  DELETE /api/v1/products/:product_id")
	log.Println("  GET    /api/v1/products/barcode/:barcode")
}

// ListProducts lista el catálogo completo
func (c *ProductController) ListProducts(ctx *gin.Context) {
	products, err := c.listUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listing products: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       products,
		"total_count": len(products),
	})
}

// CreateProduct alta de producto
func (c *ProductController) CreateProduct(ctx *gin.Context) {
	var req request.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	product, err := c.createUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		log.Printf("Error creating product: %v", err)
		ctx.JSON(statusForValidation(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, product)
}

// UpdateProduct edición de producto
func (c *ProductController) UpdateProduct(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("product_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id format"})
		return
	}

	var req request.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	product, err := c.updateUC.Execute(ctx.Request.Context(), productID, &req)
	if err != nil {
		if errors.Is(err, entity.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		log.Printf("Error updating product: %v", err)
		ctx.JSON(statusForValidation(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// DeleteProduct baja de producto
func (c *ProductController) DeleteProduct(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("product_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id format"})
		return
	}

	if err := c.deleteUC.Execute(ctx.Request.Context(), productID); err != nil {
		if errors.Is(err, entity.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		log.Printf("Error deleting product: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// FindByBarcode resuelve un producto escaneado
func (c *ProductController) FindByBarcode(ctx *gin.Context) {
	product, err := c.barcodeUC.Execute(ctx.Request.Context(), ctx.Param("barcode"))
	if err != nil {
		if errors.Is(err, entity.ErrBarcodeNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "No product matches the barcode"})
			return
		}
		log.Printf("Error resolving barcode: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// statusForValidation distingue errores de validación de dominio de fallas internas
func statusForValidation(err error) int {
	switch {
	case errors.Is(err, entity.ErrNameRequired),
		errors.Is(err, entity.ErrInvalidPrice),
		errors.Is(err, entity.ErrInvalidCostPrice),
		errors.Is(err, entity.ErrInvalidStock):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
