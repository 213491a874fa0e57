package controller

import (
	"errors"
	"log"
	"net/http"

	"smartpos/src/checkout/application/request"
	"smartpos/src/checkout/application/usecase"
	"smartpos/src/checkout/domain/entity"
	"smartpos/src/checkout/domain/port"
	"smartpos/src/checkout/infrastructure/cartstore"
	"smartpos/src/checkout/infrastructure/catalog"

	"github.com/gin-gonic/gin"
)

// CheckoutController maneja las peticiones HTTP del terminal POS
type CheckoutController struct {
	checkoutUC  *usecase.CheckoutUseCase
	listSalesUC *usecase.ListSalesUseCase
	carts       *cartstore.CartStore
	products    port.ProductCatalog
}

// NewCheckoutController crea una nueva instancia del controlador
func NewCheckoutController(
	checkoutUC *usecase.CheckoutUseCase,
	listSalesUC *usecase.ListSalesUseCase,
	carts *cartstore.CartStore,
	products port.ProductCatalog,
) *CheckoutController {
	return &CheckoutController{
		checkoutUC:  checkoutUC,
		listSalesUC: listSalesUC,
		carts:       carts,
		products:    products,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *CheckoutController) RegisterRoutes(router *gin.RouterGroup) {
	pos := router.Group("/pos")
	{
		pos.GET("/cart", c.GetCart)
		pos.POST("/cart/items", c.AddToCart)
		pos.DELETE("/cart", c.ClearCart)
		pos.POST("/checkout", c.Checkout)
		pos.GET("/sales", c.ListSales)
	}

	log.Println("Rutas POS disponibles:")
	log.Println("  GET    /api/v1/pos/cart")
	log.Println("  POST   /api/v1/pos/cart/items")
	log.Println("  DELETE /api/v1/pos/cart")
	log.Println("  POST   /api/v1/pos/checkout")
	log.Println("  GET    /api/v1/pos/sales")
}

// terminalID identifica el carrito de la sesión de caja
// Cada terminal físico manda su propio X-Terminal-ID
func terminalID(ctx *gin.Context) string {
	id := ctx.GetHeader("X-Terminal-ID")
	if id == "" {
		id = "default"
	}
	return id
}

// GetCart retorna el carrito activo del terminal
func (c *CheckoutController) GetCart(ctx *gin.Context) {
	cart := c.carts.Get(terminalID(ctx))
	ctx.JSON(http.StatusOK, gin.H{
		"state": cart.State(),
		"lines": cart.Lines(),
		"total": cart.Total(),
	})
}

// AddToCart agrega un producto al carrito del terminal
func (c *CheckoutController) AddToCart(ctx *gin.Context) {
	var req request.AddToCartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	qty := req.Quantity
	if qty == 0 {
		qty = 1
	}

	snap, err := c.products.FindByID(ctx.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		log.Printf("Error fetching product for cart: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	cart := c.carts.Get(terminalID(ctx))
	if err := cart.AddProduct(snap.ID, snap.Name, snap.Price, snap.StockQuantity, qty); err != nil {
		if errors.Is(err, entity.ErrProductOutOfStock) {
			// No-op sobre el carrito, se avisa al cajero
			ctx.JSON(http.StatusConflict, gin.H{"error": "Out of stock"})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"state": cart.State(),
		"lines": cart.Lines(),
		"total": cart.Total(),
	})
}

// ClearCart descarta el carrito del terminal (checkout abandonado)
func (c *CheckoutController) ClearCart(ctx *gin.Context) {
	c.carts.Reset(terminalID(ctx))
	ctx.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// Checkout convierte el carrito en una venta durable y retorna el recibo
func (c *CheckoutController) Checkout(ctx *gin.Context) {
	term := terminalID(ctx)
	cart := c.carts.Get(term)

	receipt, err := c.checkoutUC.Execute(ctx.Request.Context(), cart)
	if err != nil {
		log.Printf("Error processing checkout: %v", err)

		if errors.Is(err, entity.ErrEmptyCart) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		// Doble submit sobre la misma terminal: ya hay un commit en curso
		if errors.Is(err, entity.ErrCartAlreadyCommitted) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "Checkout already in progress"})
			return
		}

		// El carrito queda intacto para que el cajero pueda reintentar
		ctx.JSON(http.StatusBadGateway, gin.H{
			"error":   "Error processing sale",
			"details": err.Error(),
		})
		return
	}

	// Carrito nuevo para la próxima venta del terminal
	c.carts.Reset(term)

	ctx.JSON(http.StatusCreated, receipt)
}

// ListSales lista las ventas recientes
func (c *CheckoutController) ListSales(ctx *gin.Context) {
	if c.listSalesUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Sales list not available (database not configured)",
		})
		return
	}

	items, err := c.listSalesUC.Execute(ctx.Request.Context(), 50)
	if err != nil {
		log.Printf("Error listing sales: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total_count": len(items),
	})
}
