package controller

import (
	"errors"
	"log"
	"net/http"

	"smartpos/src/customers/application/usecase"
	"smartpos/src/customers/domain/entity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateCustomerRequest alta de cliente
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// CustomerController maneja las peticiones HTTP del registro de clientes
type CustomerController struct {
	createUC *usecase.CreateCustomerUseCase
	listUC   *usecase.ListCustomersUseCase
	deleteUC *usecase.DeleteCustomerUseCase
}

// NewCustomerController crea una nueva instancia del controlador
func NewCustomerController(
	createUC *usecase.CreateCustomerUseCase,
	listUC *usecase.ListCustomersUseCase,
	deleteUC *usecase.DeleteCustomerUseCase,
) *CustomerController {
	return &CustomerController{
		createUC: createUC,
		listUC:   listUC,
		deleteUC: deleteUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *CustomerController) RegisterRoutes(router *gin.RouterGroup) {
	customers := router.Group("/customers")
	{
		customers.GET("", c.ListCustomers)
		customers.POST("", c.CreateCustomer)
		customers.DELETE("/:customer_id", c.DeleteCustomer)
	}

	log.Println("Rutas Customer disponibles:")
	log.Println("  GET    /api/v1/customers")
	log.Println("  POST   /api/v1/customers")
	log.Println("  DELETE /api/v1/customers/:customer_id")
}

// ListCustomers lista todos los clientes
func (c *CustomerController) ListCustomers(ctx *gin.Context) {
	customers, err := c.listUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listing customers: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       customers,
		"total_count": len(customers),
	})
}

// CreateCustomer alta de cliente
func (c *CustomerController) CreateCustomer(ctx *gin.Context) {
	var req CreateCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	customer, err := c.createUC.Execute(ctx.Request.Context(), req.Name, req.Phone, req.Email, req.Address)
	if err != nil {
		if errors.Is(err, entity.ErrCustomerNameRequired) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error creating customer: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, customer)
}

// DeleteCustomer baja de cliente
func (c *CustomerController) DeleteCustomer(ctx *gin.Context) {
	customerID, err := uuid.Parse(ctx.Param("customer_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer_id format"})
		return
	}

	if err := c.deleteUC.Execute(ctx.Request.Context(), customerID); err != nil {
		if errors.Is(err, entity.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		log.Printf("Error deleting customer: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
