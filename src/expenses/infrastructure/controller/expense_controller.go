package controller

import (
	"errors"
	"log"
	"net/http"

	"smartpos/src/expenses/application/usecase"
	"smartpos/src/expenses/domain/entity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest alta de gasto
type CreateExpenseRequest struct {
	Title       string          `json:"title" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Category    string          `json:"category,omitempty"`
	Description string          `json:"description,omitempty"`
}

// ExpenseController maneja las peticiones HTTP del registro de gastos
type ExpenseController struct {
	createUC *usecase.CreateExpenseUseCase
	listUC   *usecase.ListExpensesUseCase
	deleteUC *usecase.DeleteExpenseUseCase
}

// NewExpenseController crea una nueva instancia del controlador
func NewExpenseController(
	createUC *usecase.CreateExpenseUseCase,
	listUC *usecase.ListExpensesUseCase,
	deleteUC *usecase.DeleteExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		createUC: createUC,
		listUC:   listUC,
		deleteUC: deleteUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *ExpenseController) RegisterRoutes(router *gin.RouterGroup) {
	expenses := router.Group("/expenses")
	{
		expenses.GET("", c.ListExpenses)
		expenses.POST("", c.CreateExpense)
		expenses.DELETE("/:expense_id", c.DeleteExpense)
	}

	log.Println("Rutas Expense disponibles:")
	log.Println("  GET    /api/v1/expenses")
	log.Println("  POST   /api/v1/expenses")
	log.Println("  DELETE /api/v1/expenses/:expense_id")
}

// ListExpenses lista los gastos con su total
func (c *ExpenseController) ListExpenses(ctx *gin.Context) {
	expenses, total, err := c.listUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listing expenses: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":        expenses,
		"total_count":  len(expenses),
		"total_amount": total,
	})
}

// CreateExpense alta de gasto
func (c *ExpenseController) CreateExpense(ctx *gin.Context) {
	var req CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	expense, err := c.createUC.Execute(ctx.Request.Context(), req.Title, req.Amount, req.Category, req.Description)
	if err != nil {
		if errors.Is(err, entity.ErrExpenseTitleRequired) || errors.Is(err, entity.ErrInvalidExpenseAmount) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error creating expense: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, expense)
}

// DeleteExpense baja de gasto
func (c *ExpenseController) DeleteExpense(ctx *gin.Context) {
	expenseID, err := uuid.Parse(ctx.Param("expense_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense_id format"})
		return
	}

	if err := c.deleteUC.Execute(ctx.Request.Context(), expenseID); err != nil {
		if errors.Is(err, entity.ErrExpenseNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
			return
		}
		log.Printf("Error deleting expense: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
