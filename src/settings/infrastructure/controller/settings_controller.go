package controller

import (
	"errors"
	"log"
	"net/http"

	"smartpos/src/settings/domain/entity"
	"smartpos/src/settings/domain/port"
	"smartpos/src/settings/infrastructure/cache"
	"smartpos/src/settings/infrastructure/persistence"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UpdateSettingsRequest edición del perfil del negocio
type UpdateSettingsRequest struct {
	BusinessName string `json:"business_name" binding:"required"`
}

// SettingsController maneja las peticiones HTTP de configuración
type SettingsController struct {
	businessRepo  port.BusinessRepository
	businessCache *cache.BusinessCache
}

// NewSettingsController crea una nueva instancia del controlador
func NewSettingsController(businessRepo port.BusinessRepository, businessCache *cache.BusinessCache) *SettingsController {
	return &SettingsController{
		businessRepo:  businessRepo,
		businessCache: businessCache,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *SettingsController) RegisterRoutes(router *gin.RouterGroup) {
	settings := router.Group("/settings")
	{
		settings.GET("/business", c.GetBusiness)
		settings.PUT("/business", c.UpdateBusiness)
	}

	log.Println("Rutas Settings disponibles:")
	log.Println("  GET    /api/v1/settings/business")
	log.Println("  PUT    /api/v1/settings/business")
}

// GetBusiness retorna el perfil del negocio
func (c *SettingsController) GetBusiness(ctx *gin.Context) {
	details, err := c.businessRepo.Get(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, persistence.ErrBusinessNotConfigured) {
			ctx.JSON(http.StatusOK, gin.H{"business_name": entity.DefaultBusinessName})
			return
		}
		log.Printf("Error fetching business details: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, details)
}

// UpdateBusiness guarda el perfil y refresca el cache del recibo
func (c *SettingsController) UpdateBusiness(ctx *gin.Context) {
	var req UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	existing, err := c.businessRepo.Get(ctx.Request.Context())
	id := uuid.New()
	if err == nil {
		id = existing.ID
	} else if !errors.Is(err, persistence.ErrBusinessNotConfigured) {
		log.Printf("Error fetching business details: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	details, err := entity.NewBusinessDetails(id, req.BusinessName)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.businessRepo.Upsert(ctx.Request.Context(), details); err != nil {
		log.Printf("Error saving business details: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if c.businessCache != nil {
		c.businessCache.Set(details.BusinessName)
	}

	ctx.JSON(http.StatusOK, details)
}
