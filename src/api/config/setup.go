package config

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIConfig configuración del módulo API (health check y versión)
type APIConfig struct {
	DB      *sql.DB
	Version string
}

// DefaultAPIConfig devuelve una configuración por defecto
func DefaultAPIConfig() APIConfig {
	return APIConfig{
		Version: "dev",
	}
}

// SetupAPIModule registra los endpoints de health en la raíz y bajo /api/v1
func SetupAPIModule(router *gin.Engine, v1 *gin.RouterGroup, cfg APIConfig) {
	handler := healthHandler(cfg)
	router.GET("/health", handler)
	v1.GET("/health", handler)
}

// healthHandler reporta el estado del servicio y la reachability de la DB
func healthHandler(cfg APIConfig) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbStatus := "disabled"
		if cfg.DB != nil {
			if err := cfg.DB.PingContext(ctx.Request.Context()); err != nil {
				dbStatus = "unreachable"
			} else {
				dbStatus = "ok"
			}
		}

		status := http.StatusOK
		if dbStatus == "unreachable" {
			status = http.StatusServiceUnavailable
		}

		ctx.JSON(status, gin.H{
			"status":   "up",
			"version":  cfg.Version,
			"database": dbStatus,
		})
	}
}
