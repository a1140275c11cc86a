package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/gestao-estoque/internal/adapter/api/controller"
	"github.com/hugohenrick/gestao-estoque/pkg/auth"
)

// RegisterAlertRoutes registra as rotas do módulo de alertas
func RegisterAlertRoutes(r *gin.RouterGroup, alertController *controller.AlertController) {
	alerts := r.Group("/alerts")
	alerts.Use(auth.JWTAuthMiddleware())
	{
		alerts.GET("", alertController.List)
		alerts.POST("/check-low-stock", alertController.CheckLowStock)
		alerts.GET("/:id", alertController.Get)
		alerts.PATCH("/:id/sent", alertController.MarkSent)
		alerts.PATCH("/:id/failed", alertController.MarkFailed)
	}
}
