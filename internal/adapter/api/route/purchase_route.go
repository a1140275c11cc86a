package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/gestao-estoque/internal/adapter/api/controller"
	"github.com/hugohenrick/gestao-estoque/pkg/auth"
)

// RegisterPurchaseRoutes registra as rotas do módulo de ordens de compra
func RegisterPurchaseRoutes(r *gin.RouterGroup, purchaseController *controller.PurchaseController) {
	orders := r.Group("/purchase-orders")
	orders.Use(auth.JWTAuthMiddleware())
	{
		orders.POST("", purchaseController.Create)
		orders.GET("", purchaseController.List)
		orders.GET("/:id", purchaseController.Get)
		orders.PATCH("/:id/approve", purchaseController.Approve)
		orders.PATCH("/:id/ship", purchaseController.Ship)
		orders.PATCH("/:id/receive", purchaseController.Receive)
		orders.PATCH("/:id/cancel", purchaseController.Cancel)
	}
}
