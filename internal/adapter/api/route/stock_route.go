package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/gestao-estoque/internal/adapter/api/controller"
	"github.com/hugohenrick/gestao-estoque/pkg/auth"
)

// RegisterStockRoutes registra as rotas do módulo de estoques
func RegisterStockRoutes(r *gin.RouterGroup, stockController *controller.StockController) {
	stocks := r.Group("/stocks")
	stocks.Use(auth.JWTAuthMiddleware())
	{
		stocks.POST("", stockController.Create)
		stocks.GET("", stockController.List)
		stocks.GET("/:id", stockController.Get)
		stocks.PUT("/:id", stockController.Update)
		stocks.DELETE("/:id", stockController.Delete)
		stocks.GET("/:id/report", stockController.Report)
		stocks.POST("/:id/products", stockController.AddProduct)
		stocks.DELETE("/:id/products/:product_id", stockController.RemoveProduct)
	}
}
