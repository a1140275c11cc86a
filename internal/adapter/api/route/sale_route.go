package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/gestao-estoque/internal/adapter/api/controller"
	"github.com/hugohenrick/gestao-estoque/pkg/auth"
)

// RegisterSaleRoutes registra as rotas do módulo de vendas
func RegisterSaleRoutes(r *gin.RouterGroup, saleController *controller.SaleController) {
	sales := r.Group("/sales")
	sales.Use(auth.JWTAuthMiddleware())
	{
		sales.POST("", saleController.Register)
		sales.GET("", saleController.List)
		sales.GET("/report", saleController.Report)
		sales.GET("/:id", saleController.Get)
	}
}
