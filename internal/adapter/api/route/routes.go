package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/gestao-estoque/internal/adapter/api/controller"
)

// Controllers agrupa os controllers necessários para montar as rotas da API
type Controllers struct {
	Auth     *controller.AuthController
	User     *controller.UserController
	Product  *controller.ProductController
	Supplier *controller.SupplierController
	Sale     *controller.SaleController
	Purchase *controller.PurchaseController
	Alert    *controller.AlertController
	Stock    *controller.StockController
}

// RegisterRoutes registra todas as rotas da API sob o grupo base
func RegisterRoutes(r *gin.RouterGroup, c Controllers) {
	RegisterAuthRoutes(r, c.Auth)
	RegisterUserRoutes(r, c.User)
	RegisterProductRoutes(r, c.Product)
	RegisterSupplierRoutes(r, c.Supplier)
	RegisterSaleRoutes(r, c.Sale)
	RegisterPurchaseRoutes(r, c.Purchase)
	RegisterAlertRoutes(r, c.Alert)
	RegisterStockRoutes(r, c.Stock)
}
