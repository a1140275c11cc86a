package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/gestao-estoque/internal/adapter/api/controller"
	"github.com/hugohenrick/gestao-estoque/pkg/auth"
)

// RegisterAuthRoutes registra as rotas de autenticação
func RegisterAuthRoutes(r *gin.RouterGroup, authController *controller.AuthController) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", authController.Login)
		authGroup.POST("/refresh", authController.Refresh)
		authGroup.GET("/me", auth.JWTAuthMiddleware(), authController.Me)
	}
}
