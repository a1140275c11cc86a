package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hugohenrick/gestao-estoque/internal/adapter/api/controller"
	"github.com/hugohenrick/gestao-estoque/internal/adapter/api/route"
	"github.com/hugohenrick/gestao-estoque/internal/adapter/repository"
	"github.com/hugohenrick/gestao-estoque/internal/infrastructure/database"
	"github.com/hugohenrick/gestao-estoque/internal/usecase"
	"github.com/hugohenrick/gestao-estoque/pkg/auth"
	"github.com/hugohenrick/gestao-estoque/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	db     *pgxpool.Pool
	logger logger.Logger
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	log := logger.NewLogger()

	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}

	jwtService, err := auth.NewJWTService()
	if err != nil {
		return nil, err
	}

	// Repositórios
	productRepo := repository.NewProductRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	purchaseRepo := repository.NewPurchaseOrderRepository(db)
	alertRepo := repository.NewAlertRepository(db)
	stockRepo := repository.NewStockRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Casos de uso
	createProduct := usecase.NewCreateProduct(productRepo)
	updateStock := usecase.NewUpdateProductStock(productRepo)
	registerSale := usecase.NewRegisterSale(productRepo, saleRepo)
	salesReport := usecase.NewGenerateSalesReport(saleRepo, productRepo)
	createOrder := usecase.NewCreatePurchaseOrder(purchaseRepo, supplierRepo, productRepo)
	receiveOrder := usecase.NewReceivePurchaseOrder(purchaseRepo, productRepo, alertRepo, log)
	checkLowStock := usecase.NewCheckLowStock(productRepo, alertRepo, log)

	// Controllers
	controllers := route.Controllers{
		Auth:     controller.NewAuthController(userRepo, jwtService, log),
		User:     controller.NewUserController(userRepo, log),
		Product:  controller.NewProductController(productRepo, createProduct, updateStock, log),
		Supplier: controller.NewSupplierController(supplierRepo, log),
		Sale:     controller.NewSaleController(saleRepo, registerSale, salesReport, log),
		Purchase: controller.NewPurchaseController(purchaseRepo, createOrder, receiveOrder, log),
		Alert:    controller.NewAlertController(alertRepo, checkLowStock, log),
		Stock:    controller.NewStockController(stockRepo, productRepo, log),
	}

	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api/v1")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.RegisterRoutes(api, controllers)

	return &App{
		router: router,
		db:     db,
		logger: log,
	}, nil
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("iniciando servidor HTTP", "port", port)
	return a.router.Run(":" + port)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
