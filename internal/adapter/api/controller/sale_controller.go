package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/gestao-estoque/internal/adapter/api/dto"
	productdomain "github.com/hugohenrick/gestao-estoque/internal/domain/product"
	saledomain "github.com/hugohenrick/gestao-estoque/internal/domain/sale"
	"github.com/hugohenrick/gestao-estoque/internal/usecase"
	"github.com/hugohenrick/gestao-estoque/pkg/logger"
)

// SaleController gerencia as requisições relacionadas a vendas
type SaleController struct {
	saleRepo     saledomain.Repository
	registerSale *usecase.RegisterSale
	salesReport  *usecase.GenerateSalesReport
	logger       logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(saleRepo saledomain.Repository, registerSale *usecase.RegisterSale, salesReport *usecase.GenerateSalesReport, logger logger.Logger) *SaleController {
	return &SaleController{
		saleRepo:     saleRepo,
		registerSale: registerSale,
		salesReport:  salesReport,
		logger:       logger,
	}
}

// Register registra uma nova venda
// @Summary Registrar venda
// @Description Registra uma venda e baixa o estoque do produto
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param sale body dto.SaleRequest true "Dados da venda"
// @Success 201 {object} dto.RegisterSaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *SaleController) Register(ctx *gin.Context) {
	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	resp, err := c.registerSale.Execute(ctx, usecase.RegisterSaleRequest{
		ProductID:    req.ProductID,
		QuantitySold: req.Quantity,
		UnitPrice:    req.UnitPrice,
		CustomerID:   req.CustomerID,
		SellerID:     req.SellerID,
		Notes:        req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, productdomain.ErrNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
		case errors.Is(err, productdomain.ErrInactive):
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "produto inativo", err.Error()))
		case errors.Is(err, saledomain.ErrInsufficientStock):
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "estoque insuficiente", err.Error()))
		default:
			c.logger.Error("erro ao registrar venda", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao registrar venda", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRegisterSaleResponse(resp))
}

// Get retorna uma venda pelo ID
// @Summary Buscar venda
// @Description Retorna os dados de uma venda pelo ID
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [get]
func (c *SaleController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	s, err := c.saleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, saledomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(s))
}

// List retorna a lista de vendas
// @Summary Listar vendas
// @Description Retorna a lista de vendas, com filtro opcional por produto
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param product_id query string false "Filtrar por produto"
// @Success 200 {object} dto.SaleListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	var (
		sales []*saledomain.Sale
		err   error
	)

	if productID := ctx.Query("product_id"); productID != "" {
		sales, err = c.saleRepo.FindByProductID(ctx, productID)
	} else {
		sales, err = c.saleRepo.FindAll(ctx)
	}

	if err != nil {
		c.logger.Error("erro ao listar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales))
}

// Report monta o relatório de vendas de um período
// @Summary Relatório de vendas
// @Description Retorna o relatório de vendas de um período, com totais e agregação por produto
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param start query string true "Início do período (RFC 3339)"
// @Param end query string true "Fim do período (RFC 3339)"
// @Param product_id query string false "Filtrar por produto"
// @Success 200 {object} dto.SalesReportResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/report [get]
func (c *SaleController) Report(ctx *gin.Context) {
	start, err := time.Parse(time.RFC3339, ctx.Query("start"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "data inicial inválida", err.Error()))
		return
	}

	end, err := time.Parse(time.RFC3339, ctx.Query("end"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "data final inválida", err.Error()))
		return
	}

	resp, err := c.salesReport.Execute(ctx, usecase.GenerateSalesReportRequest{
		Start:     start,
		End:       end,
		ProductID: ctx.Query("product_id"),
	})
	if err != nil {
		c.logger.Error("erro ao gerar relatório de vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar relatório", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSalesReportResponse(resp))
}
