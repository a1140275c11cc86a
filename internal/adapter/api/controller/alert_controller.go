package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/gestao-estoque/internal/adapter/api/dto"
	alertdomain "github.com/hugohenrick/gestao-estoque/internal/domain/alert"
	"github.com/hugohenrick/gestao-estoque/internal/domain/valueobject"
	"github.com/hugohenrick/gestao-estoque/internal/usecase"
	"github.com/hugohenrick/gestao-estoque/pkg/logger"
)

// AlertController gerencia as requisições relacionadas a alertas
type AlertController struct {
	alertRepo     alertdomain.Repository
	checkLowStock *usecase.CheckLowStock
	logger        logger.Logger
}

// NewAlertController cria uma nova instância de AlertController
func NewAlertController(alertRepo alertdomain.Repository, checkLowStock *usecase.CheckLowStock, logger logger.Logger) *AlertController {
	return &AlertController{
		alertRepo:     alertRepo,
		checkLowStock: checkLowStock,
		logger:        logger,
	}
}

// List retorna a lista de alertas
// @Summary Listar alertas
// @Description Retorna a lista de alertas, com filtros opcionais por status e tipo
// @Tags alerts
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param status query string false "Filtrar por status"
// @Param type query string false "Filtrar por tipo"
// @Param product_id query string false "Filtrar por produto"
// @Success 200 {object} dto.AlertListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /alerts [get]
func (c *AlertController) List(ctx *gin.Context) {
	var (
		alerts []*alertdomain.Alert
		err    error
	)

	switch {
	case ctx.Query("status") != "":
		alerts, err = c.alertRepo.FindByStatus(ctx, alertdomain.Status(ctx.Query("status")))
	case ctx.Query("type") != "":
		alerts, err = c.alertRepo.FindByType(ctx, alertdomain.Type(ctx.Query("type")))
	case ctx.Query("product_id") != "":
		alerts, err = c.alertRepo.FindByProductID(ctx, ctx.Query("product_id"))
	default:
		alerts, err = c.alertRepo.FindAll(ctx)
	}

	if err != nil {
		c.logger.Error("erro ao listar alertas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar alertas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAlertListResponse(alerts))
}

// Get retorna um alerta pelo ID
// @Summary Buscar alerta
// @Description Retorna os dados de um alerta pelo ID
// @Tags alerts
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do alerta"
// @Success 200 {object} dto.AlertResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /alerts/{id} [get]
func (c *AlertController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	a, err := c.alertRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, alertdomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "alerta não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar alerta", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar alerta", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAlertResponse(a))
}

// CheckLowStock verifica os produtos abaixo do estoque mínimo e cria alertas
// @Summary Verificar estoque baixo
// @Description Varre os produtos abaixo do estoque mínimo e cria alertas pendentes
// @Tags alerts
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param check body dto.CheckLowStockRequest true "Destinatário dos alertas"
// @Success 200 {object} dto.CheckLowStockResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /alerts/check-low-stock [post]
func (c *AlertController) CheckLowStock(ctx *gin.Context) {
	var req dto.CheckLowStockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	resp, err := c.checkLowStock.Execute(ctx, usecase.CheckLowStockRequest{
		RecipientEmail: req.RecipientEmail,
	})
	if err != nil {
		if errors.Is(err, valueobject.ErrInvalidEmail) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "email inválido", err.Error()))
			return
		}
		c.logger.Error("erro ao verificar estoque baixo", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao verificar estoque baixo", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCheckLowStockResponse(resp))
}

// MarkSent registra o envio bem-sucedido de um alerta
// @Summary Marcar alerta como enviado
// @Description Registra o envio bem-sucedido de um alerta
// @Tags alerts
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do alerta"
// @Success 200 {object} dto.AlertResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /alerts/{id}/sent [patch]
func (c *AlertController) MarkSent(ctx *gin.Context) {
	c.mark(ctx, func(a *alertdomain.Alert) { a.MarkSent() })
}

// MarkFailed registra uma tentativa de envio malsucedida de um alerta
// @Summary Marcar tentativa de envio falha
// @Description Registra uma tentativa de envio malsucedida de um alerta
// @Tags alerts
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do alerta"
// @Success 200 {object} dto.AlertResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /alerts/{id}/failed [patch]
func (c *AlertController) MarkFailed(ctx *gin.Context) {
	c.mark(ctx, func(a *alertdomain.Alert) { a.MarkFailed() })
}

func (c *AlertController) mark(ctx *gin.Context, apply func(*alertdomain.Alert)) {
	id := ctx.Param("id")

	a, err := c.alertRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, alertdomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "alerta não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar alerta", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar alerta", err.Error()))
		return
	}

	apply(a)

	if err := c.alertRepo.Update(ctx, a); err != nil {
		c.logger.Error("erro ao atualizar alerta", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar alerta", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAlertResponse(a))
}
