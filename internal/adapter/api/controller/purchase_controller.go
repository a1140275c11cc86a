package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/gestao-estoque/internal/adapter/api/dto"
	productdomain "github.com/hugohenrick/gestao-estoque/internal/domain/product"
	purchasedomain "github.com/hugohenrick/gestao-estoque/internal/domain/purchase"
	supplierdomain "github.com/hugohenrick/gestao-estoque/internal/domain/supplier"
	"github.com/hugohenrick/gestao-estoque/internal/usecase"
	"github.com/hugohenrick/gestao-estoque/pkg/logger"
)

// PurchaseController gerencia as requisições relacionadas a ordens de compra
type PurchaseController struct {
	purchaseRepo purchasedomain.Repository
	createOrder  *usecase.CreatePurchaseOrder
	receiveOrder *usecase.ReceivePurchaseOrder
	logger       logger.Logger
}

// NewPurchaseController cria uma nova instância de PurchaseController
func NewPurchaseController(purchaseRepo purchasedomain.Repository, createOrder *usecase.CreatePurchaseOrder, receiveOrder *usecase.ReceivePurchaseOrder, logger logger.Logger) *PurchaseController {
	return &PurchaseController{
		purchaseRepo: purchaseRepo,
		createOrder:  createOrder,
		receiveOrder: receiveOrder,
		logger:       logger,
	}
}

// Create cria uma nova ordem de compra
// @Summary Criar ordem de compra
// @Description Cria uma ordem de compra pendente junto a um fornecedor
// @Tags purchase-orders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param order body dto.PurchaseOrderRequest true "Dados da ordem"
// @Success 201 {object} dto.PurchaseOrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /purchase-orders [post]
func (c *PurchaseController) Create(ctx *gin.Context) {
	var req dto.PurchaseOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	items := make([]usecase.PurchaseOrderItemRequest, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.PurchaseOrderItemRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	resp, err := c.createOrder.Execute(ctx, usecase.CreatePurchaseOrderRequest{
		SupplierID: req.SupplierID,
		Items:      items,
		Notes:      req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, supplierdomain.ErrNotFound), errors.Is(err, productdomain.ErrNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "registro não encontrado", err.Error()))
		case errors.Is(err, supplierdomain.ErrInactive):
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "fornecedor inativo", err.Error()))
		default:
			c.logger.Error("erro ao criar ordem de compra", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao criar ordem de compra", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPurchaseOrderResponse(resp.Order))
}

// Get retorna uma ordem de compra pelo ID
// @Summary Buscar ordem de compra
// @Description Retorna os dados de uma ordem de compra pelo ID
// @Tags purchase-orders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da ordem"
// @Success 200 {object} dto.PurchaseOrderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /purchase-orders/{id} [get]
func (c *PurchaseController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	o, err := c.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, purchasedomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "ordem de compra não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar ordem de compra", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar ordem de compra", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchaseOrderResponse(o))
}

// List retorna a lista de ordens de compra
// @Summary Listar ordens de compra
// @Description Retorna a lista de ordens de compra, com filtros opcionais
// @Tags purchase-orders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param status query string false "Filtrar por status"
// @Param supplier_id query string false "Filtrar por fornecedor"
// @Success 200 {object} dto.PurchaseOrderListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /purchase-orders [get]
func (c *PurchaseController) List(ctx *gin.Context) {
	var (
		orders []*purchasedomain.Order
		err    error
	)

	switch {
	case ctx.Query("status") != "":
		orders, err = c.purchaseRepo.FindByStatus(ctx, purchasedomain.Status(ctx.Query("status")))
	case ctx.Query("supplier_id") != "":
		orders, err = c.purchaseRepo.FindBySupplierID(ctx, ctx.Query("supplier_id"))
	default:
		orders, err = c.purchaseRepo.FindAll(ctx)
	}

	if err != nil {
		c.logger.Error("erro ao listar ordens de compra", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar ordens de compra", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchaseOrderListResponse(orders))
}

// Approve aprova uma ordem de compra pendente
// @Summary Aprovar ordem de compra
// @Description Aprova uma ordem de compra pendente
// @Tags purchase-orders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da ordem"
// @Success 200 {object} dto.PurchaseOrderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /purchase-orders/{id}/approve [patch]
func (c *PurchaseController) Approve(ctx *gin.Context) {
	c.transition(ctx, func(o *purchasedomain.Order) error { return o.Approve() })
}

// Ship marca uma ordem aprovada como enviada
// @Summary Enviar ordem de compra
// @Description Marca uma ordem aprovada como enviada pelo fornecedor
// @Tags purchase-orders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da ordem"
// @Success 200 {object} dto.PurchaseOrderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /purchase-orders/{id}/ship [patch]
func (c *PurchaseController) Ship(ctx *gin.Context) {
	c.transition(ctx, func(o *purchasedomain.Order) error { return o.Ship() })
}

// Cancel cancela uma ordem que ainda não foi recebida
// @Summary Cancelar ordem de compra
// @Description Cancela uma ordem que ainda não foi recebida
// @Tags purchase-orders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da ordem"
// @Success 200 {object} dto.PurchaseOrderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /purchase-orders/{id}/cancel [patch]
func (c *PurchaseController) Cancel(ctx *gin.Context) {
	c.transition(ctx, func(o *purchasedomain.Order) error { return o.Cancel() })
}

// Receive marca uma ordem enviada como recebida e soma as quantidades ao estoque
// @Summary Receber ordem de compra
// @Description Recebe uma ordem enviada, soma o estoque e cria alertas de chegada
// @Tags purchase-orders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da ordem"
// @Param receive body dto.ReceivePurchaseOrderRequest true "Destinatário dos alertas"
// @Success 200 {object} dto.PurchaseOrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /purchase-orders/{id}/receive [patch]
func (c *PurchaseController) Receive(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.ReceivePurchaseOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	resp, err := c.receiveOrder.Execute(ctx, usecase.ReceivePurchaseOrderRequest{
		OrderID:        id,
		RecipientEmail: req.RecipientEmail,
	})
	if err != nil {
		switch {
		case errors.Is(err, purchasedomain.ErrNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "ordem de compra não encontrada", err.Error()))
		case errors.Is(err, purchasedomain.ErrNotShippedReceive):
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "transição de status inválida", err.Error()))
		default:
			c.logger.Error("erro ao receber ordem de compra", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao receber ordem de compra", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchaseOrderResponse(resp.Order))
}

// transition aplica uma transição de status simples a uma ordem e a persiste
func (c *PurchaseController) transition(ctx *gin.Context, apply func(*purchasedomain.Order) error) {
	id := ctx.Param("id")

	o, err := c.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, purchasedomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "ordem de compra não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar ordem de compra", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar ordem de compra", err.Error()))
		return
	}

	if err := apply(o); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "transição de status inválida", err.Error()))
		return
	}

	if err := c.purchaseRepo.Update(ctx, o); err != nil {
		c.logger.Error("erro ao atualizar ordem de compra", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar ordem de compra", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchaseOrderResponse(o))
}
