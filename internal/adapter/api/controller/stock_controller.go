package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/gestao-estoque/internal/adapter/api/dto"
	productdomain "github.com/hugohenrick/gestao-estoque/internal/domain/product"
	stockdomain "github.com/hugohenrick/gestao-estoque/internal/domain/stock"
	"github.com/hugohenrick/gestao-estoque/pkg/logger"
)

// StockController gerencia as requisições relacionadas a estoques
type StockController struct {
	stockRepo   stockdomain.Repository
	productRepo productdomain.Repository
	logger      logger.Logger
}

// NewStockController cria uma nova instância de StockController
func NewStockController(stockRepo stockdomain.Repository, productRepo productdomain.Repository, logger logger.Logger) *StockController {
	return &StockController{
		stockRepo:   stockRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create cria um novo estoque
// @Summary Criar estoque
// @Description Cria um novo estoque no sistema
// @Tags stocks
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param stock body dto.StockRequest true "Dados do estoque"
// @Success 201 {object} dto.StockResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stocks [post]
func (c *StockController) Create(ctx *gin.Context) {
	var req dto.StockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	s, err := stockdomain.NewStock(req.Name, req.Description)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar estoque", err.Error()))
		return
	}

	if err := c.stockRepo.Create(ctx, s); err != nil {
		c.logger.Error("erro ao criar estoque no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar estoque", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToStockResponse(s))
}

// Get retorna um estoque pelo ID
// @Summary Buscar estoque
// @Description Retorna os dados de um estoque pelo ID, incluindo os produtos associados
// @Tags stocks
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do estoque"
// @Success 200 {object} dto.StockResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stocks/{id} [get]
func (c *StockController) Get(ctx *gin.Context) {
	s, ok := c.findStock(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStockResponse(s))
}

// List retorna a lista de estoques
// @Summary Listar estoques
// @Description Retorna a lista de estoques cadastrados
// @Tags stocks
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.StockListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stocks [get]
func (c *StockController) List(ctx *gin.Context) {
	stocks, err := c.stockRepo.FindAll(ctx)
	if err != nil {
		c.logger.Error("erro ao listar estoques", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar estoques", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStockListResponse(stocks))
}

// Update atualiza os dados de um estoque
// @Summary Atualizar estoque
// @Description Atualiza o nome e a descrição de um estoque
// @Tags stocks
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do estoque"
// @Param stock body dto.StockRequest true "Dados do estoque"
// @Success 200 {object} dto.StockResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stocks/{id} [put]
func (c *StockController) Update(ctx *gin.Context) {
	var req dto.StockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	s, ok := c.findStock(ctx)
	if !ok {
		return
	}

	s.Name = req.Name
	s.Description = req.Description

	if !c.persist(ctx, s) {
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStockResponse(s))
}

// AddProduct associa um produto ao estoque
// @Summary Adicionar produto ao estoque
// @Description Associa um produto existente ao estoque
// @Tags stocks
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do estoque"
// @Param product body dto.StockProductRequest true "Produto a associar"
// @Success 200 {object} dto.StockResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stocks/{id}/products [post]
func (c *StockController) AddProduct(ctx *gin.Context) {
	var req dto.StockProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	s, ok := c.findStock(ctx)
	if !ok {
		return
	}

	p, err := c.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, productdomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	s.AddProduct(p)

	if !c.persist(ctx, s) {
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStockResponse(s))
}

// RemoveProduct desassocia um produto do estoque
// @Summary Remover produto do estoque
// @Description Remove a associação de um produto com o estoque
// @Tags stocks
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do estoque"
// @Param product_id path string true "ID do produto"
// @Success 200 {object} dto.StockResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stocks/{id}/products/{product_id} [delete]
func (c *StockController) RemoveProduct(ctx *gin.Context) {
	s, ok := c.findStock(ctx)
	if !ok {
		return
	}

	s.RemoveProduct(ctx.Param("product_id"))

	if !c.persist(ctx, s) {
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStockResponse(s))
}

// Report monta o resumo de um estoque
// @Summary Relatório do estoque
// @Description Retorna o resumo do estoque com totais de produtos e valor
// @Tags stocks
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do estoque"
// @Success 200 {object} dto.StockReportResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stocks/{id}/report [get]
func (c *StockController) Report(ctx *gin.Context) {
	s, ok := c.findStock(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStockReportResponse(s))
}

// Delete remove um estoque
// @Summary Excluir estoque
// @Description Remove um estoque do sistema
// @Tags stocks
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do estoque"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stocks/{id} [delete]
func (c *StockController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.stockRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, stockdomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "estoque não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao excluir estoque", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir estoque", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("estoque excluído com sucesso", nil))
}

func (c *StockController) findStock(ctx *gin.Context) (*stockdomain.Stock, bool) {
	s, err := c.stockRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, stockdomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "estoque não encontrado", err.Error()))
			return nil, false
		}
		c.logger.Error("erro ao buscar estoque", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar estoque", err.Error()))
		return nil, false
	}
	return s, true
}

func (c *StockController) persist(ctx *gin.Context, s *stockdomain.Stock) bool {
	if err := c.stockRepo.Update(ctx, s); err != nil {
		c.logger.Error("erro ao atualizar estoque", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar estoque", err.Error()))
		return false
	}
	return true
}
