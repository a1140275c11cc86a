package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/gestao-estoque/internal/adapter/api/dto"
	productdomain "github.com/hugohenrick/gestao-estoque/internal/domain/product"
	"github.com/hugohenrick/gestao-estoque/internal/domain/valueobject"
	"github.com/hugohenrick/gestao-estoque/internal/usecase"
	"github.com/hugohenrick/gestao-estoque/pkg/logger"
)

// ProductController gerencia as requisições relacionadas a produtos
type ProductController struct {
	productRepo   productdomain.Repository
	createProduct *usecase.CreateProduct
	updateStock   *usecase.UpdateProductStock
	logger        logger.Logger
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(productRepo productdomain.Repository, createProduct *usecase.CreateProduct, updateStock *usecase.UpdateProductStock, logger logger.Logger) *ProductController {
	return &ProductController{
		productRepo:   productRepo,
		createProduct: createProduct,
		updateStock:   updateStock,
		logger:        logger,
	}
}

// Create cria um novo produto
// @Summary Criar produto
// @Description Cria um novo produto no sistema
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	resp, err := c.createProduct.Execute(ctx, usecase.CreateProductRequest{
		Name:        req.Name,
		Color:       req.Color,
		Size:        req.Size,
		Price:       req.Price,
		Quantity:    req.Quantity,
		MinQuantity: req.MinQuantity,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		if errors.Is(err, productdomain.ErrDuplicateName) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "produto já existe", err.Error()))
			return
		}
		if errors.Is(err, valueobject.ErrNegativePrice) || errors.Is(err, valueobject.ErrNegativeQuantity) || errors.Is(err, productdomain.ErrEmptyName) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar produto", err.Error()))
			return
		}
		c.logger.Error("erro ao criar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(resp.Product))
}

// Get retorna um produto pelo ID
// @Summary Buscar produto
// @Description Retorna os dados de um produto pelo ID
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	p, err := c.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, productdomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// List retorna a lista de produtos
// @Summary Listar produtos
// @Description Retorna a lista de produtos, com filtros opcionais por categoria e situação
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param category query string false "Filtrar por categoria"
// @Param low_stock query bool false "Somente produtos com estoque baixo"
// @Param active query bool false "Somente produtos ativos"
// @Success 200 {object} dto.ProductListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	var (
		products []*productdomain.Product
		err      error
	)

	switch {
	case ctx.Query("category") != "":
		products, err = c.productRepo.FindByCategory(ctx, ctx.Query("category"))
	case ctx.Query("low_stock") == "true":
		products, err = c.productRepo.FindLowStock(ctx)
	case ctx.Query("active") == "true":
		products, err = c.productRepo.FindActive(ctx)
	default:
		products, err = c.productRepo.FindAll(ctx)
	}

	if err != nil {
		c.logger.Error("erro ao listar produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products))
}

// Update atualiza os dados de um produto
// @Summary Atualizar produto
// @Description Atualiza os dados cadastrais de um produto
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	p, err := c.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, productdomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	price, err := valueobject.NewPrice(req.Price)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "preço inválido", err.Error()))
		return
	}

	minQuantity, err := valueobject.NewQuantity(req.MinQuantity)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "quantidade mínima inválida", err.Error()))
		return
	}

	p.Name = req.Name
	p.Color = req.Color
	p.Size = req.Size
	p.Description = req.Description
	p.Category = req.Category
	p.UpdatePrice(price)
	p.UpdateMinQuantity(minQuantity)

	if err := c.productRepo.Update(ctx, p); err != nil {
		c.logger.Error("erro ao atualizar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// UpdateStock substitui a quantidade em estoque de um produto
// @Summary Atualizar estoque
// @Description Substitui a quantidade em estoque de um produto
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Param stock body dto.ProductStockRequest true "Nova quantidade"
// @Success 200 {object} dto.ProductStockResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id}/stock [patch]
func (c *ProductController) UpdateStock(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.ProductStockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	resp, err := c.updateStock.Execute(ctx, usecase.UpdateProductStockRequest{
		ProductID:   id,
		NewQuantity: req.Quantity,
	})
	if err != nil {
		if errors.Is(err, productdomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
			return
		}
		if errors.Is(err, valueobject.ErrNegativeQuantity) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "quantidade inválida", err.Error()))
			return
		}
		c.logger.Error("erro ao atualizar estoque", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar estoque", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductStockResponse(resp))
}

// Delete remove um produto
// @Summary Excluir produto
// @Description Remove um produto do sistema
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, productdomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao excluir produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("produto excluído com sucesso", nil))
}
