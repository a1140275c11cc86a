package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/gestao-estoque/internal/adapter/api/dto"
	supplierdomain "github.com/hugohenrick/gestao-estoque/internal/domain/supplier"
	"github.com/hugohenrick/gestao-estoque/internal/domain/valueobject"
	"github.com/hugohenrick/gestao-estoque/pkg/logger"
)

// SupplierController gerencia as requisições relacionadas a fornecedores
type SupplierController struct {
	supplierRepo supplierdomain.Repository
	logger       logger.Logger
}

// NewSupplierController cria uma nova instância de SupplierController
func NewSupplierController(supplierRepo supplierdomain.Repository, logger logger.Logger) *SupplierController {
	return &SupplierController{
		supplierRepo: supplierRepo,
		logger:       logger,
	}
}

// Create cria um novo fornecedor
// @Summary Criar fornecedor
// @Description Cria um novo fornecedor no sistema
// @Tags suppliers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param supplier body dto.SupplierRequest true "Dados do fornecedor"
// @Success 201 {object} dto.SupplierResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /suppliers [post]
func (c *SupplierController) Create(ctx *gin.Context) {
	var req dto.SupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	email, err := valueobject.NewEmail(req.Email)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "email inválido", err.Error()))
		return
	}

	s, err := supplierdomain.NewSupplier(req.Name, email, req.Phone, req.Address, req.CNPJ, req.LeadTimeDays, req.Notes)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar fornecedor", err.Error()))
		return
	}

	if err := c.supplierRepo.Create(ctx, s); err != nil {
		c.logger.Error("erro ao criar fornecedor no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar fornecedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSupplierResponse(s))
}

// Get retorna um fornecedor pelo ID
// @Summary Buscar fornecedor
// @Description Retorna os dados de um fornecedor pelo ID
// @Tags suppliers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do fornecedor"
// @Success 200 {object} dto.SupplierResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /suppliers/{id} [get]
func (c *SupplierController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	s, err := c.supplierRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, supplierdomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "fornecedor não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar fornecedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar fornecedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierResponse(s))
}

// List retorna a lista de fornecedores
// @Summary Listar fornecedores
// @Description Retorna a lista de fornecedores, com filtro opcional por ativos
// @Tags suppliers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param active query bool false "Somente fornecedores ativos"
// @Success 200 {object} dto.SupplierListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /suppliers [get]
func (c *SupplierController) List(ctx *gin.Context) {
	var (
		suppliers []*supplierdomain.Supplier
		err       error
	)

	if ctx.Query("active") == "true" {
		suppliers, err = c.supplierRepo.FindActive(ctx)
	} else {
		suppliers, err = c.supplierRepo.FindAll(ctx)
	}

	if err != nil {
		c.logger.Error("erro ao listar fornecedores", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar fornecedores", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierListResponse(suppliers))
}

// Update atualiza os dados de um fornecedor
// @Summary Atualizar fornecedor
// @Description Atualiza os dados cadastrais de um fornecedor
// @Tags suppliers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do fornecedor"
// @Param supplier body dto.SupplierRequest true "Dados do fornecedor"
// @Success 200 {object} dto.SupplierResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /suppliers/{id} [put]
func (c *SupplierController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.SupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	s, err := c.supplierRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, supplierdomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "fornecedor não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar fornecedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar fornecedor", err.Error()))
		return
	}

	email, err := valueobject.NewEmail(req.Email)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "email inválido", err.Error()))
		return
	}

	if err := s.UpdateLeadTime(req.LeadTimeDays); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "prazo de entrega inválido", err.Error()))
		return
	}

	s.Name = req.Name
	s.UpdateContact(email, req.Phone, req.Address)
	s.AddNote(req.Notes)

	if err := c.supplierRepo.Update(ctx, s); err != nil {
		c.logger.Error("erro ao atualizar fornecedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar fornecedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierResponse(s))
}

// Delete remove um fornecedor
// @Summary Excluir fornecedor
// @Description Remove um fornecedor do sistema
// @Tags suppliers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do fornecedor"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /suppliers/{id} [delete]
func (c *SupplierController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.supplierRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, supplierdomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "fornecedor não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao excluir fornecedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir fornecedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("fornecedor excluído com sucesso", nil))
}
