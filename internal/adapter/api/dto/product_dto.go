package dto

import (
	"time"

	"github.com/hugohenrick/gestao-estoque/internal/domain/product"
	"github.com/hugohenrick/gestao-estoque/internal/usecase"
)

// ProductRequest representa os dados para criação ou atualização de um produto
type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Color       string  `json:"color"`
	Size        string  `json:"size"`
	Price       float64 `json:"price"`
	Quantity    float64 `json:"quantity"`
	MinQuantity float64 `json:"min_quantity"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

// ProductStockRequest representa os dados para atualização de estoque
type ProductStockRequest struct {
	Quantity float64 `json:"quantity"`
}

// ProductResponse representa a resposta com dados de um produto
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Color       string    `json:"color"`
	Size        string    `json:"size"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	MinQuantity int       `json:"min_quantity"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	Active      bool      `json:"active"`
	LowStock    bool      `json:"low_stock"`
	OutOfStock  bool      `json:"out_of_stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductStockResponse representa a situação do estoque após uma atualização
type ProductStockResponse struct {
	ProductID   string `json:"product_id"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	MinQuantity int    `json:"min_quantity"`
	LowStock    bool   `json:"low_stock"`
	OutOfStock  bool   `json:"out_of_stock"`
}

// ProductListResponse representa a resposta com uma lista de produtos
type ProductListResponse struct {
	Products   []ProductResponse `json:"products"`
	TotalCount int               `json:"total_count"`
}

// ToProductResponse converte um produto do domínio para o DTO de resposta
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Color:       p.Color,
		Size:        p.Size,
		Price:       p.Price.Amount(),
		Quantity:    p.Quantity.Value(),
		MinQuantity: p.MinQuantity.Value(),
		Description: p.Description,
		Category:    p.Category,
		Active:      p.Active,
		LowStock:    p.IsLowStock(),
		OutOfStock:  p.IsOutOfStock(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductStockResponse converte o resultado da atualização de estoque
func ToProductStockResponse(r *usecase.UpdateProductStockResponse) ProductStockResponse {
	return ProductStockResponse{
		ProductID:   r.ProductID,
		Name:        r.Name,
		Quantity:    r.Quantity,
		MinQuantity: r.MinQuantity,
		LowStock:    r.LowStock,
		OutOfStock:  r.OutOfStock,
	}
}

// ToProductListResponse converte uma lista de produtos do domínio
func ToProductListResponse(products []*product.Product) ProductListResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, ToProductResponse(p))
	}

	return ProductListResponse{
		Products:   responses,
		TotalCount: len(responses),
	}
}
