package dto

import (
	"time"

	"github.com/hugohenrick/gestao-estoque/internal/domain/stock"
)

// StockRequest representa os dados para criação ou atualização de um estoque
type StockRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// StockProductRequest representa os dados para associar um produto ao estoque
type StockProductRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// StockResponse representa a resposta com dados de um estoque
type StockResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Products    []ProductResponse `json:"products"`
	Active      bool              `json:"active"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// StockListResponse representa a resposta com uma lista de estoques
type StockListResponse struct {
	Stocks     []StockResponse `json:"stocks"`
	TotalCount int             `json:"total_count"`
}

// StockReportResponse resume a situação de um estoque
type StockReportResponse struct {
	StockID          string  `json:"stock_id"`
	StockName        string  `json:"stock_name"`
	TotalProducts    int     `json:"total_products"`
	LowStockProducts int     `json:"low_stock_products"`
	OutOfStock       int     `json:"out_of_stock_products"`
	TotalValue       float64 `json:"total_value"`
}

// ToStockResponse converte um estoque do domínio para o DTO de resposta
func ToStockResponse(s *stock.Stock) StockResponse {
	products := make([]ProductResponse, 0, len(s.Products))
	for _, p := range s.Products {
		products = append(products, ToProductResponse(p))
	}

	return StockResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Products:    products,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// ToStockListResponse converte uma lista de estoques do domínio
func ToStockListResponse(stocks []*stock.Stock) StockListResponse {
	responses := make([]StockResponse, 0, len(stocks))
	for _, s := range stocks {
		responses = append(responses, ToStockResponse(s))
	}

	return StockListResponse{
		Stocks:     responses,
		TotalCount: len(responses),
	}
}

// ToStockReportResponse converte o resumo de um estoque para o DTO de resposta
func ToStockReportResponse(s *stock.Stock) StockReportResponse {
	report := s.BuildReport()

	return StockReportResponse{
		StockID:          s.ID,
		StockName:        s.Name,
		TotalProducts:    report.TotalProducts,
		LowStockProducts: report.LowStockProducts,
		OutOfStock:       report.OutOfStock,
		TotalValue:       report.TotalValue,
	}
}
