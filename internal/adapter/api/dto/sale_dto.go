package dto

import (
	"time"

	"github.com/hugohenrick/gestao-estoque/internal/domain/sale"
	"github.com/hugohenrick/gestao-estoque/internal/usecase"
)

// SaleRequest representa os dados para registro de uma venda
type SaleRequest struct {
	ProductID  string  `json:"product_id" binding:"required"`
	Quantity   float64 `json:"quantity" binding:"required"`
	UnitPrice  float64 `json:"unit_price" binding:"required"`
	CustomerID string  `json:"customer_id"`
	SellerID   string  `json:"seller_id"`
	Notes      string  `json:"notes"`
}

// SaleResponse representa a resposta com dados de uma venda
type SaleResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	QuantitySold int       `json:"quantity_sold"`
	UnitPrice    float64   `json:"unit_price"`
	TotalPrice   float64   `json:"total_price"`
	SoldAt       time.Time `json:"sold_at"`
	CustomerID   string    `json:"customer_id,omitempty"`
	SellerID     string    `json:"seller_id,omitempty"`
	Discount     *float64  `json:"discount,omitempty"`
	Notes        string    `json:"notes,omitempty"`
}

// SaleListResponse representa a resposta com uma lista de vendas
type SaleListResponse struct {
	Sales      []SaleResponse `json:"sales"`
	TotalCount int            `json:"total_count"`
}

// RegisterSaleResponse representa a resposta do registro de uma venda, com a
// situação do produto após a baixa de estoque
type RegisterSaleResponse struct {
	Sale    SaleResponse        `json:"sale"`
	Product SaleProductResponse `json:"product"`
}

// SaleProductResponse resume a situação do produto após a venda
type SaleProductResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	LowStock   bool   `json:"low_stock"`
	OutOfStock bool   `json:"out_of_stock"`
}

// SalesReportResponse representa o relatório de vendas de um período
type SalesReportResponse struct {
	Start     time.Time                  `json:"start"`
	End       time.Time                  `json:"end"`
	Summary   SalesReportSummaryResponse `json:"summary"`
	ByProduct []SalesReportProductLine   `json:"by_product"`
	Sales     []SaleResponse             `json:"sales"`
}

// SalesReportSummaryResponse resume os totais do período
type SalesReportSummaryResponse struct {
	TotalSales    int     `json:"total_sales"`
	TotalValue    float64 `json:"total_value"`
	TotalQuantity int     `json:"total_quantity"`
	AverageTicket float64 `json:"average_ticket"`
}

// SalesReportProductLine agrega as vendas de um produto no período
type SalesReportProductLine struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name,omitempty"`
	QuantitySold int     `json:"quantity_sold"`
	TotalValue   float64 `json:"total_value"`
	SalesCount   int     `json:"sales_count"`
}

// ToSaleResponse converte uma venda do domínio para o DTO de resposta
func ToSaleResponse(s *sale.Sale) SaleResponse {
	resp := SaleResponse{
		ID:           s.ID,
		ProductID:    s.ProductID,
		QuantitySold: s.QuantitySold.Value(),
		UnitPrice:    s.UnitPrice.Amount(),
		TotalPrice:   s.TotalPrice.Amount(),
		SoldAt:       s.SoldAt,
		CustomerID:   s.CustomerID,
		SellerID:     s.SellerID,
		Notes:        s.Notes,
	}

	if s.Discount != nil {
		amount := s.Discount.Amount()
		resp.Discount = &amount
	}

	return resp
}

// ToSaleListResponse converte uma lista de vendas do domínio
func ToSaleListResponse(sales []*sale.Sale) SaleListResponse {
	responses := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		responses = append(responses, ToSaleResponse(s))
	}

	return SaleListResponse{
		Sales:      responses,
		TotalCount: len(responses),
	}
}

// ToRegisterSaleResponse converte o resultado do caso de uso de registro de venda
func ToRegisterSaleResponse(r *usecase.RegisterSaleResponse) RegisterSaleResponse {
	return RegisterSaleResponse{
		Sale: SaleResponse{
			ID:           r.Sale.ID,
			ProductID:    r.Sale.ProductID,
			QuantitySold: r.Sale.QuantitySold,
			UnitPrice:    r.Sale.UnitPrice,
			TotalPrice:   r.Sale.TotalPrice,
			SoldAt:       r.Sale.SoldAt,
		},
		Product: SaleProductResponse{
			ID:         r.Product.ID,
			Name:       r.Product.Name,
			Quantity:   r.Product.Quantity,
			LowStock:   r.Product.LowStock,
			OutOfStock: r.Product.OutOfStock,
		},
	}
}

// ToSalesReportResponse converte o resultado do caso de uso de relatório
func ToSalesReportResponse(r *usecase.GenerateSalesReportResponse) SalesReportResponse {
	byProduct := make([]SalesReportProductLine, 0, len(r.ByProduct))
	for _, line := range r.ByProduct {
		byProduct = append(byProduct, SalesReportProductLine{
			ProductID:    line.ProductID,
			ProductName:  line.ProductName,
			QuantitySold: line.QuantitySold,
			TotalValue:   line.TotalValue,
			SalesCount:   line.SalesCount,
		})
	}

	sales := make([]SaleResponse, 0, len(r.Sales))
	for _, line := range r.Sales {
		sales = append(sales, SaleResponse{
			ID:           line.ID,
			ProductID:    line.ProductID,
			QuantitySold: line.QuantitySold,
			UnitPrice:    line.UnitPrice,
			TotalPrice:   line.TotalPrice,
			SoldAt:       line.SoldAt,
		})
	}

	return SalesReportResponse{
		Start: r.Start,
		End:   r.End,
		Summary: SalesReportSummaryResponse{
			TotalSales:    r.Summary.TotalSales,
			TotalValue:    r.Summary.TotalValue,
			TotalQuantity: r.Summary.TotalQuantity,
			AverageTicket: r.Summary.AverageTicket,
		},
		ByProduct: byProduct,
		Sales:     sales,
	}
}
