package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/hugohenrick/gestao-estoque/internal/domain/product"
	"github.com/hugohenrick/gestao-estoque/internal/domain/sale"
)

// GenerateSalesReportRequest delimita o período e, opcionalmente, o produto
type GenerateSalesReportRequest struct {
	Start     time.Time
	End       time.Time
	ProductID string
}

// SalesReportSummary resume os totais do período
type SalesReportSummary struct {
	TotalSales    int
	TotalValue    float64
	TotalQuantity int
	AverageTicket float64
}

// SalesReportProductLine agrega as vendas de um produto no período
type SalesReportProductLine struct {
	ProductID    string
	ProductName  string
	QuantitySold int
	TotalValue   float64
	SalesCount   int
}

// SalesReportLine descreve uma venda individual do período
type SalesReportLine struct {
	ID           string
	ProductID    string
	QuantitySold int
	UnitPrice    float64
	TotalPrice   float64
	SoldAt       time.Time
}

// GenerateSalesReportResponse é o relatório completo do período
type GenerateSalesReportResponse struct {
	Start     time.Time
	End       time.Time
	Summary   SalesReportSummary
	ByProduct []SalesReportProductLine
	Sales     []SalesReportLine
}

// GenerateSalesReport monta o relatório de vendas de um período, com
// totais, ticket médio e agregação por produto
type GenerateSalesReport struct {
	sales    sale.Repository
	products product.Repository
}

// NewGenerateSalesReport cria o caso de uso de relatório de vendas
func NewGenerateSalesReport(sales sale.Repository, products product.Repository) *GenerateSalesReport {
	return &GenerateSalesReport{sales: sales, products: products}
}

// Execute busca as vendas do período e calcula os agregados
func (uc *GenerateSalesReport) Execute(ctx context.Context, req GenerateSalesReportRequest) (*GenerateSalesReportResponse, error) {
	var (
		sales []*sale.Sale
		err   error
	)

	if req.ProductID != "" {
		sales, err = uc.sales.FindByProductAndPeriod(ctx, req.ProductID, req.Start, req.End)
	} else {
		sales, err = uc.sales.FindByPeriod(ctx, req.Start, req.End)
	}
	if err != nil {
		return nil, err
	}

	summary := SalesReportSummary{TotalSales: len(sales)}
	for _, s := range sales {
		summary.TotalValue += s.TotalPrice.Amount()
		summary.TotalQuantity += s.QuantitySold.Value()
	}
	if summary.TotalSales > 0 {
		summary.AverageTicket = summary.TotalValue / float64(summary.TotalSales)
	}

	// agrega por produto preservando a ordem da primeira ocorrência
	index := map[string]int{}
	byProduct := []SalesReportProductLine{}
	lines := make([]SalesReportLine, 0, len(sales))

	for _, s := range sales {
		i, ok := index[s.ProductID]
		if !ok {
			i = len(byProduct)
			index[s.ProductID] = i
			byProduct = append(byProduct, SalesReportProductLine{ProductID: s.ProductID})
		}

		byProduct[i].QuantitySold += s.QuantitySold.Value()
		byProduct[i].TotalValue += s.TotalPrice.Amount()
		byProduct[i].SalesCount++

		lines = append(lines, SalesReportLine{
			ID:           s.ID,
			ProductID:    s.ProductID,
			QuantitySold: s.QuantitySold.Value(),
			UnitPrice:    s.UnitPrice.Amount(),
			TotalPrice:   s.TotalPrice.Amount(),
			SoldAt:       s.SoldAt,
		})
	}

	for i := range byProduct {
		p, err := uc.products.FindByID(ctx, byProduct[i].ProductID)
		if err != nil {
			if errors.Is(err, product.ErrNotFound) {
				continue
			}
			return nil, err
		}
		byProduct[i].ProductName = p.Name
	}

	return &GenerateSalesReportResponse{
		Start:     req.Start,
		End:       req.End,
		Summary:   summary,
		ByProduct: byProduct,
		Sales:     lines,
	}, nil
}
