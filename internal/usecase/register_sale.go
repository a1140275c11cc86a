package usecase

import (
	"context"
	"time"

	"github.com/hugohenrick/gestao-estoque/internal/domain/product"
	"github.com/hugohenrick/gestao-estoque/internal/domain/sale"
	"github.com/hugohenrick/gestao-estoque/internal/domain/valueobject"
)

// RegisterSaleRequest contém os dados para registro de uma venda
type RegisterSaleRequest struct {
	ProductID    string
	QuantitySold float64
	UnitPrice    float64
	CustomerID   string
	SellerID     string
	Notes        string
}

// RegisterSaleSummary resume a venda registrada
type RegisterSaleSummary struct {
	ID           string
	ProductID    string
	QuantitySold int
	UnitPrice    float64
	TotalPrice   float64
	SoldAt       time.Time
}

// RegisterSaleProductSummary resume a situação do produto após a venda
type RegisterSaleProductSummary struct {
	ID         string
	Name       string
	Quantity   int
	LowStock   bool
	OutOfStock bool
}

// RegisterSaleResponse retorna a venda e o produto atualizado
type RegisterSaleResponse struct {
	Sale    RegisterSaleSummary
	Product RegisterSaleProductSummary
}

// RegisterSale registra uma venda e baixa o estoque do produto. O produto
// precisa existir, estar ativo e ter saldo suficiente, nesta ordem de
// verificação.
type RegisterSale struct {
	products product.Repository
	sales    sale.Repository
}

// NewRegisterSale cria o caso de uso de registro de venda
func NewRegisterSale(products product.Repository, sales sale.Repository) *RegisterSale {
	return &RegisterSale{products: products, sales: sales}
}

// Execute valida o produto, registra a venda e atualiza o estoque
func (uc *RegisterSale) Execute(ctx context.Context, req RegisterSaleRequest) (*RegisterSaleResponse, error) {
	p, err := uc.products.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	if !p.Active {
		return nil, product.ErrInactive
	}

	quantitySold, err := valueobject.NewQuantity(req.QuantitySold)
	if err != nil {
		return nil, err
	}

	unitPrice, err := valueobject.NewPrice(req.UnitPrice)
	if err != nil {
		return nil, err
	}

	if p.Quantity.LessThan(quantitySold) {
		return nil, sale.ErrInsufficientStock
	}

	s, err := sale.NewSale(p.ID, quantitySold, unitPrice, req.CustomerID, req.SellerID, req.Notes)
	if err != nil {
		return nil, err
	}

	if err := p.RemoveQuantity(quantitySold); err != nil {
		return nil, err
	}

	if err := uc.sales.Create(ctx, s); err != nil {
		return nil, err
	}

	if err := uc.products.Update(ctx, p); err != nil {
		return nil, err
	}

	return &RegisterSaleResponse{
		Sale: RegisterSaleSummary{
			ID:           s.ID,
			ProductID:    s.ProductID,
			QuantitySold: s.QuantitySold.Value(),
			UnitPrice:    s.UnitPrice.Amount(),
			TotalPrice:   s.TotalPrice.Amount(),
			SoldAt:       s.SoldAt,
		},
		Product: RegisterSaleProductSummary{
			ID:         p.ID,
			Name:       p.Name,
			Quantity:   p.Quantity.Value(),
			LowStock:   p.IsLowStock(),
			OutOfStock: p.IsOutOfStock(),
		},
	}, nil
}
