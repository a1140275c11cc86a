package usecase

import (
	"context"

	"github.com/hugohenrick/gestao-estoque/internal/domain/product"
	"github.com/hugohenrick/gestao-estoque/internal/domain/valueobject"
)

// UpdateProductStockRequest contém os dados para atualização de estoque
type UpdateProductStockRequest struct {
	ProductID   string
	NewQuantity float64
}

// UpdateProductStockResponse retorna a situação do produto após a atualização
type UpdateProductStockResponse struct {
	ProductID   string
	Name        string
	Quantity    int
	MinQuantity int
	LowStock    bool
	OutOfStock  bool
}

// UpdateProductStock substitui a quantidade em estoque de um produto
type UpdateProductStock struct {
	products product.Repository
}

// NewUpdateProductStock cria o caso de uso de atualização de estoque
func NewUpdateProductStock(products product.Repository) *UpdateProductStock {
	return &UpdateProductStock{products: products}
}

// Execute busca o produto, substitui a quantidade e persiste
func (uc *UpdateProductStock) Execute(ctx context.Context, req UpdateProductStockRequest) (*UpdateProductStockResponse, error) {
	p, err := uc.products.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	quantity, err := valueobject.NewQuantity(req.NewQuantity)
	if err != nil {
		return nil, err
	}

	p.UpdateQuantity(quantity)

	if err := uc.products.Update(ctx, p); err != nil {
		return nil, err
	}

	return &UpdateProductStockResponse{
		ProductID:   p.ID,
		Name:        p.Name,
		Quantity:    p.Quantity.Value(),
		MinQuantity: p.MinQuantity.Value(),
		LowStock:    p.IsLowStock(),
		OutOfStock:  p.IsOutOfStock(),
	}, nil
}
