package usecase

import (
	"context"
	"errors"

	"github.com/hugohenrick/gestao-estoque/internal/domain/product"
	"github.com/hugohenrick/gestao-estoque/internal/domain/valueobject"
)

// CreateProductRequest contém os dados para criação de um produto
type CreateProductRequest struct {
	Name        string
	Color       string
	Size        string
	Price       float64
	Quantity    float64
	MinQuantity float64
	Description string
	Category    string
}

// CreateProductResponse retorna o produto criado
type CreateProductResponse struct {
	Product *product.Product
}

// CreateProduct cria um novo produto, garantindo que o nome seja único
type CreateProduct struct {
	products product.Repository
}

// NewCreateProduct cria o caso de uso de criação de produto
func NewCreateProduct(products product.Repository) *CreateProduct {
	return &CreateProduct{products: products}
}

// Execute valida os dados, cria o produto e o persiste
func (uc *CreateProduct) Execute(ctx context.Context, req CreateProductRequest) (*CreateProductResponse, error) {
	existing, err := uc.products.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, product.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, product.ErrDuplicateName
	}

	price, err := valueobject.NewPrice(req.Price)
	if err != nil {
		return nil, err
	}

	quantity, err := valueobject.NewQuantity(req.Quantity)
	if err != nil {
		return nil, err
	}

	minQuantity, err := valueobject.NewQuantity(req.MinQuantity)
	if err != nil {
		return nil, err
	}

	p, err := product.NewProduct(req.Name, req.Color, req.Size, price, quantity, minQuantity, req.Description, req.Category)
	if err != nil {
		return nil, err
	}

	if err := uc.products.Create(ctx, p); err != nil {
		return nil, err
	}

	return &CreateProductResponse{Product: p}, nil
}
