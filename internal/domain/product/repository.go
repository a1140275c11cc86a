package product

import (
	"context"
)

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// Create cria um novo produto
	Create(ctx context.Context, p *Product) error

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindByName busca um produto pelo nome exato
	FindByName(ctx context.Context, name string) (*Product, error)

	// FindByCategory lista os produtos de uma categoria
	FindByCategory(ctx context.Context, category string) ([]*Product, error)

	// FindLowStock lista os produtos com quantidade abaixo da mínima
	FindLowStock(ctx context.Context) ([]*Product, error)

	// FindOutOfStock lista os produtos sem estoque
	FindOutOfStock(ctx context.Context) ([]*Product, error)

	// FindActive lista os produtos ativos
	FindActive(ctx context.Context) ([]*Product, error)

	// FindAll lista todos os produtos
	FindAll(ctx context.Context) ([]*Product, error)

	// Update atualiza os dados de um produto existente
	Update(ctx context.Context, p *Product) error

	// Delete remove um produto
	Delete(ctx context.Context, id string) error
}
