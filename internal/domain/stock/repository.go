package stock

import (
	"context"
)

// Repository define a interface para operações de repositório de estoques
type Repository interface {
	// Create cria um novo estoque
	Create(ctx context.Context, s *Stock) error

	// FindByID busca um estoque pelo ID
	FindByID(ctx context.Context, id string) (*Stock, error)

	// FindByName busca um estoque pelo nome
	FindByName(ctx context.Context, name string) (*Stock, error)

	// FindAll lista todos os estoques
	FindAll(ctx context.Context) ([]*Stock, error)

	// Update atualiza os dados de um estoque existente
	Update(ctx context.Context, s *Stock) error

	// Delete remove um estoque
	Delete(ctx context.Context, id string) error
}
