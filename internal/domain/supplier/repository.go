package supplier

import (
	"context"
)

// Repository define a interface para operações de repositório de fornecedores
type Repository interface {
	// Create cria um novo fornecedor
	Create(ctx context.Context, s *Supplier) error

	// FindByID busca um fornecedor pelo ID
	FindByID(ctx context.Context, id string) (*Supplier, error)

	// FindByCNPJ busca um fornecedor pelo CNPJ
	FindByCNPJ(ctx context.Context, cnpj string) (*Supplier, error)

	// FindByName busca um fornecedor pelo nome
	FindByName(ctx context.Context, name string) (*Supplier, error)

	// FindActive lista os fornecedores ativos
	FindActive(ctx context.Context) ([]*Supplier, error)

	// FindAll lista todos os fornecedores
	FindAll(ctx context.Context) ([]*Supplier, error)

	// Update atualiza os dados de um fornecedor existente
	Update(ctx context.Context, s *Supplier) error

	// Delete remove um fornecedor
	Delete(ctx context.Context, id string) error
}
