package purchase

import (
	"context"
)

// Repository define a interface para operações de repositório de ordens de compra
type Repository interface {
	// Create cria uma nova ordem de compra
	Create(ctx context.Context, o *Order) error

	// FindByID busca uma ordem pelo ID
	FindByID(ctx context.Context, id string) (*Order, error)

	// FindByStatus lista as ordens com o status informado
	FindByStatus(ctx context.Context, status Status) ([]*Order, error)

	// FindBySupplierID lista as ordens de um fornecedor
	FindBySupplierID(ctx context.Context, supplierID string) ([]*Order, error)

	// FindPending lista as ordens pendentes
	FindPending(ctx context.Context) ([]*Order, error)

	// FindAll lista todas as ordens
	FindAll(ctx context.Context) ([]*Order, error)

	// Update atualiza os dados de uma ordem existente
	Update(ctx context.Context, o *Order) error

	// Delete remove uma ordem
	Delete(ctx context.Context, id string) error
}
