package sale

import (
	"context"
	"time"
)

// Repository define a interface para operações de repositório de vendas
type Repository interface {
	// Create registra uma nova venda
	Create(ctx context.Context, s *Sale) error

	// FindByID busca uma venda pelo ID
	FindByID(ctx context.Context, id string) (*Sale, error)

	// FindByProductID lista as vendas de um produto
	FindByProductID(ctx context.Context, productID string) ([]*Sale, error)

	// FindByCustomerID lista as vendas de um cliente
	FindByCustomerID(ctx context.Context, customerID string) ([]*Sale, error)

	// FindByPeriod lista as vendas realizadas no período
	FindByPeriod(ctx context.Context, start, end time.Time) ([]*Sale, error)

	// FindByProductAndPeriod lista as vendas de um produto no período
	FindByProductAndPeriod(ctx context.Context, productID string, start, end time.Time) ([]*Sale, error)

	// FindAll lista todas as vendas
	FindAll(ctx context.Context) ([]*Sale, error)

	// Update atualiza os dados de uma venda existente
	Update(ctx context.Context, s *Sale) error

	// Delete remove uma venda
	Delete(ctx context.Context, id string) error
}
