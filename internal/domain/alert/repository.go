package alert

import (
	"context"
)

// Repository define a interface para operações de repositório de alertas
type Repository interface {
	// Create cria um novo alerta
	Create(ctx context.Context, a *Alert) error

	// FindByID busca um alerta pelo ID
	FindByID(ctx context.Context, id string) (*Alert, error)

	// FindByStatus lista os alertas com o status informado
	FindByStatus(ctx context.Context, status Status) ([]*Alert, error)

	// FindByType lista os alertas do tipo informado
	FindByType(ctx context.Context, alertType Type) ([]*Alert, error)

	// FindPending lista os alertas pendentes de envio
	FindPending(ctx context.Context) ([]*Alert, error)

	// FindByProductID lista os alertas relacionados a um produto
	FindByProductID(ctx context.Context, productID string) ([]*Alert, error)

	// FindAll lista todos os alertas
	FindAll(ctx context.Context) ([]*Alert, error)

	// Update atualiza os dados de um alerta existente
	Update(ctx context.Context, a *Alert) error

	// Delete remove um alerta
	Delete(ctx context.Context, id string) error
}
