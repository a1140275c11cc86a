package usecase

import (
	"context"

	"github.com/hugohenrick/gestao-estoque/internal/domain/alert"
	"github.com/hugohenrick/gestao-estoque/internal/domain/product"
	"github.com/hugohenrick/gestao-estoque/internal/domain/valueobject"
	"github.com/hugohenrick/gestao-estoque/pkg/logger"
)

// CheckLowStockRequest informa o destinatário dos alertas
type CheckLowStockRequest struct {
	RecipientEmail string
}

// LowStockProduct descreve um produto abaixo do estoque mínimo
type LowStockProduct struct {
	ID          string
	Name        string
	Quantity    int
	MinQuantity int
}

// CheckLowStockResponse lista os produtos em falta e quantos alertas foram criados
type CheckLowStockResponse struct {
	Products      []LowStockProduct
	AlertsCreated int
}

// CheckLowStock varre os produtos abaixo do estoque mínimo e cria alertas
// para os que ainda não têm alerta de estoque pendente. Produtos zerados
// recebem o alerta de estoque zerado; os demais, o de estoque baixo.
type CheckLowStock struct {
	products product.Repository
	alerts   alert.Repository
	log      logger.Logger
}

// NewCheckLowStock cria o caso de uso de verificação de estoque baixo
func NewCheckLowStock(products product.Repository, alerts alert.Repository, log logger.Logger) *CheckLowStock {
	return &CheckLowStock{products: products, alerts: alerts, log: log}
}

// Execute verifica o estoque e cria os alertas necessários
func (uc *CheckLowStock) Execute(ctx context.Context, req CheckLowStockRequest) (*CheckLowStockResponse, error) {
	recipient, err := valueobject.NewEmail(req.RecipientEmail)
	if err != nil {
		return nil, err
	}

	lowStock, err := uc.products.FindLowStock(ctx)
	if err != nil {
		return nil, err
	}

	response := &CheckLowStockResponse{Products: []LowStockProduct{}}

	for _, p := range lowStock {
		response.Products = append(response.Products, LowStockProduct{
			ID:          p.ID,
			Name:        p.Name,
			Quantity:    p.Quantity.Value(),
			MinQuantity: p.MinQuantity.Value(),
		})

		existing, err := uc.alerts.FindByProductID(ctx, p.ID)
		if err != nil {
			return nil, err
		}

		if hasPendingStockAlert(existing) {
			continue
		}

		var a *alert.Alert
		if p.IsOutOfStock() {
			a = alert.NewOutOfStockAlert(recipient, p.ID, p.Name)
		} else {
			a = alert.NewLowStockAlert(recipient, p.ID, p.Name, p.Quantity.Value(), p.MinQuantity.Value())
		}

		if err := uc.alerts.Create(ctx, a); err != nil {
			return nil, err
		}

		uc.log.Info("alerta de estoque criado", "product_id", p.ID, "type", string(a.Type))
		response.AlertsCreated++
	}

	return response, nil
}

// hasPendingStockAlert indica se já existe alerta de estoque pendente para
// o produto, de qualquer um dos dois tipos
func hasPendingStockAlert(alerts []*alert.Alert) bool {
	for _, a := range alerts {
		if a.Status != alert.StatusPending {
			continue
		}
		if a.Type == alert.TypeLowStock || a.Type == alert.TypeOutOfStock {
			return true
		}
	}
	return false
}
