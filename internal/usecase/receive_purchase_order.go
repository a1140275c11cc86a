package usecase

import (
	"context"
	"errors"

	"github.com/hugohenrick/gestao-estoque/internal/domain/alert"
	"github.com/hugohenrick/gestao-estoque/internal/domain/product"
	"github.com/hugohenrick/gestao-estoque/internal/domain/purchase"
	"github.com/hugohenrick/gestao-estoque/internal/domain/valueobject"
	"github.com/hugohenrick/gestao-estoque/pkg/logger"
)

// ReceivePurchaseOrderRequest contém os dados para recebimento de uma ordem
type ReceivePurchaseOrderRequest struct {
	OrderID        string
	RecipientEmail string
}

// ReceivePurchaseOrderResponse retorna a ordem recebida e os alertas gerados
type ReceivePurchaseOrderResponse struct {
	Order         *purchase.Order
	AlertsCreated int
}

// ReceivePurchaseOrder marca uma ordem enviada como recebida, soma as
// quantidades recebidas ao estoque de cada produto e cria um alerta de
// chegada de pedido por linha
type ReceivePurchaseOrder struct {
	orders   purchase.Repository
	products product.Repository
	alerts   alert.Repository
	log      logger.Logger
}

// NewReceivePurchaseOrder cria o caso de uso de recebimento de ordem
func NewReceivePurchaseOrder(orders purchase.Repository, products product.Repository, alerts alert.Repository, log logger.Logger) *ReceivePurchaseOrder {
	return &ReceivePurchaseOrder{orders: orders, products: products, alerts: alerts, log: log}
}

// Execute recebe a ordem, atualiza o estoque dos produtos e gera os alertas
func (uc *ReceivePurchaseOrder) Execute(ctx context.Context, req ReceivePurchaseOrderRequest) (*ReceivePurchaseOrderResponse, error) {
	order, err := uc.orders.FindByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	recipient, err := valueobject.NewEmail(req.RecipientEmail)
	if err != nil {
		return nil, err
	}

	if err := order.Receive(); err != nil {
		return nil, err
	}

	alertsCreated := 0
	for _, item := range order.Items {
		p, err := uc.products.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, product.ErrNotFound) {
				// produto removido após a criação da ordem: segue o recebimento
				uc.log.Warn("produto da ordem não existe mais", "product_id", item.ProductID, "order_id", order.ID)
				continue
			}
			return nil, err
		}

		p.AddQuantity(item.Quantity)
		if err := uc.products.Update(ctx, p); err != nil {
			return nil, err
		}

		a := alert.NewOrderArrivedAlert(recipient, p.ID, p.Name)
		if err := uc.alerts.Create(ctx, a); err != nil {
			return nil, err
		}
		alertsCreated++
	}

	if err := uc.orders.Update(ctx, order); err != nil {
		return nil, err
	}

	return &ReceivePurchaseOrderResponse{Order: order, AlertsCreated: alertsCreated}, nil
}
