package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/gestao-estoque/internal/adapter/repository/memory"
	"github.com/hugohenrick/gestao-estoque/internal/domain/alert"
	"github.com/hugohenrick/gestao-estoque/internal/domain/purchase"
)

func TestReceivePurchaseOrder(t *testing.T) {
	ctx := context.Background()

	shippedOrder := func(t *testing.T, supplierID string, items []purchase.Item) *purchase.Order {
		t.Helper()

		order := purchase.NewOrder(supplierID, "")
		for _, item := range items {
			require.NoError(t, order.AddItem(item.ProductID, item.Quantity, item.UnitPrice))
		}
		require.NoError(t, order.Approve())
		require.NoError(t, order.Ship())
		return order
	}

	t.Run("recebe a ordem, soma o estoque e cria alertas", func(t *testing.T) {
		orders := memory.NewPurchaseOrderRepository()
		products := memory.NewProductRepository()
		alerts := memory.NewAlertRepository()

		p1 := newTestProduct(t, "Camiseta", 20.0, 10, 2)
		p2 := newTestProduct(t, "Bermuda", 35.0, 0, 5)
		require.NoError(t, products.Create(ctx, p1))
		require.NoError(t, products.Create(ctx, p2))

		order := shippedOrder(t, "fornecedor-1", []purchase.Item{
			{ProductID: p1.ID, Quantity: mustQuantity(t, 40), UnitPrice: mustPrice(t, 12.50)},
			{ProductID: p2.ID, Quantity: mustQuantity(t, 25), UnitPrice: mustPrice(t, 22.00)},
		})
		require.NoError(t, orders.Create(ctx, order))

		uc := NewReceivePurchaseOrder(orders, products, alerts, noopLogger{})
		resp, err := uc.Execute(ctx, ReceivePurchaseOrderRequest{OrderID: order.ID, RecipientEmail: "estoque@loja.com.br"})
		require.NoError(t, err)

		assert.Equal(t, purchase.StatusReceived, resp.Order.Status)
		assert.NotNil(t, resp.Order.ReceivedAt)
		assert.Equal(t, 2, resp.AlertsCreated)

		updated1, err := products.FindByID(ctx, p1.ID)
		require.NoError(t, err)
		assert.Equal(t, 50, updated1.Quantity.Value())

		updated2, err := products.FindByID(ctx, p2.ID)
		require.NoError(t, err)
		assert.Equal(t, 25, updated2.Quantity.Value())

		created, err := alerts.FindByType(ctx, alert.TypeOrderArrived)
		require.NoError(t, err)
		assert.Len(t, created, 2)
	})

	t.Run("ignora item cujo produto não existe mais", func(t *testing.T) {
		orders := memory.NewPurchaseOrderRepository()
		products := memory.NewProductRepository()
		alerts := memory.NewAlertRepository()

		p := newTestProduct(t, "Camiseta", 20.0, 10, 2)
		require.NoError(t, products.Create(ctx, p))

		order := shippedOrder(t, "fornecedor-1", []purchase.Item{
			{ProductID: p.ID, Quantity: mustQuantity(t, 10), UnitPrice: mustPrice(t, 12.50)},
			{ProductID: "produto-removido", Quantity: mustQuantity(t, 5), UnitPrice: mustPrice(t, 9.90)},
		})
		require.NoError(t, orders.Create(ctx, order))

		uc := NewReceivePurchaseOrder(orders, products, alerts, noopLogger{})
		resp, err := uc.Execute(ctx, ReceivePurchaseOrderRequest{OrderID: order.ID, RecipientEmail: "estoque@loja.com.br"})
		require.NoError(t, err)

		assert.Equal(t, purchase.StatusReceived, resp.Order.Status)
		assert.Equal(t, 1, resp.AlertsCreated)

		updated, err := products.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 20, updated.Quantity.Value())
	})

	t.Run("rejeita ordem que não foi enviada", func(t *testing.T) {
		orders := memory.NewPurchaseOrderRepository()
		products := memory.NewProductRepository()
		alerts := memory.NewAlertRepository()

		order := purchase.NewOrder("fornecedor-1", "")
		require.NoError(t, orders.Create(ctx, order))

		uc := NewReceivePurchaseOrder(orders, products, alerts, noopLogger{})
		_, err := uc.Execute(ctx, ReceivePurchaseOrderRequest{OrderID: order.ID, RecipientEmail: "estoque@loja.com.br"})
		assert.ErrorIs(t, err, purchase.ErrNotShippedReceive)
	})

	t.Run("rejeita ordem inexistente", func(t *testing.T) {
		uc := NewReceivePurchaseOrder(memory.NewPurchaseOrderRepository(), memory.NewProductRepository(), memory.NewAlertRepository(), noopLogger{})

		_, err := uc.Execute(ctx, ReceivePurchaseOrderRequest{OrderID: "nao-existe", RecipientEmail: "estoque@loja.com.br"})
		assert.ErrorIs(t, err, purchase.ErrNotFound)
	})
}
