package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/gestao-estoque/internal/adapter/repository/memory"
	"github.com/hugohenrick/gestao-estoque/internal/domain/product"
	"github.com/hugohenrick/gestao-estoque/internal/domain/purchase"
	"github.com/hugohenrick/gestao-estoque/internal/domain/supplier"
)

func TestCreatePurchaseOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("cria ordem pendente com itens e total", func(t *testing.T) {
		orders := memory.NewPurchaseOrderRepository()
		suppliers := memory.NewSupplierRepository()
		products := memory.NewProductRepository()

		sup := newTestSupplier(t, "Distribuidora Central")
		require.NoError(t, suppliers.Create(ctx, sup))

		p1 := newTestProduct(t, "Camiseta", 20.0, 10, 2)
		p2 := newTestProduct(t, "Bermuda", 35.0, 10, 2)
		require.NoError(t, products.Create(ctx, p1))
		require.NoError(t, products.Create(ctx, p2))

		uc := NewCreatePurchaseOrder(orders, suppliers, products)
		resp, err := uc.Execute(ctx, CreatePurchaseOrderRequest{
			SupplierID: sup.ID,
			Items: []PurchaseOrderItemRequest{
				{ProductID: p1.ID, Quantity: 50, UnitPrice: 12.50},
				{ProductID: p2.ID, Quantity: 20, UnitPrice: 22.00},
			},
			Notes: "reposição de inverno",
		})
		require.NoError(t, err)

		order := resp.Order
		assert.Equal(t, purchase.StatusPending, order.Status)
		assert.Equal(t, sup.ID, order.SupplierID)
		require.Len(t, order.Items, 2)
		assert.Equal(t, 625.0, order.Items[0].TotalPrice.Amount())
		assert.Equal(t, 440.0, order.Items[1].TotalPrice.Amount())
		assert.Equal(t, 1065.0, order.TotalPrice.Amount())

		stored, err := orders.FindByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, order.ID, stored.ID)
	})

	t.Run("rejeita fornecedor inativo", func(t *testing.T) {
		orders := memory.NewPurchaseOrderRepository()
		suppliers := memory.NewSupplierRepository()
		products := memory.NewProductRepository()

		sup := newTestSupplier(t, "Distribuidora Central")
		sup.Deactivate()
		require.NoError(t, suppliers.Create(ctx, sup))

		uc := NewCreatePurchaseOrder(orders, suppliers, products)
		_, err := uc.Execute(ctx, CreatePurchaseOrderRequest{SupplierID: sup.ID})
		assert.ErrorIs(t, err, supplier.ErrInactive)
	})

	t.Run("rejeita fornecedor inexistente", func(t *testing.T) {
		uc := NewCreatePurchaseOrder(memory.NewPurchaseOrderRepository(), memory.NewSupplierRepository(), memory.NewProductRepository())

		_, err := uc.Execute(ctx, CreatePurchaseOrderRequest{SupplierID: "nao-existe"})
		assert.ErrorIs(t, err, supplier.ErrNotFound)
	})

	t.Run("rejeita item com produto inexistente", func(t *testing.T) {
		orders := memory.NewPurchaseOrderRepository()
		suppliers := memory.NewSupplierRepository()
		products := memory.NewProductRepository()

		sup := newTestSupplier(t, "Distribuidora Central")
		require.NoError(t, suppliers.Create(ctx, sup))

		uc := NewCreatePurchaseOrder(orders, suppliers, products)
		_, err := uc.Execute(ctx, CreatePurchaseOrderRequest{
			SupplierID: sup.ID,
			Items:      []PurchaseOrderItemRequest{{ProductID: "nao-existe", Quantity: 5, UnitPrice: 10}},
		})
		assert.ErrorIs(t, err, product.ErrNotFound)

		all, err := orders.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}
