package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/gestao-estoque/internal/adapter/repository/memory"
	"github.com/hugohenrick/gestao-estoque/internal/domain/product"
	"github.com/hugohenrick/gestao-estoque/internal/domain/sale"
)

func TestRegisterSale(t *testing.T) {
	ctx := context.Background()

	t.Run("registra a venda e baixa o estoque", func(t *testing.T) {
		products := memory.NewProductRepository()
		sales := memory.NewSaleRepository()

		p := newTestProduct(t, "Tênis Esportivo", 299.90, 100, 10)
		require.NoError(t, products.Create(ctx, p))

		uc := NewRegisterSale(products, sales)
		resp, err := uc.Execute(ctx, RegisterSaleRequest{ProductID: p.ID, QuantitySold: 95, UnitPrice: 299.90})
		require.NoError(t, err)

		assert.Equal(t, 95, resp.Sale.QuantitySold)
		assert.InDelta(t, 95*299.90, resp.Sale.TotalPrice, 0.001)
		assert.Equal(t, 5, resp.Product.Quantity)
		assert.True(t, resp.Product.LowStock)
		assert.False(t, resp.Product.OutOfStock)

		stored, err := products.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, stored.Quantity.Value())

		all, err := sales.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, p.ID, all[0].ProductID)
	})

	t.Run("rejeita venda acima do saldo", func(t *testing.T) {
		products := memory.NewProductRepository()
		sales := memory.NewSaleRepository()

		p := newTestProduct(t, "Tênis Esportivo", 299.90, 10, 2)
		require.NoError(t, products.Create(ctx, p))

		uc := NewRegisterSale(products, sales)
		_, err := uc.Execute(ctx, RegisterSaleRequest{ProductID: p.ID, QuantitySold: 15, UnitPrice: 299.90})
		assert.ErrorIs(t, err, sale.ErrInsufficientStock)

		stored, err := products.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 10, stored.Quantity.Value())
	})

	t.Run("verifica produto inativo antes do saldo", func(t *testing.T) {
		products := memory.NewProductRepository()
		sales := memory.NewSaleRepository()

		p := newTestProduct(t, "Tênis Esportivo", 299.90, 10, 2)
		p.Deactivate()
		require.NoError(t, products.Create(ctx, p))

		uc := NewRegisterSale(products, sales)
		_, err := uc.Execute(ctx, RegisterSaleRequest{ProductID: p.ID, QuantitySold: 50, UnitPrice: 299.90})
		assert.ErrorIs(t, err, product.ErrInactive)
	})

	t.Run("retorna erro para produto inexistente", func(t *testing.T) {
		uc := NewRegisterSale(memory.NewProductRepository(), memory.NewSaleRepository())

		_, err := uc.Execute(ctx, RegisterSaleRequest{ProductID: "nao-existe", QuantitySold: 1, UnitPrice: 10})
		assert.ErrorIs(t, err, product.ErrNotFound)
	})

	t.Run("venda do saldo inteiro zera o estoque", func(t *testing.T) {
		products := memory.NewProductRepository()
		sales := memory.NewSaleRepository()

		p := newTestProduct(t, "Tênis Esportivo", 299.90, 10, 2)
		require.NoError(t, products.Create(ctx, p))

		uc := NewRegisterSale(products, sales)
		resp, err := uc.Execute(ctx, RegisterSaleRequest{ProductID: p.ID, QuantitySold: 10, UnitPrice: 299.90})
		require.NoError(t, err)

		assert.Equal(t, 0, resp.Product.Quantity)
		assert.True(t, resp.Product.OutOfStock)
	})
}
