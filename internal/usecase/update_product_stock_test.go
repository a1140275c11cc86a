package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/gestao-estoque/internal/adapter/repository/memory"
	"github.com/hugohenrick/gestao-estoque/internal/domain/product"
)

func TestUpdateProductStock(t *testing.T) {
	ctx := context.Background()

	t.Run("substitui a quantidade e sinaliza estoque baixo", func(t *testing.T) {
		repo := memory.NewProductRepository()
		p := newTestProduct(t, "Calça Jeans", 120.0, 50, 10)
		require.NoError(t, repo.Create(ctx, p))

		uc := NewUpdateProductStock(repo)
		resp, err := uc.Execute(ctx, UpdateProductStockRequest{ProductID: p.ID, NewQuantity: 5})
		require.NoError(t, err)

		assert.Equal(t, 5, resp.Quantity)
		assert.True(t, resp.LowStock)
		assert.False(t, resp.OutOfStock)

		stored, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, stored.Quantity.Value())
	})

	t.Run("zera o estoque e sinaliza estoque zerado", func(t *testing.T) {
		repo := memory.NewProductRepository()
		p := newTestProduct(t, "Calça Jeans", 120.0, 50, 10)
		require.NoError(t, repo.Create(ctx, p))

		uc := NewUpdateProductStock(repo)
		resp, err := uc.Execute(ctx, UpdateProductStockRequest{ProductID: p.ID, NewQuantity: 0})
		require.NoError(t, err)

		assert.True(t, resp.OutOfStock)
		assert.True(t, resp.LowStock)
	})

	t.Run("retorna erro para produto inexistente", func(t *testing.T) {
		uc := NewUpdateProductStock(memory.NewProductRepository())

		_, err := uc.Execute(ctx, UpdateProductStockRequest{ProductID: "nao-existe", NewQuantity: 10})
		assert.ErrorIs(t, err, product.ErrNotFound)
	})
}
