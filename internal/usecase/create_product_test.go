package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/gestao-estoque/internal/adapter/repository/memory"
	"github.com/hugohenrick/gestao-estoque/internal/domain/product"
	"github.com/hugohenrick/gestao-estoque/internal/domain/valueobject"
)

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("cria e persiste o produto", func(t *testing.T) {
		repo := memory.NewProductRepository()
		uc := NewCreateProduct(repo)

		resp, err := uc.Execute(ctx, CreateProductRequest{
			Name:        "Camiseta Básica",
			Color:       "preta",
			Size:        "G",
			Price:       49.90,
			Quantity:    100,
			MinQuantity: 10,
			Category:    "vestuário",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, resp.Product.ID)
		assert.Equal(t, "Camiseta Básica", resp.Product.Name)
		assert.Equal(t, 49.90, resp.Product.Price.Amount())
		assert.Equal(t, 100, resp.Product.Quantity.Value())
		assert.True(t, resp.Product.Active)

		stored, err := repo.FindByID(ctx, resp.Product.ID)
		require.NoError(t, err)
		assert.Equal(t, resp.Product.Name, stored.Name)
	})

	t.Run("rejeita nome duplicado", func(t *testing.T) {
		repo := memory.NewProductRepository()
		uc := NewCreateProduct(repo)

		_, err := uc.Execute(ctx, CreateProductRequest{Name: "Camiseta Básica", Price: 49.90, Quantity: 10, MinQuantity: 2})
		require.NoError(t, err)

		_, err = uc.Execute(ctx, CreateProductRequest{Name: "Camiseta Básica", Price: 59.90, Quantity: 5, MinQuantity: 1})
		assert.ErrorIs(t, err, product.ErrDuplicateName)
	})

	t.Run("rejeita preço negativo", func(t *testing.T) {
		uc := NewCreateProduct(memory.NewProductRepository())

		_, err := uc.Execute(ctx, CreateProductRequest{Name: "Camiseta", Price: -1, Quantity: 10, MinQuantity: 2})
		assert.ErrorIs(t, err, valueobject.ErrNegativePrice)
	})

	t.Run("rejeita quantidade negativa", func(t *testing.T) {
		uc := NewCreateProduct(memory.NewProductRepository())

		_, err := uc.Execute(ctx, CreateProductRequest{Name: "Camiseta", Price: 10, Quantity: -5, MinQuantity: 2})
		assert.ErrorIs(t, err, valueobject.ErrNegativeQuantity)
	})
}
