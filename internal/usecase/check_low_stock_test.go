package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/gestao-estoque/internal/adapter/repository/memory"
	"github.com/hugohenrick/gestao-estoque/internal/domain/alert"
	"github.com/hugohenrick/gestao-estoque/internal/domain/valueobject"
)

func TestCheckLowStock(t *testing.T) {
	ctx := context.Background()
	req := CheckLowStockRequest{RecipientEmail: "estoque@loja.com.br"}

	t.Run("cria alerta para cada produto abaixo do mínimo", func(t *testing.T) {
		products := memory.NewProductRepository()
		alerts := memory.NewAlertRepository()

		baixo := newTestProduct(t, "Camiseta", 20.0, 3, 10)
		zerado := newTestProduct(t, "Bermuda", 35.0, 0, 5)
		normal := newTestProduct(t, "Tênis", 200.0, 50, 10)
		require.NoError(t, products.Create(ctx, baixo))
		require.NoError(t, products.Create(ctx, zerado))
		require.NoError(t, products.Create(ctx, normal))

		uc := NewCheckLowStock(products, alerts, noopLogger{})
		resp, err := uc.Execute(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, 2, resp.AlertsCreated)
		require.Len(t, resp.Products, 2)

		lowAlerts, err := alerts.FindByProductID(ctx, baixo.ID)
		require.NoError(t, err)
		require.Len(t, lowAlerts, 1)
		assert.Equal(t, alert.TypeLowStock, lowAlerts[0].Type)
		assert.Equal(t, alert.StatusPending, lowAlerts[0].Status)

		zeroAlerts, err := alerts.FindByProductID(ctx, zerado.ID)
		require.NoError(t, err)
		require.Len(t, zeroAlerts, 1)
		assert.Equal(t, alert.TypeOutOfStock, zeroAlerts[0].Type)
	})

	t.Run("não duplica alerta pendente", func(t *testing.T) {
		products := memory.NewProductRepository()
		alerts := memory.NewAlertRepository()

		p := newTestProduct(t, "Camiseta", 20.0, 3, 10)
		require.NoError(t, products.Create(ctx, p))

		uc := NewCheckLowStock(products, alerts, noopLogger{})

		first, err := uc.Execute(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, 1, first.AlertsCreated)

		second, err := uc.Execute(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, 0, second.AlertsCreated)
		// o produto continua no relatório mesmo sem novo alerta
		assert.Len(t, second.Products, 1)

		all, err := alerts.FindByProductID(ctx, p.ID)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("cria novo alerta após envio do anterior", func(t *testing.T) {
		products := memory.NewProductRepository()
		alerts := memory.NewAlertRepository()

		p := newTestProduct(t, "Camiseta", 20.0, 3, 10)
		require.NoError(t, products.Create(ctx, p))

		uc := NewCheckLowStock(products, alerts, noopLogger{})

		_, err := uc.Execute(ctx, req)
		require.NoError(t, err)

		pending, err := alerts.FindPending(ctx)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		pending[0].MarkSent()
		require.NoError(t, alerts.Update(ctx, pending[0]))

		resp, err := uc.Execute(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.AlertsCreated)
	})

	t.Run("alerta pendente de outro tipo não suprime", func(t *testing.T) {
		products := memory.NewProductRepository()
		alerts := memory.NewAlertRepository()

		p := newTestProduct(t, "Camiseta", 20.0, 3, 10)
		require.NoError(t, products.Create(ctx, p))

		recipient, err := valueobject.NewEmail("estoque@loja.com.br")
		require.NoError(t, err)
		require.NoError(t, alerts.Create(ctx, alert.NewOrderArrivedAlert(recipient, p.ID, p.Name)))

		uc := NewCheckLowStock(products, alerts, noopLogger{})
		resp, err := uc.Execute(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.AlertsCreated)
	})

	t.Run("rejeita destinatário inválido", func(t *testing.T) {
		uc := NewCheckLowStock(memory.NewProductRepository(), memory.NewAlertRepository(), noopLogger{})

		_, err := uc.Execute(ctx, CheckLowStockRequest{RecipientEmail: "sem-arroba"})
		assert.ErrorIs(t, err, valueobject.ErrInvalidEmail)
	})
}
