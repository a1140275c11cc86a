package alert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/gestao-estoque/internal/domain/valueobject"
)

func recipient(t *testing.T) valueobject.Email {
	t.Helper()

	email, err := valueobject.NewEmail("gerente@loja.com")
	require.NoError(t, err)
	return email
}

func TestNewLowStockAlert(t *testing.T) {
	a := NewLowStockAlert(recipient(t), "produto-1", "Camiseta", 3, 10)

	assert.Equal(t, TypeLowStock, a.Type)
	assert.Equal(t, StatusPending, a.Status)
	assert.Equal(t, "Estoque Baixo - Camiseta", a.Title)
	assert.Contains(t, a.Message, "Quantidade atual: 3")
	assert.Contains(t, a.Message, "Mínima: 10")
	assert.Equal(t, 0, a.Attempts)
	assert.Equal(t, DefaultMaxAttempts, a.MaxAttempts)
	assert.True(t, a.CanAttemptSend())
}

func TestNewOutOfStockAlert(t *testing.T) {
	a := NewOutOfStockAlert(recipient(t), "produto-1", "Camiseta")

	assert.Equal(t, TypeOutOfStock, a.Type)
	assert.Equal(t, "Estoque Zerado - Camiseta", a.Title)
}

func TestAlertRetryCounting(t *testing.T) {
	a := NewLowStockAlert(recipient(t), "produto-1", "Camiseta", 3, 10)

	// duas falhas ainda deixam o alerta pendente para nova tentativa
	a.MarkFailed()
	assert.Equal(t, StatusPending, a.Status)
	assert.Equal(t, 1, a.Attempts)
	assert.True(t, a.CanAttemptSend())

	a.MarkFailed()
	assert.Equal(t, StatusPending, a.Status)
	assert.Equal(t, 2, a.Attempts)
	assert.True(t, a.CanAttemptSend())

	// a terceira falha esgota as tentativas
	a.MarkFailed()
	assert.Equal(t, StatusFailed, a.Status)
	assert.Equal(t, 3, a.Attempts)
	assert.False(t, a.CanAttemptSend())
}

func TestAlertMarkSent(t *testing.T) {
	a := NewOrderArrivedAlert(recipient(t), "produto-1", "Camiseta")

	a.MarkSent()
	assert.Equal(t, StatusSent, a.Status)
	require.NotNil(t, a.SentAt)
	assert.False(t, a.CanAttemptSend())
}

func TestAlertUpdates(t *testing.T) {
	a := NewOrderDelayedAlert(recipient(t), "produto-1", "Camiseta", 5)
	assert.Contains(t, a.Message, "atrasado há 5 dias")

	a.UpdateTitle("Novo Título")
	a.UpdateMessage("Nova mensagem")
	assert.Equal(t, "Novo Título", a.Title)
	assert.Equal(t, "Nova mensagem", a.Message)

	a.Deactivate()
	assert.False(t, a.Active)
	a.Activate()
	assert.True(t, a.Active)
}
