package purchase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/gestao-estoque/internal/domain/valueobject"
)

func addItem(t *testing.T, o *Order, productID string, qty, unitPrice float64) {
	t.Helper()

	quantity, err := valueobject.NewQuantity(qty)
	require.NoError(t, err)
	price, err := valueobject.NewPrice(unitPrice)
	require.NoError(t, err)
	require.NoError(t, o.AddItem(productID, quantity, price))
}

func TestNewOrder(t *testing.T) {
	o := NewOrder("fornecedor-1", "pedido urgente")

	assert.NotEmpty(t, o.ID)
	assert.Equal(t, StatusPending, o.Status)
	assert.Empty(t, o.Items)
	assert.Equal(t, 0.0, o.TotalPrice.Amount())
	assert.True(t, o.Active)
}

func TestOrderLifecycle(t *testing.T) {
	o := NewOrder("fornecedor-1", "")

	require.NoError(t, o.Approve())
	assert.Equal(t, StatusApproved, o.Status)
	require.NotNil(t, o.ApprovedAt)

	require.NoError(t, o.Ship())
	assert.Equal(t, StatusShipped, o.Status)
	require.NotNil(t, o.ShippedAt)

	require.NoError(t, o.Receive())
	assert.Equal(t, StatusReceived, o.Status)
	require.NotNil(t, o.ReceivedAt)
}

func TestOrderInvalidTransitions(t *testing.T) {
	t.Run("aprovar duas vezes", func(t *testing.T) {
		o := NewOrder("fornecedor-1", "")
		require.NoError(t, o.Approve())
		require.ErrorIs(t, o.Approve(), ErrNotPendingApprove)
	})

	t.Run("enviar sem aprovar", func(t *testing.T) {
		o := NewOrder("fornecedor-1", "")
		require.ErrorIs(t, o.Ship(), ErrNotApprovedShip)
	})

	t.Run("receber sem enviar", func(t *testing.T) {
		o := NewOrder("fornecedor-1", "")
		require.NoError(t, o.Approve())
		require.ErrorIs(t, o.Receive(), ErrNotShippedReceive)
	})

	t.Run("cancelar após receber", func(t *testing.T) {
		o := NewOrder("fornecedor-1", "")
		require.NoError(t, o.Approve())
		require.NoError(t, o.Ship())
		require.NoError(t, o.Receive())
		require.ErrorIs(t, o.Cancel(), ErrReceivedCancel)
	})

	t.Run("cancelar ordem aprovada ainda não enviada", func(t *testing.T) {
		o := NewOrder("fornecedor-1", "")
		require.NoError(t, o.Approve())
		require.NoError(t, o.Cancel())
		assert.Equal(t, StatusCancelled, o.Status)
	})
}

func TestOrderItems(t *testing.T) {
	o := NewOrder("fornecedor-1", "")

	addItem(t, o, "produto-1", 10, 29.90)
	require.Len(t, o.Items, 1)
	assert.Equal(t, 299.0, o.Items[0].TotalPrice.Amount())
	assert.Equal(t, 299.0, o.TotalPrice.Amount())

	addItem(t, o, "produto-2", 2, 100)
	assert.Equal(t, 499.0, o.TotalPrice.Amount())

	require.NoError(t, o.RemoveItem("produto-2"))
	assert.Equal(t, 299.0, o.TotalPrice.Amount())

	require.NoError(t, o.RemoveItem("produto-1"))
	assert.Empty(t, o.Items)
	assert.Equal(t, 0.0, o.TotalPrice.Amount())
}

func TestOrderUpdateItemQuantity(t *testing.T) {
	o := NewOrder("fornecedor-1", "")
	addItem(t, o, "produto-1", 10, 29.90)

	newQty, _ := valueobject.NewQuantity(5)
	require.NoError(t, o.UpdateItemQuantity("produto-1", newQty))

	item, ok := o.ItemByProduct("produto-1")
	require.True(t, ok)
	assert.Equal(t, 5, item.Quantity.Value())
	assert.Equal(t, 149.50, item.TotalPrice.Amount())
	assert.Equal(t, 149.50, o.TotalPrice.Amount())

	err := o.UpdateItemQuantity("inexistente", newQty)
	require.ErrorIs(t, err, ErrItemNotFound)
}

func TestOrderItemsRequirePendingStatus(t *testing.T) {
	o := NewOrder("fornecedor-1", "")
	addItem(t, o, "produto-1", 10, 29.90)
	require.NoError(t, o.Approve())

	quantity, _ := valueobject.NewQuantity(1)
	price, _ := valueobject.NewPrice(10)

	require.ErrorIs(t, o.AddItem("produto-2", quantity, price), ErrItemsRequirePending)
	require.ErrorIs(t, o.RemoveItem("produto-1"), ErrItemsRequirePending)
	require.ErrorIs(t, o.UpdateItemQuantity("produto-1", quantity), ErrItemsRequirePending)
	assert.Equal(t, 299.0, o.TotalPrice.Amount())
}
