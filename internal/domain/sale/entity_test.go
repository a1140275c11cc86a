package sale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/gestao-estoque/internal/domain/valueobject"
)

func newTestSale(t *testing.T, qty, unitPrice float64) *Sale {
	t.Helper()

	quantity, err := valueobject.NewQuantity(qty)
	require.NoError(t, err)
	price, err := valueobject.NewPrice(unitPrice)
	require.NoError(t, err)

	s, err := NewSale("produto-1", quantity, price, "cliente-1", "vendedor-1", "")
	require.NoError(t, err)
	return s
}

func TestNewSaleDerivesTotal(t *testing.T) {
	s := newTestSale(t, 10, 29.90)

	assert.Equal(t, 299.0, s.TotalPrice.Amount())
	assert.False(t, s.SoldAt.IsZero())
	assert.Equal(t, "cliente-1", s.CustomerID)
}

func TestSaleProfit(t *testing.T) {
	s := newTestSale(t, 10, 50)

	cost, _ := valueobject.NewPrice(30)
	profit, err := s.Profit(cost)
	require.NoError(t, err)
	assert.Equal(t, 200.0, profit.Amount())

	assert.Equal(t, 40.0, s.ProfitMargin(cost))

	// custo acima do preço tornaria o lucro negativo
	expensive, _ := valueobject.NewPrice(60)
	_, err = s.Profit(expensive)
	require.ErrorIs(t, err, valueobject.ErrNegativePrice)
}

func TestSaleApplyDiscount(t *testing.T) {
	s := newTestSale(t, 10, 50) // total 500.00

	discount, _ := valueobject.NewPrice(50)
	require.NoError(t, s.ApplyDiscount(discount))
	assert.Equal(t, 450.0, s.TotalPrice.Amount())
	require.NotNil(t, s.Discount)
	assert.Equal(t, 50.0, s.Discount.Amount())

	// desconto repetido acumula sobre o total já descontado
	require.NoError(t, s.ApplyDiscount(discount))
	assert.Equal(t, 400.0, s.TotalPrice.Amount())

	tooBig, _ := valueobject.NewPrice(1000)
	err := s.ApplyDiscount(tooBig)
	require.ErrorIs(t, err, valueobject.ErrNegativePrice)
	assert.Equal(t, 400.0, s.TotalPrice.Amount(), "falha não deve alterar o total")
}
