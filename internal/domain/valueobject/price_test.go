package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrice(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		want    float64
		wantErr error
	}{
		{name: "valor inteiro", amount: 10, want: 10},
		{name: "arredonda para cima", amount: 10.999, want: 11},
		{name: "arredonda terceira casa", amount: 10.006, want: 10.01},
		{name: "mantém duas casas", amount: 29.90, want: 29.90},
		{name: "zero é válido", amount: 0, want: 0},
		{name: "negativo é rejeitado", amount: -1, wantErr: ErrNegativePrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := NewPrice(tt.amount)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, price.Amount())
			assert.Equal(t, "BRL", price.Currency())
		})
	}
}

func TestPriceAdd(t *testing.T) {
	t.Run("soma preços da mesma moeda", func(t *testing.T) {
		a, _ := NewPrice(10.50)
		b, _ := NewPrice(5.25)

		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.Equal(t, 15.75, sum.Amount())
	})

	t.Run("rejeita moedas diferentes", func(t *testing.T) {
		a, _ := NewPrice(10)
		b, _ := NewPriceWithCurrency(10, "USD")

		_, err := a.Add(b)
		require.ErrorIs(t, err, ErrCurrencyMismatch)
	})

	t.Run("não altera os operandos", func(t *testing.T) {
		a, _ := NewPrice(10)
		b, _ := NewPrice(5)

		_, err := a.Add(b)
		require.NoError(t, err)
		assert.Equal(t, 10.0, a.Amount())
		assert.Equal(t, 5.0, b.Amount())
	})
}

func TestPriceMultiply(t *testing.T) {
	t.Run("multiplica e arredonda", func(t *testing.T) {
		price, _ := NewPrice(29.90)

		total, err := price.Multiply(10)
		require.NoError(t, err)
		assert.Equal(t, 299.0, total.Amount())
	})

	t.Run("arredonda resultado fracionário", func(t *testing.T) {
		price, _ := NewPrice(10.33)

		total, err := price.Multiply(3)
		require.NoError(t, err)
		assert.Equal(t, 30.99, total.Amount())
	})

	t.Run("fator negativo é rejeitado", func(t *testing.T) {
		price, _ := NewPrice(10)

		_, err := price.Multiply(-2)
		require.ErrorIs(t, err, ErrNegativePrice)
	})
}

func TestPriceEquals(t *testing.T) {
	a, _ := NewPrice(9.99)
	b, _ := NewPrice(9.99)
	c, _ := NewPriceWithCurrency(9.99, "USD")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestPriceString(t *testing.T) {
	price, _ := NewPrice(7.5)
	assert.Equal(t, "BRL 7.50", price.String())
}
