package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuantity(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		want    int
		wantErr error
	}{
		{name: "valor inteiro", value: 10, want: 10},
		{name: "trunca fracionário", value: 10.9, want: 10},
		{name: "zero é válido", value: 0, want: 0},
		{name: "negativo é rejeitado", value: -1, wantErr: ErrNegativeQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quantity, err := NewQuantity(tt.value)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, quantity.Value())
		})
	}
}

func TestQuantitySubtract(t *testing.T) {
	t.Run("subtrai quando há saldo", func(t *testing.T) {
		a, _ := NewQuantity(10)
		b, _ := NewQuantity(3)

		result, err := a.Subtract(b)
		require.NoError(t, err)
		assert.Equal(t, 7, result.Value())
	})

	t.Run("rejeita resultado negativo", func(t *testing.T) {
		a, _ := NewQuantity(10)
		b, _ := NewQuantity(15)

		_, err := a.Subtract(b)
		require.ErrorIs(t, err, ErrNegativeQuantityResult)
	})
}

func TestQuantityAddAndMultiply(t *testing.T) {
	a, _ := NewQuantity(4)
	b, _ := NewQuantity(6)

	assert.Equal(t, 10, a.Add(b).Value())

	half, err := a.Multiply(0.5)
	require.NoError(t, err)
	assert.Equal(t, 2, half.Value())

	truncated, err := b.Multiply(1.4)
	require.NoError(t, err)
	assert.Equal(t, 8, truncated.Value())
}

func TestQuantityComparisons(t *testing.T) {
	small, _ := NewQuantity(2)
	big, _ := NewQuantity(9)
	zero, _ := NewQuantity(0)

	assert.True(t, big.GreaterThan(small))
	assert.True(t, small.LessThan(big))
	assert.False(t, small.GreaterThan(big))
	assert.True(t, zero.IsZero())
	assert.False(t, small.IsZero())
	assert.True(t, small.Equals(small))
}
