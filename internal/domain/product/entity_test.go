package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/gestao-estoque/internal/domain/valueobject"
)

func newTestProduct(t *testing.T, qty, minQty float64) *Product {
	t.Helper()

	price, err := valueobject.NewPrice(29.90)
	require.NoError(t, err)
	quantity, err := valueobject.NewQuantity(qty)
	require.NoError(t, err)
	minQuantity, err := valueobject.NewQuantity(minQty)
	require.NoError(t, err)

	p, err := NewProduct("Camiseta Básica", "azul", "M", price, quantity, minQuantity, "camiseta de algodão", "vestuário")
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	p := newTestProduct(t, 100, 10)

	assert.NotEmpty(t, p.ID)
	assert.True(t, p.Active)
	assert.Equal(t, "Camiseta Básica", p.Name)
	assert.False(t, p.IsLowStock())
	assert.False(t, p.IsOutOfStock())
}

func TestNewProductRequiresName(t *testing.T) {
	price, _ := valueobject.NewPrice(10)
	quantity, _ := valueobject.NewQuantity(1)

	_, err := NewProduct("", "azul", "M", price, quantity, quantity, "", "")
	require.ErrorIs(t, err, ErrEmptyName)
}

func TestProductQuantityMutations(t *testing.T) {
	p := newTestProduct(t, 100, 10)

	add, _ := valueobject.NewQuantity(50)
	p.AddQuantity(add)
	assert.Equal(t, 150, p.Quantity.Value())

	remove, _ := valueobject.NewQuantity(145)
	require.NoError(t, p.RemoveQuantity(remove))
	assert.Equal(t, 5, p.Quantity.Value())
	assert.True(t, p.IsLowStock())

	tooMuch, _ := valueobject.NewQuantity(10)
	err := p.RemoveQuantity(tooMuch)
	require.ErrorIs(t, err, valueobject.ErrNegativeQuantityResult)
	assert.Equal(t, 5, p.Quantity.Value(), "falha não deve alterar a quantidade")
}

func TestProductStockPredicates(t *testing.T) {
	p := newTestProduct(t, 0, 10)

	assert.True(t, p.IsOutOfStock())
	assert.True(t, p.IsLowStock())

	replacement, _ := valueobject.NewQuantity(10)
	p.UpdateQuantity(replacement)
	assert.False(t, p.IsOutOfStock())
	assert.False(t, p.IsLowStock(), "quantidade igual à mínima não é estoque baixo")
}

func TestProductTotalValue(t *testing.T) {
	p := newTestProduct(t, 10, 2)

	total, err := p.TotalValue()
	require.NoError(t, err)
	assert.Equal(t, 299.0, total.Amount())
}

func TestProductActivation(t *testing.T) {
	p := newTestProduct(t, 10, 2)

	p.Deactivate()
	assert.False(t, p.Active)

	p.Activate()
	assert.True(t, p.Active)
}

func TestProductEquals(t *testing.T) {
	a := newTestProduct(t, 10, 2)
	b := newTestProduct(t, 10, 2)

	assert.False(t, a.Equals(b), "produtos com IDs diferentes não são iguais")
	assert.False(t, a.Equals(nil))

	c := *a
	c.Name = "Outro Nome"
	assert.True(t, a.Equals(&c), "igualdade é por identidade, não estrutural")
}
