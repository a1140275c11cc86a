package stock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/gestao-estoque/internal/domain/product"
	"github.com/hugohenrick/gestao-estoque/internal/domain/valueobject"
)

func newProduct(t *testing.T, name, category string, price, qty, minQty float64) *product.Product {
	t.Helper()

	priceVO, err := valueobject.NewPrice(price)
	require.NoError(t, err)
	qtyVO, err := valueobject.NewQuantity(qty)
	require.NoError(t, err)
	minVO, err := valueobject.NewQuantity(minQty)
	require.NoError(t, err)

	p, err := product.NewProduct(name, "preto", "U", priceVO, qtyVO, minVO, "", category)
	require.NoError(t, err)
	return p
}

func TestNewStock(t *testing.T) {
	s, err := NewStock("Depósito Central", "estoque principal")
	require.NoError(t, err)

	assert.NotEmpty(t, s.ID)
	assert.True(t, s.Active)
	assert.Empty(t, s.Products)

	_, err = NewStock("", "")
	require.ErrorIs(t, err, ErrEmptyName)
}

func TestStockAddProductMergesByID(t *testing.T) {
	s, _ := NewStock("Depósito Central", "")
	p := newProduct(t, "Caneca", "cozinha", 15, 10, 2)

	s.AddProduct(p)
	require.Len(t, s.Products, 1)

	// mesmo ID chega de novo: soma quantidades em vez de duplicar
	incoming := *p
	qty, _ := valueobject.NewQuantity(5)
	incoming.Quantity = qty
	s.AddProduct(&incoming)

	require.Len(t, s.Products, 1)
	assert.Equal(t, 15, s.Products[0].Quantity.Value())

	other := newProduct(t, "Prato", "cozinha", 20, 3, 1)
	s.AddProduct(other)
	assert.Len(t, s.Products, 2)
}

func TestStockRemoveProduct(t *testing.T) {
	s, _ := NewStock("Depósito Central", "")
	a := newProduct(t, "Caneca", "cozinha", 15, 10, 2)
	b := newProduct(t, "Prato", "cozinha", 20, 3, 1)
	s.AddProduct(a)
	s.AddProduct(b)

	s.RemoveProduct(a.ID)

	require.Len(t, s.Products, 1)
	assert.Equal(t, b.ID, s.Products[0].ID)
	assert.Nil(t, s.FindProductByID(a.ID))
}

func TestStockFilters(t *testing.T) {
	s, _ := NewStock("Depósito Central", "")
	low := newProduct(t, "Caneca", "cozinha", 15, 1, 5)
	out := newProduct(t, "Prato", "cozinha", 20, 0, 2)
	ok := newProduct(t, "Garfo", "talheres", 5, 50, 10)
	inactive := newProduct(t, "Faca", "talheres", 8, 30, 5)
	inactive.Deactivate()

	for _, p := range []*product.Product{low, out, ok, inactive} {
		s.AddProduct(p)
	}

	assert.Len(t, s.LowStockProducts(), 2, "sem estoque também conta como estoque baixo")
	assert.Len(t, s.OutOfStockProducts(), 1)
	assert.Len(t, s.ActiveProducts(), 3)
	assert.Len(t, s.ProductsByCategory("talheres"), 2)

	// filtros não alteram a coleção original
	assert.Len(t, s.Products, 4)
}

func TestStockQuantityOperations(t *testing.T) {
	s, _ := NewStock("Depósito Central", "")
	p := newProduct(t, "Caneca", "cozinha", 15, 10, 2)
	s.AddProduct(p)

	add, _ := valueobject.NewQuantity(5)
	s.AddProductQuantity(p.ID, add)
	assert.Equal(t, 15, p.Quantity.Value())

	replace, _ := valueobject.NewQuantity(3)
	s.UpdateProductQuantity(p.ID, replace)
	assert.Equal(t, 3, p.Quantity.Value())

	remove, _ := valueobject.NewQuantity(10)
	err := s.RemoveProductQuantity(p.ID, remove)
	require.ErrorIs(t, err, valueobject.ErrNegativeQuantityResult)

	err = s.RemoveProductQuantity("inexistente", remove)
	require.ErrorIs(t, err, product.ErrNotFound)
}

func TestStockTotalValueIncludesInactive(t *testing.T) {
	s, _ := NewStock("Depósito Central", "")
	active := newProduct(t, "Caneca", "cozinha", 10, 10, 2)   // 100.00
	inactive := newProduct(t, "Prato", "cozinha", 20, 5, 1)   // 100.00
	inactive.Deactivate()
	s.AddProduct(active)
	s.AddProduct(inactive)

	assert.Equal(t, 200.0, s.TotalValue())

	report := s.BuildReport()
	assert.Equal(t, 2, report.TotalProducts)
	assert.Equal(t, 200.0, report.TotalValue)
}
