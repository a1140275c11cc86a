package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/gestao-estoque/internal/domain/product"
	"github.com/hugohenrick/gestao-estoque/internal/domain/supplier"
	"github.com/hugohenrick/gestao-estoque/internal/domain/valueobject"
)

type noopLogger struct{}

func (noopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Warn(msg string, keysAndValues ...interface{})  {}

func newTestProduct(t *testing.T, name string, price, quantity, minQuantity float64) *product.Product {
	t.Helper()

	p, err := valueobject.NewPrice(price)
	require.NoError(t, err)
	q, err := valueobject.NewQuantity(quantity)
	require.NoError(t, err)
	min, err := valueobject.NewQuantity(minQuantity)
	require.NoError(t, err)

	prod, err := product.NewProduct(name, "azul", "M", p, q, min, "produto de teste", "vestuário")
	require.NoError(t, err)
	return prod
}

func newTestSupplier(t *testing.T, name string) *supplier.Supplier {
	t.Helper()

	email, err := valueobject.NewEmail("contato@fornecedor.com.br")
	require.NoError(t, err)

	s, err := supplier.NewSupplier(name, email, "11 99999-0000", "Rua das Flores, 100", "12.345.678/0001-95", 7, "")
	require.NoError(t, err)
	return s
}

func mustQuantity(t *testing.T, value float64) valueobject.Quantity {
	t.Helper()

	q, err := valueobject.NewQuantity(value)
	require.NoError(t, err)
	return q
}

func mustPrice(t *testing.T, amount float64) valueobject.Price {
	t.Helper()

	p, err := valueobject.NewPrice(amount)
	require.NoError(t, err)
	return p
}
