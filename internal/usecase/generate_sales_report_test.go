package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/gestao-estoque/internal/adapter/repository/memory"
	"github.com/hugohenrick/gestao-estoque/internal/domain/product"
	"github.com/hugohenrick/gestao-estoque/internal/domain/sale"
)

func TestGenerateSalesReport(t *testing.T) {
	ctx := context.Background()

	newSaleAt := func(t *testing.T, p *product.Product, quantity float64, unitPrice float64, soldAt time.Time) *sale.Sale {
		t.Helper()

		s, err := sale.NewSale(p.ID, mustQuantity(t, quantity), mustPrice(t, unitPrice), "", "", "")
		require.NoError(t, err)
		s.SoldAt = soldAt
		return s
	}

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)

	t.Run("calcula totais e agrega por produto", func(t *testing.T) {
		products := memory.NewProductRepository()
		sales := memory.NewSaleRepository()

		camiseta := newTestProduct(t, "Camiseta", 20.0, 100, 10)
		bermuda := newTestProduct(t, "Bermuda", 35.0, 100, 10)
		require.NoError(t, products.Create(ctx, camiseta))
		require.NoError(t, products.Create(ctx, bermuda))

		require.NoError(t, sales.Create(ctx, newSaleAt(t, camiseta, 2, 20.0, start.AddDate(0, 0, 4))))
		require.NoError(t, sales.Create(ctx, newSaleAt(t, bermuda, 1, 35.0, start.AddDate(0, 0, 10))))
		require.NoError(t, sales.Create(ctx, newSaleAt(t, camiseta, 3, 20.0, start.AddDate(0, 0, 20))))
		// fora do período, não entra no relatório
		require.NoError(t, sales.Create(ctx, newSaleAt(t, camiseta, 5, 20.0, start.AddDate(0, -1, 0))))

		uc := NewGenerateSalesReport(sales, products)
		resp, err := uc.Execute(ctx, GenerateSalesReportRequest{Start: start, End: end})
		require.NoError(t, err)

		assert.Equal(t, 3, resp.Summary.TotalSales)
		assert.Equal(t, 135.0, resp.Summary.TotalValue)
		assert.Equal(t, 6, resp.Summary.TotalQuantity)
		assert.Equal(t, 45.0, resp.Summary.AverageTicket)

		require.Len(t, resp.ByProduct, 2)
		assert.Equal(t, "Camiseta", resp.ByProduct[0].ProductName)
		assert.Equal(t, 5, resp.ByProduct[0].QuantitySold)
		assert.Equal(t, 100.0, resp.ByProduct[0].TotalValue)
		assert.Equal(t, 2, resp.ByProduct[0].SalesCount)
		assert.Equal(t, "Bermuda", resp.ByProduct[1].ProductName)
		assert.Equal(t, 1, resp.ByProduct[1].SalesCount)

		assert.Len(t, resp.Sales, 3)
	})

	t.Run("filtra por produto quando informado", func(t *testing.T) {
		products := memory.NewProductRepository()
		sales := memory.NewSaleRepository()

		camiseta := newTestProduct(t, "Camiseta", 20.0, 100, 10)
		bermuda := newTestProduct(t, "Bermuda", 35.0, 100, 10)
		require.NoError(t, products.Create(ctx, camiseta))
		require.NoError(t, products.Create(ctx, bermuda))

		require.NoError(t, sales.Create(ctx, newSaleAt(t, camiseta, 2, 20.0, start.AddDate(0, 0, 4))))
		require.NoError(t, sales.Create(ctx, newSaleAt(t, bermuda, 1, 35.0, start.AddDate(0, 0, 10))))

		uc := NewGenerateSalesReport(sales, products)
		resp, err := uc.Execute(ctx, GenerateSalesReportRequest{Start: start, End: end, ProductID: bermuda.ID})
		require.NoError(t, err)

		assert.Equal(t, 1, resp.Summary.TotalSales)
		assert.Equal(t, 35.0, resp.Summary.TotalValue)
		require.Len(t, resp.ByProduct, 1)
		assert.Equal(t, bermuda.ID, resp.ByProduct[0].ProductID)
	})

	t.Run("período sem vendas gera relatório vazio", func(t *testing.T) {
		uc := NewGenerateSalesReport(memory.NewSaleRepository(), memory.NewProductRepository())

		resp, err := uc.Execute(ctx, GenerateSalesReportRequest{Start: start, End: end})
		require.NoError(t, err)

		assert.Equal(t, 0, resp.Summary.TotalSales)
		assert.Equal(t, 0.0, resp.Summary.AverageTicket)
		assert.Empty(t, resp.ByProduct)
		assert.Empty(t, resp.Sales)
	})

	t.Run("mantém a linha mesmo sem o produto cadastrado", func(t *testing.T) {
		products := memory.NewProductRepository()
		sales := memory.NewSaleRepository()

		camiseta := newTestProduct(t, "Camiseta", 20.0, 100, 10)
		s := newSaleAt(t, camiseta, 2, 20.0, start.AddDate(0, 0, 4))
		require.NoError(t, sales.Create(ctx, s))

		uc := NewGenerateSalesReport(sales, products)
		resp, err := uc.Execute(ctx, GenerateSalesReportRequest{Start: start, End: end})
		require.NoError(t, err)

		require.Len(t, resp.ByProduct, 1)
		assert.Empty(t, resp.ByProduct[0].ProductName)
		assert.Equal(t, 2, resp.ByProduct[0].QuantitySold)
	})
}
