package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hugohenrick/gestao-estoque/internal/domain/sale"
)

// SaleRepository implementa sale.Repository em memória
type SaleRepository struct {
	mu    sync.RWMutex
	sales map[string]*sale.Sale
	order []string
}

// NewSaleRepository cria um repositório de vendas em memória
func NewSaleRepository() *SaleRepository {
	return &SaleRepository{sales: map[string]*sale.Sale{}}
}

// Create implementa sale.Repository.Create
func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sales[s.ID]; !ok {
		r.order = append(r.order, s.ID)
	}
	r.sales[s.ID] = s
	return nil
}

// FindByID implementa sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, id string) (*sale.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sales[id]
	if !ok {
		return nil, sale.ErrNotFound
	}
	return s, nil
}

// FindByProductID implementa sale.Repository.FindByProductID
func (r *SaleRepository) FindByProductID(ctx context.Context, productID string) ([]*sale.Sale, error) {
	return r.filter(func(s *sale.Sale) bool { return s.ProductID == productID }), nil
}

// FindByCustomerID implementa sale.Repository.FindByCustomerID
func (r *SaleRepository) FindByCustomerID(ctx context.Context, customerID string) ([]*sale.Sale, error) {
	return r.filter(func(s *sale.Sale) bool { return s.CustomerID == customerID }), nil
}

// FindByPeriod implementa sale.Repository.FindByPeriod
func (r *SaleRepository) FindByPeriod(ctx context.Context, start, end time.Time) ([]*sale.Sale, error) {
	return r.filter(func(s *sale.Sale) bool { return inPeriod(s.SoldAt, start, end) }), nil
}

// FindByProductAndPeriod implementa sale.Repository.FindByProductAndPeriod
func (r *SaleRepository) FindByProductAndPeriod(ctx context.Context, productID string, start, end time.Time) ([]*sale.Sale, error) {
	return r.filter(func(s *sale.Sale) bool {
		return s.ProductID == productID && inPeriod(s.SoldAt, start, end)
	}), nil
}

// FindAll implementa sale.Repository.FindAll
func (r *SaleRepository) FindAll(ctx context.Context) ([]*sale.Sale, error) {
	return r.filter(func(*sale.Sale) bool { return true }), nil
}

// Update implementa sale.Repository.Update
func (r *SaleRepository) Update(ctx context.Context, s *sale.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sales[s.ID]; !ok {
		return sale.ErrNotFound
	}
	r.sales[s.ID] = s
	return nil
}

// Delete implementa sale.Repository.Delete
func (r *SaleRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sales[id]; !ok {
		return sale.ErrNotFound
	}
	delete(r.sales, id)
	for i, sid := range r.order {
		if sid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *SaleRepository) filter(keep func(*sale.Sale) bool) []*sale.Sale {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*sale.Sale{}
	for _, id := range r.order {
		if keep(r.sales[id]) {
			result = append(result, r.sales[id])
		}
	}
	return result
}

func inPeriod(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
