package memory

import (
	"context"
	"sync"

	"github.com/hugohenrick/gestao-estoque/internal/domain/stock"
)

// StockRepository implementa stock.Repository em memória
type StockRepository struct {
	mu     sync.RWMutex
	stocks map[string]*stock.Stock
	order  []string
}

// NewStockRepository cria um repositório de estoques em memória
func NewStockRepository() *StockRepository {
	return &StockRepository{stocks: map[string]*stock.Stock{}}
}

// Create implementa stock.Repository.Create
func (r *StockRepository) Create(ctx context.Context, s *stock.Stock) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.stocks[s.ID]; !ok {
		r.order = append(r.order, s.ID)
	}
	r.stocks[s.ID] = s
	return nil
}

// FindByID implementa stock.Repository.FindByID
func (r *StockRepository) FindByID(ctx context.Context, id string) (*stock.Stock, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.stocks[id]
	if !ok {
		return nil, stock.ErrNotFound
	}
	return s, nil
}

// FindByName implementa stock.Repository.FindByName
func (r *StockRepository) FindByName(ctx context.Context, name string) (*stock.Stock, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if r.stocks[id].Name == name {
			return r.stocks[id], nil
		}
	}
	return nil, stock.ErrNotFound
}

// FindAll implementa stock.Repository.FindAll
func (r *StockRepository) FindAll(ctx context.Context) ([]*stock.Stock, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*stock.Stock{}
	for _, id := range r.order {
		result = append(result, r.stocks[id])
	}
	return result, nil
}

// Update implementa stock.Repository.Update
func (r *StockRepository) Update(ctx context.Context, s *stock.Stock) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.stocks[s.ID]; !ok {
		return stock.ErrNotFound
	}
	r.stocks[s.ID] = s
	return nil
}

// Delete implementa stock.Repository.Delete
func (r *StockRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.stocks[id]; !ok {
		return stock.ErrNotFound
	}
	delete(r.stocks, id)
	for i, sid := range r.order {
		if sid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
