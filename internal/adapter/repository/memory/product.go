// Package memory traz implementações em memória dos repositórios de
// domínio, usadas nos testes e em execuções locais sem banco de dados.
package memory

import (
	"context"
	"sync"

	"github.com/hugohenrick/gestao-estoque/internal/domain/product"
)

// ProductRepository implementa product.Repository em memória
type ProductRepository struct {
	mu       sync.RWMutex
	products map[string]*product.Product
	order    []string
}

// NewProductRepository cria um repositório de produtos em memória
func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: map[string]*product.Product{}}
}

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[p.ID]; !ok {
		r.order = append(r.order, p.ID)
	}
	r.products[p.ID] = p
	return nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	return p, nil
}

// FindByName implementa product.Repository.FindByName
func (r *ProductRepository) FindByName(ctx context.Context, name string) (*product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if r.products[id].Name == name {
			return r.products[id], nil
		}
	}
	return nil, product.ErrNotFound
}

// FindByCategory implementa product.Repository.FindByCategory
func (r *ProductRepository) FindByCategory(ctx context.Context, category string) ([]*product.Product, error) {
	return r.filter(func(p *product.Product) bool { return p.Category == category }), nil
}

// FindLowStock implementa product.Repository.FindLowStock
func (r *ProductRepository) FindLowStock(ctx context.Context) ([]*product.Product, error) {
	return r.filter(func(p *product.Product) bool { return p.IsLowStock() }), nil
}

// FindOutOfStock implementa product.Repository.FindOutOfStock
func (r *ProductRepository) FindOutOfStock(ctx context.Context) ([]*product.Product, error) {
	return r.filter(func(p *product.Product) bool { return p.IsOutOfStock() }), nil
}

// FindActive implementa product.Repository.FindActive
func (r *ProductRepository) FindActive(ctx context.Context) ([]*product.Product, error) {
	return r.filter(func(p *product.Product) bool { return p.Active }), nil
}

// FindAll implementa product.Repository.FindAll
func (r *ProductRepository) FindAll(ctx context.Context) ([]*product.Product, error) {
	return r.filter(func(*product.Product) bool { return true }), nil
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[p.ID]; !ok {
		return product.ErrNotFound
	}
	r.products[p.ID] = p
	return nil
}

// Delete implementa product.Repository.Delete
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return product.ErrNotFound
	}
	delete(r.products, id)
	for i, pid := range r.order {
		if pid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *ProductRepository) filter(keep func(*product.Product) bool) []*product.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*product.Product{}
	for _, id := range r.order {
		if keep(r.products[id]) {
			result = append(result, r.products[id])
		}
	}
	return result
}
