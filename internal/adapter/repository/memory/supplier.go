package memory

import (
	"context"
	"sync"

	"github.com/hugohenrick/gestao-estoque/internal/domain/supplier"
)

// SupplierRepository implementa supplier.Repository em memória
type SupplierRepository struct {
	mu        sync.RWMutex
	suppliers map[string]*supplier.Supplier
	order     []string
}

// NewSupplierRepository cria um repositório de fornecedores em memória
func NewSupplierRepository() *SupplierRepository {
	return &SupplierRepository{suppliers: map[string]*supplier.Supplier{}}
}

// Create implementa supplier.Repository.Create
func (r *SupplierRepository) Create(ctx context.Context, s *supplier.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.suppliers[s.ID]; !ok {
		r.order = append(r.order, s.ID)
	}
	r.suppliers[s.ID] = s
	return nil
}

// FindByID implementa supplier.Repository.FindByID
func (r *SupplierRepository) FindByID(ctx context.Context, id string) (*supplier.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.suppliers[id]
	if !ok {
		return nil, supplier.ErrNotFound
	}
	return s, nil
}

// FindByCNPJ implementa supplier.Repository.FindByCNPJ
func (r *SupplierRepository) FindByCNPJ(ctx context.Context, cnpj string) (*supplier.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if r.suppliers[id].CNPJ == cnpj {
			return r.suppliers[id], nil
		}
	}
	return nil, supplier.ErrNotFound
}

// FindByName implementa supplier.Repository.FindByName
func (r *SupplierRepository) FindByName(ctx context.Context, name string) (*supplier.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if r.suppliers[id].Name == name {
			return r.suppliers[id], nil
		}
	}
	return nil, supplier.ErrNotFound
}

// FindActive implementa supplier.Repository.FindActive
func (r *SupplierRepository) FindActive(ctx context.Context) ([]*supplier.Supplier, error) {
	return r.filter(func(s *supplier.Supplier) bool { return s.Active }), nil
}

// FindAll implementa supplier.Repository.FindAll
func (r *SupplierRepository) FindAll(ctx context.Context) ([]*supplier.Supplier, error) {
	return r.filter(func(*supplier.Supplier) bool { return true }), nil
}

// Update implementa supplier.Repository.Update
func (r *SupplierRepository) Update(ctx context.Context, s *supplier.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.suppliers[s.ID]; !ok {
		return supplier.ErrNotFound
	}
	r.suppliers[s.ID] = s
	return nil
}

// Delete implementa supplier.Repository.Delete
func (r *SupplierRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.suppliers[id]; !ok {
		return supplier.ErrNotFound
	}
	delete(r.suppliers, id)
	for i, sid := range r.order {
		if sid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *SupplierRepository) filter(keep func(*supplier.Supplier) bool) []*supplier.Supplier {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*supplier.Supplier{}
	for _, id := range r.order {
		if keep(r.suppliers[id]) {
			result = append(result, r.suppliers[id])
		}
	}
	return result
}
