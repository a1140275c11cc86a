package memory

import (
	"context"
	"sync"

	"github.com/hugohenrick/gestao-estoque/internal/domain/purchase"
)

// PurchaseOrderRepository implementa purchase.Repository em memória
type PurchaseOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*purchase.Order
	order  []string
}

// NewPurchaseOrderRepository cria um repositório de ordens de compra em memória
func NewPurchaseOrderRepository() *PurchaseOrderRepository {
	return &PurchaseOrderRepository{orders: map[string]*purchase.Order{}}
}

// Create implementa purchase.Repository.Create
func (r *PurchaseOrderRepository) Create(ctx context.Context, o *purchase.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[o.ID]; !ok {
		r.order = append(r.order, o.ID)
	}
	r.orders[o.ID] = o
	return nil
}

// FindByID implementa purchase.Repository.FindByID
func (r *PurchaseOrderRepository) FindByID(ctx context.Context, id string) (*purchase.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, purchase.ErrNotFound
	}
	return o, nil
}

// FindByStatus implementa purchase.Repository.FindByStatus
func (r *PurchaseOrderRepository) FindByStatus(ctx context.Context, status purchase.Status) ([]*purchase.Order, error) {
	return r.filter(func(o *purchase.Order) bool { return o.Status == status }), nil
}

// FindBySupplierID implementa purchase.Repository.FindBySupplierID
func (r *PurchaseOrderRepository) FindBySupplierID(ctx context.Context, supplierID string) ([]*purchase.Order, error) {
	return r.filter(func(o *purchase.Order) bool { return o.SupplierID == supplierID }), nil
}

// FindPending implementa purchase.Repository.FindPending
func (r *PurchaseOrderRepository) FindPending(ctx context.Context) ([]*purchase.Order, error) {
	return r.filter(func(o *purchase.Order) bool { return o.Status == purchase.StatusPending }), nil
}

// FindAll implementa purchase.Repository.FindAll
func (r *PurchaseOrderRepository) FindAll(ctx context.Context) ([]*purchase.Order, error) {
	return r.filter(func(*purchase.Order) bool { return true }), nil
}

// Update implementa purchase.Repository.Update
func (r *PurchaseOrderRepository) Update(ctx context.Context, o *purchase.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[o.ID]; !ok {
		return purchase.ErrNotFound
	}
	r.orders[o.ID] = o
	return nil
}

// Delete implementa purchase.Repository.Delete
func (r *PurchaseOrderRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[id]; !ok {
		return purchase.ErrNotFound
	}
	delete(r.orders, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *PurchaseOrderRepository) filter(keep func(*purchase.Order) bool) []*purchase.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*purchase.Order{}
	for _, id := range r.order {
		if keep(r.orders[id]) {
			result = append(result, r.orders[id])
		}
	}
	return result
}
