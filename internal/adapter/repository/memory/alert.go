package memory

import (
	"context"
	"sync"

	"github.com/hugohenrick/gestao-estoque/internal/domain/alert"
)

// AlertRepository implementa alert.Repository em memória
type AlertRepository struct {
	mu     sync.RWMutex
	alerts map[string]*alert.Alert
	order  []string
}

// NewAlertRepository cria um repositório de alertas em memória
func NewAlertRepository() *AlertRepository {
	return &AlertRepository{alerts: map[string]*alert.Alert{}}
}

// Create implementa alert.Repository.Create
func (r *AlertRepository) Create(ctx context.Context, a *alert.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.alerts[a.ID]; !ok {
		r.order = append(r.order, a.ID)
	}
	r.alerts[a.ID] = a
	return nil
}

// FindByID implementa alert.Repository.FindByID
func (r *AlertRepository) FindByID(ctx context.Context, id string) (*alert.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.alerts[id]
	if !ok {
		return nil, alert.ErrNotFound
	}
	return a, nil
}

// FindByStatus implementa alert.Repository.FindByStatus
func (r *AlertRepository) FindByStatus(ctx context.Context, status alert.Status) ([]*alert.Alert, error) {
	return r.filter(func(a *alert.Alert) bool { return a.Status == status }), nil
}

// FindByType implementa alert.Repository.FindByType
func (r *AlertRepository) FindByType(ctx context.Context, alertType alert.Type) ([]*alert.Alert, error) {
	return r.filter(func(a *alert.Alert) bool { return a.Type == alertType }), nil
}

// FindPending implementa alert.Repository.FindPending
func (r *AlertRepository) FindPending(ctx context.Context) ([]*alert.Alert, error) {
	return r.filter(func(a *alert.Alert) bool { return a.Status == alert.StatusPending }), nil
}

// FindByProductID implementa alert.Repository.FindByProductID
func (r *AlertRepository) FindByProductID(ctx context.Context, productID string) ([]*alert.Alert, error) {
	return r.filter(func(a *alert.Alert) bool { return a.ProductID == productID }), nil
}

// FindAll implementa alert.Repository.FindAll
func (r *AlertRepository) FindAll(ctx context.Context) ([]*alert.Alert, error) {
	return r.filter(func(*alert.Alert) bool { return true }), nil
}

// Update implementa alert.Repository.Update
func (r *AlertRepository) Update(ctx context.Context, a *alert.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.alerts[a.ID]; !ok {
		return alert.ErrNotFound
	}
	r.alerts[a.ID] = a
	return nil
}

// Delete implementa alert.Repository.Delete
func (r *AlertRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.alerts[id]; !ok {
		return alert.ErrNotFound
	}
	delete(r.alerts, id)
	for i, aid := range r.order {
		if aid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *AlertRepository) filter(keep func(*alert.Alert) bool) []*alert.Alert {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*alert.Alert{}
	for _, id := range r.order {
		if keep(r.alerts[id]) {
			result = append(result, r.alerts[id])
		}
	}
	return result
}
