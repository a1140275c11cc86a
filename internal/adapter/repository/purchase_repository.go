package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hugohenrick/gestao-estoque/internal/domain/purchase"
	"github.com/hugohenrick/gestao-estoque/internal/domain/valueobject"
)

const purchaseOrderColumns = `id, supplier_id, items, status, created_at,
		approved_at, shipped_at, received_at, notes, total_price, active`

// PurchaseOrderRepository implementa a interface purchase.Repository. Os
// itens da ordem são armazenados como JSONB na própria linha.
type PurchaseOrderRepository struct {
	db *pgxpool.Pool
}

// NewPurchaseOrderRepository cria uma nova instância de PurchaseOrderRepository
func NewPurchaseOrderRepository(db *pgxpool.Pool) purchase.Repository {
	return &PurchaseOrderRepository{
		db: db,
	}
}

// Create implementa purchase.Repository.Create
func (r *PurchaseOrderRepository) Create(ctx context.Context, o *purchase.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("erro ao converter itens para JSON: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO purchase_orders (
			id, supplier_id, items, status, created_at, approved_at,
			shipped_at, received_at, notes, total_price, active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		o.ID, o.SupplierID, items, o.Status, o.CreatedAt, o.ApprovedAt,
		o.ShippedAt, o.ReceivedAt, o.Notes, o.TotalPrice.Amount(), o.Active)

	if err != nil {
		return fmt.Errorf("erro ao criar ordem de compra: %w", err)
	}

	return nil
}

// FindByID implementa purchase.Repository.FindByID
func (r *PurchaseOrderRepository) FindByID(ctx context.Context, id string) (*purchase.Order, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+purchaseOrderColumns+` FROM purchase_orders WHERE id = $1`, id)

	o, err := scanPurchaseOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, purchase.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar ordem de compra: %w", err)
	}

	return o, nil
}

// FindByStatus implementa purchase.Repository.FindByStatus
func (r *PurchaseOrderRepository) FindByStatus(ctx context.Context, status purchase.Status) ([]*purchase.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+purchaseOrderColumns+` FROM purchase_orders WHERE status = $1 ORDER BY created_at ASC`,
		status)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar ordens de compra: %w", err)
	}
	defer rows.Close()

	return scanPurchaseOrderRows(rows)
}

// FindBySupplierID implementa purchase.Repository.FindBySupplierID
func (r *PurchaseOrderRepository) FindBySupplierID(ctx context.Context, supplierID string) ([]*purchase.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+purchaseOrderColumns+` FROM purchase_orders WHERE supplier_id = $1 ORDER BY created_at ASC`,
		supplierID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar ordens de compra: %w", err)
	}
	defer rows.Close()

	return scanPurchaseOrderRows(rows)
}

// FindPending implementa purchase.Repository.FindPending
func (r *PurchaseOrderRepository) FindPending(ctx context.Context) ([]*purchase.Order, error) {
	return r.FindByStatus(ctx, purchase.StatusPending)
}

// FindAll implementa purchase.Repository.FindAll
func (r *PurchaseOrderRepository) FindAll(ctx context.Context) ([]*purchase.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+purchaseOrderColumns+` FROM purchase_orders ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar ordens de compra: %w", err)
	}
	defer rows.Close()

	return scanPurchaseOrderRows(rows)
}

// Update implementa purchase.Repository.Update
func (r *PurchaseOrderRepository) Update(ctx context.Context, o *purchase.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("erro ao converter itens para JSON: %w", err)
	}

	result, err := r.db.Exec(ctx,
		`UPDATE purchase_orders SET
			supplier_id = $1, items = $2, status = $3, approved_at = $4,
			shipped_at = $5, received_at = $6, notes = $7, total_price = $8,
			active = $9
		WHERE id = $10`,
		o.SupplierID, items, o.Status, o.ApprovedAt, o.ShippedAt,
		o.ReceivedAt, o.Notes, o.TotalPrice.Amount(), o.Active, o.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar ordem de compra: %w", err)
	}

	if result.RowsAffected() == 0 {
		return purchase.ErrNotFound
	}

	return nil
}

// Delete implementa purchase.Repository.Delete
func (r *PurchaseOrderRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM purchase_orders WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir ordem de compra: %w", err)
	}

	if result.RowsAffected() == 0 {
		return purchase.ErrNotFound
	}

	return nil
}

func scanPurchaseOrder(row pgx.Row) (*purchase.Order, error) {
	var (
		o          purchase.Order
		itemsJSON  []byte
		totalPrice float64
	)

	err := row.Scan(
		&o.ID, &o.SupplierID, &itemsJSON, &o.Status, &o.CreatedAt,
		&o.ApprovedAt, &o.ShippedAt, &o.ReceivedAt, &o.Notes,
		&totalPrice, &o.Active)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return nil, fmt.Errorf("erro ao converter itens: %w", err)
	}

	if o.TotalPrice, err = valueobject.NewPrice(totalPrice); err != nil {
		return nil, fmt.Errorf("erro ao reconstruir preço total: %w", err)
	}

	return &o, nil
}

func scanPurchaseOrderRows(rows pgx.Rows) ([]*purchase.Order, error) {
	orders := make([]*purchase.Order, 0)

	for rows.Next() {
		o, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler ordem de compra: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return orders, nil
}
