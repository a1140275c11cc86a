package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hugohenrick/gestao-estoque/internal/domain/alert"
	"github.com/hugohenrick/gestao-estoque/internal/domain/valueobject"
)

const alertColumns = `id, type, status, title, message, recipient, product_id,
		sent_at, attempts, max_attempts, active, created_at`

// AlertRepository implementa a interface alert.Repository
type AlertRepository struct {
	db *pgxpool.Pool
}

// NewAlertRepository cria uma nova instância de AlertRepository
func NewAlertRepository(db *pgxpool.Pool) alert.Repository {
	return &AlertRepository{
		db: db,
	}
}

// Create implementa alert.Repository.Create
func (r *AlertRepository) Create(ctx context.Context, a *alert.Alert) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO alerts (
			id, type, status, title, message, recipient, product_id,
			sent_at, attempts, max_attempts, active, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		a.ID, a.Type, a.Status, a.Title, a.Message, a.Recipient.Value(),
		a.ProductID, a.SentAt, a.Attempts, a.MaxAttempts, a.Active, a.CreatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar alerta: %w", err)
	}

	return nil
}

// FindByID implementa alert.Repository.FindByID
func (r *AlertRepository) FindByID(ctx context.Context, id string) (*alert.Alert, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+alertColumns+` FROM alerts WHERE id = $1`, id)

	a, err := scanAlert(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, alert.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar alerta: %w", err)
	}

	return a, nil
}

// FindByStatus implementa alert.Repository.FindByStatus
func (r *AlertRepository) FindByStatus(ctx context.Context, status alert.Status) ([]*alert.Alert, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+alertColumns+` FROM alerts WHERE status = $1 ORDER BY created_at ASC`,
		status)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar alertas: %w", err)
	}
	defer rows.Close()

	return scanAlertRows(rows)
}

// FindByType implementa alert.Repository.FindByType
func (r *AlertRepository) FindByType(ctx context.Context, alertType alert.Type) ([]*alert.Alert, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+alertColumns+` FROM alerts WHERE type = $1 ORDER BY created_at ASC`,
		alertType)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar alertas: %w", err)
	}
	defer rows.Close()

	return scanAlertRows(rows)
}

// FindPending implementa alert.Repository.FindPending
func (r *AlertRepository) FindPending(ctx context.Context) ([]*alert.Alert, error) {
	return r.FindByStatus(ctx, alert.StatusPending)
}

// FindByProductID implementa alert.Repository.FindByProductID
func (r *AlertRepository) FindByProductID(ctx context.Context, productID string) ([]*alert.Alert, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+alertColumns+` FROM alerts WHERE product_id = $1 ORDER BY created_at ASC`,
		productID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar alertas: %w", err)
	}
	defer rows.Close()

	return scanAlertRows(rows)
}

// FindAll implementa alert.Repository.FindAll
func (r *AlertRepository) FindAll(ctx context.Context) ([]*alert.Alert, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+alertColumns+` FROM alerts ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar alertas: %w", err)
	}
	defer rows.Close()

	return scanAlertRows(rows)
}

// Update implementa alert.Repository.Update
func (r *AlertRepository) Update(ctx context.Context, a *alert.Alert) error {
	result, err := r.db.Exec(ctx,
		`UPDATE alerts SET
			type = $1, status = $2, title = $3, message = $4, recipient = $5,
			product_id = $6, sent_at = $7, attempts = $8, max_attempts = $9,
			active = $10
		WHERE id = $11`,
		a.Type, a.Status, a.Title, a.Message, a.Recipient.Value(),
		a.ProductID, a.SentAt, a.Attempts, a.MaxAttempts, a.Active, a.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar alerta: %w", err)
	}

	if result.RowsAffected() == 0 {
		return alert.ErrNotFound
	}

	return nil
}

// Delete implementa alert.Repository.Delete
func (r *AlertRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM alerts WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir alerta: %w", err)
	}

	if result.RowsAffected() == 0 {
		return alert.ErrNotFound
	}

	return nil
}

func scanAlert(row pgx.Row) (*alert.Alert, error) {
	var (
		a         alert.Alert
		recipient string
	)

	err := row.Scan(
		&a.ID, &a.Type, &a.Status, &a.Title, &a.Message, &recipient,
		&a.ProductID, &a.SentAt, &a.Attempts, &a.MaxAttempts, &a.Active,
		&a.CreatedAt)
	if err != nil {
		return nil, err
	}

	if a.Recipient, err = valueobject.NewEmail(recipient); err != nil {
		return nil, fmt.Errorf("erro ao reconstruir destinatário: %w", err)
	}

	return &a, nil
}

func scanAlertRows(rows pgx.Rows) ([]*alert.Alert, error) {
	alerts := make([]*alert.Alert, 0)

	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler alerta: %w", err)
		}
		alerts = append(alerts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return alerts, nil
}
