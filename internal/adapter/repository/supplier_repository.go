package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hugohenrick/gestao-estoque/internal/domain/supplier"
	"github.com/hugohenrick/gestao-estoque/internal/domain/valueobject"
)

const supplierColumns = `id, name, email, phone, address, cnpj, lead_time_days,
		active, notes, created_at, updated_at`

// SupplierRepository implementa a interface supplier.Repository
type SupplierRepository struct {
	db *pgxpool.Pool
}

// NewSupplierRepository cria uma nova instância de SupplierRepository
func NewSupplierRepository(db *pgxpool.Pool) supplier.Repository {
	return &SupplierRepository{
		db: db,
	}
}

// Create implementa supplier.Repository.Create
func (r *SupplierRepository) Create(ctx context.Context, s *supplier.Supplier) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO suppliers (
			id, name, email, phone, address, cnpj, lead_time_days,
			active, notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		s.ID, s.Name, s.Email.Value(), s.Phone, s.Address, s.CNPJ,
		s.LeadTimeDays, s.Active, s.Notes, s.CreatedAt, s.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return fmt.Errorf("fornecedor com mesmo CNPJ já existe: %w", err)
		}
		return fmt.Errorf("erro ao criar fornecedor: %w", err)
	}

	return nil
}

// FindByID implementa supplier.Repository.FindByID
func (r *SupplierRepository) FindByID(ctx context.Context, id string) (*supplier.Supplier, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id)

	s, err := scanSupplier(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, supplier.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar fornecedor: %w", err)
	}

	return s, nil
}

// FindByCNPJ implementa supplier.Repository.FindByCNPJ
func (r *SupplierRepository) FindByCNPJ(ctx context.Context, cnpj string) (*supplier.Supplier, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+supplierColumns+` FROM suppliers WHERE cnpj = $1`, cnpj)

	s, err := scanSupplier(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, supplier.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar fornecedor: %w", err)
	}

	return s, nil
}

// FindByName implementa supplier.Repository.FindByName
func (r *SupplierRepository) FindByName(ctx context.Context, name string) (*supplier.Supplier, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+supplierColumns+` FROM suppliers WHERE name = $1`, name)

	s, err := scanSupplier(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, supplier.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar fornecedor: %w", err)
	}

	return s, nil
}

// FindActive implementa supplier.Repository.FindActive
func (r *SupplierRepository) FindActive(ctx context.Context) ([]*supplier.Supplier, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+supplierColumns+` FROM suppliers WHERE active = true ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar fornecedores ativos: %w", err)
	}
	defer rows.Close()

	return scanSupplierRows(rows)
}

// FindAll implementa supplier.Repository.FindAll
func (r *SupplierRepository) FindAll(ctx context.Context) ([]*supplier.Supplier, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+supplierColumns+` FROM suppliers ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar fornecedores: %w", err)
	}
	defer rows.Close()

	return scanSupplierRows(rows)
}

// Update implementa supplier.Repository.Update
func (r *SupplierRepository) Update(ctx context.Context, s *supplier.Supplier) error {
	result, err := r.db.Exec(ctx,
		`UPDATE suppliers SET
			name = $1, email = $2, phone = $3, address = $4, cnpj = $5,
			lead_time_days = $6, active = $7, notes = $8, updated_at = $9
		WHERE id = $10`,
		s.Name, s.Email.Value(), s.Phone, s.Address, s.CNPJ,
		s.LeadTimeDays, s.Active, s.Notes, s.UpdatedAt, s.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar fornecedor: %w", err)
	}

	if result.RowsAffected() == 0 {
		return supplier.ErrNotFound
	}

	return nil
}

// Delete implementa supplier.Repository.Delete
func (r *SupplierRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM suppliers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir fornecedor: %w", err)
	}

	if result.RowsAffected() == 0 {
		return supplier.ErrNotFound
	}

	return nil
}

func scanSupplier(row pgx.Row) (*supplier.Supplier, error) {
	var (
		s     supplier.Supplier
		email string
	)

	err := row.Scan(
		&s.ID, &s.Name, &email, &s.Phone, &s.Address, &s.CNPJ,
		&s.LeadTimeDays, &s.Active, &s.Notes, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if s.Email, err = valueobject.NewEmail(email); err != nil {
		return nil, fmt.Errorf("erro ao reconstruir email: %w", err)
	}

	return &s, nil
}

func scanSupplierRows(rows pgx.Rows) ([]*supplier.Supplier, error) {
	suppliers := make([]*supplier.Supplier, 0)

	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler fornecedor: %w", err)
		}
		suppliers = append(suppliers, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return suppliers, nil
}
