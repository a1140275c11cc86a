package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hugohenrick/gestao-estoque/internal/domain/product"
	"github.com/hugohenrick/gestao-estoque/internal/domain/valueobject"
)

const productColumns = `id, name, color, size, price, quantity, min_quantity,
		description, category, active, created_at, updated_at`

// ProductRepository implementa a interface product.Repository
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db *pgxpool.Pool) product.Repository {
	return &ProductRepository{
		db: db,
	}
}

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO products (
			id, name, color, size, price, quantity, min_quantity,
			description, category, active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		p.ID, p.Name, p.Color, p.Size, p.Price.Amount(), p.Quantity.Value(),
		p.MinQuantity.Value(), p.Description, p.Category, p.Active,
		p.CreatedAt, p.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return product.ErrDuplicateName
		}
		return fmt.Errorf("erro ao criar produto: %w", err)
	}

	return nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}

	return p, nil
}

// FindByName implementa product.Repository.FindByName
func (r *ProductRepository) FindByName(ctx context.Context, name string) (*product.Product, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE name = $1`, name)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}

	return p, nil
}

// FindByCategory implementa product.Repository.FindByCategory
func (r *ProductRepository) FindByCategory(ctx context.Context, category string) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE category = $1 ORDER BY name ASC`,
		category)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	return scanProductRows(rows)
}

// FindLowStock implementa product.Repository.FindLowStock
func (r *ProductRepository) FindLowStock(ctx context.Context) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE quantity < min_quantity ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos com estoque baixo: %w", err)
	}
	defer rows.Close()

	return scanProductRows(rows)
}

// FindOutOfStock implementa product.Repository.FindOutOfStock
func (r *ProductRepository) FindOutOfStock(ctx context.Context) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE quantity = 0 ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos sem estoque: %w", err)
	}
	defer rows.Close()

	return scanProductRows(rows)
}

// FindActive implementa product.Repository.FindActive
func (r *ProductRepository) FindActive(ctx context.Context) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE active = true ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos ativos: %w", err)
	}
	defer rows.Close()

	return scanProductRows(rows)
}

// FindAll implementa product.Repository.FindAll
func (r *ProductRepository) FindAll(ctx context.Context) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	return scanProductRows(rows)
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	result, err := r.db.Exec(ctx,
		`UPDATE products SET
			name = $1, color = $2, size = $3, price = $4, quantity = $5,
			min_quantity = $6, description = $7, category = $8, active = $9,
			updated_at = $10
		WHERE id = $11`,
		p.Name, p.Color, p.Size, p.Price.Amount(), p.Quantity.Value(),
		p.MinQuantity.Value(), p.Description, p.Category, p.Active,
		p.UpdatedAt, p.ID)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return product.ErrDuplicateName
		}
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return product.ErrNotFound
	}

	return nil
}

// Delete implementa product.Repository.Delete
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir produto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return product.ErrNotFound
	}

	return nil
}

// scanProduct lê uma linha de produto reconstruindo os objetos de valor
func scanProduct(row pgx.Row) (*product.Product, error) {
	var (
		p           product.Product
		price       float64
		quantity    int
		minQuantity int
	)

	err := row.Scan(
		&p.ID, &p.Name, &p.Color, &p.Size, &price, &quantity, &minQuantity,
		&p.Description, &p.Category, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := hydrateProduct(&p, price, quantity, minQuantity); err != nil {
		return nil, err
	}

	return &p, nil
}

// scanProductRows é um método auxiliar para processar consultas que retornam
// múltiplos produtos
func scanProductRows(rows pgx.Rows) ([]*product.Product, error) {
	products := make([]*product.Product, 0)

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return products, nil
}

func hydrateProduct(p *product.Product, price float64, quantity, minQuantity int) error {
	var err error

	if p.Price, err = valueobject.NewPrice(price); err != nil {
		return fmt.Errorf("erro ao reconstruir preço: %w", err)
	}
	if p.Quantity, err = valueobject.NewQuantity(float64(quantity)); err != nil {
		return fmt.Errorf("erro ao reconstruir quantidade: %w", err)
	}
	if p.MinQuantity, err = valueobject.NewQuantity(float64(minQuantity)); err != nil {
		return fmt.Errorf("erro ao reconstruir quantidade mínima: %w", err)
	}

	return nil
}
