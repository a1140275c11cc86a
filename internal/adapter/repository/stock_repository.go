package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hugohenrick/gestao-estoque/internal/domain/stock"
)

// StockRepository implementa a interface stock.Repository. A associação entre
// estoques e produtos fica na tabela stock_products; os produtos são
// carregados junto com o estoque.
type StockRepository struct {
	db *pgxpool.Pool
}

// NewStockRepository cria uma nova instância de StockRepository
func NewStockRepository(db *pgxpool.Pool) stock.Repository {
	return &StockRepository{
		db: db,
	}
}

// Create implementa stock.Repository.Create
func (r *StockRepository) Create(ctx context.Context, s *stock.Stock) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO stocks (id, name, description, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.Name, s.Description, s.Active, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar estoque: %w", err)
	}

	if err := insertStockProducts(ctx, tx, s); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao confirmar transação: %w", err)
	}

	return nil
}

// FindByID implementa stock.Repository.FindByID
func (r *StockRepository) FindByID(ctx context.Context, id string) (*stock.Stock, error) {
	var s stock.Stock

	err := r.db.QueryRow(ctx,
		`SELECT id, name, description, active, created_at, updated_at
		FROM stocks WHERE id = $1`, id).Scan(
		&s.ID, &s.Name, &s.Description, &s.Active, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, stock.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar estoque: %w", err)
	}

	if err := r.loadProducts(ctx, &s); err != nil {
		return nil, err
	}

	return &s, nil
}

// FindByName implementa stock.Repository.FindByName
func (r *StockRepository) FindByName(ctx context.Context, name string) (*stock.Stock, error) {
	var s stock.Stock

	err := r.db.QueryRow(ctx,
		`SELECT id, name, description, active, created_at, updated_at
		FROM stocks WHERE name = $1`, name).Scan(
		&s.ID, &s.Name, &s.Description, &s.Active, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, stock.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar estoque: %w", err)
	}

	if err := r.loadProducts(ctx, &s); err != nil {
		return nil, err
	}

	return &s, nil
}

// FindAll implementa stock.Repository.FindAll
func (r *StockRepository) FindAll(ctx context.Context) ([]*stock.Stock, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, description, active, created_at, updated_at
		FROM stocks ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar estoques: %w", err)
	}
	defer rows.Close()

	stocks := make([]*stock.Stock, 0)
	for rows.Next() {
		var s stock.Stock
		err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Active, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler estoque: %w", err)
		}
		stocks = append(stocks, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	for _, s := range stocks {
		if err := r.loadProducts(ctx, s); err != nil {
			return nil, err
		}
	}

	return stocks, nil
}

// Update implementa stock.Repository.Update. A lista de produtos associados é
// regravada por completo.
func (r *StockRepository) Update(ctx context.Context, s *stock.Stock) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx,
		`UPDATE stocks SET name = $1, description = $2, active = $3, updated_at = $4
		WHERE id = $5`,
		s.Name, s.Description, s.Active, s.UpdatedAt, s.ID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar estoque: %w", err)
	}

	if result.RowsAffected() == 0 {
		return stock.ErrNotFound
	}

	_, err = tx.Exec(ctx, "DELETE FROM stock_products WHERE stock_id = $1", s.ID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar produtos do estoque: %w", err)
	}

	if err := insertStockProducts(ctx, tx, s); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao confirmar transação: %w", err)
	}

	return nil
}

// Delete implementa stock.Repository.Delete
func (r *StockRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM stocks WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir estoque: %w", err)
	}

	if result.RowsAffected() == 0 {
		return stock.ErrNotFound
	}

	return nil
}

func (r *StockRepository) loadProducts(ctx context.Context, s *stock.Stock) error {
	rows, err := r.db.Query(ctx,
		`SELECT p.id, p.name, p.color, p.size, p.price, p.quantity,
			p.min_quantity, p.description, p.category, p.active,
			p.created_at, p.updated_at
		FROM products p
		JOIN stock_products sp ON sp.product_id = p.id
		WHERE sp.stock_id = $1
		ORDER BY p.name ASC`, s.ID)
	if err != nil {
		return fmt.Errorf("erro ao carregar produtos do estoque: %w", err)
	}
	defer rows.Close()

	products, err := scanProductRows(rows)
	if err != nil {
		return err
	}

	s.Products = products
	return nil
}

func insertStockProducts(ctx context.Context, tx pgx.Tx, s *stock.Stock) error {
	for _, p := range s.Products {
		_, err := tx.Exec(ctx,
			`INSERT INTO stock_products (stock_id, product_id) VALUES ($1, $2)`,
			s.ID, p.ID)
		if err != nil {
			return fmt.Errorf("erro ao associar produto ao estoque: %w", err)
		}
	}
	return nil
}
