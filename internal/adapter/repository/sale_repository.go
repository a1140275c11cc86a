package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hugohenrick/gestao-estoque/internal/domain/sale"
	"github.com/hugohenrick/gestao-estoque/internal/domain/valueobject"
)

const saleColumns = `id, product_id, quantity_sold, unit_price, total_price,
		sold_at, customer_id, seller_id, discount, notes`

// SaleRepository implementa a interface sale.Repository
type SaleRepository struct {
	db *pgxpool.Pool
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(db *pgxpool.Pool) sale.Repository {
	return &SaleRepository{
		db: db,
	}
}

// Create implementa sale.Repository.Create
func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO sales (
			id, product_id, quantity_sold, unit_price, total_price,
			sold_at, customer_id, seller_id, discount, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		s.ID, s.ProductID, s.QuantitySold.Value(), s.UnitPrice.Amount(),
		s.TotalPrice.Amount(), s.SoldAt, s.CustomerID, s.SellerID,
		discountAmount(s.Discount), s.Notes)

	if err != nil {
		return fmt.Errorf("erro ao registrar venda: %w", err)
	}

	return nil
}

// FindByID implementa sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, id string) (*sale.Sale, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE id = $1`, id)

	s, err := scanSale(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sale.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}

	return s, nil
}

// FindByProductID implementa sale.Repository.FindByProductID
func (r *SaleRepository) FindByProductID(ctx context.Context, productID string) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE product_id = $1 ORDER BY sold_at ASC`,
		productID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	return scanSaleRows(rows)
}

// FindByCustomerID implementa sale.Repository.FindByCustomerID
func (r *SaleRepository) FindByCustomerID(ctx context.Context, customerID string) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE customer_id = $1 ORDER BY sold_at ASC`,
		customerID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	return scanSaleRows(rows)
}

// FindByPeriod implementa sale.Repository.FindByPeriod
func (r *SaleRepository) FindByPeriod(ctx context.Context, start, end time.Time) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE sold_at BETWEEN $1 AND $2 ORDER BY sold_at ASC`,
		start, end)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas do período: %w", err)
	}
	defer rows.Close()

	return scanSaleRows(rows)
}

// FindByProductAndPeriod implementa sale.Repository.FindByProductAndPeriod
func (r *SaleRepository) FindByProductAndPeriod(ctx context.Context, productID string, start, end time.Time) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+saleColumns+` FROM sales
		WHERE product_id = $1 AND sold_at BETWEEN $2 AND $3
		ORDER BY sold_at ASC`,
		productID, start, end)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas do período: %w", err)
	}
	defer rows.Close()

	return scanSaleRows(rows)
}

// FindAll implementa sale.Repository.FindAll
func (r *SaleRepository) FindAll(ctx context.Context) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+saleColumns+` FROM sales ORDER BY sold_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	return scanSaleRows(rows)
}

// Update implementa sale.Repository.Update
func (r *SaleRepository) Update(ctx context.Context, s *sale.Sale) error {
	result, err := r.db.Exec(ctx,
		`UPDATE sales SET
			product_id = $1, quantity_sold = $2, unit_price = $3,
			total_price = $4, sold_at = $5, customer_id = $6, seller_id = $7,
			discount = $8, notes = $9
		WHERE id = $10`,
		s.ProductID, s.QuantitySold.Value(), s.UnitPrice.Amount(),
		s.TotalPrice.Amount(), s.SoldAt, s.CustomerID, s.SellerID,
		discountAmount(s.Discount), s.Notes, s.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar venda: %w", err)
	}

	if result.RowsAffected() == 0 {
		return sale.ErrNotFound
	}

	return nil
}

// Delete implementa sale.Repository.Delete
func (r *SaleRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM sales WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir venda: %w", err)
	}

	if result.RowsAffected() == 0 {
		return sale.ErrNotFound
	}

	return nil
}

func scanSale(row pgx.Row) (*sale.Sale, error) {
	var (
		s            sale.Sale
		quantitySold int
		unitPrice    float64
		totalPrice   float64
		discount     *float64
	)

	err := row.Scan(
		&s.ID, &s.ProductID, &quantitySold, &unitPrice, &totalPrice,
		&s.SoldAt, &s.CustomerID, &s.SellerID, &discount, &s.Notes)
	if err != nil {
		return nil, err
	}

	if s.QuantitySold, err = valueobject.NewQuantity(float64(quantitySold)); err != nil {
		return nil, fmt.Errorf("erro ao reconstruir quantidade: %w", err)
	}
	if s.UnitPrice, err = valueobject.NewPrice(unitPrice); err != nil {
		return nil, fmt.Errorf("erro ao reconstruir preço unitário: %w", err)
	}
	if s.TotalPrice, err = valueobject.NewPrice(totalPrice); err != nil {
		return nil, fmt.Errorf("erro ao reconstruir preço total: %w", err)
	}

	if discount != nil {
		d, err := valueobject.NewPrice(*discount)
		if err != nil {
			return nil, fmt.Errorf("erro ao reconstruir desconto: %w", err)
		}
		s.Discount = &d
	}

	return &s, nil
}

func scanSaleRows(rows pgx.Rows) ([]*sale.Sale, error) {
	sales := make([]*sale.Sale, 0)

	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler venda: %w", err)
		}
		sales = append(sales, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return sales, nil
}

func discountAmount(discount *valueobject.Price) *float64 {
	if discount == nil {
		return nil
	}
	amount := discount.Amount()
	return &amount
}
